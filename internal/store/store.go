// Package store persists layout configs through an abstract key-value
// interface. The engine only ever sees Store and Gateway; the concrete
// medium (in-memory map, files on disk) is an injected capability so
// tests can substitute fakes.
package store

import "sync"

// Store is an abstract key-value store addressed by layout name.
type Store interface {
	// Get returns the raw value for key. The second return is false when
	// the key is absent.
	Get(key string) ([]byte, bool, error)
	// Put writes the raw value for key, replacing any previous value.
	Put(key string, value []byte) error
	// Delete removes the key. Deleting an absent key is not an error.
	Delete(key string) error
}

// MemoryStore is a Store backed by an in-process map. Useful for tests
// and for running without any persistence.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

// Get implements Store.
func (s *MemoryStore) Get(key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	if !ok {
		return nil, false, nil
	}
	// Hand out a copy so callers cannot mutate stored bytes.
	return append([]byte(nil), v...), true, nil
}

// Put implements Store.
func (s *MemoryStore) Put(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = append([]byte(nil), value...)
	return nil
}

// Delete implements Store.
func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}
