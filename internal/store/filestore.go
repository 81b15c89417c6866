package store

import (
	"os"
	"path/filepath"
	"strings"
)

// BaseDirEnv is the env var override for the store base directory.
const BaseDirEnv = "GRIDBOARD_STORE_DIR"

// DefaultBase is the default base directory under $HOME.
const DefaultBase = ".gridboard"

// ResolveBaseDir returns the store base directory, using the
// GRIDBOARD_STORE_DIR env var if set, otherwise ~/.gridboard.
func ResolveBaseDir() (string, error) {
	if base := os.Getenv(BaseDirEnv); base != "" {
		return base, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultBase), nil
}

// FileStore is a Store keeping one JSON file per key under a base
// directory. Layout: <base>/<key>.json.
type FileStore struct {
	baseDir string
}

// NewFileStore creates a store rooted at baseDir.
func NewFileStore(baseDir string) *FileStore {
	return &FileStore{baseDir: baseDir}
}

// path returns the file path for a key. Keys are normalized the same way
// regardless of caller casing or spacing so "My Board" and "my-board"
// address the same file.
func (s *FileStore) path(key string) string {
	normalized := strings.ToLower(strings.ReplaceAll(key, " ", "-"))
	return filepath.Join(s.baseDir, normalized+".json")
}

// Get implements Store. A missing file or directory is "absent", not an
// error.
func (s *FileStore) Get(key string) ([]byte, bool, error) {
	b, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return b, true, nil
}

// Put implements Store, creating the base directory on first write.
func (s *FileStore) Put(key string, value []byte) error {
	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return err
	}
	return os.WriteFile(s.path(key), value, 0644)
}

// Delete implements Store.
func (s *FileStore) Delete(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
