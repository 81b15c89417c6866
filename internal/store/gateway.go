package store

import (
	"encoding/json"

	"go.uber.org/zap"

	"gridboard/internal/layout"
)

// Gateway loads and saves layout configs through a Store, keyed by the
// config's name. Storage is best-effort: a load that fails for any
// reason (absent key, storage error, malformed JSON, invalid shape)
// reports "no stored config", and a failed save is logged and swallowed.
// The in-memory state remains the source of truth for the session.
type Gateway struct {
	store Store
	log   *zap.Logger
}

// NewGateway creates a gateway over the given store. A nil logger is
// replaced with a no-op logger.
func NewGateway(s Store, log *zap.Logger) *Gateway {
	if log == nil {
		log = zap.NewNop()
	}
	return &Gateway{store: s, log: log}
}

// Load returns the stored config for name, or ok=false when no usable
// stored config exists. It never returns an error: every failure mode
// falls through to "adopt the default".
func (g *Gateway) Load(name string) (cfg *layout.Config, ok bool) {
	raw, found, err := g.store.Get(name)
	if err != nil {
		g.log.Warn("layout load failed", zap.String("name", name), zap.Error(err))
		return nil, false
	}
	if !found {
		return nil, false
	}
	cfg, err = layout.ParseConfig(raw)
	if err != nil {
		g.log.Warn("stored layout is malformed, discarding", zap.String("name", name), zap.Error(err))
		return nil, false
	}
	if !cfg.Valid() {
		g.log.Warn("stored layout failed validation, discarding", zap.String("name", name))
		return nil, false
	}
	return cfg, true
}

// Save persists the config under its name. Failures are logged, not
// surfaced.
func (g *Gateway) Save(cfg *layout.Config) {
	raw, err := json.Marshal(cfg)
	if err != nil {
		g.log.Warn("layout marshal failed", zap.String("name", cfg.Name), zap.Error(err))
		return
	}
	if err := g.store.Put(cfg.Name, raw); err != nil {
		g.log.Warn("layout save failed", zap.String("name", cfg.Name), zap.Error(err))
	}
}
