package layout

import "gridboard/internal/jsonutil"

// Valid reports whether the config has the shape the engine requires: a
// non-empty name and a Mobile variant populated with at least one list.
// The numeric-version requirement is enforced by the typed decode in
// ParseConfig; a config that decoded at all has a numeric version.
func (c *Config) Valid() bool {
	return c != nil && c.Name != "" && len(c.Mobile) > 0
}

// ParseConfig decodes a persisted config from raw JSON. Malformed input
// (bad JSON, non-numeric version, wrong shapes) yields an error rather
// than a panic; callers treat any error as "no stored config".
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := jsonutil.UnmarshalWithContext(data, &cfg, "parse layout config"); err != nil {
		return nil, err
	}
	return &cfg, nil
}
