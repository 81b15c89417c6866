// Package config loads gridboard settings from defaults, an optional
// YAML config file, GRIDBOARD_-prefixed environment variables, and CLI
// flags, in increasing order of precedence.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"gridboard/internal/breakpoint"
)

// EnvPrefix is the environment variable prefix, e.g. GRIDBOARD_LAYOUT_NAME.
const EnvPrefix = "GRIDBOARD_"

// Config is the full configuration surface of the binary.
type Config struct {
	// LayoutName is the storage key of the layout config.
	LayoutName string `koanf:"layout_name"`
	// StoreDir is the directory the file store writes to. Empty means
	// ~/.gridboard (or GRIDBOARD_STORE_DIR).
	StoreDir string `koanf:"store_dir"`
	// InitialWidth seeds breakpoint selection before the first resize.
	InitialWidth int `koanf:"initial_width"`
	// LogFile, when set, enables zap logging to that path. Logging to the
	// terminal would fight the TUI for the screen.
	LogFile string `koanf:"log_file"`

	Breakpoints BreakpointConfig `koanf:"breakpoints"`
}

// BreakpointConfig holds the three breakpoint thresholds. Only the
// tablet threshold currently participates in selection; the other two are
// carried as configuration.
type BreakpointConfig struct {
	Desktop int `koanf:"desktop"`
	Tablet  int `koanf:"tablet"`
	Mobile  int `koanf:"mobile"`
}

// Thresholds converts the config values to selector thresholds.
func (b BreakpointConfig) Thresholds() breakpoint.Thresholds {
	return breakpoint.Thresholds{Desktop: b.Desktop, Tablet: b.Tablet, Mobile: b.Mobile}
}

// FindConfigFile finds the config file to use.
// Priority: explicit path > gridboard.yaml > gridboard.yml
func FindConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat("gridboard.yaml"); err == nil {
		return "gridboard.yaml"
	}
	if _, err := os.Stat("gridboard.yml"); err == nil {
		return "gridboard.yml"
	}
	return ""
}

// Load loads configuration.
// Precedence (highest to lowest): flags > env vars > config file > defaults.
// cfgFile may be empty, in which case gridboard.yaml/.yml in the working
// directory is used when present. flags may be nil.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	def := breakpoint.DefaultThresholds()
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"layout_name":         "dashboard",
		"store_dir":           "",
		"initial_width":       0,
		"log_file":            "",
		"breakpoints.desktop": def.Desktop,
		"breakpoints.tablet":  def.Tablet,
		"breakpoints.mobile":  def.Mobile,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := FindConfigFile(cfgFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	// GRIDBOARD_LAYOUT_NAME -> layout_name, GRIDBOARD_BREAKPOINTS_TABLET
	// stays flat; nested keys use double underscore.
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			key := strings.ReplaceAll(f.Name, "-", "_")
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return &cfg, nil
}
