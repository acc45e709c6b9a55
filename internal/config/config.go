// Package config loads optional user preferences for lsg.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents lsg configuration options. All fields are optional;
// zero values mean "use the built-in default".
type Config struct {
	// Colors maps entry kinds (dir, file, symlink, other) to ANSI color
	// names, overriding the default theme.
	Colors map[string]string `yaml:"colors"`

	// FallbackWidth is the terminal width assumed when stdout is not a
	// terminal.
	FallbackWidth int `yaml:"fallback_width"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Colors: map[string]string{},
	}
}

// DefaultPath returns the standard config file location,
// ~/.config/lsg/config.yaml, or "" when the home directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "lsg", "config.yaml")
}

// Load reads configuration from the specified file path.
// If the file doesn't exist, returns default configuration without error.
// If the file exists but is malformed, returns an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if cfg.FallbackWidth < 0 {
		return nil, fmt.Errorf("invalid fallback_width %d: must be non-negative", cfg.FallbackWidth)
	}
	return cfg, nil
}
