// Package config loads the leafcare configuration file.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"leafcare/internal/store"
)

// DefaultPath is where the CLI looks for a config file when none is given.
const DefaultPath = ".leafcare/config.yaml"

// Log controls the slog handler.
type Log struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// Config is the on-disk configuration.
type Config struct {
	Catalog string `yaml:"catalog"` // catalog YAML path; empty uses the embedded catalog
	DB      string `yaml:"db"`
	Seed    uint64 `yaml:"seed"` // 0 draws from the global generator
	Log     Log    `yaml:"log"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		DB:  store.DefaultDBPath,
		Log: Log{Level: "info", Format: "text"},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	switch c.Log.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	return nil
}
