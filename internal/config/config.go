// Package config handles layered YAML configuration with environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Config holds all contactdesk configuration.
type Config struct {
	Store Store `yaml:"store"`
	UI    UI    `yaml:"ui"`
	Log   Log   `yaml:"log"`
}

// Store holds contact store settings.
type Store struct {
	Seed string `yaml:"seed"` // Path to a YAML seed file; "" uses the embedded demo list
}

// UI holds contact screen settings.
type UI struct {
	Owner string `yaml:"owner"` // Owner placeholder written into new drafts
}

// Log holds logger settings.
type Log struct {
	File  string `yaml:"file"`  // "" disables logging
	Level string `yaml:"level"` // zap level name
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		UI: UI{
			Owner: "Current User",
		},
		Log: Log{
			File:  ".contactdesk/contactdesk.log",
			Level: "info",
		},
	}
}

// Load reads a single YAML config file at path and returns a Config.
// For merging multiple config sources, use LoadLayered instead.
// If the file does not exist, defaults are returned without error.
// If the file contains invalid YAML or unknown fields, an error is returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	layer, err := loadLayer(path)
	if err != nil {
		return nil, err
	}
	if layer != nil {
		cfg.merge(layer)
	}
	return &cfg, nil
}

// LoadLayered loads config from multiple paths with increasing priority.
// Later paths override earlier ones. Missing files are skipped.
func LoadLayered(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range paths {
		layer, err := loadLayer(path)
		if err != nil {
			return nil, err
		}
		if layer == nil {
			continue
		}
		cfg.merge(layer)
	}

	return &cfg, nil
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	if c.UI.Owner == "" {
		return errors.New("config: ui.owner cannot be empty")
	}
	if _, err := zap.ParseAtomicLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level %q: %w", c.Log.Level, err)
	}
	return nil
}

// ApplyEnv applies environment variable overrides to the config.
// Supported variables: CONTACTDESK_SEED, CONTACTDESK_OWNER,
// CONTACTDESK_LOG_FILE, CONTACTDESK_LOG_LEVEL.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("CONTACTDESK_SEED"); v != "" {
		c.Store.Seed = v
	}
	if v := os.Getenv("CONTACTDESK_OWNER"); v != "" {
		c.UI.Owner = v
	}
	if v, ok := os.LookupEnv("CONTACTDESK_LOG_FILE"); ok {
		c.Log.File = v
	}
	if v := os.Getenv("CONTACTDESK_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

// rawConfig mirrors Config but uses pointers to distinguish set vs unset fields.
type rawConfig struct {
	Store *rawStore `yaml:"store"`
	UI    *rawUI    `yaml:"ui"`
	Log   *rawLog   `yaml:"log"`
}

type rawStore struct {
	Seed *string `yaml:"seed"`
}

type rawUI struct {
	Owner *string `yaml:"owner"`
}

type rawLog struct {
	File  *string `yaml:"file"`
	Level *string `yaml:"level"`
}

// loadLayer reads a single config file into a rawConfig for selective merging.
// Returns nil if the file does not exist. Rejects unknown fields.
func loadLayer(path string) (*rawConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var raw rawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		// Comment-only YAML files produce EOF with no decoded content.
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &raw, nil
}

// merge applies non-nil fields from a rawConfig layer onto this Config.
func (c *Config) merge(layer *rawConfig) {
	if layer.Store != nil && layer.Store.Seed != nil {
		c.Store.Seed = *layer.Store.Seed
	}
	if layer.UI != nil && layer.UI.Owner != nil {
		c.UI.Owner = *layer.UI.Owner
	}
	if layer.Log != nil {
		if layer.Log.File != nil {
			c.Log.File = *layer.Log.File
		}
		if layer.Log.Level != nil {
			c.Log.Level = *layer.Log.Level
		}
	}
}
