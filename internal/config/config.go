// Package config loads argus's YAML configuration file: engine defaults,
// logging, and CLI watch-mode settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"argus/internal/logging"
)

// Config holds all argus configuration.
type Config struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	Engine  EngineConfig  `yaml:"engine"`
	Logging LoggingConfig `yaml:"logging"`
	Watch   WatchConfig   `yaml:"watch"`
}

// WatchConfig configures the CLI's watch subcommand.
type WatchConfig struct {
	// DebounceMillis is loaded and saved with the rest of the file, but the
	// watch subcommand does not read it: it always waits a fixed 250ms
	// after a file change before re-labelling.
	DebounceMillis int `yaml:"debounce_millis"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "argus",
		Version: "0.1.0",

		Engine: EngineConfig{
			DefaultLabeler:   "four_bool",
			MaxNaiveTheories: DefaultMaxNaiveTheories,
			BatchConcurrency: 4,
		},

		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			File:   "argus.log",
		},

		Watch: WatchConfig{
			DebounceMillis: 250,
		},
	}
}

// Load loads configuration from a YAML file, falling back to defaults
// if the file does not exist.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	logging.BootDebug("Loading config from: %s", path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logging.Boot("Config file not found, using defaults: %s", path)
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	logging.Boot("Config loaded: labeler=%s", cfg.Engine.DefaultLabeler)
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate checks the configuration for structural errors.
func (c *Config) Validate() error {
	valid := map[string]bool{"four_bool": true, "justification": true, "fqas": true, "naive": true}
	if !valid[c.Engine.DefaultLabeler] {
		return fmt.Errorf("invalid default labeler: %q", c.Engine.DefaultLabeler)
	}
	return nil
}
