// Package config loads deskcalc configuration. Everything has a
// default; a config file is never required.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all deskcalc configuration.
type Config struct {
	UI      UIConfig      `yaml:"ui"`
	Guess   GuessConfig   `yaml:"guess"`
	Logging LoggingConfig `yaml:"logging"`
}

// UIConfig controls terminal presentation.
type UIConfig struct {
	Color bool `yaml:"color"`
}

// GuessConfig bounds the guessing game secret, inclusive.
type GuessConfig struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		UI:    UIConfig{Color: true},
		Guess: GuessConfig{Min: 1, Max: 100},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the YAML config at path, layered over Default. An empty
// path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	if c.Guess.Min < 1 {
		return fmt.Errorf("guess.min must be positive, got %d", c.Guess.Min)
	}
	if c.Guess.Min >= c.Guess.Max {
		return fmt.Errorf("guess bounds invalid: min %d must be below max %d", c.Guess.Min, c.Guess.Max)
	}
	return nil
}
