package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the optional YAML configuration for the demo. Flags that are
// set explicitly override file values.
type Config struct {
	Filter  FilterConfig  `yaml:"filter"`
	Logging LoggingConfig `yaml:"logging"`
}

type FilterConfig struct {
	Size       int    `yaml:"size"`
	Hashes     int    `yaml:"hashes"`
	Algorithm  string `yaml:"algorithm"`
	Derivation string `yaml:"derivation"` // double or linear
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // json or text
}

func defaultConfig() *Config {
	return &Config{
		Filter: FilterConfig{
			Size:       100000,
			Hashes:     3,
			Algorithm:  "xxh3",
			Derivation: "double",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// loadConfig reads path over the defaults. An empty path returns the
// defaults unchanged.
func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
