package main

import (
	"fmt"
	"os"

	"github.com/krotik/common/logutil"
	"gopkg.in/yaml.v3"
)

// Config holds the tool settings. It can be read from a YAML file; flags
// given on the command line take precedence.
type Config struct {
	Count     int    `json:"count" yaml:"count"`
	Uppercase bool   `json:"uppercase" yaml:"uppercase"`
	LogLevel  string `json:"logLevel" yaml:"logLevel"`
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Count:    1,
		LogLevel: "warning",
	}
}

// LoadConfig reads path over the defaults. An empty path yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate returns an error describing the first invalid setting or nil.
func (c *Config) Validate() error {
	if c.Count <= 0 {
		return fmt.Errorf("count must be > 0, got %d", c.Count)
	}
	if c.Level() == "" {
		return fmt.Errorf("unknown logLevel %q", c.LogLevel)
	}
	return nil
}

// Level maps LogLevel onto a logutil level; unknown names map to "".
func (c *Config) Level() logutil.Level {
	return logutil.StringToLoglevel(c.LogLevel)
}
