// Package config provides configuration for the derview HTTP service.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"gopkg.in/yaml.v3"
)

// Config holds the serve-mode configuration. Values come from an
// optional YAML file, overridden by DERVIEW_* environment variables,
// overridden in turn by command-line flags.
type Config struct {
	Address      string        `yaml:"address" env:"DERVIEW_ADDRESS"`
	ReadTimeout  time.Duration `yaml:"readTimeout" env:"DERVIEW_READ_TIMEOUT"`
	WriteTimeout time.Duration `yaml:"writeTimeout" env:"DERVIEW_WRITE_TIMEOUT"`
	MaxBodyBytes int64         `yaml:"maxBodyBytes" env:"DERVIEW_MAX_BODY_BYTES"`
	LogLevel     string        `yaml:"logLevel" env:"DERVIEW_LOG_LEVEL"`
	LogFormat    string        `yaml:"logFormat" env:"DERVIEW_LOG_FORMAT"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Address:      ":8080",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		MaxBodyBytes: 1 << 20,
		LogLevel:     "info",
		LogFormat:    "json",
	}
}

// Load builds a Config from defaults, the YAML file at path (if path is
// non-empty) and the environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parsing %s: %w", path, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parsing environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field values and reports the first problem found.
func (c *Config) Validate() error {
	if c.Address == "" {
		return fmt.Errorf("config: address must not be empty")
	}
	if c.ReadTimeout <= 0 || c.WriteTimeout <= 0 {
		return fmt.Errorf("config: timeouts must be positive")
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("config: maxBodyBytes must be positive")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("config: unknown log format %q", c.LogFormat)
	}
	return nil
}
