// Package config loads service configuration from an optional YAML file with
// environment-variable overrides. Everything has a sensible default so the
// service runs with no config at all.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Addr is the HTTP listen address.
	Addr string `yaml:"addr"`
	// DatabaseURL selects the Postgres period store; empty means in-memory.
	DatabaseURL string `yaml:"database_url"`
	// DefaultExchangeRate applies when a request carries no usable rate.
	DefaultExchangeRate float64 `yaml:"default_exchange_rate"`
	Log                 Log     `yaml:"log"`
	// CORSAllowedOrigins restricts browser origins; empty allows all.
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
}

// Log controls slog output.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the zero-config defaults.
func Default() Config {
	return Config{
		Addr:                ":8080",
		DefaultExchangeRate: 0.046,
		Log:                 Log{Level: "INFO", Format: "json"},
	}
}

// Load reads the YAML file at path (skipped when path is empty or the file
// does not exist) and then applies environment overrides.
func Load(path string) (Config, error) {
	c := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return Config{}, err
		}
		if err == nil {
			if err := yaml.Unmarshal(raw, &c); err != nil {
				return Config{}, fmt.Errorf("parse %s: %w", path, err)
			}
		}
	}
	c.applyEnv()
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("ADDR"); v != "" {
		c.Addr = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("DEFAULT_EXCHANGE_RATE"); v != "" {
		if rate, err := strconv.ParseFloat(v, 64); err == nil {
			c.DefaultExchangeRate = rate
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
}

func (c *Config) validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr must not be empty")
	}
	if c.DefaultExchangeRate <= 0 {
		return fmt.Errorf("default_exchange_rate must be > 0, got %v", c.DefaultExchangeRate)
	}
	return nil
}
