// Package config reads the settings of the rental calculator from the
// environment, and from a .env file when present.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application settings.
type Config struct {
	DataDir      string `env:"RENTAL_DATA_DIR" envDefault:".rental"`
	Store        string `env:"RENTAL_STORE" envDefault:"dir"`
	LogLevel     string `env:"RENTAL_LOG_LEVEL" envDefault:"warn"`
	LogPretty    bool   `env:"RENTAL_LOG_PRETTY" envDefault:"true"`
	Currency     string `env:"RENTAL_CURRENCY" envDefault:"USD"`
	HistoryLimit int    `env:"RENTAL_HISTORY_LIMIT" envDefault:"100"`
}

// Load reads the configuration. Variables already set in the environment take
// precedence over the ones of the optional .env files.
func Load(files ...string) (*Config, error) {
	// a missing .env file is not an error.
	_ = godotenv.Load(files...)

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings are usable.
func (c *Config) Validate() error {
	switch c.Store {
	case "dir", "sqlite", "memory":
	default:
		return fmt.Errorf("RENTAL_STORE must be dir, sqlite or memory, got %q", c.Store)
	}
	if c.Store != "memory" && c.DataDir == "" {
		return fmt.Errorf("RENTAL_DATA_DIR is required")
	}
	if len(c.Currency) != 3 {
		return fmt.Errorf("RENTAL_CURRENCY must be an ISO 4217 code, got %q", c.Currency)
	}
	if c.HistoryLimit < 1 || c.HistoryLimit > 100 {
		return fmt.Errorf("RENTAL_HISTORY_LIMIT must be within [1, 100], got %d", c.HistoryLimit)
	}
	return nil
}

// StorePath returns the path the store opens: the data directory itself for a
// directory store, a database file inside it for a SQLite store.
func (c *Config) StorePath() string {
	if c.Store == "sqlite" {
		return filepath.Join(c.DataDir, "rental.db")
	}
	return c.DataDir
}
