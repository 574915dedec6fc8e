// Package config loads service configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the full service configuration.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string `env:"SKILLFORGE_ADDR" envDefault:":8080"`

	// DBPath is the SQLite database file. ":memory:" works for ephemeral runs.
	DBPath string `env:"SKILLFORGE_DB_PATH" envDefault:"skillforge.db"`

	// AdminKey guards the regression endpoint. Empty disables admin routes.
	AdminKey string `env:"SKILLFORGE_ADMIN_KEY"`

	// Seed fixes the random source; 0 seeds from the current time.
	Seed int64 `env:"SKILLFORGE_SEED" envDefault:"0"`
}

// Load parses the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
