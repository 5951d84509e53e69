// Package config loads tool configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config carries the CLI defaults. Flags override these per invocation.
type Config struct {
	// Format selects the report mode: "console" or "json".
	Format string `env:"DQCHECK_FORMAT" envDefault:"console"`
	// JSONIndent is the indentation width for JSON reports.
	JSONIndent int `env:"DQCHECK_JSON_INDENT" envDefault:"2"`
	// Workers bounds concurrent column/rule evaluation; 1 means
	// synchronous.
	Workers int `env:"DQCHECK_WORKERS" envDefault:"1"`
	// RulesFile is the default YAML rule suite path.
	RulesFile string `env:"DQCHECK_RULES"`
	// LogLevel is a zap level name (debug, info, warn, error).
	LogLevel string `env:"DQCHECK_LOG_LEVEL" envDefault:"info"`
	// Development switches the logger to its development encoder.
	Development bool `env:"DQCHECK_DEV" envDefault:"false"`
}

// Load reads the .env file (when present) and parses the environment.
func Load() (Config, error) {
	// A missing .env file is fine; explicit environment still applies.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints.
func (c Config) Validate() error {
	switch c.Format {
	case "console", "json":
	default:
		return fmt.Errorf("unknown format %q (want console or json)", c.Format)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be >= 1, got %d", c.Workers)
	}
	if c.JSONIndent < 0 {
		return fmt.Errorf("json indent must be >= 0, got %d", c.JSONIndent)
	}
	return nil
}
