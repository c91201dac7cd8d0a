// Package config holds the environment-driven runtime settings.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the full runtime configuration, sourced from the environment.
type Config struct {
	// APIURL is the base URL of the storefront backend.
	APIURL string `env:"SOUQ_API_URL" envDefault:"http://localhost:5000"`
	// Lang selects the UI language: ar, en or fr.
	Lang string `env:"SOUQ_LANG" envDefault:"ar"`
	// HTTPTimeout bounds every outbound request.
	HTTPTimeout time.Duration `env:"SOUQ_HTTP_TIMEOUT" envDefault:"30s"`
	// LogFile receives diagnostic logs; stdout is owned by the TUI.
	LogFile string `env:"SOUQ_LOG_FILE"`
}

// Load parses the configuration from the environment.
func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	return &cfg, nil
}
