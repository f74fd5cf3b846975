package config

import (
	"fmt"
	"net/url"
	"time"

	pkgconfig "github.com/shopview/dashboard/pkg/config"
)

// Config holds all configuration for the dashboard.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Commerce API
	APIBaseURL string `env:"COMMERCE_API_URL" envDefault:"http://localhost:8080/api/v1"`
	// APIToken seeds the token store; the host application may replace it at
	// runtime after sign-in.
	APIToken string `env:"COMMERCE_API_TOKEN" envDefault:""`

	// HTTP client
	HTTPTimeout    time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`
	HTTPMaxRetries int           `env:"HTTP_MAX_RETRIES" envDefault:"3"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.Load(cfg); err != nil {
		return nil, fmt.Errorf("load dashboard config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate checks configuration invariants.
func (c *Config) validate() error {
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid commerce API URL: %q", c.APIBaseURL)
	}
	if c.HTTPMaxRetries < 0 {
		return fmt.Errorf("invalid HTTP max retries: %d", c.HTTPMaxRetries)
	}
	return nil
}
