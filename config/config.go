// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"pp-viewer/api"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	HTTPAddr       string        `env:"PP_HTTP_ADDR" envDefault:":8080"`
	APIBaseURL     string        `env:"PP_API_BASE_URL" envDefault:"http://localhost"`
	CSRFCookieName string        `env:"PP_CSRF_COOKIE_NAME" envDefault:"csrftoken"`
	CSRFHeaderName string        `env:"PP_CSRF_HEADER_NAME" envDefault:"X-CSRFToken"`
	APIRetryCount  int           `env:"PP_API_RETRY_COUNT" envDefault:"0"`
	APITimeout     time.Duration `env:"PP_API_TIMEOUT" envDefault:"0s"`
	LogLevel       string        `env:"PP_LOG_LEVEL" envDefault:"info"`
	LogDevelopment bool          `env:"PP_LOG_DEVELOPMENT" envDefault:"false"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.APIRetryCount < 0 {
		return Config{}, fmt.Errorf("PP_API_RETRY_COUNT must not be negative: %d", cfg.APIRetryCount)
	}
	return cfg, nil
}

// API returns the client configuration.
func (c Config) API() api.Config {
	return api.Config{
		BaseURL:        c.APIBaseURL,
		CSRFCookieName: c.CSRFCookieName,
		CSRFHeaderName: c.CSRFHeaderName,
		RetryCount:     c.APIRetryCount,
		Timeout:        c.APITimeout,
	}
}
