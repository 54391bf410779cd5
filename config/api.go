package config

import (
	"strings"
	"time"
)

// APIConfig contains platform API client configuration.
type APIConfig struct {
	// BaseURL is the base URL of the platform API.
	BaseURL string `env:"BASE_URL" envDefault:"https://api.openhire.app"`

	// Timeout is the per-request upper bound. Requests exceeding it fail
	// with a timeout error and leave previously loaded data intact.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"15s"`
}

// Sanitize applies guardrails to API configuration values.
func (a *APIConfig) Sanitize() {
	a.BaseURL = strings.TrimRight(strings.TrimSpace(a.BaseURL), "/")
	if a.Timeout <= 0 {
		a.Timeout = 15 * time.Second
	}
}
