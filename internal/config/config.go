package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Config holds the configuration for the epiday gateway.
// Environment variables are automatically parsed from the EPIDAY_ prefix.
type Config struct {
	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// Upstream intranet portal
	IntraBaseURL           string `envconfig:"INTRA_BASE_URL" default:"https://intra.epitech.eu"`
	UpstreamTimeoutSeconds int    `envconfig:"UPSTREAM_TIMEOUT_SECONDS" default:"5"`
}

// New creates a new Config by parsing environment variables.
// Environment variables should be prefixed with EPIDAY_
// Example: EPIDAY_HTTP_PORT, EPIDAY_INTRA_BASE_URL
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("EPIDAY", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if cfg.UpstreamTimeoutSeconds <= 0 {
		return nil, fmt.Errorf("unsupported UPSTREAM_TIMEOUT_SECONDS: %d", cfg.UpstreamTimeoutSeconds)
	}

	log.Info().
		Int("port", cfg.HTTPPort).
		Str("intra_base_url", cfg.IntraBaseURL).
		Int("upstream_timeout_seconds", cfg.UpstreamTimeoutSeconds).
		Msg("Configuration loaded")

	return &cfg, nil
}

// NewForTesting creates a config specifically for testing.
func NewForTesting() *Config {
	return &Config{
		HTTPPort:               8080,
		IntraBaseURL:           "http://localhost:8081",
		UpstreamTimeoutSeconds: 5,
	}
}

// GetHTTPAddr returns the HTTP server address.
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

// UpstreamTimeout returns the client-wide timeout applied to every intra call.
func (c *Config) UpstreamTimeout() time.Duration {
	return time.Duration(c.UpstreamTimeoutSeconds) * time.Second
}
