package ui

import (
	"time"
)

// Default configuration values.
const (
	DefaultRefreshInterval = 5 * time.Second
)

// Config holds UI package configuration.
type Config struct {
	// BasePath is the URL prefix where the UI is mounted.
	// For example, if mounted at "/recovery/", set BasePath to "/recovery".
	// Defaults to empty string (root mount).
	BasePath string

	// ReadOnly disables the clear-snapshot operation.
	// Useful for monitoring-only deployments.
	ReadOnly bool

	// RefreshInterval for page auto-refresh.
	// Defaults to 5 seconds.
	RefreshInterval time.Duration
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		RefreshInterval: DefaultRefreshInterval,
	}
}

// applyDefaults fills in default values for zero-valued fields.
func (c *Config) applyDefaults() {
	if c.RefreshInterval == 0 {
		c.RefreshInterval = DefaultRefreshInterval
	}
}

// validate checks the configuration for errors.
func (c *Config) validate() error {
	if c.RefreshInterval < time.Second {
		return ErrInvalidConfig
	}
	return nil
}
