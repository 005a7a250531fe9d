// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - New() builds a Config with defaults; Load(ctx) layers file and env on top.
// - External errors are wrapped with this package's sentinel kinds.
package config

import (
	"runtime"
	"strings"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// Environment names the deployment environment: development, staging,
	// or production. Error redaction on /analyze keys off production.
	Environment string `koanf:"environment"`

	// MaxContentChars caps the length of a single message content in runes.
	// Values below 1 fall back to the handler default.
	MaxContentChars int `koanf:"max_content_chars"`

	// OutcomeFeedSize bounds the in-memory outcome feed.
	OutcomeFeedSize int `koanf:"outcome_feed_size"`

	// RecorderCount sets the number of outcome recorders.
	RecorderCount int `koanf:"recorder_count"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:        "info",
		Addr:            ":9080",
		Environment:     "development",
		MaxContentChars: 10_000,
		OutcomeFeedSize: 4096,
		RecorderCount:   runtime.NumCPU(),
	}
}

// Production reports whether the configured environment is production.
func (c *Config) Production() bool {
	return strings.EqualFold(c.Environment, "production")
}
