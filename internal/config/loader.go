package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if RUBRIQ_CONFIG is set
//  3. env (prefix RUBRIQ_), seeded from a .env file when one exists
//
// godotenv never overwrites variables already present, so the real
// environment always beats .env.
func Load(ctx context.Context) (*Config, error) {
	// Start with defaults
	base := New()

	// Populate the process environment from .env when present.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("RUBRIQ_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: RUBRIQ_ADDR, RUBRIQ_MAX_CONTENT_CHARS, ...
	// Map env keys like RUBRIQ_MAX_CONTENT_CHARS -> max_content_chars
	// (flat keys). Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("RUBRIQ_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "rubriq_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	switch strings.ToLower(c.Environment) {
	case "development", "staging", "production":
		return nil
	default:
		return fmt.Errorf("%w: unknown environment %q", ErrInvalidConfig, c.Environment)
	}
}
