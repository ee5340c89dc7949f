// Package config loads service configuration from environment
// variables.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/rollmath/odds-api/internal/errors"
)

// Config holds the runtime configuration for the odds server.
type Config struct {
	// HTTPPort is the listen port for the JSON API.
	HTTPPort int `env:"HTTP_PORT" envDefault:"8080"`

	// RedisAddr enables the distribution cache when set. Empty means
	// every request is computed from scratch.
	RedisAddr string `env:"REDIS_ADDR"`

	// CacheTTL bounds how long a computed distribution stays cached.
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"15m"`

	// RequestTimeout is the deadline placed on every request context
	// by the timeout middleware; computations past it are canceled at
	// their next cooperative check. Also bounds reading request bytes.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`

	// ShutdownTimeout bounds graceful server shutdown.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// Load parses configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse environment")
	}

	if cfg.HTTPPort < 1 || cfg.HTTPPort > 65535 {
		return nil, errors.InvalidArgumentf("HTTP_PORT must be a valid port, got %d", cfg.HTTPPort)
	}
	if cfg.CacheTTL < 0 {
		return nil, errors.InvalidArgumentf("CACHE_TTL must not be negative, got %s", cfg.CacheTTL)
	}
	if cfg.RequestTimeout <= 0 {
		return nil, errors.InvalidArgumentf("REQUEST_TIMEOUT must be positive, got %s", cfg.RequestTimeout)
	}

	return &cfg, nil
}
