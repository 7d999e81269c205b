// Package config loads server configuration from the environment
package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/anyventure/companion-api/internal/errors"
)

// Prefix is prepended to every environment variable name
const Prefix = "ANYVENTURE_"

var logLevels = []string{"debug", "info", "warn", "error"}

// Config holds the server settings. Command line flags override these.
type Config struct {
	GRPCPort     int           `env:"GRPC_PORT" envDefault:"50051"`
	RedisAddr    string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	LogLevel     string        `env:"LOG_LEVEL" envDefault:"info"`
	RollLogTTL   time.Duration `env:"ROLL_LOG_TTL" envDefault:"30m"`
	OTelEndpoint string        `env:"OTEL_ENDPOINT"`
	SeedDir      string        `env:"SEED_DIR" envDefault:"data"`
}

// Load parses the environment into a Config. Callers apply overrides and
// then call Validate.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: Prefix}); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	return cfg, nil
}

// Validate checks ranges and enums
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("grpc_port", c.GRPCPort, 1, 65535, vb)
	errors.ValidateRequired("redis_addr", c.RedisAddr, vb)
	errors.ValidateEnum("log_level", strings.ToLower(c.LogLevel), logLevels, vb)
	if c.RollLogTTL <= 0 {
		vb.Field("roll_log_ttl", "must be positive")
	}

	return vb.Build()
}

// SlogLevel maps LogLevel to a slog.Level
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
