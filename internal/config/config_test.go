package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anyventure/companion-api/internal/config"
	"github.com/anyventure/companion-api/internal/errors"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 50051, cfg.GRPCPort)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 30*time.Minute, cfg.RollLogTTL)
	assert.Empty(t, cfg.OTelEndpoint)
	assert.Equal(t, "data", cfg.SeedDir)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ANYVENTURE_GRPC_PORT", "6000")
	t.Setenv("ANYVENTURE_REDIS_ADDR", "redis:6380")
	t.Setenv("ANYVENTURE_LOG_LEVEL", "debug")
	t.Setenv("ANYVENTURE_ROLL_LOG_TTL", "5m")
	t.Setenv("ANYVENTURE_OTEL_ENDPOINT", "http://collector:4318")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 6000, cfg.GRPCPort)
	assert.Equal(t, "redis:6380", cfg.RedisAddr)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.Equal(t, 5*time.Minute, cfg.RollLogTTL)
	assert.Equal(t, "http://collector:4318", cfg.OTelEndpoint)
}

func TestLoadParseError(t *testing.T) {
	t.Setenv("ANYVENTURE_GRPC_PORT", "not-a-port")

	_, err := config.Load()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestLoadLeavesValidationToCaller(t *testing.T) {
	t.Setenv("ANYVENTURE_LOG_LEVEL", "loud")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Error(t, cfg.Validate())

	cfg.LogLevel = "warn"
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	valid := func() *config.Config {
		return &config.Config{
			GRPCPort:   50051,
			RedisAddr:  "localhost:6379",
			LogLevel:   "info",
			RollLogTTL: time.Minute,
		}
	}

	testCases := []struct {
		name   string
		mutate func(*config.Config)
		field  string
	}{
		{name: "port too high", mutate: func(c *config.Config) { c.GRPCPort = 70000 }, field: "grpc_port"},
		{name: "port zero", mutate: func(c *config.Config) { c.GRPCPort = 0 }, field: "grpc_port"},
		{name: "missing redis", mutate: func(c *config.Config) { c.RedisAddr = " " }, field: "redis_addr"},
		{name: "unknown level", mutate: func(c *config.Config) { c.LogLevel = "loud" }, field: "log_level"},
		{name: "zero ttl", mutate: func(c *config.Config) { c.RollLogTTL = 0 }, field: "roll_log_ttl"},
	}

	require.NoError(t, valid().Validate())

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}

func TestSlogLevelIsCaseInsensitive(t *testing.T) {
	cfg := &config.Config{LogLevel: "WARN"}
	assert.Equal(t, slog.LevelWarn, cfg.SlogLevel())

	cfg.LogLevel = "unknown"
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}
