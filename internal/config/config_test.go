package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
	assert.Equal(t, 0.9, cfg.Payment.SuccessRate)
	assert.Equal(t, 2, cfg.Audit.Workers)
	assert.Equal(t, 256, cfg.Audit.QueueSize)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "localhost", cfg.Redis.Host)
	assert.Equal(t, "6379", cfg.Redis.Port)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("PAYMENT_SUCCESS_RATE", "0.5")
	t.Setenv("AUDIT_WORKERS", "8")
	t.Setenv("CACHE_ENABLED", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.AppEnv)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 0.5, cfg.Payment.SuccessRate)
	assert.Equal(t, 8, cfg.Audit.Workers)
	assert.True(t, cfg.Redis.Enabled)
}

func TestLoad_InvalidSuccessRateFallsBack(t *testing.T) {
	t.Setenv("PAYMENT_SUCCESS_RATE", "1.7")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 0.9, cfg.Payment.SuccessRate)
}
