package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "https://api.openai.com/v1", cfg.Oracle.BaseURL)
	assert.Equal(t, "gpt-4o-mini", cfg.Oracle.Model)
	assert.Equal(t, 60, cfg.Oracle.TimeoutSeconds)
	assert.Equal(t, 2, cfg.Oracle.RequestsPerSecond)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Empty(t, cfg.Database.DSN)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ORACLE_RPS", "5")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("MONITOR_CRON", "@hourly")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 5, cfg.Oracle.RequestsPerSecond)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, "@hourly", cfg.Monitor.CronSpec)
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("ORACLE_TIMEOUT_SECONDS", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.Oracle.TimeoutSeconds)
}

func TestValidate_ProductionNeedsAPIKey(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("ORACLE_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ORACLE_API_KEY")
}
