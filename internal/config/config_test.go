package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unsetEnv(t *testing.T, keys ...string) {
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoad_Defaults(t *testing.T) {
	unsetEnv(t, "PORT", "LOG_LEVEL", "SHUTDOWN_TIMEOUT", "OUTBOX_POLL_INTERVAL", "DEFAULT_DAILY_RATE")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 5*time.Second, cfg.OutboxPollInterval)
	assert.Equal(t, 15*time.Second, cfg.ShutdownTimeout)

	rate, err := cfg.DailyRate()
	require.NoError(t, err)
	assert.Equal(t, "100000", rate.String())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_MAX_RETRIES", "0")
	t.Setenv("OUTBOX_POLL_INTERVAL", "250ms")
	t.Setenv("DEFAULT_DAILY_RATE", "125000.50")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 1, cfg.DBMaxRetries)
	assert.Equal(t, 250*time.Millisecond, cfg.OutboxPollInterval)
	assert.Contains(t, cfg.PostgresDSN(), "host=db")

	rate, _ := cfg.DailyRate()
	assert.Equal(t, "125000.5", rate.String())
}

func TestLoad_RejectsBadDailyRate(t *testing.T) {
	t.Setenv("DEFAULT_DAILY_RATE", "abc")

	_, err := Load()
	assert.Error(t, err)

	t.Setenv("DEFAULT_DAILY_RATE", "-1")
	_, err = Load()
	assert.Error(t, err)
}
