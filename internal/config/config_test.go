package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8000", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "http://www.lavinprognoser.se", cfg.ForecastBaseURL)
	assert.Equal(t, 10*time.Second, cfg.FetchTimeout)
	assert.Equal(t, 2, cfg.FetchRetries)
	assert.Equal(t, "lavinbot/1.0", cfg.UserAgent)
	assert.Equal(t, 64, cfg.CacheSize)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
	assert.Empty(t, cfg.RedisURL)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("FORECAST_BASE_URL", "http://localhost:8081")
	t.Setenv("FETCH_TIMEOUT", "3s")
	t.Setenv("FETCH_RETRIES", "0")
	t.Setenv("USER_AGENT", "test-agent")
	t.Setenv("CACHE_SIZE", "0")
	t.Setenv("CACHE_TTL", "1h")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "http://localhost:8081", cfg.ForecastBaseURL)
	assert.Equal(t, 3*time.Second, cfg.FetchTimeout)
	assert.Equal(t, 0, cfg.FetchRetries)
	assert.Equal(t, "test-agent", cfg.UserAgent)
	assert.Equal(t, 0, cfg.CacheSize)
	assert.Equal(t, time.Hour, cfg.CacheTTL)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("HTTP_ADDR=:7000\nLOG_LEVEL=warn\n"), 0o600))
	t.Chdir(dir)
	t.Setenv("LOG_LEVEL", "error")
	t.Cleanup(func() { os.Unsetenv("HTTP_ADDR") })

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":7000", cfg.HTTPAddr)
	assert.Equal(t, "error", cfg.LogLevel, "real environment wins over .env")
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"SHUTDOWN_TIMEOUT", "not-a-duration"},
		{"SHUTDOWN_TIMEOUT", "-1s"},
		{"FETCH_TIMEOUT", "0s"},
		{"CACHE_TTL", "bad"},
		{"FETCH_RETRIES", "many"},
		{"FETCH_RETRIES", "11"},
		{"CACHE_SIZE", "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Chdir(t.TempDir())
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}
