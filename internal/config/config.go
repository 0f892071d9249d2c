package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Forecast page fetching.
	ForecastBaseURL string
	FetchTimeout    time.Duration
	FetchRetries    int
	UserAgent       string

	// Page cache. CacheSize 0 disables caching; RedisURL switches the
	// store from in-memory to Redis.
	CacheSize int
	CacheTTL  time.Duration
	RedisURL  string
}

// Load reads configuration from environment variables, applying defaults where
// unset. Variables from a .env file in the working directory are loaded first
// but never override the real environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	shutdownTimeout, err := parsePositiveDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	fetchTimeout, err := parsePositiveDuration("FETCH_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	cacheTTL, err := parsePositiveDuration("CACHE_TTL", "10m")
	if err != nil {
		return nil, err
	}
	fetchRetries, err := parseIntInRange("FETCH_RETRIES", 2, 0, 10)
	if err != nil {
		return nil, err
	}
	cacheSize, err := parseIntInRange("CACHE_SIZE", 64, 0, 100000)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8000"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		ForecastBaseURL: envOrDefault("FORECAST_BASE_URL", "http://www.lavinprognoser.se"),
		FetchTimeout:    fetchTimeout,
		FetchRetries:    fetchRetries,
		UserAgent:       envOrDefault("USER_AGENT", "lavinbot/1.0"),

		CacheSize: cacheSize,
		CacheTTL:  cacheTTL,
		RedisURL:  os.Getenv("REDIS_URL"),
	}

	if cfg.ForecastBaseURL == "" {
		return nil, errors.New("FORECAST_BASE_URL is required")
	}

	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parsePositiveDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(envOrDefault(key, def))
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return d, nil
}

func parseIntInRange(key string, def, lo, hi int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < lo || n > hi {
		return 0, fmt.Errorf("invalid %s: must be an integer between %d and %d", key, lo, hi)
	}
	return n, nil
}
