package main

import (
	"fmt"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/lavinbot/internal/adapter/lavinprognoser"
	redisstore "github.com/couchcryptid/lavinbot/internal/adapter/redis"
	"github.com/couchcryptid/lavinbot/internal/command"
	"github.com/couchcryptid/lavinbot/internal/config"
	"github.com/couchcryptid/lavinbot/internal/domain"
	"github.com/couchcryptid/lavinbot/internal/observability"
	"github.com/couchcryptid/lavinbot/internal/pipeline"
)

// app is the wired dependency graph shared by the serve and report commands.
type app struct {
	logger   *slog.Logger
	pipeline *pipeline.Pipeline
	closers  []func() error
}

func build(cfg *config.Config) (*app, error) {
	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	a := &app{logger: logger}

	var fetcher domain.PageFetcher = lavinprognoser.NewClient(cfg.FetchTimeout, cfg.FetchRetries, cfg.UserAgent, metrics, logger)
	var ready pipeline.ReadinessChecker

	switch {
	case cfg.RedisURL != "":
		store, err := redisstore.NewStore(cfg.RedisURL, cfg.CacheTTL)
		if err != nil {
			return nil, fmt.Errorf("redis page cache: %w", err)
		}
		a.closers = append(a.closers, store.Close)
		ready = store
		fetcher = lavinprognoser.NewCachedFetcher(fetcher, store, metrics, logger)
		logger.Info("page cache enabled", "store", "redis", "ttl", cfg.CacheTTL)
	case cfg.CacheSize > 0:
		store := lavinprognoser.NewMemoryStore(cfg.CacheSize, cfg.CacheTTL, clockwork.NewRealClock())
		fetcher = lavinprognoser.NewCachedFetcher(fetcher, store, metrics, logger)
		logger.Info("page cache enabled", "store", "memory", "size", cfg.CacheSize, "ttl", cfg.CacheTTL)
	default:
		logger.Info("page cache disabled")
	}

	a.pipeline = pipeline.New(command.NewResolver(), fetcher, cfg.ForecastBaseURL, ready, logger, metrics)
	return a, nil
}

func (a *app) close() {
	for _, c := range a.closers {
		if err := c(); err != nil {
			a.logger.Error("close error", "error", err)
		}
	}
}
