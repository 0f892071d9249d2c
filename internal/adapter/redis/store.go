// Package redis provides a Redis-backed page store so several bot instances
// can share fetched forecast pages.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/go-redis/redis/v8"
)

const keyPrefix = "lavinbot:page:"

// Store implements lavinprognoser.Store on top of Redis. Entries expire after ttl.
type Store struct {
	client *goredis.Client
	ttl    time.Duration
}

// NewStore connects to the Redis instance described by url
// (redis://[:password@]host:port/db).
func NewStore(url string, ttl time.Duration) (*Store, error) {
	opt, err := goredis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return &Store{client: goredis.NewClient(opt), ttl: ttl}, nil
}

// Get returns the cached page for key. A missing key is not an error.
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	page, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}
	return page, true, nil
}

// Set stores page under key with the configured TTL.
func (s *Store) Set(ctx context.Context, key string, page []byte) error {
	if err := s.client.Set(ctx, keyPrefix+key, page, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// CheckReadiness pings Redis.
func (s *Store) CheckReadiness(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.client.Close()
}
