// Package cache provides an optional Redis-backed cache. When Redis is
// unreachable at startup the cache silently degrades to a no-op so the
// service keeps working without it.
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/candidatehub/server/internal/config"
	"github.com/candidatehub/server/internal/logger"
)

const pingTimeout = 2 * time.Second

type Redis struct {
	client *redis.Client
	logger *logger.Logger
}

// NewRedis connects to Redis using cfg. On connection failure a disabled
// cache is returned instead of an error.
func NewRedis(cfg config.Redis, logger *logger.Logger) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Info("redis unavailable, cache disabled", "addr", cfg.Addr, "error", err.Error())
		_ = client.Close()
		return &Redis{logger: logger}
	}

	return &Redis{client: client, logger: logger}
}

// Enabled reports whether a Redis connection is active.
func (r *Redis) Enabled() bool {
	return r != nil && r.client != nil
}

// Get returns the cached value for key and whether it was found. Lookup
// errors are treated as cache misses.
func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool) {
	if !r.Enabled() {
		return nil, false
	}

	value, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			r.logger.Debug("cache get failed", "key", key, "error", err.Error())
		}
		return nil, false
	}

	return value, true
}

// Set stores value under key with the given TTL. Failures are logged and
// otherwise ignored; the cache is best effort.
func (r *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if !r.Enabled() {
		return
	}

	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		r.logger.Debug("cache set failed", "key", key, "error", err.Error())
	}
}

// Close releases the underlying connection.
func (r *Redis) Close() error {
	if !r.Enabled() {
		return nil
	}
	return r.client.Close()
}
