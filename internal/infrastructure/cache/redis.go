// Package cache wraps an optional Redis instance. Every operation
// degrades to a no-op when Redis is missing or down, so callers never
// branch on availability.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"sync/atomic"
	"time"

	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/config"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	defaultTTL  = 10 * time.Minute
	connectWait = 2 * time.Second
)

// Redis caches JSON-encoded values with a per-key TTL. A zero or nil
// Redis is a valid pass-through cache.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger

	warned atomic.Bool
}

// NewRedis connects eagerly; any failure downgrades the cache to a
// pass-through instead of surfacing an error to the caller.
func NewRedis(cfg config.RedisConfig, logger zerolog.Logger) *Redis {
	r := &Redis{ttl: cfg.TTL, logger: logger}
	if r.ttl <= 0 {
		r.ttl = defaultTTL
	}
	if cfg.Host == "" {
		return r
	}

	client := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.Host, cfg.Port),
		Password: cfg.Password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), connectWait)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn().Err(err).Msg("redis unavailable, bypassing cache")
		_ = client.Close()
		return r
	}

	r.client = client
	return r
}

func (r *Redis) Close() error {
	if r.bypassed() {
		return nil
	}
	return r.client.Close()
}

func (r *Redis) bypassed() bool {
	return r == nil || r.client == nil
}

// warnOnce logs the first backend failure after a successful connect;
// later failures stay silent to keep the pipeline logs readable.
func (r *Redis) warnOnce(err error) {
	if r == nil {
		return
	}
	if r.warned.CompareAndSwap(false, true) {
		r.logger.Warn().Err(err).Msg("redis unavailable, bypassing cache")
	}
}

func (r *Redis) Ping(ctx context.Context) error {
	if r.bypassed() {
		return errors.New("redis unavailable")
	}
	return r.client.Ping(ctx).Err()
}

// GetJSON reports whether the key existed and decoded into out. A
// bypassed cache always misses.
func (r *Redis) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	if r.bypassed() {
		return false, nil
	}

	b, err := r.client.Get(ctx, key).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return false, nil
	case err != nil:
		r.warnOnce(err)
		return false, err
	case len(b) == 0:
		return false, nil
	}

	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON stores value under key. A non-positive ttl falls back to the
// configured default.
func (r *Redis) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	if r.bypassed() {
		return nil
	}
	if ttl <= 0 {
		ttl = r.ttl
	}

	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, key, b, ttl).Err(); err != nil {
		r.warnOnce(err)
		return err
	}
	return nil
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	if r.bypassed() {
		return nil
	}
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.warnOnce(err)
		return err
	}
	return nil
}
