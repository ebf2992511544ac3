package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"seat-redeem/internal/pkg/config"
	"seat-redeem/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

// RedisCache is a best-effort cache; lookups that fail behave like misses.
type RedisCache struct {
	rdb *redis.Client
}

func NewRedisCache(rdb *redis.Client) *RedisCache {
	return &RedisCache{rdb: rdb}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("cache get failed", "key", key, "error", err)
		}
		return nil, false
	}
	return val, true
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.rdb.Set(ctx, key, value, ttl).Err()
}

func (c *RedisCache) Incr(ctx context.Context, key string) (int64, error) {
	return c.rdb.Incr(ctx, key).Result()
}

type noopCache struct{}

func (noopCache) Get(context.Context, string) ([]byte, bool) { return nil, false }
func (noopCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (noopCache) Incr(context.Context, string) (int64, error) { return 0, nil }

func NewNoopCache() shared.Cache {
	return noopCache{}
}

// Connect returns a disabled cache when no address is configured.
func Connect(ctx context.Context, cfg config.RedisConfig) (shared.Cache, func(), error) {
	if cfg.Addr == "" {
		slog.Info("redis not configured, listing cache disabled")
		return NewNoopCache(), func() {}, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, nil, err
	}

	cleanup := func() {
		if err := rdb.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err)
		}
	}
	return NewRedisCache(rdb), cleanup, nil
}
