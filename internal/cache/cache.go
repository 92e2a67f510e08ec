package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"travel_backend/internal/config"
	"travel_backend/internal/logger"

	"github.com/redis/go-redis/v9"
)

const (
	packagePrefix     = "page:package:"
	destinationPrefix = "page:destination:"
)

func PackageKey(slug string) string     { return packagePrefix + slug }
func DestinationKey(slug string) string { return destinationPrefix + slug }

// PageCache stores rendered public payloads keyed by page.
type PageCache interface {
	// Get decodes the cached value into dst and reports whether it was present.
	Get(ctx context.Context, key string, dst interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, keys ...string) error
}

// RedisPageCache keeps JSON-encoded payloads in redis with a fixed TTL.
type RedisPageCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisPageCache(client *redis.Client, ttl time.Duration) *RedisPageCache {
	return &RedisPageCache{client: client, ttl: ttl}
}

func (c *RedisPageCache) Get(ctx context.Context, key string, dst interface{}) (bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache get %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		// a payload from an older shape; treat as a miss and let Set overwrite it
		return false, nil
	}
	return true, nil
}

func (c *RedisPageCache) Set(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", key, err)
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

func (c *RedisPageCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// NoopCache is used when no redis address is configured.
type NoopCache struct{}

func (NoopCache) Get(context.Context, string, interface{}) (bool, error) { return false, nil }
func (NoopCache) Set(context.Context, string, interface{}) error { return nil }
func (NoopCache) Delete(context.Context, ...string) error { return nil }

// NewPageCache picks the redis cache when cfg.Redis.Addr is set. The client
// is returned so the caller can close it on shutdown; it is nil for NoopCache.
func NewPageCache(ctx context.Context, cfg *config.Config) (PageCache, *redis.Client) {
	if cfg.Redis.Addr == "" {
		logger.Info("Redis address not set, page cache disabled")
		return NoopCache{}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		// the site works without the cache; pages are just served from the database
		logger.Warn("Redis unavailable, page cache disabled", "addr", cfg.Redis.Addr, "error", err.Error())
		_ = client.Close()
		return NoopCache{}, nil
	}

	logger.Info("Redis page cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.CacheTTL().String())
	return NewRedisPageCache(client, cfg.CacheTTL()), client
}
