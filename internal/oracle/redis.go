package oracle

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig configures the shared evaluation cache.
type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string // Default: "gradex:oracle:"
	TTL       time.Duration
}

// RedisCache backs the oracle cache with Redis so multiple processes
// share one result set. Lookup failures degrade to cache misses; the
// cache must never take down an evaluation.
type RedisCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisCache(cfg RedisConfig) *RedisCache {
	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = "gradex:oracle:"
	}
	return &RedisCache{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
		prefix: prefix,
		ttl:    cfg.TTL,
	}
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, bool) {
	val, err := c.client.Get(ctx, c.prefix+key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			fmt.Fprintf(os.Stderr, "warning: oracle cache get failed: %v\n", err)
		}
		return "", false
	}
	return val, true
}

func (c *RedisCache) Set(ctx context.Context, key, value string) {
	if err := c.client.Set(ctx, c.prefix+key, value, c.ttl).Err(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: oracle cache set failed: %v\n", err)
	}
}

// Ping verifies connectivity; useful at startup to fall back to the
// in-memory cache early.
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}
