package rediscache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/healthtrack-backend/internal/pkg/logger"
)

// Cache is a small read-through cache in front of the dashboard surfaces
// (summary, recent readings). Misses and redis errors are equivalent: the
// caller recomputes from storage.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) bool
	SetJSON(ctx context.Context, key string, val any, ttl time.Duration)
	Invalidate(ctx context.Context, keys ...string)
	Close() error
}

type cache struct {
	log *logger.Logger
	rdb *goredis.Client
}

// New connects to redis at REDIS_ADDR. Callers treat a nil Cache as
// "caching disabled".
func New(log *logger.Logger) (Cache, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}

	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &cache{log: log.With("service", "RedisCache"), rdb: rdb}, nil
}

func (c *cache) GetJSON(ctx context.Context, key string, out any) bool {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != goredis.Nil {
			c.log.Warn("Redis get failed", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		c.log.Warn("Cached payload unreadable, dropping", "key", key, "error", err)
		_ = c.rdb.Del(ctx, key).Err()
		return false
	}
	return true
}

func (c *cache) SetJSON(ctx context.Context, key string, val any, ttl time.Duration) {
	raw, err := json.Marshal(val)
	if err != nil {
		c.log.Warn("Cache marshal failed", "key", key, "error", err)
		return
	}
	if err := c.rdb.Set(ctx, key, raw, ttl).Err(); err != nil {
		c.log.Warn("Redis set failed", "key", key, "error", err)
	}
}

func (c *cache) Invalidate(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.log.Warn("Redis del failed", "keys", keys, "error", err)
	}
}

func (c *cache) Close() error {
	return c.rdb.Close()
}
