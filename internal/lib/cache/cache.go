// Package cache is a small Redis-backed byte cache used for read-mostly data.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache stores encoded values under string keys with a fixed TTL.
type Cache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func New(client redis.Cmdable, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Get returns the cached value. A missing key is reported as ok=false with a nil error.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get cache key %s: %w", key, err)
	}
	return val, true, nil
}

func (c *Cache) Set(ctx context.Context, key string, value []byte) error {
	if err := c.client.Set(ctx, key, string(value), c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set cache key %s: %w", key, err)
	}
	return nil
}

// CatalogKey builds catalog:<resource>, or catalog:<resource>:salon=<id>
// for a salon-scoped lookup.
func CatalogKey(resource string, salonID int) string {
	if salonID == 0 {
		return "catalog:" + resource
	}
	return fmt.Sprintf("catalog:%s:salon=%d", resource, salonID)
}
