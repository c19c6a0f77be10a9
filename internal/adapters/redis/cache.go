package redisad

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"property_listing/internal/adapters/observability"
)

// Prefix namespaces every key this cache touches.
const Prefix = "listing:"

// Cache is a JSON read-through cache over a single Redis client.
type Cache struct{ c *redis.Client }

func New(addr, pass string, db int) *Cache {
	return &Cache{c: redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     pass,
		DB:           db,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})}
}

func (r *Cache) Ping(ctx context.Context) error { return r.c.Ping(ctx).Err() }

func (r *Cache) Close() error { return r.c.Close() }

// Get decodes the cached value into dst. A missing key is (false, nil);
// an undecodable one is (false, err) so callers fall through to the source.
func (r *Cache) Get(ctx context.Context, key string, dst any) (bool, error) {
	raw, err := r.c.Get(ctx, Prefix+key).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		observability.ObserveCache("redis", "miss")
		return false, nil
	case err != nil:
		observability.ObserveCache("redis", "error")
		return false, fmt.Errorf("redis get %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		observability.ObserveCache("redis", "error")
		return false, fmt.Errorf("redis decode %s: %w", key, err)
	}
	observability.ObserveCache("redis", "hit")
	return true, nil
}

// Set stores v as JSON. ttlSec <= 0 keeps the key until it is deleted.
func (r *Cache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("redis encode %s: %w", key, err)
	}
	var ttl time.Duration
	if ttlSec > 0 {
		ttl = time.Duration(ttlSec) * time.Second
	}
	if err := r.c.Set(ctx, Prefix+key, b, ttl).Err(); err != nil {
		observability.ObserveCache("redis", "error")
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	observability.ObserveCache("redis", "set")
	return nil
}

func (r *Cache) Del(ctx context.Context, key string) error {
	if err := r.c.Del(ctx, Prefix+key).Err(); err != nil {
		observability.ObserveCache("redis", "error")
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	observability.ObserveCache("redis", "del")
	return nil
}
