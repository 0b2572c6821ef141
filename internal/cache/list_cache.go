package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/skillbridge-bd/institute-backend/internal/config"
)

// ListCache stores rendered public listings per collection.
// Get reports a miss with ok=false and a nil error.
//
// Writers call Invalidate, which bumps the collection generation. A reader
// that missed takes Generation before loading and passes it to Set; Set drops
// the value when an invalidation happened in between.
type ListCache interface {
	Get(ctx context.Context, collection string, dst any) (ok bool, err error)
	Generation(ctx context.Context, collection string) (int64, error)
	Set(ctx context.Context, collection string, gen int64, value any) error
	Invalidate(ctx context.Context, collection string) error
}

// RedisListCache keeps listings as JSON strings with a fixed TTL.
type RedisListCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisListCache creates a RedisListCache.
func NewRedisListCache(rdb *redis.Client, ttl time.Duration) *RedisListCache {
	return &RedisListCache{rdb: rdb, ttl: ttl}
}

// Get decodes the cached listing into dst.
func (c *RedisListCache) Get(ctx context.Context, collection string, dst any) (bool, error) {
	raw, err := c.rdb.Get(ctx, config.CacheKey.PublicListKey(collection)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("get %s listing: %w", collection, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("decode %s listing: %w", collection, err)
	}
	return true, nil
}

// Generation returns the invalidation counter of a collection, 0 if never bumped.
func (c *RedisListCache) Generation(ctx context.Context, collection string) (int64, error) {
	return c.generation(ctx, c.rdb, collection)
}

func (c *RedisListCache) generation(ctx context.Context, cmd redis.Cmdable, collection string) (int64, error) {
	gen, err := cmd.Get(ctx, config.CacheKey.PublicListGenKey(collection)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get %s generation: %w", collection, err)
	}
	return gen, nil
}

// Set stores the listing only while the generation still equals gen. The
// generation key is watched, so an Invalidate racing the write aborts it.
func (c *RedisListCache) Set(ctx context.Context, collection string, gen int64, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s listing: %w", collection, err)
	}

	genKey := config.CacheKey.PublicListGenKey(collection)
	err = c.rdb.Watch(ctx, func(tx *redis.Tx) error {
		current, err := c.generation(ctx, tx, collection)
		if err != nil {
			return err
		}
		if current != gen {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, config.CacheKey.PublicListKey(collection), raw, c.ttl)
			return nil
		})
		return err
	}, genKey)
	if errors.Is(err, redis.TxFailedErr) {
		return nil
	}
	return err
}

// Invalidate bumps the generation and drops the cached listing.
func (c *RedisListCache) Invalidate(ctx context.Context, collection string) error {
	_, err := c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, config.CacheKey.PublicListGenKey(collection))
		pipe.Del(ctx, config.CacheKey.PublicListKey(collection))
		return nil
	})
	return err
}

// Nop is used when Redis is not configured. Every read misses and every
// write is dropped.
type Nop struct{}

func (Nop) Get(context.Context, string, any) (bool, error)    { return false, nil }
func (Nop) Generation(context.Context, string) (int64, error) { return 0, nil }
func (Nop) Set(context.Context, string, int64, any) error     { return nil }
func (Nop) Invalidate(context.Context, string) error          { return nil }
