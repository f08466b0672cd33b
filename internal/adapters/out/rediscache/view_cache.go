// Package rediscache keeps rendered read models in Redis.
package rediscache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const scanBatch = 100

// ViewCache implements ports.ViewCache on any go-redis client.
type ViewCache struct {
	rdb redis.Cmdable
}

func NewViewCache(rdb redis.Cmdable) *ViewCache {
	return &ViewCache{rdb: rdb}
}

// Connect opens a client for addr and checks it answers.
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", addr, err)
	}
	return rdb, nil
}

func (c *ViewCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %s: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key. A zero ttl keeps the entry until it is invalidated.
func (c *ViewCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.rdb.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Invalidate deletes the given keys. Keys ending in "*" are matched with SCAN.
func (c *ViewCache) Invalidate(ctx context.Context, keys ...string) error {
	doomed := make([]string, 0, len(keys))
	for _, key := range keys {
		if !strings.HasSuffix(key, "*") {
			doomed = append(doomed, key)
			continue
		}

		matched, err := c.scan(ctx, key)
		if err != nil {
			return err
		}
		doomed = append(doomed, matched...)
	}

	if len(doomed) == 0 {
		return nil
	}
	if err := c.rdb.Del(ctx, doomed...).Err(); err != nil {
		return fmt.Errorf("delete %d cached views: %w", len(doomed), err)
	}
	return nil
}

func (c *ViewCache) scan(ctx context.Context, pattern string) ([]string, error) {
	var (
		cursor uint64
		keys   []string
	)
	for {
		batch, next, err := c.rdb.Scan(ctx, cursor, pattern, scanBatch).Result()
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", pattern, err)
		}
		keys = append(keys, batch...)

		cursor = next
		if cursor == 0 {
			return keys, nil
		}
	}
}
