package queries

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"rental/internal/core/ports"
)

// cachedViews reads and fills the shared view cache. A nil cache disables caching.
// Cache failures are logged and the query falls back to the database.
type cachedViews struct {
	cache  ports.ViewCache
	ttl    time.Duration
	logger *slog.Logger
}

func newCachedViews(cache ports.ViewCache, ttl time.Duration) cachedViews {
	return cachedViews{
		cache:  cache,
		ttl:    ttl,
		logger: slog.Default().With("component", "view-cache"),
	}
}

func (c cachedViews) load(ctx context.Context, key string, dst any) bool {
	if c.cache == nil {
		return false
	}

	raw, found, err := c.cache.Get(ctx, key)
	if err != nil {
		c.logger.WarnContext(ctx, "cache read failed", "key", key, "error", err)
		return false
	}
	if !found {
		return false
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		c.logger.WarnContext(ctx, "cached view is unreadable", "key", key, "error", err)
		return false
	}
	return true
}

func (c cachedViews) store(ctx context.Context, key string, view any) {
	if c.cache == nil {
		return
	}

	raw, err := json.Marshal(view)
	if err != nil {
		c.logger.WarnContext(ctx, "view is not cacheable", "key", key, "error", err)
		return
	}
	if err := c.cache.Set(ctx, key, raw, c.ttl); err != nil {
		c.logger.WarnContext(ctx, "cache write failed", "key", key, "error", err)
	}
}
