package ports

import (
	"context"
	"time"
)

// ViewCache stores rendered read models (catalog pages, carts) between requests.
// A miss is reported as found == false with a nil error.
type ViewCache interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	ViewInvalidator
}

// ViewInvalidator drops cached views after a committed write made them stale.
type ViewInvalidator interface {
	Invalidate(ctx context.Context, keys ...string) error
}

// Cache keys shared by the read side (which fills them) and the write side (which drops them).
// Keys ending in "*" passed to Invalidate are patterns.
const (
	CatalogViewPattern = "views:catalog:*"
	CartViewPattern    = "views:cart:*"
	cartViewPrefix     = "views:cart:"
)

// CatalogViewKey is the cache key of the product listing filtered by categoryID ("" for all).
func CatalogViewKey(categoryID string) string {
	if categoryID == "" {
		categoryID = "all"
	}
	return "views:catalog:" + categoryID
}

// CartViewKey is the cache key of a customer's cart view.
func CartViewKey(customerID string) string {
	return cartViewPrefix + customerID
}
