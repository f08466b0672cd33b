package queries

import (
	"context"
	"time"

	"rental/internal/core/ports"
	"rental/internal/pkg/errs"

	"gorm.io/gorm"
)

// ListProductsQueryHandler serves catalog pages. Pages are cached per category and
// dropped by every product write and every stock change.
type ListProductsQueryHandler struct {
	db    *gorm.DB
	views cachedViews
}

func NewListProductsQueryHandler(db *gorm.DB, cache ports.ViewCache, ttl time.Duration) ListProductsQueryHandler {
	return ListProductsQueryHandler{db: db, views: newCachedViews(cache, ttl)}
}

// Handle returns rentable products, newest first.
func (h ListProductsQueryHandler) Handle(ctx context.Context, query ListProductsQuery) ([]ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	categoryKey := ""
	if query.CategoryID() != nil {
		categoryKey = query.CategoryID().String()
	}
	key := ports.CatalogViewKey(categoryKey)

	var cached []ProductResponse
	if h.views.load(ctx, key, &cached) {
		return cached, nil
	}

	stmt := productColumns + `
		WHERE p.is_rentable`
	args := make([]any, 0, 1)
	if query.CategoryID() != nil {
		stmt += ` AND p.category_id = ?`
		args = append(args, query.CategoryID().Bytes())
	}
	stmt += `
		ORDER BY p.created_at DESC, p.name`

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, errs.NewStorageError("read products", err)
	}
	defer rows.Close()

	products := make([]ProductResponse, 0)
	for rows.Next() {
		p, scanErr := scanProduct(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.NewStorageError("read products", err)
	}

	h.views.store(ctx, key, products)
	return products, nil
}
