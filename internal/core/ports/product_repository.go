package ports

import (
	"context"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for catalog products.
type ProductRepository interface {
	Add(ctx context.Context, aggregate *product.Product) error
	Update(ctx context.Context, aggregate *product.Product) error
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetForUpdate loads the product and row-locks it until the transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetManyForUpdate loads and row-locks the given products in id order,
	// so concurrent stock adjustments cannot deadlock.
	GetManyForUpdate(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error)

	// Delete removes a product. Fails with ErrProductIsReferenced when any order line uses it.
	Delete(ctx context.Context, id kernel.UUID) error
}

// CategoryRepository defines the persistence contract for catalog categories.
type CategoryRepository interface {
	Get(ctx context.Context, id kernel.UUID) (*product.Category, error)

	// UpsertBySlug inserts the category or updates the one with the same slug.
	UpsertBySlug(ctx context.Context, category *product.Category) error
}
