package queries

import (
	"errors"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/guard"
)

var ErrListProductsQueryIsNotConstructed = errors.New(
	"ListProductsQuery must be created via NewListProductsQuery constructor",
)

// ListProductsQuery lists rentable products, optionally within one category.
type ListProductsQuery struct {
	categoryID *kernel.UUID
	guard      guard.ConstructorGuard
}

// NewListProductsQuery lists the whole catalog when categoryID is nil.
func NewListProductsQuery(categoryID *kernel.UUID) ListProductsQuery {
	return ListProductsQuery{categoryID: categoryID, guard: guard.NewConstructorGuard()}
}

func (q ListProductsQuery) Validate() error {
	return q.guard.Validate(ErrListProductsQueryIsNotConstructed)
}

func (q ListProductsQuery) CategoryID() *kernel.UUID { return q.categoryID }
