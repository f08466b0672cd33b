package queries

import (
	"context"

	"rental/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetProductQueryHandler struct {
	db *gorm.DB
}

func NewGetProductQueryHandler(db *gorm.DB) GetProductQueryHandler {
	return GetProductQueryHandler{db: db}
}

// Handle returns the product whether or not it is currently rentable.
func (h GetProductQueryHandler) Handle(ctx context.Context, query GetProductQuery) (*ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(productColumns+`
		WHERE p.id = ?`, query.ProductID().Bytes()).Rows()
	if err != nil {
		return nil, errs.NewStorageError("read product", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, errs.NewStorageError("read product", err)
		}
		return nil, errs.NewObjectNotFoundError("product", query.ProductID().String())
	}

	p, err := scanProduct(rows)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
