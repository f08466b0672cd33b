package queries

import (
	"context"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListCategoriesQueryHandler struct {
	db *gorm.DB
}

func NewListCategoriesQueryHandler(db *gorm.DB) ListCategoriesQueryHandler {
	return ListCategoriesQueryHandler{db: db}
}

// Handle returns every category sorted by name.
func (h ListCategoriesQueryHandler) Handle(ctx context.Context, query ListCategoriesQuery) ([]CategoryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			slug,
			COALESCE(description, '')
		FROM categories
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, errs.NewStorageError("read categories", err)
	}
	defer rows.Close()

	categories := make([]CategoryResponse, 0)
	for rows.Next() {
		var (
			c  CategoryResponse
			id uuid.UUID
		)
		if err := rows.Scan(&id, &c.Name, &c.Slug, &c.Description); err != nil {
			return nil, errs.NewStorageError("scan category", err)
		}
		if c.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, errs.NewStorageError("read categories", err)
	}
	return categories, nil
}
