// Package categoryrepo persists catalog categories.
package categoryrepo

import (
	"context"
	"errors"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/product"
	"rental/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CategoryDTO is the categories row. Slug is unique and drives upserts.
type CategoryDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Slug        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Description string    `gorm:"type:text"`
}

func (CategoryDTO) TableName() string {
	return "categories"
}

type GormCategoryRepository struct {
	db *gorm.DB
}

func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

func (r *GormCategoryRepository) Get(ctx context.Context, id kernel.UUID) (*product.Category, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CategoryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("category", id.String())
		}
		return nil, errs.NewStorageError("get category", err)
	}

	return toDomain(dto)
}

// UpsertBySlug inserts the category, or refreshes name and description of the row with
// the same slug. The existing row keeps its id.
func (r *GormCategoryRepository) UpsertBySlug(ctx context.Context, category *product.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	dto := CategoryDTO{
		ID:          category.ID().Bytes(),
		Name:        category.Name(),
		Slug:        category.Slug(),
		Description: category.Description(),
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "description"}),
	}).Create(&dto).Error
	if err != nil {
		return errs.NewStorageError("upsert category", err)
	}

	return nil
}

func toDomain(dto CategoryDTO) (*product.Category, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return product.RestoreCategory(id, dto.Name, dto.Slug, dto.Description)
}
