package productrepo

import (
	"bytes"
	"context"
	"errors"
	"slices"

	"rental/internal/adapters/out/postgres/pgerr"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/product"
	"rental/internal/core/ports"
	"rental/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProductRepository implements ports.ProductRepository using GORM.
type GormProductRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormProductRepository(db *gorm.DB, tracker aggregateTracker) *GormProductRepository {
	return &GormProductRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormProductRepository) Add(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsForeignKeyViolation(err) {
			return errs.NewObjectNotFoundErrorWithCause("category", aggregate.Details().CategoryID.String(), err)
		}
		return errs.NewStorageError("add product", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes every column, so false and empty values are persisted too.
func (r *GormProductRepository) Update(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "vendor_id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		if pgerr.IsForeignKeyViolation(result.Error) {
			return errs.NewObjectNotFoundErrorWithCause(
				"category", aggregate.Details().CategoryID.String(), result.Error)
		}
		return errs.NewStorageError("update product", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, errs.NewStorageError("get product", err)
	}

	return toDomain(dto)
}

// GetForUpdate locks the row so stock reserved by a concurrent status change
// is not overwritten by a catalog edit.
func (r *GormProductRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, errs.NewStorageError("lock product", err)
	}

	return toDomain(dto)
}

// GetManyForUpdate returns the products in id order. A missing id is reported as not found.
func (r *GormProductRepository) GetManyForUpdate(
	ctx context.Context,
	ids []kernel.UUID,
) ([]*product.Product, error) {
	if len(ids) == 0 {
		return []*product.Product{}, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}
	slices.SortFunc(raw, func(a, b uuid.UUID) int {
		return bytes.Compare(a[:], b[:])
	})
	raw = slices.Compact(raw)

	var dtos []ProductDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id IN ?", raw).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, errs.NewStorageError("lock products", err)
	}

	products := make([]*product.Product, 0, len(dtos))
	found := make(map[uuid.UUID]struct{}, len(dtos))
	for _, dto := range dtos {
		p, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		found[dto.ID] = struct{}{}
		products = append(products, p)
	}

	for _, id := range raw {
		if _, ok := found[id]; !ok {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
	}

	return products, nil
}

// Delete removes the product row. Order lines reference products with ON DELETE RESTRICT,
// so a referenced product surfaces as ports.ErrProductIsReferenced.
func (r *GormProductRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ProductDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		if pgerr.IsForeignKeyViolation(result.Error) {
			return ports.ErrProductIsReferenced
		}
		return errs.NewStorageError("delete product", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", id.String())
	}

	return nil
}
