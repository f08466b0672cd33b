package orderrepo

import (
	"context"
	"errors"
	"time"

	"rental/internal/adapters/out/postgres/pgerr"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/order"
	"rental/internal/core/ports"
	"rental/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the order together with its lines.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.RentalOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err) {
			return ports.ErrActiveQuotationExists
		}
		return errs.NewStorageError("add rental order", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the order row, drops removed lines and upserts the rest.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.RentalOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&RentalOrderDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"status":       dto.Status,
		"start_date":   dto.StartDate,
		"end_date":     dto.EndDate,
		"total_amount": dto.TotalAmount,
	})
	if result.Error != nil {
		if pgerr.IsUniqueViolation(result.Error) {
			return ports.ErrActiveQuotationExists
		}
		return errs.NewStorageError("update rental order", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("rentalOrder", aggregate.ID().String())
	}

	keep := make([]uuid.UUID, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		keep = append(keep, l.ID)
	}

	stale := db.Where("order_id = ?", dto.ID)
	if len(keep) > 0 {
		stale = stale.Where("id NOT IN ?", keep)
	}
	if err := stale.Delete(&OrderLineDTO{}).Error; err != nil {
		return errs.NewStorageError("delete order lines", err)
	}

	if len(dto.Lines) > 0 {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"quantity", "price", "position"}),
		}).Create(&dto.Lines).Error
		if err != nil {
			return errs.NewStorageError("save order lines", err)
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.RentalOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(r.db.WithContext(ctx), "rentalOrder", id.String(), "id = ?", id.Bytes())
}

func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.RentalOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(r.locked(ctx), "rentalOrder", id.String(), "id = ?", id.Bytes())
}

func (r *GormOrderRepository) FindActiveQuotation(
	ctx context.Context,
	customerID kernel.UUID,
) (*order.RentalOrder, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}
	return r.first(r.locked(ctx), "quotation", customerID.String(),
		"customer_id = ? AND status = ?", customerID.Bytes(), order.Quotation.String())
}

func (r *GormOrderRepository) FindByLineID(ctx context.Context, lineID kernel.UUID) (*order.RentalOrder, error) {
	if err := lineID.Validate(); err != nil {
		return nil, err
	}

	var line OrderLineDTO
	err := r.db.WithContext(ctx).Select("order_id").First(&line, "id = ?", lineID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderLine", lineID.String())
		}
		return nil, errs.NewStorageError("find order line", err)
	}

	return r.first(r.locked(ctx), "orderLine", lineID.String(), "id = ?", line.OrderID)
}

func (r *GormOrderRepository) ListOverdue(ctx context.Context, day time.Time) ([]*order.RentalOrder, error) {
	var dtos []RentalOrderDTO
	err := r.db.WithContext(ctx).
		Preload("Lines", byPosition).
		Where("status = ? AND end_date < ?", order.PickedUp.String(), day.UTC().Format(time.DateOnly)).
		Order("end_date, id").
		Find(&dtos).Error
	if err != nil {
		return nil, errs.NewStorageError("list overdue orders", err)
	}

	orders := make([]*order.RentalOrder, 0, len(dtos))
	for _, dto := range dtos {
		o, mapErr := toDomain(dto)
		if mapErr != nil {
			return nil, mapErr
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (r *GormOrderRepository) locked(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"})
}

func (r *GormOrderRepository) first(db *gorm.DB, param, key string, query string, args ...any) (*order.RentalOrder, error) {
	var dto RentalOrderDTO
	if err := db.Preload("Lines", byPosition).Where(query, args...).First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(param, key)
		}
		return nil, errs.NewStorageError("get rental order", err)
	}
	return toDomain(dto)
}

func byPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position, id")
}
