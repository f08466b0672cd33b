package ports

import (
	"context"
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for rental order aggregates.
// Lines are stored together with their order; Add and Update persist the whole aggregate.
type OrderRepository interface {
	// Add persists a new order and its lines. Adding a second QUOTATION for the same
	// customer fails with ErrActiveQuotationExists.
	Add(ctx context.Context, aggregate *order.RentalOrder) error

	// Update persists the order row, upserts its lines and deletes lines no longer present.
	Update(ctx context.Context, aggregate *order.RentalOrder) error

	// Get retrieves an order with its lines.
	Get(ctx context.Context, id kernel.UUID) (*order.RentalOrder, error)

	// GetForUpdate is Get with the order row locked until the transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.RentalOrder, error)

	// FindActiveQuotation returns the customer's QUOTATION order, row-locked.
	// Returns errs.ErrObjectNotFound when the customer has no cart.
	FindActiveQuotation(ctx context.Context, customerID kernel.UUID) (*order.RentalOrder, error)

	// FindByLineID returns the order owning lineID, row-locked.
	FindByLineID(ctx context.Context, lineID kernel.UUID) (*order.RentalOrder, error)

	// ListOverdue returns PICKED_UP orders whose rental window ended before day.
	ListOverdue(ctx context.Context, day time.Time) ([]*order.RentalOrder, error)
}
