package queries

import (
	"context"
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/services"
	"rental/internal/core/ports"
	"rental/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetCartQueryHandler reads the cart view, serving it from the view cache when possible.
// Cart writes drop the cached entry after commit. A read that raced such a write may
// still store the older cart, so cart entries live at most maxCartViewTTL.
type GetCartQueryHandler struct {
	db     *gorm.DB
	views  cachedViews
	pricer services.RentalPricer
	now    func() time.Time
}

// maxCartViewTTL bounds how long a cart view stored by a racing read can be served.
const maxCartViewTTL = 30 * time.Second

func NewGetCartQueryHandler(db *gorm.DB, cache ports.ViewCache, ttl time.Duration) GetCartQueryHandler {
	if ttl <= 0 || ttl > maxCartViewTTL {
		ttl = maxCartViewTTL
	}
	return GetCartQueryHandler{
		db:     db,
		views:  newCachedViews(cache, ttl),
		pricer: services.NewRentalPricer(),
		now:    time.Now,
	}
}

func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (*GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	actor := query.Actor()
	if err := actor.Authenticate(); err != nil {
		return nil, err
	}

	key := ports.CartViewKey(actor.ID().String())
	var cached GetCartQueryResponse
	if h.views.load(ctx, key, &cached) {
		return &cached, nil
	}

	cart, err := h.read(ctx, actor.ID())
	if err != nil {
		return nil, err
	}

	h.views.store(ctx, key, cart)
	return cart, nil
}

func (h GetCartQueryHandler) read(ctx context.Context, customerID kernel.UUID) (*GetCartQueryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			start_date,
			end_date,
			total_amount
		FROM rental_orders
		WHERE customer_id = ? AND status = 'QUOTATION'
	`, customerID.Bytes()).Rows()
	if err != nil {
		return nil, errs.NewStorageError("read cart", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, errs.NewStorageError("read cart", err)
		}
		return h.emptyCart(), nil
	}

	var (
		id         uuid.UUID
		start, end time.Time
		total      decimal.Decimal
	)
	if err := rows.Scan(&id, &start, &end, &total); err != nil {
		return nil, errs.NewStorageError("scan cart", err)
	}
	rows.Close()

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	period, err := kernel.NewDateRange(start, end)
	if err != nil {
		return nil, err
	}
	amount, err := kernel.NewMoney(total)
	if err != nil {
		return nil, err
	}

	lines, err := h.readLines(ctx, id)
	if err != nil {
		return nil, err
	}

	return &GetCartQueryResponse{
		OrderID:   &orderID,
		StartDate: period.Start(),
		EndDate:   period.End(),
		Days:      period.Days(),
		Total:     amount,
		Estimate:  h.pricer.EstimateAmount(amount, period),
		Lines:     lines,
	}, nil
}

func (h GetCartQueryHandler) readLines(ctx context.Context, orderID uuid.UUID) ([]CartLineResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			l.id,
			l.product_id,
			p.name,
			COALESCE(p.image, ''),
			l.quantity,
			l.price
		FROM order_lines l
		JOIN products p ON p.id = l.product_id
		WHERE l.order_id = ?
		ORDER BY l.position
	`, orderID).Rows()
	if err != nil {
		return nil, errs.NewStorageError("read cart lines", err)
	}
	defer rows.Close()

	lines := make([]CartLineResponse, 0)
	for rows.Next() {
		var (
			line              CartLineResponse
			lineID, productID uuid.UUID
			price             decimal.Decimal
		)
		if err := rows.Scan(&lineID, &productID, &line.ProductName, &line.Image, &line.Quantity, &price); err != nil {
			return nil, errs.NewStorageError("scan cart line", err)
		}

		if line.LineID, err = kernel.UUIDFromBytes(lineID[:]); err != nil {
			return nil, err
		}
		if line.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return nil, err
		}
		if line.Price, err = kernel.NewMoney(price); err != nil {
			return nil, err
		}
		line.Subtotal = line.Price.Times(line.Quantity)

		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		return nil, errs.NewStorageError("read cart lines", err)
	}
	return lines, nil
}

func (h GetCartQueryHandler) emptyCart() *GetCartQueryResponse {
	period := kernel.DefaultDateRange(h.now())
	return &GetCartQueryResponse{
		StartDate: period.Start(),
		EndDate:   period.End(),
		Days:      period.Days(),
		Total:     kernel.ZeroMoney(),
		Estimate:  kernel.ZeroMoney(),
		Lines:     make([]CartLineResponse, 0),
	}
}
