package queries

import (
	"context"
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/order"
	"rental/internal/core/domain/services"
	"rental/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderResponse is a submitted order as shown on order boards. Total is the stored
// Σ price × quantity; Estimate is Total scaled by the rental days.
type OrderResponse struct {
	ID            kernel.UUID
	CustomerID    kernel.UUID
	CustomerName  string
	CustomerEmail string
	Status        order.Status
	StartDate     time.Time
	EndDate       time.Time
	Days          int
	Total         kernel.Money
	Estimate      kernel.Money
	CreatedAt     time.Time
	Lines         []OrderLineResponse
}

type OrderLineResponse struct {
	LineID      kernel.UUID
	ProductID   kernel.UUID
	ProductName string
	Quantity    int
	Price       kernel.Money
	Subtotal    kernel.Money
}

// orderFilter narrows the orders read by orderReader. where is appended to the
// order select and may reference rental_orders as o. When vendorID is set only the
// lines of that vendor's products are returned. A positive limit keeps the newest orders.
type orderFilter struct {
	where    string
	args     []any
	vendorID *uuid.UUID
	limit    int
}

type orderReader struct {
	db     *gorm.DB
	pricer services.RentalPricer
}

func newOrderReader(db *gorm.DB) orderReader {
	return orderReader{db: db, pricer: services.NewRentalPricer()}
}

// find returns matching orders newest first, each with its lines in cart order.
func (r orderReader) find(ctx context.Context, filter orderFilter) ([]OrderResponse, error) {
	orders, ids, err := r.findOrders(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	lines, err := r.findLines(ctx, ids, filter.vendorID)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		orders[i].Lines = lines[ids[i]]
		if orders[i].Lines == nil {
			orders[i].Lines = make([]OrderLineResponse, 0)
		}
	}
	return orders, nil
}

func (r orderReader) findOrders(ctx context.Context, filter orderFilter) ([]OrderResponse, []uuid.UUID, error) {
	stmt := `
		SELECT
			o.id,
			o.customer_id,
			COALESCE(u.name, ''),
			COALESCE(u.email, ''),
			o.status,
			o.start_date,
			o.end_date,
			o.total_amount,
			o.created_at
		FROM rental_orders o
		LEFT JOIN users u ON u.id = o.customer_id
		WHERE ` + filter.where + `
		ORDER BY o.created_at DESC`
	args := filter.args
	if filter.limit > 0 {
		stmt += `
		LIMIT ?`
		args = append(args[:len(args):len(args)], filter.limit)
	}

	rows, err := r.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, nil, errs.NewStorageError("read orders", err)
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var (
			o              OrderResponse
			id, customerID uuid.UUID
			status         string
			start, end     time.Time
			total          decimal.Decimal
		)
		err = rows.Scan(&id, &customerID, &o.CustomerName, &o.CustomerEmail, &status, &start, &end, &total, &o.CreatedAt)
		if err != nil {
			return nil, nil, errs.NewStorageError("scan order", err)
		}

		if o.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, nil, err
		}
		if o.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, nil, err
		}
		if o.Status, err = order.ParseStatus(status); err != nil {
			return nil, nil, err
		}
		period, periodErr := kernel.NewDateRange(start, end)
		if periodErr != nil {
			return nil, nil, periodErr
		}
		if o.Total, err = kernel.NewMoney(total); err != nil {
			return nil, nil, err
		}
		o.StartDate, o.EndDate, o.Days = period.Start(), period.End(), period.Days()
		o.Estimate = r.pricer.EstimateAmount(o.Total, period)

		orders = append(orders, o)
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, nil, errs.NewStorageError("read orders", err)
	}
	return orders, ids, nil
}

func (r orderReader) findLines(
	ctx context.Context,
	orderIDs []uuid.UUID,
	vendorID *uuid.UUID,
) (map[uuid.UUID][]OrderLineResponse, error) {
	stmt := `
		SELECT
			l.order_id,
			l.id,
			l.product_id,
			p.name,
			l.quantity,
			l.price
		FROM order_lines l
		JOIN products p ON p.id = l.product_id
		WHERE l.order_id IN ?`
	args := []any{orderIDs}
	if vendorID != nil {
		stmt += ` AND p.vendor_id = ?`
		args = append(args, *vendorID)
	}
	stmt += `
		ORDER BY l.order_id, l.position`

	rows, err := r.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, errs.NewStorageError("read order lines", err)
	}
	defer rows.Close()

	lines := make(map[uuid.UUID][]OrderLineResponse, len(orderIDs))
	for rows.Next() {
		var (
			line                       OrderLineResponse
			orderID, lineID, productID uuid.UUID
			price                      decimal.Decimal
		)
		if err := rows.Scan(&orderID, &lineID, &productID, &line.ProductName, &line.Quantity, &price); err != nil {
			return nil, errs.NewStorageError("scan order line", err)
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

		lines[orderID] = append(lines[orderID], line)
	}

	if err := rows.Err(); err != nil {
		return nil, errs.NewStorageError("read order lines", err)
	}
	return lines, nil
}
