package queries

import (
	"context"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type AdminStatsQueryHandler struct {
	db     *gorm.DB
	orders orderReader
}

func NewAdminStatsQueryHandler(db *gorm.DB) AdminStatsQueryHandler {
	return AdminStatsQueryHandler{db: db, orders: newOrderReader(db)}
}

func (h AdminStatsQueryHandler) Handle(ctx context.Context, query AdminStatsQuery) (*AdminStatsResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	actor := query.Actor()
	if err := actor.Authenticate(); err != nil {
		return nil, err
	}
	if !actor.IsAdmin() {
		return nil, errs.NewForbiddenError("read stats", "requires "+kernel.RoleAdmin.String())
	}

	var (
		stats   AdminStatsResponse
		revenue decimal.Decimal
	)
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM users WHERE UPPER(role) = 'VENDOR'),
			(SELECT COUNT(*) FROM users WHERE UPPER(role) = 'CUSTOMER'),
			(SELECT COUNT(*) FROM products),
			(SELECT COUNT(*) FROM rental_orders WHERE status <> 'QUOTATION'),
			(SELECT COALESCE(SUM(total_amount), 0)
			   FROM rental_orders
			  WHERE status NOT IN ('QUOTATION', 'CANCELLED'))
	`).Row().Scan(&stats.Users, &stats.Vendors, &stats.Customers, &stats.Products, &stats.Orders, &revenue)
	if err != nil {
		return nil, errs.NewStorageError("read stats", err)
	}
	if stats.Revenue, err = kernel.NewMoney(revenue); err != nil {
		return nil, err
	}

	stats.RecentOrders, err = h.orders.find(ctx, orderFilter{
		where: `o.status <> 'QUOTATION'`,
		limit: recentOrdersLimit,
	})
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
