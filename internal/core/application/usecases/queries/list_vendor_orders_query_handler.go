package queries

import (
	"context"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"

	"gorm.io/gorm"
)

type ListVendorOrdersQueryHandler struct {
	orders orderReader
}

func NewListVendorOrdersQueryHandler(db *gorm.DB) ListVendorOrdersQueryHandler {
	return ListVendorOrdersQueryHandler{orders: newOrderReader(db)}
}

func (h ListVendorOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListVendorOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	actor := query.Actor()
	if err := actor.Authenticate(); err != nil {
		return nil, err
	}
	if !actor.IsVendor() {
		return nil, errs.NewForbiddenError("list vendor orders", "requires "+kernel.RoleVendor.String())
	}

	vendorID := actor.ID().Bytes()
	return h.orders.find(ctx, orderFilter{
		where: `o.status <> 'QUOTATION' AND EXISTS (
			SELECT 1
			FROM order_lines vl
			JOIN products vp ON vp.id = vl.product_id
			WHERE vl.order_id = o.id AND vp.vendor_id = ?
		)`,
		args:     []any{vendorID},
		vendorID: &vendorID,
	})
}
