package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListCustomerOrdersQueryHandler struct {
	orders orderReader
}

func NewListCustomerOrdersQueryHandler(db *gorm.DB) ListCustomerOrdersQueryHandler {
	return ListCustomerOrdersQueryHandler{orders: newOrderReader(db)}
}

func (h ListCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListCustomerOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	actor := query.Actor()
	if err := actor.Authenticate(); err != nil {
		return nil, err
	}

	return h.orders.find(ctx, orderFilter{
		where: `o.customer_id = ? AND o.status <> 'QUOTATION'`,
		args:  []any{actor.ID().Bytes()},
	})
}
