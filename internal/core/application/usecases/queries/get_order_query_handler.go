package queries

import (
	"context"

	"rental/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	orders orderReader
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: newOrderReader(db)}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	actor := query.Actor()
	if err := actor.Authenticate(); err != nil {
		return nil, err
	}

	orders, err := h.orders.find(ctx, orderFilter{
		where: `o.id = ?`,
		args:  []any{query.OrderID().Bytes()},
	})
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	o := orders[0]
	if !actor.IsAdmin() && !actor.Is(o.CustomerID) {
		return nil, errs.NewForbiddenError("view order", "only an admin or the owner may view it")
	}
	return &o, nil
}
