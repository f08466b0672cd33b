package queries

import (
	"context"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type ListOrdersQueryHandler struct {
	orders orderReader
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{orders: newOrderReader(db)}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	actor := query.Actor()
	if err := actor.Authenticate(); err != nil {
		return nil, err
	}
	if !actor.IsAdmin() {
		return nil, errs.NewForbiddenError("list orders", "requires "+kernel.RoleAdmin.String())
	}

	filter := orderFilter{where: `o.status <> 'QUOTATION'`}
	if statuses := query.Statuses(); len(statuses) > 0 {
		names := make([]string, len(statuses))
		for i, s := range statuses {
			names[i] = s.String()
		}
		filter.where += ` AND o.status = ANY(?)`
		filter.args = append(filter.args, pq.Array(names))
	}

	return h.orders.find(ctx, filter)
}
