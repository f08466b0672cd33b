package queries

import (
	"errors"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/order"
	"rental/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery is the admin order board. Open carts are never listed.
//
// Example:
//
//	query, err := NewListOrdersQuery(admin, []string{"PENDING", "CONFIRMED"})
//	if err != nil {
//	    return err // unknown status name
//	}
//	orders, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	actor    kernel.Actor
	statuses []order.Status
	guard    guard.ConstructorGuard
}

// NewListOrdersQuery filters by status names; no names means every submitted order.
func NewListOrdersQuery(actor kernel.Actor, statuses []string) (ListOrdersQuery, error) {
	parsed := make([]order.Status, 0, len(statuses))
	for _, s := range statuses {
		status, err := order.ParseStatus(s)
		if err != nil {
			return ListOrdersQuery{}, err
		}
		parsed = append(parsed, status)
	}

	return ListOrdersQuery{actor: actor, statuses: parsed, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Actor() kernel.Actor      { return q.actor }
func (q ListOrdersQuery) Statuses() []order.Status { return q.statuses }
