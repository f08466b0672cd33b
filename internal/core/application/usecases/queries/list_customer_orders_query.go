package queries

import (
	"errors"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/guard"
)

var ErrListCustomerOrdersQueryIsNotConstructed = errors.New(
	"ListCustomerOrdersQuery must be created via NewListCustomerOrdersQuery constructor",
)

// ListCustomerOrdersQuery is the actor's order history. The open cart is not part of it.
type ListCustomerOrdersQuery struct {
	actor kernel.Actor
	guard guard.ConstructorGuard
}

func NewListCustomerOrdersQuery(actor kernel.Actor) ListCustomerOrdersQuery {
	return ListCustomerOrdersQuery{actor: actor, guard: guard.NewConstructorGuard()}
}

func (q ListCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListCustomerOrdersQueryIsNotConstructed)
}

func (q ListCustomerOrdersQuery) Actor() kernel.Actor { return q.actor }
