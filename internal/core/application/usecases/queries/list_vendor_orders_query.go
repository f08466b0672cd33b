package queries

import (
	"errors"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/guard"
)

var ErrListVendorOrdersQueryIsNotConstructed = errors.New(
	"ListVendorOrdersQuery must be created via NewListVendorOrdersQuery constructor",
)

// ListVendorOrdersQuery lists submitted orders that rent at least one of the vendor's
// products. Each order only carries the vendor's own lines.
type ListVendorOrdersQuery struct {
	actor kernel.Actor
	guard guard.ConstructorGuard
}

func NewListVendorOrdersQuery(actor kernel.Actor) ListVendorOrdersQuery {
	return ListVendorOrdersQuery{actor: actor, guard: guard.NewConstructorGuard()}
}

func (q ListVendorOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListVendorOrdersQueryIsNotConstructed)
}

func (q ListVendorOrdersQuery) Actor() kernel.Actor { return q.actor }
