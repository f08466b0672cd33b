package queries

import (
	"errors"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/guard"
)

var ErrAdminStatsQueryIsNotConstructed = errors.New(
	"AdminStatsQuery must be created via NewAdminStatsQuery constructor",
)

// recentOrdersLimit is how many submitted orders the admin dashboard shows.
const recentOrdersLimit = 5

type AdminStatsQuery struct {
	actor kernel.Actor
	guard guard.ConstructorGuard
}

func NewAdminStatsQuery(actor kernel.Actor) AdminStatsQuery {
	return AdminStatsQuery{actor: actor, guard: guard.NewConstructorGuard()}
}

func (q AdminStatsQuery) Validate() error {
	return q.guard.Validate(ErrAdminStatsQueryIsNotConstructed)
}

func (q AdminStatsQuery) Actor() kernel.Actor { return q.actor }

// AdminStatsResponse backs the admin dashboard. Orders counts submitted orders;
// Revenue sums their stored totals, excluding cancelled ones.
type AdminStatsResponse struct {
	Users        int
	Vendors      int
	Customers    int
	Products     int
	Orders       int
	Revenue      kernel.Money
	RecentOrders []OrderResponse
}
