package queries

import (
	"errors"
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/guard"
)

var ErrListUsersQueryIsNotConstructed = errors.New(
	"ListUsersQuery must be created via NewListUsersQuery constructor",
)

// ListUsersQuery lists every registered account for the admin user table.
type ListUsersQuery struct {
	actor kernel.Actor
	guard guard.ConstructorGuard
}

func NewListUsersQuery(actor kernel.Actor) ListUsersQuery {
	return ListUsersQuery{actor: actor, guard: guard.NewConstructorGuard()}
}

func (q ListUsersQuery) Validate() error {
	return q.guard.Validate(ErrListUsersQueryIsNotConstructed)
}

func (q ListUsersQuery) Actor() kernel.Actor { return q.actor }

// UserResponse is one row of the admin user table. IsMasterAdmin marks the
// account that cannot be deleted.
type UserResponse struct {
	ID            kernel.UUID
	Email         string
	Name          string
	Role          kernel.Role
	CreatedAt     time.Time
	IsMasterAdmin bool
}
