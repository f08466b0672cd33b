package kernel

import (
	"fmt"
	"strings"

	"rental/internal/pkg/errs"
)

// Role is the marketplace role carried by an authenticated actor.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleVendor   Role = "VENDOR"
	RoleCustomer Role = "CUSTOMER"
)

// ParseRole accepts the role name case-insensitively.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	if err := r.Validate(); err != nil {
		return "", err
	}
	return r, nil
}

func (r Role) Validate() error {
	switch r {
	case RoleAdmin, RoleVendor, RoleCustomer:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", string(r)))
	}
}

func (r Role) String() string {
	return string(r)
}

// Actor is the caller of a core operation, supplied by the identity collaborator.
// The zero Actor represents "no session" and fails Authenticate with errs.ErrUnauthenticated.
type Actor struct {
	id   UUID
	role Role
}

// NewActor builds an authenticated actor.
func NewActor(id UUID, role Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}
	return Actor{id: id, role: role}, nil
}

// Anonymous is the actor used when no session is present.
func Anonymous() Actor {
	return Actor{}
}

func (a Actor) ID() UUID {
	return a.id
}

func (a Actor) Role() Role {
	return a.role
}

// Authenticate returns errs.ErrUnauthenticated for the anonymous actor.
func (a Actor) Authenticate() error {
	if a.id.IsZero() || a.role.Validate() != nil {
		return errs.ErrUnauthenticated
	}
	return nil
}

func (a Actor) IsAdmin() bool {
	return a.role == RoleAdmin
}

func (a Actor) IsVendor() bool {
	return a.role == RoleVendor
}

// Is reports whether the actor is the user with the given id.
func (a Actor) Is(id UUID) bool {
	return !a.id.IsZero() && a.id.IsEqual(id)
}
