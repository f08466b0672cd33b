package user

import (
	"errors"
	"strings"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"
)

var ErrAccountIsNotConstructed = errors.New("Account must be created via RestoreAccount")

// Account is a registered marketplace user.
type Account struct {
	id            kernel.UUID
	email         string
	name          string
	role          kernel.Role
	isConstructed bool
}

// RestoreAccount rebuilds a stored account. The role is parsed case-insensitively.
func RestoreAccount(id kernel.UUID, email, name, role string) (*Account, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}
	parsed, err := kernel.ParseRole(role)
	if err != nil {
		return nil, err
	}

	return &Account{
		id:            id,
		email:         email,
		name:          name,
		role:          parsed,
		isConstructed: true,
	}, nil
}

func (a *Account) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAccountIsNotConstructed
	}
	return nil
}

func (a *Account) ID() kernel.UUID { return a.id }
func (a *Account) Email() string { return a.email }
func (a *Account) Name() string { return a.name }
func (a *Account) Role() kernel.Role { return a.role }

// IsMasterAdmin reports whether the account owns masterEmail. An empty masterEmail
// matches nobody.
func (a *Account) IsMasterAdmin(masterEmail string) bool {
	masterEmail = strings.TrimSpace(masterEmail)
	return masterEmail != "" && strings.EqualFold(a.email, masterEmail)
}

// CheckRemovableBy allows admins to remove any account except the master admin and
// their own.
func (a *Account) CheckRemovableBy(actor kernel.Actor, masterEmail string) error {
	if err := actor.Authenticate(); err != nil {
		return err
	}
	if !actor.IsAdmin() {
		return errs.NewForbiddenError("delete user", "requires "+kernel.RoleAdmin.String())
	}
	if a.IsMasterAdmin(masterEmail) {
		return errs.NewForbiddenError("delete user", "the master admin cannot be deleted")
	}
	if actor.Is(a.id) {
		return errs.NewForbiddenError("delete user", "admins cannot delete their own account")
	}
	return nil
}
