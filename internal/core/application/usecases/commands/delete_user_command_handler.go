package commands

import (
	"context"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"
)

// DeleteUserCommandHandler lets admins remove accounts. The account whose email
// equals masterAdminEmail can never be removed.
type DeleteUserCommandHandler struct {
	uowFactory       UserUoWFactory
	masterAdminEmail string
}

func NewDeleteUserCommandHandler(uowFactory UserUoWFactory, masterAdminEmail string) DeleteUserCommandHandler {
	return DeleteUserCommandHandler{
		uowFactory:       uowFactory,
		masterAdminEmail: masterAdminEmail,
	}
}

func (h DeleteUserCommandHandler) Handle(ctx context.Context, cmd DeleteUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := cmd.Actor().Authenticate(); err != nil {
		return err
	}
	if !cmd.Actor().IsAdmin() {
		return errs.NewForbiddenError("delete user", "requires "+kernel.RoleAdmin.String())
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()

	account, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}
	if err = account.CheckRemovableBy(cmd.Actor(), h.masterAdminEmail); err != nil {
		return err
	}

	if err = userRepo.Delete(ctx, account.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
