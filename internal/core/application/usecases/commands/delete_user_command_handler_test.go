package commands_test

import (
	"testing"

	"rental/internal/core/application/usecases/commands"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/user"
	"rental/internal/core/ports"
	"rental/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const masterAdminEmail = "owner@rent.test"

func mustAccount(t *testing.T, email, role string) *user.Account {
	t.Helper()
	a, err := user.RestoreAccount(kernel.NewUUID(), email, "Someone", role)
	require.NoError(t, err)
	return a
}

func TestDeleteUserCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	account := mustAccount(t, "renter@rent.test", "CUSTOMER")
	cmd, err := commands.NewDeleteUserCommand(mustActor(kernel.RoleAdmin), account.ID())
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, account.ID()).Return(account, nil).Once(),
		userRepo.On("Delete", ctx, account.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewDeleteUserCommandHandler(factory, masterAdminEmail).Handle(ctx, cmd)

	require.NoError(t, err)
	uow.AssertExpectations(t)
	userRepo.AssertExpectations(t)
}

func TestDeleteUserCommandHandler_Handle_MasterAdminIsProtected(t *testing.T) {
	ctx := t.Context()
	master := mustAccount(t, "Owner@Rent.test", "ADMIN")
	cmd, err := commands.NewDeleteUserCommand(mustActor(kernel.RoleAdmin), master.ID())
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	userRepo.On("Get", ctx, master.ID()).Return(master, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewDeleteUserCommandHandler(factory, masterAdminEmail).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	userRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestDeleteUserCommandHandler_Handle_UserWithOrdersIsKept(t *testing.T) {
	ctx := t.Context()
	account := mustAccount(t, "renter@rent.test", "CUSTOMER")
	cmd, err := commands.NewDeleteUserCommand(mustActor(kernel.RoleAdmin), account.ID())
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	userRepo.On("Get", ctx, account.ID()).Return(account, nil).Once()
	userRepo.On("Delete", ctx, account.ID()).Return(ports.ErrUserIsReferenced).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewDeleteUserCommandHandler(factory, masterAdminEmail).Handle(ctx, cmd)

	require.ErrorIs(t, err, ports.ErrUserIsReferenced)
	assert.Equal(t, errs.KindValidation, errs.KindOf(err))
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestDeleteUserCommandHandler_Handle_VendorIsForbidden(t *testing.T) {
	cmd, err := commands.NewDeleteUserCommand(mustActor(kernel.RoleVendor), kernel.NewUUID())
	require.NoError(t, err)

	factory := new(MockUserUoWFactory)

	err = commands.NewDeleteUserCommandHandler(factory, masterAdminEmail).Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	factory.AssertNotCalled(t, "Create")
}

func TestDeleteUserCommandHandler_Handle_Unconstructed(t *testing.T) {
	err := commands.NewDeleteUserCommandHandler(new(MockUserUoWFactory), masterAdminEmail).
		Handle(t.Context(), commands.DeleteUserCommand{})

	require.ErrorIs(t, err, commands.ErrDeleteUserCommandIsNotConstructed)
}
