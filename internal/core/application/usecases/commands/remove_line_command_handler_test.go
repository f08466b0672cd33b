package commands_test

import (
	"testing"

	"rental/internal/core/application/usecases/commands"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/order"
	"rental/internal/core/ports"
	"rental/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRemoveLineCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customer := mustActor(kernel.RoleCustomer)
	cheap := mustProduct("5.00", 1)
	pricey := mustProduct("20.00", 1)

	quotation := mustQuotation(customer.ID())
	line, err := quotation.AddProduct(kernel.NewUUID(), cheap.ID(), cheap.PriceDaily())
	require.NoError(t, err)
	_, err = quotation.AddProduct(kernel.NewUUID(), pricey.ID(), pricey.PriceDaily())
	require.NoError(t, err)

	cmd, err := commands.NewRemoveLineCommand(customer, line.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	views := new(MockViewInvalidator)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("FindByLineID", ctx, line.ID()).Return(quotation, nil).Once(),
		orderRepo.On("Update", ctx, quotation).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		views.On("Invalidate", ctx, []string{ports.CartViewKey(customer.ID().String())}).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRemoveLineCommandHandler(factory, commands.NewSideEffects(nil, views, nil))
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, quotation.Lines(), 1)
	assert.Equal(t, "20.00", quotation.Total().String())
	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	views.AssertExpectations(t)
}

func TestRemoveLineCommandHandler_Handle_LineNotFound(t *testing.T) {
	ctx := t.Context()
	customer := mustActor(kernel.RoleCustomer)
	lineID := kernel.NewUUID()

	cmd, err := commands.NewRemoveLineCommand(customer, lineID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("FindByLineID", ctx, lineID).
			Return(nil, errs.NewObjectNotFoundError("orderLine", lineID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRemoveLineCommandHandler(factory, commands.NewSideEffects(nil, nil, nil))
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestRemoveLineCommandHandler_Handle_ForeignLine(t *testing.T) {
	ctx := t.Context()
	owner := mustActor(kernel.RoleCustomer)
	stranger := mustActor(kernel.RoleCustomer)
	p := mustProduct("5.00", 1)

	quotation := mustQuotation(owner.ID())
	line, err := quotation.AddProduct(kernel.NewUUID(), p.ID(), p.PriceDaily())
	require.NoError(t, err)

	cmd, err := commands.NewRemoveLineCommand(stranger, line.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("FindByLineID", ctx, line.ID()).Return(quotation, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRemoveLineCommandHandler(factory, commands.NewSideEffects(nil, nil, nil))
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	assert.Len(t, quotation.Lines(), 1)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestRemoveLineCommandHandler_Handle_SubmittedOrder(t *testing.T) {
	ctx := t.Context()
	customer := mustActor(kernel.RoleCustomer)
	p := mustProduct("5.00", 1)

	quotation := mustQuotation(customer.ID())
	line, err := quotation.AddProduct(kernel.NewUUID(), p.ID(), p.PriceDaily())
	require.NoError(t, err)
	require.NoError(t, quotation.Submit(customer))

	cmd, err := commands.NewRemoveLineCommand(customer, line.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("FindByLineID", ctx, line.ID()).Return(quotation, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRemoveLineCommandHandler(factory, commands.NewSideEffects(nil, nil, nil))
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrOrderIsNotQuotation)
	assert.Equal(t, order.Pending, quotation.Status())
}
