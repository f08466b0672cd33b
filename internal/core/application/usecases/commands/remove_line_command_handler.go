package commands

import (
	"context"

	"rental/internal/core/ports"
	"rental/internal/pkg/errs"
)

// RemoveLineCommandHandler removes a line from its quotation and recomputes the total
// in the same transaction.
type RemoveLineCommandHandler struct {
	uowFactory OrderUoWFactory
	effects    SideEffects
}

func NewRemoveLineCommandHandler(uowFactory OrderUoWFactory, effects SideEffects) RemoveLineCommandHandler {
	return RemoveLineCommandHandler{
		uowFactory: uowFactory,
		effects:    effects,
	}
}

// Handle returns ObjectNotFoundError for an unknown line, ForbiddenError when the line
// belongs to someone else's order and order.ErrOrderIsNotQuotation once the order was submitted.
func (h RemoveLineCommandHandler) Handle(ctx context.Context, cmd RemoveLineCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := cmd.Actor().Authenticate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	quotation, err := orderRepo.FindByLineID(ctx, cmd.LineID())
	if err != nil {
		return err
	}
	if !quotation.IsOwnedBy(cmd.Actor()) {
		return errs.NewForbiddenError("remove line", "line belongs to another customer")
	}

	if err = quotation.RemoveLine(cmd.LineID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, quotation); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.effects.invalidate(ctx, ports.CartViewKey(cmd.Actor().ID().String()))
	return nil
}
