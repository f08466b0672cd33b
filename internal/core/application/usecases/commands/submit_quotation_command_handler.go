package commands

import (
	"context"

	"rental/internal/core/ports"
)

// SubmitQuotationCommandHandler moves a quotation to PENDING. Submitting twice is an
// illegal transition, not a no-op.
//
// Example:
//
//	cmd, _ := NewSubmitQuotationCommand(actor, orderID)
//	switch err := handler.Handle(ctx, cmd); {
//	case errors.Is(err, errs.ErrIllegalTransition):
//	    // already submitted
//	case err != nil:
//	    return err
//	}
type SubmitQuotationCommandHandler struct {
	uowFactory OrderUoWFactory
	effects    SideEffects
}

func NewSubmitQuotationCommandHandler(uowFactory OrderUoWFactory, effects SideEffects) SubmitQuotationCommandHandler {
	return SubmitQuotationCommandHandler{
		uowFactory: uowFactory,
		effects:    effects,
	}
}

func (h SubmitQuotationCommandHandler) Handle(ctx context.Context, cmd SubmitQuotationCommand) error {
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

	quotation, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = quotation.Submit(cmd.Actor()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, quotation); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.effects.invalidate(ctx, ports.CartViewKey(cmd.Actor().ID().String()))
	h.effects.publish(ctx, quotation.Events())
	return nil
}
