package commands

import (
	"context"
	"errors"
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/order"
	"rental/internal/core/ports"
	"rental/internal/pkg/errs"
)

// ErrProductIsNotRentable is returned when adding a product that was withdrawn from rental.
var ErrProductIsNotRentable = errs.NewValueIsInvalidErrorWithCause(
	"productId",
	errors.New("product is not available for rent"),
)

// addLineAttempts bounds the retry after losing the race to open a customer's cart.
const addLineAttempts = 2

// AddLineCommandHandler finds or opens the actor's quotation and adds the product to it.
//
// The quotation row is locked for the whole transaction, so concurrent adds for the
// same customer serialize. When two requests race to create the first cart, the loser's
// insert hits the one-quotation-per-customer constraint; the handler then retries once
// and lands in the winner's cart.
type AddLineCommandHandler struct {
	uowFactory UoWFactory
	effects    SideEffects
	now        func() time.Time
}

func NewAddLineCommandHandler(uowFactory UoWFactory, effects SideEffects) AddLineCommandHandler {
	return AddLineCommandHandler{
		uowFactory: uowFactory,
		effects:    effects,
		now:        time.Now,
	}
}

// Handle adds one unit of cmd.ProductID() to the actor's quotation.
//
// Returns:
//   - errs.ErrUnauthenticated when there is no session
//   - ObjectNotFoundError when the product does not exist
//   - ErrProductIsNotRentable when the product is withdrawn
//   - StorageError-wrapped persistence failures
func (h AddLineCommandHandler) Handle(ctx context.Context, cmd AddLineCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := cmd.Actor().Authenticate(); err != nil {
		return err
	}

	var err error
	for range addLineAttempts {
		err = h.addLine(ctx, cmd)
		if !errors.Is(err, ports.ErrActiveQuotationExists) {
			break
		}
	}
	if err != nil {
		return err
	}

	h.effects.invalidate(ctx, ports.CartViewKey(cmd.Actor().ID().String()), ports.CatalogViewPattern)
	return nil
}

func (h AddLineCommandHandler) addLine(ctx context.Context, cmd AddLineCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	productRepo := uow.ProductRepository()

	p, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}
	if !p.IsRentable() {
		return ErrProductIsNotRentable
	}

	quotation, isNew, err := h.quotationFor(ctx, orderRepo, cmd)
	if err != nil {
		return err
	}

	if _, err = quotation.AddProduct(kernel.NewUUID(), cmd.ProductID(), cmd.UnitPrice()); err != nil {
		return err
	}

	if isNew {
		err = orderRepo.Add(ctx, quotation)
	} else {
		err = orderRepo.Update(ctx, quotation)
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// quotationFor returns the locked active quotation, rescheduled when the command carries a
// window, or a new unsaved one defaulting to [today, today+1].
func (h AddLineCommandHandler) quotationFor(
	ctx context.Context,
	repo ports.OrderRepository,
	cmd AddLineCommand,
) (*order.RentalOrder, bool, error) {
	customerID := cmd.Actor().ID()

	quotation, err := repo.FindActiveQuotation(ctx, customerID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		now := h.now()
		period := kernel.DefaultDateRange(now)
		if cmd.Period() != nil {
			period = *cmd.Period()
		}

		quotation, err = order.NewQuotation(kernel.NewUUID(), customerID, period, now)
		return quotation, true, err
	}
	if err != nil {
		return nil, false, err
	}

	if cmd.Period() != nil {
		if err = quotation.Reschedule(*cmd.Period()); err != nil {
			return nil, false, err
		}
	}

	return quotation, false, nil
}
