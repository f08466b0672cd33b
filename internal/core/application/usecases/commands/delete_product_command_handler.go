package commands

import (
	"context"

	"rental/internal/core/ports"
	"rental/internal/pkg/errs"
)

// DeleteProductCommandHandler removes a product. Products referenced by any order line
// are kept and ports.ErrProductIsReferenced is returned.
type DeleteProductCommandHandler struct {
	uowFactory CatalogUoWFactory
	effects    SideEffects
}

func NewDeleteProductCommandHandler(uowFactory CatalogUoWFactory, effects SideEffects) DeleteProductCommandHandler {
	return DeleteProductCommandHandler{
		uowFactory: uowFactory,
		effects:    effects,
	}
}

func (h DeleteProductCommandHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
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

	productRepo := uow.ProductRepository()

	p, err := productRepo.GetForUpdate(ctx, cmd.ProductID())
	if err != nil {
		return err
	}
	if !p.CanBeManagedBy(cmd.Actor()) {
		return errs.NewForbiddenError("delete product", "only an admin or the owning vendor")
	}

	if err = productRepo.Delete(ctx, p.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// Cart views embed product names and images.
	h.effects.invalidate(ctx, ports.CatalogViewPattern, ports.CartViewPattern)
	return nil
}
