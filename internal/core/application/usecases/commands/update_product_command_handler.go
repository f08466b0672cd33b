package commands

import (
	"context"

	"rental/internal/core/ports"
	"rental/internal/pkg/errs"
)

// UpdateProductCommandHandler edits a product for an admin or its owning vendor.
type UpdateProductCommandHandler struct {
	uowFactory CatalogUoWFactory
	effects    SideEffects
}

func NewUpdateProductCommandHandler(uowFactory CatalogUoWFactory, effects SideEffects) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{
		uowFactory: uowFactory,
		effects:    effects,
	}
}

func (h UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) error {
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
		return errs.NewForbiddenError("update product", "only an admin or the owning vendor")
	}

	if _, err = uow.CategoryRepository().Get(ctx, cmd.Details().CategoryID); err != nil {
		return err
	}

	if err = p.Update(cmd.Details()); err != nil {
		return err
	}

	if err = productRepo.Update(ctx, p); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// Cart views embed product names and images.
	h.effects.invalidate(ctx, ports.CatalogViewPattern, ports.CartViewPattern)
	return nil
}
