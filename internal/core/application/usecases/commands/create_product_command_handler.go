package commands

import (
	"context"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/product"
	"rental/internal/core/ports"
	"rental/internal/pkg/errs"
)

// CreateProductCommandHandler lets admins and vendors list products.
// A vendor becomes the owner of what it creates.
type CreateProductCommandHandler struct {
	uowFactory CatalogUoWFactory
	effects    SideEffects
}

func NewCreateProductCommandHandler(uowFactory CatalogUoWFactory, effects SideEffects) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
		effects:    effects,
	}
}

func (h CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actor := cmd.Actor()
	if err := actor.Authenticate(); err != nil {
		return err
	}
	if !actor.IsAdmin() && !actor.IsVendor() {
		return errs.NewForbiddenError("create product", "requires ADMIN or VENDOR")
	}

	var vendorID *kernel.UUID
	if actor.IsVendor() {
		id := actor.ID()
		vendorID = &id
	}

	p, err := product.NewProduct(cmd.ProductID(), vendorID, cmd.Details())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err = uow.CategoryRepository().Get(ctx, p.Details().CategoryID); err != nil {
		return err
	}

	if err = uow.ProductRepository().Add(ctx, p); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.effects.invalidate(ctx, ports.CatalogViewPattern)
	return nil
}
