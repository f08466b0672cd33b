package commands

import (
	"context"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/services"
	"rental/internal/core/ports"
	"rental/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler applies an administrative status change and its stock
// side effect atomically: entering PICKED_UP reserves stock, entering RETURNED releases it.
// If stock cannot be reserved the whole change rolls back.
//
// Checks run in this order: session, ADMIN role, known target status, order exists,
// edge present in the transition table.
type UpdateOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	allocator  services.StockAllocator
	effects    SideEffects
}

func NewUpdateOrderStatusCommandHandler(uowFactory UoWFactory, effects SideEffects) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		allocator:  services.NewStockAllocator(),
		effects:    effects,
	}
}

func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := cmd.Actor().Authenticate(); err != nil {
		return err
	}
	if !cmd.Actor().IsAdmin() {
		return errs.NewForbiddenError("update order status", "requires "+kernel.RoleAdmin.String())
	}
	if err := cmd.Status().Validate(); err != nil {
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
	productRepo := uow.ProductRepository()

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if _, err = o.ChangeStatus(cmd.Status(), cmd.Actor()); err != nil {
		return err
	}

	stockChanged := false
	if h.allocator.AffectsStock(o.Status()) {
		products, getErr := productRepo.GetManyForUpdate(ctx, h.allocator.ProductIDs(o))
		if getErr != nil {
			return getErr
		}

		changed, applyErr := h.allocator.Apply(o, products)
		if applyErr != nil {
			return applyErr
		}

		for _, p := range changed {
			if err = productRepo.Update(ctx, p); err != nil {
				return err
			}
		}
		stockChanged = len(changed) > 0
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if stockChanged {
		h.effects.invalidate(ctx, ports.CatalogViewPattern)
	}
	h.effects.publish(ctx, o.Events())
	return nil
}
