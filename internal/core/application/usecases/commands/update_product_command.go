package commands

import (
	"errors"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/product"
	"rental/internal/pkg/guard"
)

var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// UpdateProductCommand replaces a product's editable attributes, including whether it can be rented.
type UpdateProductCommand struct {
	actor     kernel.Actor
	productID kernel.UUID
	details   product.Details

	guard guard.ConstructorGuard
}

func NewUpdateProductCommand(
	actor kernel.Actor,
	productID kernel.UUID,
	fields ProductFields,
) (UpdateProductCommand, error) {
	if err := productID.Validate(); err != nil {
		return UpdateProductCommand{}, err
	}

	details, err := fields.details()
	if err != nil {
		return UpdateProductCommand{}, err
	}

	return UpdateProductCommand{
		actor:     actor,
		productID: productID,
		details:   details,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

func (c UpdateProductCommand) Actor() kernel.Actor {
	return c.actor
}

func (c UpdateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c UpdateProductCommand) Details() product.Details {
	return c.details
}
