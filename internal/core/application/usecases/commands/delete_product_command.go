package commands

import (
	"errors"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/guard"
)

var ErrDeleteProductCommandIsNotConstructed = errors.New(
	"DeleteProductCommand must be created via NewDeleteProductCommand constructor",
)

// DeleteProductCommand removes a product that no order line references.
type DeleteProductCommand struct {
	actor     kernel.Actor
	productID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteProductCommand(actor kernel.Actor, productID kernel.UUID) (DeleteProductCommand, error) {
	if err := productID.Validate(); err != nil {
		return DeleteProductCommand{}, err
	}

	return DeleteProductCommand{
		actor:     actor,
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteProductCommand) Validate() error {
	return c.guard.Validate(ErrDeleteProductCommandIsNotConstructed)
}

func (c DeleteProductCommand) Actor() kernel.Actor {
	return c.actor
}

func (c DeleteProductCommand) ProductID() kernel.UUID {
	return c.productID
}
