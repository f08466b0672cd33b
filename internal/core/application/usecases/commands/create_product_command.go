package commands

import (
	"errors"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/product"
	"rental/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand adds a product to the catalog. The id is chosen by the caller.
type CreateProductCommand struct {
	actor     kernel.Actor
	productID kernel.UUID
	details   product.Details

	guard guard.ConstructorGuard
}

// NewCreateProductCommand parses the form. A non-numeric price is a validation error;
// an empty stock defaults to one unit.
func NewCreateProductCommand(
	actor kernel.Actor,
	productID kernel.UUID,
	fields ProductFields,
) (CreateProductCommand, error) {
	if err := productID.Validate(); err != nil {
		return CreateProductCommand{}, err
	}

	details, err := fields.details()
	if err != nil {
		return CreateProductCommand{}, err
	}

	return CreateProductCommand{
		actor:     actor,
		productID: productID,
		details:   details,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c CreateProductCommand) Actor() kernel.Actor {
	return c.actor
}

func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c CreateProductCommand) Details() product.Details {
	return c.details
}
