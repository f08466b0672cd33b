package commands

import (
	"errors"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/guard"
)

var ErrAddLineCommandIsNotConstructed = errors.New(
	"AddLineCommand must be created via NewAddLineCommand constructor",
)

// AddLineCommand puts one unit of a product into the actor's quotation.
// unitPrice is the daily price captured on the line if it is new.
// period, when set, overwrites the quotation's rental window.
//
// Example:
//
//	cmd, err := NewAddLineCommand(actor, productID, p.PriceDaily(), nil)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type AddLineCommand struct { //nolint:recvcheck //using for validation
	actor     kernel.Actor
	productID kernel.UUID
	unitPrice kernel.Money
	period    *kernel.DateRange

	guard guard.ConstructorGuard
}

// NewAddLineCommand validates the product id, price and optional window.
// The actor is checked by the handler so that a missing session reports Unauthenticated.
func NewAddLineCommand(
	actor kernel.Actor,
	productID kernel.UUID,
	unitPrice kernel.Money,
	period *kernel.DateRange,
) (AddLineCommand, error) {
	cmd := AddLineCommand{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setUnitPrice(unitPrice),
		cmd.setPeriod(period),
	); err != nil {
		return AddLineCommand{}, err
	}

	return cmd, nil
}

func (c AddLineCommand) Validate() error {
	return c.guard.Validate(ErrAddLineCommandIsNotConstructed)
}

func (c AddLineCommand) Actor() kernel.Actor { return c.actor }
func (c AddLineCommand) ProductID() kernel.UUID { return c.productID }
func (c AddLineCommand) UnitPrice() kernel.Money { return c.unitPrice }
func (c AddLineCommand) Period() *kernel.DateRange { return c.period }

func (c *AddLineCommand) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.productID = id
	return nil
}

func (c *AddLineCommand) setUnitPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	c.unitPrice = price
	return nil
}

func (c *AddLineCommand) setPeriod(period *kernel.DateRange) error {
	if period == nil {
		return nil
	}
	if err := period.Validate(); err != nil {
		return err
	}
	p := *period
	c.period = &p
	return nil
}
