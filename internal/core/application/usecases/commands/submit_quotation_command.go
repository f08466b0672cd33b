package commands

import (
	"errors"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/guard"
)

var ErrSubmitQuotationCommandIsNotConstructed = errors.New(
	"SubmitQuotationCommand must be created via NewSubmitQuotationCommand constructor",
)

// SubmitQuotationCommand turns the actor's quotation into a PENDING order.
type SubmitQuotationCommand struct {
	actor   kernel.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewSubmitQuotationCommand(actor kernel.Actor, orderID kernel.UUID) (SubmitQuotationCommand, error) {
	if err := orderID.Validate(); err != nil {
		return SubmitQuotationCommand{}, err
	}

	return SubmitQuotationCommand{
		actor:   actor,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c SubmitQuotationCommand) Validate() error {
	return c.guard.Validate(ErrSubmitQuotationCommandIsNotConstructed)
}

func (c SubmitQuotationCommand) Actor() kernel.Actor {
	return c.actor
}

func (c SubmitQuotationCommand) OrderID() kernel.UUID {
	return c.orderID
}
