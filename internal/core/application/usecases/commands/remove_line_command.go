package commands

import (
	"errors"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/guard"
)

var ErrRemoveLineCommandIsNotConstructed = errors.New(
	"RemoveLineCommand must be created via NewRemoveLineCommand constructor",
)

// RemoveLineCommand deletes a whole line, whatever its quantity, from the actor's quotation.
type RemoveLineCommand struct {
	actor  kernel.Actor
	lineID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRemoveLineCommand(actor kernel.Actor, lineID kernel.UUID) (RemoveLineCommand, error) {
	if err := lineID.Validate(); err != nil {
		return RemoveLineCommand{}, err
	}

	return RemoveLineCommand{
		actor:  actor,
		lineID: lineID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c RemoveLineCommand) Validate() error {
	return c.guard.Validate(ErrRemoveLineCommandIsNotConstructed)
}

func (c RemoveLineCommand) Actor() kernel.Actor {
	return c.actor
}

func (c RemoveLineCommand) LineID() kernel.UUID {
	return c.lineID
}
