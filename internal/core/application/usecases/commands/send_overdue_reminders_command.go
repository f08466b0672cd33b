package commands

import (
	"errors"
	"time"

	"rental/internal/pkg/errs"
	"rental/internal/pkg/guard"
)

var ErrSendOverdueRemindersCommandIsNotConstructed = errors.New(
	"SendOverdueRemindersCommand must be created via NewSendOverdueRemindersCommand constructor",
)

// SendOverdueRemindersCommand reminds customers whose picked-up rentals ended before today.
type SendOverdueRemindersCommand struct {
	today time.Time
	guard guard.ConstructorGuard
}

func NewSendOverdueRemindersCommand(today time.Time) (SendOverdueRemindersCommand, error) {
	if today.IsZero() {
		return SendOverdueRemindersCommand{}, errs.NewValueIsRequiredError("today")
	}
	return SendOverdueRemindersCommand{today: today.UTC(), guard: guard.NewConstructorGuard()}, nil
}

func (c SendOverdueRemindersCommand) Validate() error {
	return c.guard.Validate(ErrSendOverdueRemindersCommandIsNotConstructed)
}

func (c SendOverdueRemindersCommand) Today() time.Time {
	return c.today
}
