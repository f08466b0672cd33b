package commands

import (
	"context"
	"log/slog"
)

// SendOverdueRemindersCommandHandler is run by the scheduler. It never changes an order.
type SendOverdueRemindersCommandHandler struct {
	uowFactory OrderUoWFactory
	effects    SideEffects
	logger     *slog.Logger
}

func NewSendOverdueRemindersCommandHandler(
	uowFactory OrderUoWFactory,
	effects SideEffects,
) SendOverdueRemindersCommandHandler {
	return SendOverdueRemindersCommandHandler{
		uowFactory: uowFactory,
		effects:    effects,
		logger:     effects.logger,
	}
}

func (h SendOverdueRemindersCommandHandler) Handle(ctx context.Context, cmd SendOverdueRemindersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	overdue, err := uow.OrderRepository().ListOverdue(ctx, cmd.Today())
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if len(overdue) == 0 {
		return nil
	}

	delivered := h.effects.remindOverdue(ctx, overdue, cmd.Today())
	h.logger.InfoContext(ctx, "Overdue reminders sent", "overdue", len(overdue), "delivered", delivered)
	return nil
}
