package jobs

import (
	"context"
	"log/slog"
	"time"

	"rental/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultOverdueReminderSchedule runs the reminder every day at 08:00 server time.
const DefaultOverdueReminderSchedule = "0 0 8 * * *"

type overdueReminderHandler interface {
	Handle(ctx context.Context, cmd commands.SendOverdueRemindersCommand) error
}

// OverdueReminderJob reminds customers whose picked-up rentals are past their end date.
type OverdueReminderJob struct {
	handler  overdueReminderHandler
	schedule string
	cron     *cron.Cron
	now      func() time.Time
	logger   *slog.Logger
}

// NewOverdueReminderJob schedules handler with a six-field (seconds first) cron expression.
func NewOverdueReminderJob(handler overdueReminderHandler, schedule string, logger *slog.Logger) *OverdueReminderJob {
	if schedule == "" {
		schedule = DefaultOverdueReminderSchedule
	}
	return &OverdueReminderJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		now:      time.Now,
		logger:   logger.With("component", "overdue_reminder_job"),
	}
}

func (j *OverdueReminderJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue reminder job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running reminder pass to finish.
func (j *OverdueReminderJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Overdue reminder job stopped")
}

func (j *OverdueReminderJob) run() {
	ctx := context.Background()

	cmd, err := commands.NewSendOverdueRemindersCommand(j.now())
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue reminder job failed", "error", err)
		return
	}

	if err = j.handler.Handle(ctx, cmd); err != nil {
		j.logger.ErrorContext(ctx, "Overdue reminder job failed", "error", err)
	}
}
