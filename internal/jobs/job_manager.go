package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager starts and stops every scheduled job of the service.
type JobManager struct {
	overdueReminderJob *OverdueReminderJob
}

func NewJobManager(
	overdueReminderHandler overdueReminderHandler,
	overdueReminderSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		overdueReminderJob: NewOverdueReminderJob(overdueReminderHandler, overdueReminderSchedule, logger),
	}
}

func (jm *JobManager) StartAll() error {
	if err := jm.overdueReminderJob.Start(); err != nil {
		return fmt.Errorf("failed to start overdue reminder job: %w", err)
	}
	return nil
}

func (jm *JobManager) StopAll() {
	jm.overdueReminderJob.Stop()
}
