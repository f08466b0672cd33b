// Package jobs runs the scheduled background work of the rental service on
// github.com/robfig/cron/v3.
//
// # Available Jobs
//
// OverdueReminderJob runs daily (OVERDUE_REMINDER_SCHEDULE, default "0 0 8 * * *")
// and notifies customers whose PICKED_UP rentals ended before today. It only reads
// orders; reminders are best effort and failures are logged.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(overdueHandler, cfg.OverdueReminderSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// Schedules use six fields with seconds first.
package jobs
