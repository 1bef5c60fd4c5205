// Package jobs provides scheduled background tasks for the meal service.
//
// Jobs use github.com/robfig/cron/v3 with a seconds field. The only job today
// is NotificationRelayJob, which drains the notification outbox into the
// configured sink:
//
//	jobManager := jobs.NewJobManager(dispatchHandler, "*/5 * * * * *", 100, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// A relay run that fails is logged; the notifications it did not dispatch are
// picked up by the next run.
package jobs
