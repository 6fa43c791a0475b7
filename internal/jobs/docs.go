// Package jobs provides scheduled background tasks for the laundry service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the order lifecycle.
//
// # Available Jobs
//
// 1. PaymentExpiryJob - Runs every minute to fail pending payments the
// gateway never settled, moving their orders to PaymentFailed and freeing
// slot capacity.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(failStalePaymentsHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The expiry job uses the cron expression "0 * * * * *", firing at the top
// of every minute. Expiry precision of one minute is sufficient: the pending
// time-to-live is measured in tens of minutes.
//
// # Error Handling
//
// - An unsettleable payment is logged and skipped; the sweep continues
// - Failed job starts will stop any already running jobs
package jobs
