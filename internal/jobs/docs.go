// Package jobs provides scheduled background tasks for the storefront.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the order service.
//
// # Available Jobs
//
// 1. StaleOrderJob - Runs hourly to cancel orders that stayed pending longer
// than the configured maximum age
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(cancelStaleOrdersHandler, maxAge, logger)
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
// The stale-order sweep uses the cron expression "0 0 * * * *", running at
// the top of every hour. Stale pending orders are an hourly-scale concern,
// so a tighter schedule would only add load.
//
// # Error Handling
//
// Sweep failures are logged and retried on the next tick; a failed run never
// stops the schedule.
package jobs
