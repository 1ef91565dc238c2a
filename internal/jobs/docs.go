// Package jobs provides scheduled background tasks for the fulfillment system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the dealership service.
//
// # Available Jobs
//
// 1. PaymentReminderJob - Runs every minute to sweep payments awaiting
// confirmation and surface them in the logs for dealer staff to chase.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(getPendingTasksHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The reminder job logs sweep failures and keeps running; a failed job start
// stops any already running jobs.
package jobs
