// Package jobs provides scheduled background tasks for the orders service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Schedules carry a leading seconds field.
//
// # Available Jobs
//
// 1. OrderStatsJob - Logs the number of orders per status and publishes it to
// the orders_by_status gauge. Runs every 30 seconds unless configured otherwise.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(listOrdersHandler, metrics, "", logger)
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
// - Failed runs are logged and retried on the next tick
// - Failed job starts will stop any already running jobs
package jobs
