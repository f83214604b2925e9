// Package jobs provides scheduled background tasks for the restaurant backend.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the order lifecycle.
//
// # Available Jobs
//
// 1. OccupancyReportJob - Runs every minute to log the current dining table
// occupancy and the number of active orders per table.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(occupancyHandler, logger)
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
// Jobs are observational only. They never advance or mutate orders, so a
// failed run is logged and retried on the next tick.
package jobs
