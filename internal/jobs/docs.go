// Package jobs provides scheduled background tasks for the order board.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic maintenance the order lifecycle needs.
//
// # Available Jobs
//
// 1. StatusSweepJob - Runs every 30 seconds to advance order statuses by age
// 2. CleanupJob - Runs once a day to drop delivered orders past retention
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(advanceHandler, cleanupHandler, cleanupDays, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Both jobs log failures and keep their schedule; a failed run never stops
// the cron entry. Failed job starts stop any already running jobs.
package jobs
