package jobs

import (
	"fmt"
	"log/slog"

	"orderboard/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	statusSweepJob *StatusSweepJob
	cleanupJob     *CleanupJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	advanceHandler commands.AdvanceStatusesCommandHandler,
	cleanupHandler commands.CleanupOrdersCommandHandler,
	cleanupDays int,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		statusSweepJob: NewStatusSweepJob(advanceHandler, logger),
		cleanupJob:     NewCleanupJob(cleanupHandler, cleanupDays, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.statusSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start status sweep job: %w", err)
	}

	if err := jm.cleanupJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.statusSweepJob.Stop()
		return fmt.Errorf("failed to start cleanup job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.statusSweepJob.Stop()
	jm.cleanupJob.Stop()
}
