package jobs

import (
	"context"
	"log/slog"

	"orderboard/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// CleanupJob removes delivered orders past the retention window.
// Runs once a day shortly after midnight.
type CleanupJob struct {
	handler commands.CleanupOrdersCommandHandler
	daysOld int
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCleanupJob creates a new retention cleanup job.
func NewCleanupJob(handler commands.CleanupOrdersCommandHandler, daysOld int, logger *slog.Logger) *CleanupJob {
	return &CleanupJob{
		handler: handler,
		daysOld: daysOld,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "cleanup_job"),
	}
}

// Start schedules the cleanup to run daily.
func (j *CleanupJob) Start() error {
	_, err := j.cron.AddFunc("0 5 0 * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewCleanupOrdersCommand(j.daysOld)
		if err != nil {
			j.logger.ErrorContext(ctx, "Cleanup job misconfigured", "days", j.daysOld, "error", err)
			return
		}

		removed, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Cleanup job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Cleanup job finished", "removed", removed, "days", j.daysOld)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Cleanup job started (running daily)")
	return nil
}

// Stop stops the cleanup job.
func (j *CleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Cleanup job stopped")
}
