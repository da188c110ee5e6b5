package jobs

import (
	"context"
	"log/slog"

	"orderboard/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StatusSweepJob advances order statuses on a fixed cadence.
// Runs every 30 seconds so an order walks preparing, baking, out for delivery
// and delivered on its own as it ages.
type StatusSweepJob struct {
	handler commands.AdvanceStatusesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStatusSweepJob creates a new job for the automatic status sweep.
func NewStatusSweepJob(handler commands.AdvanceStatusesCommandHandler, logger *slog.Logger) *StatusSweepJob {
	return &StatusSweepJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "status_sweep_job"),
	}
}

// Start begins the sweep, running every 30 seconds.
func (j *StatusSweepJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()

		changed, err := j.handler.Handle(ctx, commands.NewAdvanceStatusesCommand())
		if err != nil {
			j.logger.ErrorContext(ctx, "Status sweep failed", "error", err)
			return
		}

		if changed > 0 {
			j.logger.InfoContext(ctx, "Status sweep advanced orders", "changed", changed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Status sweep job started (running every 30 seconds)")
	return nil
}

// Stop stops the sweep job.
func (j *StatusSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Status sweep job stopped")
}
