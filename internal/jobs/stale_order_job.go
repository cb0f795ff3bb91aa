package jobs

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StaleOrderJob periodically cancels orders that stayed pending too long.
// Runs hourly and sweeps everything older than the configured maximum age.
type StaleOrderJob struct {
	handler commands.CancelStaleOrdersCommandHandler
	maxAge  time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStaleOrderJob creates the stale-order sweep job.
// maxAge controls how long an order may remain pending before it is
// cancelled automatically.
func NewStaleOrderJob(
	handler commands.CancelStaleOrdersCommandHandler,
	maxAge time.Duration,
	logger *slog.Logger,
) *StaleOrderJob {
	return &StaleOrderJob{
		handler: handler,
		maxAge:  maxAge,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "stale_order_job"),
	}
}

// Start begins the stale-order sweep to run at the top of every hour.
func (j *StaleOrderJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewCancelStaleOrdersCommand(j.maxAge)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Stale order job misconfigured", "error", cmdErr)
			return
		}

		cancelled, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Stale order sweep failed", "error", handleErr)
			return
		}

		if cancelled > 0 {
			j.logger.InfoContext(ctx, "Cancelled stale pending orders", "count", cancelled)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order job started (running hourly)", "max_age", j.maxAge)
	return nil
}

// Stop stops the stale-order sweep.
func (j *StaleOrderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order job stopped")
}
