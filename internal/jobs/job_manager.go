package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"storefront/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	staleOrderJob *StaleOrderJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	cancelStaleOrdersHandler commands.CancelStaleOrdersCommandHandler,
	stalePendingMaxAge time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		staleOrderJob: NewStaleOrderJob(cancelStaleOrdersHandler, stalePendingMaxAge, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.staleOrderJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale order job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleOrderJob.Stop()
}
