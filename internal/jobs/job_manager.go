package jobs

import (
	"fmt"
	"log/slog"

	"github.com/moisescpp/tierno-oficial/internal/core/ports"
)

// JobManager coordinates the application's scheduled jobs behind a single
// start/stop interface.
type JobManager struct {
	refreshJob *RefreshJob
}

// NewJobManager creates a job manager over the given store.
func NewJobManager(store ports.OrderStore, logger *slog.Logger) *JobManager {
	return &JobManager{
		refreshJob: NewRefreshJob(store, logger),
	}
}

// RefreshJob exposes the refresh job so the HTTP layer can suspend and
// resume it around client edits.
func (jm *JobManager) RefreshJob() *RefreshJob {
	return jm.refreshJob
}

// StartAll starts every scheduled job.
func (jm *JobManager) StartAll() error {
	if err := jm.refreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start order refresh job: %w", err)
	}
	return nil
}

// StopAll stops every scheduled job gracefully.
func (jm *JobManager) StopAll() {
	jm.refreshJob.Stop()
}
