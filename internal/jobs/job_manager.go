package jobs

import (
	"fmt"
	"log/slog"

	"parcelops/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	driverAvailabilityJob *DriverAvailabilityJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	reconcileHandler commands.ReconcileDriverAvailabilityCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		driverAvailabilityJob: NewDriverAvailabilityJob(reconcileHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.driverAvailabilityJob.Start(); err != nil {
		return fmt.Errorf("failed to start driver availability job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.driverAvailabilityJob.Stop()
}
