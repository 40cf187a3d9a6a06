package jobs

import (
	"context"
	"log/slog"

	"parcelops/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DriverAvailabilityJob periodically reconciles each driver's availability
// flag against their assigned shipments. Drivers stuck unavailable after
// their last delivery completed are released back to the claimable pool.
type DriverAvailabilityJob struct {
	handler commands.ReconcileDriverAvailabilityCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDriverAvailabilityJob creates a job that reconciles driver availability
// once a minute.
func NewDriverAvailabilityJob(
	handler commands.ReconcileDriverAvailabilityCommandHandler,
	logger *slog.Logger,
) *DriverAvailabilityJob {
	return &DriverAvailabilityJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "driver_availability_job"),
	}
}

// Start begins the reconciliation job on a one-minute schedule.
func (j *DriverAvailabilityJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewReconcileDriverAvailabilityCommand()
		if err != nil {
			j.logger.ErrorContext(ctx, "Driver availability job failed to build command", "error", err)
			return
		}

		changed, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Driver availability job failed", "error", err)
			return
		}
		if changed > 0 {
			j.logger.InfoContext(ctx, "Driver availability reconciled", "changed", changed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Driver availability job started (running every minute)")
	return nil
}

// Stop stops the reconciliation job.
func (j *DriverAvailabilityJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Driver availability job stopped")
}
