// Package jobs provides scheduled background tasks for the logistics service.
//
// Jobs are built on github.com/robfig/cron/v3 and managed through JobManager:
//
//	jobManager := jobs.NewJobManager(reconcileHandler, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// DriverAvailabilityJob runs every minute and reconciles each driver's
// availability flag against the status of their assigned shipments. The
// status machine never flips availability on delivery, so without this
// sweep a driver who finished their deliveries would stay out of the
// claimable pool indefinitely.
package jobs
