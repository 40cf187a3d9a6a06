package commands

import (
	"context"
)

// ReconcileDriverAvailabilityCommandHandler recomputes driver availability.
//
// A driver is busy while any assigned shipment is still in a non-terminal
// status; once every assignment is DELIVERED or FAILED the driver returns
// to the available pool. The sweep runs periodically from the job scheduler
// and only writes drivers whose flag actually changed.
type ReconcileDriverAvailabilityCommandHandler struct {
	uowFactory UoWFactory
}

// NewReconcileDriverAvailabilityCommandHandler creates the reconciliation handler.
func NewReconcileDriverAvailabilityCommandHandler(uowFactory UoWFactory) ReconcileDriverAvailabilityCommandHandler {
	return ReconcileDriverAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle runs one reconciliation sweep and returns the number of drivers
// whose availability changed.
func (h ReconcileDriverAvailabilityCommandHandler) Handle(
	ctx context.Context, cmd ReconcileDriverAvailabilityCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	drivers, err := uow.DriverRepository().GetAll(ctx)
	if err != nil {
		return 0, err
	}

	changed := 0
	for _, d := range drivers {
		assigned, err := uow.ShipmentRepository().GetAllByDriver(ctx, d.ID())
		if err != nil {
			return 0, err
		}

		busy := false
		for _, s := range assigned {
			if !s.Status().IsTerminal() {
				busy = true
				break
			}
		}

		available := !busy
		if d.Available() == available {
			continue
		}

		d.SetAvailable(available)
		if err = uow.DriverRepository().Update(ctx, d); err != nil {
			return 0, err
		}
		changed++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return changed, nil
}
