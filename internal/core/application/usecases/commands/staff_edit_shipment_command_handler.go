package commands

import (
	"context"
)

// StaffEditShipmentCommandHandler applies a staff patch to a shipment.
//
// This is the less restrictive authorization tier: any admin or agent may
// edit any shipment, with no ownership requirement and no
// transition-legality check on the status field. The row is still locked
// for the edit so a concurrent driver report serializes against it.
type StaffEditShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewStaffEditShipmentCommandHandler creates a handler for staff edits.
func NewStaffEditShipmentCommandHandler(uowFactory ShipmentUoWFactory) StaffEditShipmentCommandHandler {
	return StaffEditShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the staff edit command.
func (h StaffEditShipmentCommandHandler) Handle(ctx context.Context, cmd StaffEditShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().IsStaff() {
		return ErrStaffRoleRequired
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.ShipmentRepository().GetForUpdate(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	if err = cmd.apply(aggregate); err != nil {
		return err
	}

	if err = uow.ShipmentRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
