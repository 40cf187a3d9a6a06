package commands

import (
	"context"

	"parcelops/internal/core/domain/model/shipment"
)

// UpdateShipmentStatusCommandHandler applies a driver action to an assigned
// shipment.
//
// This is the restrictive authorization tier: the actor must hold the driver
// role and be the shipment's assigned driver. The ownership check runs under
// the same row lock as the write, so a concurrent staff reassignment cannot
// slip between check and update. The status write itself is an unconditional
// overwrite; the action vocabulary is the only restriction.
type UpdateShipmentStatusCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewUpdateShipmentStatusCommandHandler creates a handler for driver reports.
func NewUpdateShipmentStatusCommandHandler(uowFactory ShipmentUoWFactory) UpdateShipmentStatusCommandHandler {
	return UpdateShipmentStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver report command.
func (h UpdateShipmentStatusCommandHandler) Handle(ctx context.Context, cmd UpdateShipmentStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().IsDriver() {
		return ErrDriverRoleRequired
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

	if !aggregate.IsAssignedTo(cmd.Actor().ID()) {
		return shipment.ErrNotAssignedDriver
	}

	if err = aggregate.ApplyDriverAction(cmd.Action()); err != nil {
		return err
	}

	if err = uow.ShipmentRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
