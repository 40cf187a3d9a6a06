package commands

import (
	"context"

	"parcelops/internal/core/domain/model/kernel"
)

// ClaimShipmentCommandHandler runs the claim protocol.
//
// The shipment row is read under FOR UPDATE so the driver field observed
// here cannot change before the write: of any number of concurrent
// claimants, exactly one sees a nil driver and wins, the rest get
// shipment.ErrAlreadyAssigned. Losing is a final outcome for that claim,
// not a retryable condition.
type ClaimShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewClaimShipmentCommandHandler creates a handler for the claim protocol.
func NewClaimShipmentCommandHandler(uowFactory ShipmentUoWFactory) ClaimShipmentCommandHandler {
	return ClaimShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the claim command.
func (h ClaimShipmentCommandHandler) Handle(ctx context.Context, cmd ClaimShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().IsDriver() {
		return ErrDriverRoleRequired
	}

	driverID, err := kernel.EntityIDFromString(cmd.Actor().ID())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.ShipmentRepository().GetForUpdate(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	if err = aggregate.Claim(driverID); err != nil {
		return err
	}

	if err = uow.ShipmentRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
