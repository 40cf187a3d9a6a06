package commands

import (
	"context"

	"parcelops/internal/pkg/errs"
)

// DeleteShipmentCommandHandler removes a shipment.
//
// An invoiced shipment cannot be deleted: the invoice store is consulted
// first and a hit aborts the operation with a ReferentialIntegrityError
// naming the dependent record.
type DeleteShipmentCommandHandler struct {
	uowFactory DeleteShipmentUoWFactory
}

// NewDeleteShipmentCommandHandler creates a handler for shipment removal.
func NewDeleteShipmentCommandHandler(uowFactory DeleteShipmentUoWFactory) DeleteShipmentCommandHandler {
	return DeleteShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment removal command.
func (h DeleteShipmentCommandHandler) Handle(ctx context.Context, cmd DeleteShipmentCommand) error {
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

	invoiceID, err := uow.InvoiceRepository().FindByShipment(ctx, aggregate.ID())
	if err != nil {
		return err
	}
	if !invoiceID.IsZero() {
		return errs.NewReferentialIntegrityError("shipmentID", aggregate.ID().String(), "invoice "+invoiceID.String())
	}

	if err = uow.ShipmentRepository().Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
