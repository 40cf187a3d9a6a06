package commands

import (
	"errors"

	"parcelops/internal/core/domain/model/kernel"
	"parcelops/internal/pkg/errs"
	"parcelops/internal/pkg/guard"
)

var (
	ErrDeleteShipmentCommandIsNotConstructed = errors.New(
		"DeleteShipmentCommand must be created via NewDeleteShipmentCommand constructor",
	)
)

// DeleteShipmentCommand represents a staff request to remove a shipment.
type DeleteShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.EntityID
	actor      kernel.Actor

	guard guard.ConstructorGuard
}

// NewDeleteShipmentCommand creates a command to remove a shipment.
func NewDeleteShipmentCommand(shipmentID kernel.EntityID, actor kernel.Actor) (DeleteShipmentCommand, error) {
	cmd := DeleteShipmentCommand{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setShipmentID(shipmentID); err != nil {
		return DeleteShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteShipmentCommand) Validate() error {
	return c.guard.Validate(ErrDeleteShipmentCommandIsNotConstructed)
}

// ShipmentID returns the shipment being removed.
func (c DeleteShipmentCommand) ShipmentID() kernel.EntityID { return c.shipmentID }

// Actor returns the requesting party.
func (c DeleteShipmentCommand) Actor() kernel.Actor { return c.actor }

func (c *DeleteShipmentCommand) setShipmentID(shipmentID kernel.EntityID) error {
	if err := shipmentID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shipmentID", err)
	}
	c.shipmentID = shipmentID
	return nil
}
