package commands

import (
	"errors"

	"parcelops/internal/core/domain/model/kernel"
	"parcelops/internal/core/domain/model/shipment"
	"parcelops/internal/pkg/errs"
	"parcelops/internal/pkg/guard"
)

var (
	ErrUpdateShipmentStatusCommandIsNotConstructed = errors.New(
		"UpdateShipmentStatusCommand must be created via NewUpdateShipmentStatusCommand constructor",
	)
)

// UpdateShipmentStatusCommand represents a driver's report on an assigned
// shipment, expressed in the restricted action vocabulary.
type UpdateShipmentStatusCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.EntityID
	action     shipment.DriverAction
	actor      kernel.Actor

	guard guard.ConstructorGuard
}

// NewUpdateShipmentStatusCommand creates a command carrying a driver action.
// The action vocabulary is validated eagerly; authorization and ownership
// are checked by the handler under the row lock.
func NewUpdateShipmentStatusCommand(
	shipmentID kernel.EntityID,
	action string,
	actor kernel.Actor,
) (UpdateShipmentStatusCommand, error) {
	cmd := UpdateShipmentStatusCommand{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}

	a := shipment.DriverAction(action)
	if _, err := a.Status(); err != nil {
		return UpdateShipmentStatusCommand{}, err
	}
	cmd.action = a

	if err := cmd.setShipmentID(shipmentID); err != nil {
		return UpdateShipmentStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateShipmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentStatusCommandIsNotConstructed)
}

// ShipmentID returns the shipment being reported on.
func (c UpdateShipmentStatusCommand) ShipmentID() kernel.EntityID { return c.shipmentID }

// Action returns the driver action.
func (c UpdateShipmentStatusCommand) Action() shipment.DriverAction { return c.action }

// Actor returns the requesting party.
func (c UpdateShipmentStatusCommand) Actor() kernel.Actor { return c.actor }

func (c *UpdateShipmentStatusCommand) setShipmentID(shipmentID kernel.EntityID) error {
	if err := shipmentID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shipmentID", err)
	}
	c.shipmentID = shipmentID
	return nil
}
