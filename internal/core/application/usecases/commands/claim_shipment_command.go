package commands

import (
	"errors"

	"parcelops/internal/core/domain/model/kernel"
	"parcelops/internal/pkg/errs"
	"parcelops/internal/pkg/guard"
)

var (
	ErrClaimShipmentCommandIsNotConstructed = errors.New(
		"ClaimShipmentCommand must be created via NewClaimShipmentCommand constructor",
	)

	// ErrDriverRoleRequired is the authorization failure for driver-tier
	// operations attempted by anyone without the driver role.
	ErrDriverRoleRequired = errors.New("operation requires the driver role")
)

// ClaimShipmentCommand represents a driver's attempt to claim an unassigned
// shipment for themselves.
type ClaimShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.EntityID
	actor      kernel.Actor

	guard guard.ConstructorGuard
}

// NewClaimShipmentCommand creates a command to claim a shipment.
// The actor comes from the session layer; the role check happens in the
// handler so an unauthorized attempt is a Forbidden outcome, not a malformed
// command.
func NewClaimShipmentCommand(shipmentID kernel.EntityID, actor kernel.Actor) (ClaimShipmentCommand, error) {
	cmd := ClaimShipmentCommand{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setShipmentID(shipmentID); err != nil {
		return ClaimShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ClaimShipmentCommand) Validate() error {
	return c.guard.Validate(ErrClaimShipmentCommandIsNotConstructed)
}

// ShipmentID returns the shipment being claimed.
func (c ClaimShipmentCommand) ShipmentID() kernel.EntityID { return c.shipmentID }

// Actor returns the requesting party.
func (c ClaimShipmentCommand) Actor() kernel.Actor { return c.actor }

func (c *ClaimShipmentCommand) setShipmentID(shipmentID kernel.EntityID) error {
	if err := shipmentID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shipmentID", err)
	}
	c.shipmentID = shipmentID
	return nil
}
