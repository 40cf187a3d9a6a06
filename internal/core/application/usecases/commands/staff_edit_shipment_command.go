package commands

import (
	"errors"
	"time"

	"parcelops/internal/core/domain/model/kernel"
	"parcelops/internal/core/domain/model/shipment"
	"parcelops/internal/pkg/errs"
	"parcelops/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrStaffEditShipmentCommandIsNotConstructed = errors.New(
		"StaffEditShipmentCommand must be created via NewStaffEditShipmentCommand constructor",
	)

	// ErrStaffRoleRequired is the authorization failure for staff-tier
	// operations attempted without the admin or agent role.
	ErrStaffRoleRequired = errors.New("operation requires a staff role")
)

// StaffEditShipmentPatch carries the optional fields of a staff edit.
// A nil field is left untouched. DriverID set to the empty string releases
// the shipment back to the unclaimed pool; ClearScheduledDate removes the
// planned date.
type StaffEditShipmentPatch struct {
	Status             *string
	DriverID           *string
	Origin             *string
	Destination        *string
	Zone               *string
	Speed              *string
	Distance           *string
	ScheduledDate      *time.Time
	ClearScheduledDate bool
	Description        *string
}

// StaffEditShipmentCommand represents a staff edit of a shipment. Every wire
// value is parsed here so the handler only ever sees valid field values.
type StaffEditShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.EntityID
	actor      kernel.Actor

	status      *shipment.Status
	setDriver   bool
	driverID    *kernel.EntityID
	origin      *string
	destination *string
	zone        *shipment.Zone
	speed       *shipment.Speed
	distance    *decimal.Decimal

	scheduledDate      *time.Time
	clearScheduledDate bool
	description        *string

	guard guard.ConstructorGuard
}

// NewStaffEditShipmentCommand creates a staff edit command from a patch.
func NewStaffEditShipmentCommand(
	shipmentID kernel.EntityID,
	actor kernel.Actor,
	patch StaffEditShipmentPatch,
) (StaffEditShipmentCommand, error) {
	cmd := StaffEditShipmentCommand{
		actor:              actor,
		origin:             patch.Origin,
		destination:        patch.Destination,
		scheduledDate:      patch.ScheduledDate,
		clearScheduledDate: patch.ClearScheduledDate,
		description:        patch.Description,
		guard:              guard.NewConstructorGuard(),
	}

	if err := cmd.setShipmentID(shipmentID); err != nil {
		return StaffEditShipmentCommand{}, err
	}

	if patch.Status != nil {
		status, err := shipment.StatusFromString(*patch.Status)
		if err != nil {
			return StaffEditShipmentCommand{}, err
		}
		cmd.status = &status
	}

	if patch.DriverID != nil {
		cmd.setDriver = true
		if *patch.DriverID != "" {
			driverID, err := kernel.EntityIDFromString(*patch.DriverID)
			if err != nil {
				return StaffEditShipmentCommand{}, err
			}
			cmd.driverID = &driverID
		}
	}

	if patch.Zone != nil {
		zone, err := shipment.ZoneFromString(*patch.Zone)
		if err != nil {
			return StaffEditShipmentCommand{}, err
		}
		cmd.zone = &zone
	}

	if patch.Speed != nil {
		speed, err := shipment.SpeedFromString(*patch.Speed)
		if err != nil {
			return StaffEditShipmentCommand{}, err
		}
		cmd.speed = &speed
	}

	if patch.Distance != nil {
		distance, err := decimal.NewFromString(*patch.Distance)
		if err != nil {
			return StaffEditShipmentCommand{}, errs.NewValueIsInvalidErrorWithCause("distance", err)
		}
		cmd.distance = &distance
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StaffEditShipmentCommand) Validate() error {
	return c.guard.Validate(ErrStaffEditShipmentCommandIsNotConstructed)
}

// ShipmentID returns the shipment being edited.
func (c StaffEditShipmentCommand) ShipmentID() kernel.EntityID { return c.shipmentID }

// Actor returns the requesting party.
func (c StaffEditShipmentCommand) Actor() kernel.Actor { return c.actor }

func (c *StaffEditShipmentCommand) setShipmentID(shipmentID kernel.EntityID) error {
	if err := shipmentID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shipmentID", err)
	}
	c.shipmentID = shipmentID
	return nil
}

// apply writes the present fields onto the aggregate.
func (c StaffEditShipmentCommand) apply(aggregate *shipment.Shipment) error {
	if c.status != nil {
		if err := aggregate.SetStatus(*c.status); err != nil {
			return err
		}
	}
	if c.setDriver {
		if err := aggregate.SetDriver(c.driverID); err != nil {
			return err
		}
	}
	if c.origin != nil {
		if err := aggregate.SetOrigin(*c.origin); err != nil {
			return err
		}
	}
	if c.destination != nil {
		if err := aggregate.SetDestination(*c.destination); err != nil {
			return err
		}
	}
	if c.zone != nil {
		if err := aggregate.SetZone(*c.zone); err != nil {
			return err
		}
	}
	if c.speed != nil {
		if err := aggregate.SetSpeed(*c.speed); err != nil {
			return err
		}
	}
	if c.distance != nil {
		if err := aggregate.SetDistance(*c.distance); err != nil {
			return err
		}
	}
	if c.clearScheduledDate {
		aggregate.SetScheduledDate(nil)
	} else if c.scheduledDate != nil {
		aggregate.SetScheduledDate(c.scheduledDate)
	}
	if c.description != nil {
		aggregate.SetDescription(*c.description)
	}

	return nil
}
