package commands

import (
	"errors"
	"time"

	"parcelops/internal/core/domain/model/kernel"
	"parcelops/internal/core/domain/model/shipment"
	"parcelops/internal/pkg/errs"
	"parcelops/internal/pkg/guard"
)

var (
	ErrCreateShipmentCommandIsNotConstructed = errors.New(
		"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
	)
)

// CreateShipmentCommand represents a request to open a shipment for an
// existing package. At most one shipment may exist per package; the
// handler enforces that inside its transaction.
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	packageID     kernel.EntityID
	origin        string
	destination   string
	zone          shipment.Zone
	speed         shipment.Speed
	distance      string
	scheduledDate *time.Time
	description   string

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to open a shipment.
// zone and speed are parsed eagerly; distance is parsed by the handler.
func NewCreateShipmentCommand(
	packageID kernel.EntityID,
	origin string,
	destination string,
	zone string,
	speed string,
	distance string,
	scheduledDate *time.Time,
	description string,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		scheduledDate: scheduledDate,
		description:   description,
		guard:         guard.NewConstructorGuard(),
	}

	z, err := shipment.ZoneFromString(zone)
	if err != nil {
		return CreateShipmentCommand{}, err
	}
	cmd.zone = z

	sp, err := shipment.SpeedFromString(speed)
	if err != nil {
		return CreateShipmentCommand{}, err
	}
	cmd.speed = sp

	if err = errors.Join(
		cmd.setPackageID(packageID),
		cmd.setOrigin(origin),
		cmd.setDestination(destination),
		cmd.setDistance(distance),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// PackageID returns the package the shipment moves.
func (c CreateShipmentCommand) PackageID() kernel.EntityID { return c.packageID }

// Origin returns the departure location.
func (c CreateShipmentCommand) Origin() string { return c.origin }

// Destination returns the delivery location.
func (c CreateShipmentCommand) Destination() string { return c.destination }

// Zone returns the geographic reach.
func (c CreateShipmentCommand) Zone() shipment.Zone { return c.zone }

// Speed returns the service level.
func (c CreateShipmentCommand) Speed() shipment.Speed { return c.speed }

// Distance returns the planned distance text.
func (c CreateShipmentCommand) Distance() string { return c.distance }

// ScheduledDate returns the planned shipment date, nil when unscheduled.
func (c CreateShipmentCommand) ScheduledDate() *time.Time { return c.scheduledDate }

// Description returns the free-text description.
func (c CreateShipmentCommand) Description() string { return c.description }

func (c *CreateShipmentCommand) setPackageID(packageID kernel.EntityID) error {
	if err := packageID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("packageID", err)
	}
	c.packageID = packageID
	return nil
}

func (c *CreateShipmentCommand) setOrigin(origin string) error {
	if origin == "" {
		return errs.NewValueIsRequiredError("origin")
	}
	c.origin = origin
	return nil
}

func (c *CreateShipmentCommand) setDestination(destination string) error {
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}
	c.destination = destination
	return nil
}

func (c *CreateShipmentCommand) setDistance(distance string) error {
	if distance == "" {
		return errs.NewValueIsRequiredError("distance")
	}
	c.distance = distance
	return nil
}
