package shipment

import (
	"errors"
	"time"

	"parcelops/internal/core/domain/model/kernel"
	"parcelops/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
	// created through NewShipment or RestoreShipment.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

	// ErrAlreadyAssigned is the claim protocol's negative result: the shipment
	// already has a driver. It is a normal business outcome, not an internal
	// failure; a caller losing the race must not retry the same claim.
	ErrAlreadyAssigned = errors.New("shipment is already assigned to a driver")

	// ErrNotAssignedDriver is returned when a driver-facing operation is
	// attempted by anyone but the shipment's assigned driver.
	ErrNotAssignedDriver = errors.New("actor is not the assigned driver of this shipment")

	// ErrDuplicateForPackage is returned when a package that already has a
	// shipment is given a second one. The store backs this with a unique
	// index on the package reference, so the error also surfaces when two
	// concurrent creations race past the application-level check.
	ErrDuplicateForPackage = errors.New("package already has a shipment")
)

// Shipment is the aggregate root for one physical movement of a package.
//
// Invariants:
//   - exactly one package, linked at construction and immutable afterwards
//   - status is always one of the Status vocabulary
//   - a driver is assigned if and only if the claim protocol (or a staff
//     edit) set one; an unclaimed shipment carries a nil driver
//   - the identifier is allocated once and never changes
type Shipment struct {
	id            kernel.EntityID
	packageID     kernel.EntityID
	clientID      kernel.EntityID
	origin        string
	destination   string
	zone          Zone
	speed         Speed
	distance      decimal.Decimal
	scheduledDate *time.Time
	description   string
	status        Status
	driverID      *kernel.EntityID
	createdAt     time.Time

	isConstructed bool
}

// NewShipment creates a shipment in PENDING status with no driver assigned.
// The identifier must already be allocated; distance must be positive.
func NewShipment(
	id kernel.EntityID,
	packageID kernel.EntityID,
	clientID kernel.EntityID,
	origin string,
	destination string,
	zone Zone,
	speed Speed,
	distance decimal.Decimal,
	scheduledDate *time.Time,
	description string,
	createdAt time.Time,
) (*Shipment, error) {
	s := &Shipment{
		status:        StatusPending,
		description:   description,
		scheduledDate: scheduledDate,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setPackageID(packageID),
		s.setClientID(clientID),
		s.setOrigin(origin),
		s.setDestination(destination),
		s.setZone(zone),
		s.setSpeed(speed),
		s.setDistance(distance),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment reconstructs a shipment from persistence, including its
// current status and driver assignment.
func RestoreShipment(
	id kernel.EntityID,
	packageID kernel.EntityID,
	clientID kernel.EntityID,
	origin string,
	destination string,
	zone Zone,
	speed Speed,
	distance decimal.Decimal,
	scheduledDate *time.Time,
	description string,
	status Status,
	driverID *kernel.EntityID,
	createdAt time.Time,
) (*Shipment, error) {
	s, err := NewShipment(
		id, packageID, clientID,
		origin, destination, zone, speed,
		distance, scheduledDate, description, createdAt,
	)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	s.status = status

	if driverID != nil {
		if err = driverID.Validate(); err != nil {
			return nil, err
		}
		d := *driverID
		s.driverID = &d
	}

	return s, nil
}

// Validate ensures the instance was created through a constructor.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// ID returns the shipment identifier.
func (s *Shipment) ID() kernel.EntityID { return s.id }

// PackageID returns the linked package's identifier.
func (s *Shipment) PackageID() kernel.EntityID { return s.packageID }

// ClientID returns the denormalized owning-client reference.
func (s *Shipment) ClientID() kernel.EntityID { return s.clientID }

// Origin returns the departure location.
func (s *Shipment) Origin() string { return s.origin }

// Destination returns the delivery location.
func (s *Shipment) Destination() string { return s.destination }

// Zone returns the geographic reach.
func (s *Shipment) Zone() Zone { return s.zone }

// Speed returns the service level.
func (s *Shipment) Speed() Speed { return s.speed }

// Distance returns the planned distance in kilometres.
func (s *Shipment) Distance() decimal.Decimal { return s.distance }

// ScheduledDate returns the planned shipment date, nil when unscheduled.
func (s *Shipment) ScheduledDate() *time.Time { return s.scheduledDate }

// Description returns the free-text description.
func (s *Shipment) Description() string { return s.description }

// Status returns the current lifecycle status.
func (s *Shipment) Status() Status { return s.status }

// Driver returns the assigned driver's identifier, nil until claimed.
func (s *Shipment) Driver() *kernel.EntityID { return s.driverID }

// CreatedAt returns the creation timestamp.
func (s *Shipment) CreatedAt() time.Time { return s.createdAt }

// Claim assigns the shipment to the given driver. It succeeds only when no
// driver is currently assigned; otherwise it returns ErrAlreadyAssigned and
// leaves the shipment untouched. A completed delivery does not reset the
// claim: once any driver is recorded, every later claim loses.
//
// The in-memory check is only half the protocol; the caller must hold a row
// lock on this shipment for the whole read-check-write sequence so that two
// concurrent claimants serialize and exactly one observes a nil driver.
func (s *Shipment) Claim(driverID kernel.EntityID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if s.driverID != nil {
		return ErrAlreadyAssigned
	}

	d := driverID
	s.driverID = &d
	return nil
}

// IsAssignedTo reports whether the given actor identity is this shipment's
// assigned driver, using the tolerant identifier comparison.
func (s *Shipment) IsAssignedTo(actorID string) bool {
	return s.driverID != nil && kernel.SameIdentity(s.driverID.String(), actorID)
}

// ApplyDriverAction writes the status mapped from the driver action. The
// write is an unconditional overwrite: a terminal status can be replaced
// (e.g. "delayed" after DELIVERED moves the shipment back to IN_TRANSIT).
// Ownership must already have been verified by the caller under a row lock.
func (s *Shipment) ApplyDriverAction(action DriverAction) error {
	status, err := action.Status()
	if err != nil {
		return err
	}

	s.status = status
	return nil
}

// SetStatus writes any valid status. This is the staff tier: no ownership
// requirement and no transition-legality check.
func (s *Shipment) SetStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}

// SetDriver overwrites the driver assignment (staff tier). A nil value
// releases the shipment back to the unclaimed pool.
func (s *Shipment) SetDriver(driverID *kernel.EntityID) error {
	if driverID == nil {
		s.driverID = nil
		return nil
	}
	if err := driverID.Validate(); err != nil {
		return err
	}

	d := *driverID
	s.driverID = &d
	return nil
}

// SetOrigin updates the departure location (staff tier).
func (s *Shipment) SetOrigin(origin string) error { return s.setOrigin(origin) }

// SetDestination updates the delivery location (staff tier).
func (s *Shipment) SetDestination(destination string) error { return s.setDestination(destination) }

// SetZone updates the geographic reach (staff tier).
func (s *Shipment) SetZone(zone Zone) error { return s.setZone(zone) }

// SetSpeed updates the service level (staff tier).
func (s *Shipment) SetSpeed(speed Speed) error { return s.setSpeed(speed) }

// SetDistance updates the planned distance (staff tier).
func (s *Shipment) SetDistance(distance decimal.Decimal) error { return s.setDistance(distance) }

// SetScheduledDate updates the planned shipment date (staff tier).
func (s *Shipment) SetScheduledDate(date *time.Time) {
	s.scheduledDate = date
}

// SetDescription updates the free-text description (staff tier).
func (s *Shipment) SetDescription(description string) {
	s.description = description
}

func (s *Shipment) setID(id kernel.EntityID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setPackageID(id kernel.EntityID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("packageID", err)
	}
	s.packageID = id
	return nil
}

func (s *Shipment) setClientID(id kernel.EntityID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("clientID", err)
	}
	s.clientID = id
	return nil
}

func (s *Shipment) setOrigin(origin string) error {
	if origin == "" {
		return errs.NewValueIsRequiredError("origin")
	}
	s.origin = origin
	return nil
}

func (s *Shipment) setDestination(destination string) error {
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}
	s.destination = destination
	return nil
}

func (s *Shipment) setZone(zone Zone) error {
	if err := zone.Validate(); err != nil {
		return err
	}
	s.zone = zone
	return nil
}

func (s *Shipment) setSpeed(speed Speed) error {
	if err := speed.Validate(); err != nil {
		return err
	}
	s.speed = speed
	return nil
}

func (s *Shipment) setDistance(distance decimal.Decimal) error {
	if distance.IsNegative() || distance.IsZero() {
		return errs.NewValueIsInvalidError("distance")
	}
	s.distance = distance
	return nil
}
