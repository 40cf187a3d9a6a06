// Package driver contains the Driver entity. Credentials are opaque to this
// service; the session layer authenticates drivers and the core only sees
// their identifier and role.
package driver

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"parcelops/internal/core/domain/model/kernel"
	"parcelops/internal/pkg/errs"
)

// ErrDriverIsNotConstructed is returned when a Driver instance was not
// created through NewDriver or RestoreDriver.
var ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")

// Status is the employment status of a driver.
type Status string

const (
	StatusActive    Status = "active"
	StatusInactive  Status = "inactive"
	StatusSuspended Status = "suspended"
	StatusOnLeave   Status = "on_leave"
)

// StatusFromString parses a wire or database value into a Status.
func StatusFromString(s string) (Status, error) {
	status := Status(s)
	switch status {
	case StatusActive, StatusInactive, StatusSuspended, StatusOnLeave:
		return status, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause(
			"driver status",
			fmt.Errorf("%q is not a valid driver status", s),
		)
	}
}

// Driver is a delivery agent who claims shipments and reports on them.
type Driver struct {
	id            kernel.EntityID
	name          string
	email         string
	phone         string
	licenseNumber string
	vehicleID     *kernel.EntityID
	hiredAt       time.Time
	available     bool
	status        Status

	isConstructed bool
}

// NewDriver creates an active, available driver. The license number is the
// externally unique credential; uniqueness is enforced by storage.
func NewDriver(
	id kernel.EntityID,
	name string,
	email string,
	phone string,
	licenseNumber string,
	vehicleID *kernel.EntityID,
	hiredAt time.Time,
) (*Driver, error) {
	d := &Driver{
		phone:         phone,
		hiredAt:       hiredAt,
		available:     true,
		status:        StatusActive,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setEmail(email),
		d.setLicenseNumber(licenseNumber),
		d.setVehicleID(vehicleID),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver reconstructs a driver from persistence.
func RestoreDriver(
	id kernel.EntityID,
	name string,
	email string,
	phone string,
	licenseNumber string,
	vehicleID *kernel.EntityID,
	hiredAt time.Time,
	available bool,
	status Status,
) (*Driver, error) {
	d, err := NewDriver(id, name, email, phone, licenseNumber, vehicleID, hiredAt)
	if err != nil {
		return nil, err
	}

	if _, err = StatusFromString(string(status)); err != nil {
		return nil, err
	}
	d.available = available
	d.status = status
	return d, nil
}

// Validate ensures the instance was created through a constructor.
func (d *Driver) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDriverIsNotConstructed
	}
	return nil
}

// ID returns the driver identifier.
func (d *Driver) ID() kernel.EntityID { return d.id }

// Name returns the driver's full name.
func (d *Driver) Name() string { return d.name }

// Email returns the driver's contact email.
func (d *Driver) Email() string { return d.email }

// Phone returns the driver's contact phone number.
func (d *Driver) Phone() string { return d.phone }

// LicenseNumber returns the unique license number.
func (d *Driver) LicenseNumber() string { return d.licenseNumber }

// VehicleID returns the assigned vehicle's identifier, nil when unassigned.
func (d *Driver) VehicleID() *kernel.EntityID { return d.vehicleID }

// HiredAt returns the employment date.
func (d *Driver) HiredAt() time.Time { return d.hiredAt }

// Available reports whether the driver currently has no open shipments.
// The flag lags reality between claim activity and the reconciliation job.
func (d *Driver) Available() bool { return d.available }

// Status returns the employment status.
func (d *Driver) Status() Status { return d.status }

// SetAvailable records the reconciled availability flag.
func (d *Driver) SetAvailable(available bool) {
	d.available = available
}

// SetStatus updates the employment status (staff edits).
func (d *Driver) SetStatus(status Status) error {
	if _, err := StatusFromString(string(status)); err != nil {
		return err
	}
	d.status = status
	return nil
}

func (d *Driver) setID(id kernel.EntityID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	d.name = name
	return nil
}

func (d *Driver) setEmail(email string) error {
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}
	d.email = email
	return nil
}

func (d *Driver) setLicenseNumber(licenseNumber string) error {
	if strings.TrimSpace(licenseNumber) == "" {
		return errs.NewValueIsRequiredError("licenseNumber")
	}
	d.licenseNumber = licenseNumber
	return nil
}

func (d *Driver) setVehicleID(vehicleID *kernel.EntityID) error {
	if vehicleID == nil {
		return nil
	}
	if err := vehicleID.Validate(); err != nil {
		return err
	}
	v := *vehicleID
	d.vehicleID = &v
	return nil
}
