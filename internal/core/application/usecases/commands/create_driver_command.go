package commands

import (
	"errors"
	"strings"

	"parcelops/internal/core/domain/model/kernel"
	"parcelops/internal/pkg/errs"
	"parcelops/internal/pkg/guard"
)

var (
	ErrCreateDriverCommandIsNotConstructed = errors.New(
		"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
	)
)

// CreateDriverCommand represents a request to register a new driver.
type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	name          string
	email         string
	phone         string
	licenseNumber string
	vehicleID     *kernel.EntityID

	guard guard.ConstructorGuard
}

// NewCreateDriverCommand creates a command to register a driver.
// vehicleID is optional; license number is the unique credential.
func NewCreateDriverCommand(
	name, email, phone, licenseNumber string,
	vehicleID *kernel.EntityID,
) (CreateDriverCommand, error) {
	cmd := CreateDriverCommand{
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setEmail(email),
		cmd.setLicenseNumber(licenseNumber),
		cmd.setVehicleID(vehicleID),
	); err != nil {
		return CreateDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

// Name returns the driver's full name.
func (c CreateDriverCommand) Name() string { return c.name }

// Email returns the driver's email address.
func (c CreateDriverCommand) Email() string { return c.email }

// Phone returns the driver's phone number.
func (c CreateDriverCommand) Phone() string { return c.phone }

// LicenseNumber returns the driver's license number.
func (c CreateDriverCommand) LicenseNumber() string { return c.licenseNumber }

// VehicleID returns the optional assigned vehicle.
func (c CreateDriverCommand) VehicleID() *kernel.EntityID { return c.vehicleID }

func (c *CreateDriverCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateDriverCommand) setEmail(email string) error {
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}
	c.email = email
	return nil
}

func (c *CreateDriverCommand) setLicenseNumber(licenseNumber string) error {
	if strings.TrimSpace(licenseNumber) == "" {
		return errs.NewValueIsRequiredError("licenseNumber")
	}
	c.licenseNumber = licenseNumber
	return nil
}

func (c *CreateDriverCommand) setVehicleID(vehicleID *kernel.EntityID) error {
	if vehicleID == nil {
		return nil
	}
	if err := vehicleID.Validate(); err != nil {
		return err
	}
	v := *vehicleID
	c.vehicleID = &v
	return nil
}
