package commands

import (
	"errors"
	"strings"

	"parcelops/internal/pkg/errs"
	"parcelops/internal/pkg/guard"
)

var (
	ErrCreateClientCommandIsNotConstructed = errors.New(
		"CreateClientCommand must be created via NewCreateClientCommand constructor",
	)
)

// CreateClientCommand represents a request to register a new client.
// The identifier is allocated inside the handler's transaction.
type CreateClientCommand struct { //nolint:recvcheck //using for validation
	name    string
	email   string
	phone   string
	address string
	city    string
	country string

	guard guard.ConstructorGuard
}

// NewCreateClientCommand creates a command to register a client.
// Name and a plausible email are required; the rest is optional.
func NewCreateClientCommand(name, email, phone, address, city, country string) (CreateClientCommand, error) {
	cmd := CreateClientCommand{
		phone:   phone,
		address: address,
		city:    city,
		country: country,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setEmail(email),
	); err != nil {
		return CreateClientCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateClientCommand) Validate() error {
	return c.guard.Validate(ErrCreateClientCommandIsNotConstructed)
}

// Name returns the client's full name.
func (c CreateClientCommand) Name() string { return c.name }

// Email returns the client's email address.
func (c CreateClientCommand) Email() string { return c.email }

// Phone returns the client's phone number.
func (c CreateClientCommand) Phone() string { return c.phone }

// Address returns the street address.
func (c CreateClientCommand) Address() string { return c.address }

// City returns the city.
func (c CreateClientCommand) City() string { return c.city }

// Country returns the country.
func (c CreateClientCommand) Country() string { return c.country }

func (c *CreateClientCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateClientCommand) setEmail(email string) error {
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}
	c.email = email
	return nil
}
