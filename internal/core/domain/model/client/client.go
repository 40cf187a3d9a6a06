// Package client contains the Client entity, a plain persisted record with a
// generated identifier and no state machine of its own.
package client

import (
	"errors"
	"strings"
	"time"

	"parcelops/internal/core/domain/model/kernel"
	"parcelops/internal/pkg/errs"
)

// ErrClientIsNotConstructed is returned when a Client instance was not
// created through NewClient or RestoreClient.
var ErrClientIsNotConstructed = errors.New("Client must be created via NewClient constructor")

// Client is a customer of the parcel business.
type Client struct {
	id           kernel.EntityID
	name         string
	email        string
	phone        string
	address      string
	city         string
	country      string
	registeredAt time.Time

	isConstructed bool
}

// NewClient creates a client record. Email must look like an address and is
// unique in storage.
func NewClient(
	id kernel.EntityID,
	name string,
	email string,
	phone string,
	address string,
	city string,
	country string,
	registeredAt time.Time,
) (*Client, error) {
	c := &Client{
		phone:         phone,
		address:       address,
		city:          city,
		country:       country,
		registeredAt:  registeredAt,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setEmail(email),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreClient reconstructs a client from persistence.
func RestoreClient(
	id kernel.EntityID,
	name string,
	email string,
	phone string,
	address string,
	city string,
	country string,
	registeredAt time.Time,
) (*Client, error) {
	return NewClient(id, name, email, phone, address, city, country, registeredAt)
}

// Validate ensures the instance was created through a constructor.
func (c *Client) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrClientIsNotConstructed
	}
	return nil
}

// ID returns the client identifier.
func (c *Client) ID() kernel.EntityID { return c.id }

// Name returns the client's full name.
func (c *Client) Name() string { return c.name }

// Email returns the client's email address.
func (c *Client) Email() string { return c.email }

// Phone returns the client's phone number.
func (c *Client) Phone() string { return c.phone }

// Address returns the street address.
func (c *Client) Address() string { return c.address }

// City returns the city.
func (c *Client) City() string { return c.city }

// Country returns the country.
func (c *Client) Country() string { return c.country }

// RegisteredAt returns the registration timestamp.
func (c *Client) RegisteredAt() time.Time { return c.registeredAt }

func (c *Client) setID(id kernel.EntityID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Client) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Client) setEmail(email string) error {
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}
	c.email = email
	return nil
}
