package commands

import (
	"errors"

	"parcelops/internal/core/domain/model/kernel"
	"parcelops/internal/core/domain/model/parcel"
	"parcelops/internal/pkg/errs"
	"parcelops/internal/pkg/guard"
)

var (
	ErrCreateParcelCommandIsNotConstructed = errors.New(
		"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
	)
)

// CreateParcelCommand represents a request to register a package for a
// client. The tracking number is generated in the handler, not supplied.
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	clientID   kernel.EntityID
	weight     string
	pieces     int
	parcelType parcel.Type

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand creates a command to register a package.
// weight is the decimal text from the wire; it is parsed by the handler so
// malformed input fails before any transaction is opened.
func NewCreateParcelCommand(
	clientID kernel.EntityID,
	weight string,
	pieces int,
	parcelType string,
) (CreateParcelCommand, error) {
	cmd := CreateParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	typ, err := parcel.TypeFromString(parcelType)
	if err != nil {
		return CreateParcelCommand{}, err
	}
	cmd.parcelType = typ

	if err = errors.Join(
		cmd.setClientID(clientID),
		cmd.setWeight(weight),
		cmd.setPieces(pieces),
	); err != nil {
		return CreateParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

// ClientID returns the owning client's identifier.
func (c CreateParcelCommand) ClientID() kernel.EntityID { return c.clientID }

// Weight returns the package weight text.
func (c CreateParcelCommand) Weight() string { return c.weight }

// Pieces returns the number of pieces.
func (c CreateParcelCommand) Pieces() int { return c.pieces }

// ParcelType returns the contents classification.
func (c CreateParcelCommand) ParcelType() parcel.Type { return c.parcelType }

func (c *CreateParcelCommand) setClientID(clientID kernel.EntityID) error {
	if err := clientID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("clientID", err)
	}
	c.clientID = clientID
	return nil
}

func (c *CreateParcelCommand) setWeight(weight string) error {
	if weight == "" {
		return errs.NewValueIsRequiredError("weight")
	}
	c.weight = weight
	return nil
}

func (c *CreateParcelCommand) setPieces(pieces int) error {
	if pieces < 1 {
		return errs.NewValueIsOutOfRangeError("pieces", pieces, 1, 1000)
	}
	c.pieces = pieces
	return nil
}
