// Package parcel contains the Package entity: the client-owned item a
// shipment moves. A package exists before its shipment and carries the
// client-visible tracking number, which is distinct from the internal
// package identifier.
package parcel

import (
	"errors"
	"strings"
	"time"

	"parcelops/internal/core/domain/model/kernel"
	"parcelops/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrParcelIsNotConstructed is returned when a Parcel instance was not
// created through NewParcel or RestoreParcel.
var ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")

// Type classifies the package contents.
type Type string

const (
	TypeDocuments   Type = "DOC"
	TypeElectronics Type = "ELEC"
	TypeFurniture   Type = "FURN"
	TypeOther       Type = "OTHER"
)

// TypeFromString parses a wire or database value into a Type.
func TypeFromString(s string) (Type, error) {
	t := Type(s)
	switch t {
	case TypeDocuments, TypeElectronics, TypeFurniture, TypeOther:
		return t, nil
	default:
		return "", errs.NewValueIsInvalidError("package type")
	}
}

// NewTrackingNumber issues a fresh client-visible tracking number. The value
// is opaque; uniqueness comes from the underlying random UUID.
func NewTrackingNumber() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "SW" + raw[:12]
}

// Parcel is the package entity.
type Parcel struct {
	id             kernel.EntityID
	trackingNumber string
	clientID       kernel.EntityID
	weight         decimal.Decimal
	pieces         int
	parcelType     Type
	createdAt      time.Time

	isConstructed bool
}

// NewParcel creates a package record. Weight must be positive, pieces at
// least one, and the tracking number non-empty.
func NewParcel(
	id kernel.EntityID,
	trackingNumber string,
	clientID kernel.EntityID,
	weight decimal.Decimal,
	pieces int,
	parcelType Type,
	createdAt time.Time,
) (*Parcel, error) {
	p := &Parcel{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setTrackingNumber(trackingNumber),
		p.setClientID(clientID),
		p.setWeight(weight),
		p.setPieces(pieces),
		p.setType(parcelType),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreParcel reconstructs a package from persistence.
func RestoreParcel(
	id kernel.EntityID,
	trackingNumber string,
	clientID kernel.EntityID,
	weight decimal.Decimal,
	pieces int,
	parcelType Type,
	createdAt time.Time,
) (*Parcel, error) {
	return NewParcel(id, trackingNumber, clientID, weight, pieces, parcelType, createdAt)
}

// Validate ensures the instance was created through a constructor.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}
	return nil
}

// ID returns the internal package identifier.
func (p *Parcel) ID() kernel.EntityID { return p.id }

// TrackingNumber returns the client-visible tracking number.
func (p *Parcel) TrackingNumber() string { return p.trackingNumber }

// ClientID returns the owning client's identifier.
func (p *Parcel) ClientID() kernel.EntityID { return p.clientID }

// Weight returns the package weight in kilograms.
func (p *Parcel) Weight() decimal.Decimal { return p.weight }

// Pieces returns the number of pieces in the package.
func (p *Parcel) Pieces() int { return p.pieces }

// ParcelType returns the contents classification.
func (p *Parcel) ParcelType() Type { return p.parcelType }

// CreatedAt returns the creation timestamp.
func (p *Parcel) CreatedAt() time.Time { return p.createdAt }

// IsOwnedBy reports whether the given actor identity owns this package.
func (p *Parcel) IsOwnedBy(actorID string) bool {
	return kernel.SameIdentity(p.clientID.String(), actorID)
}

func (p *Parcel) setID(id kernel.EntityID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setTrackingNumber(trackingNumber string) error {
	if strings.TrimSpace(trackingNumber) == "" {
		return errs.NewValueIsRequiredError("trackingNumber")
	}
	p.trackingNumber = trackingNumber
	return nil
}

func (p *Parcel) setClientID(id kernel.EntityID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("clientID", err)
	}
	p.clientID = id
	return nil
}

func (p *Parcel) setWeight(weight decimal.Decimal) error {
	if weight.IsNegative() || weight.IsZero() {
		return errs.NewValueIsInvalidError("weight")
	}
	p.weight = weight
	return nil
}

func (p *Parcel) setPieces(pieces int) error {
	if pieces < 1 {
		return errs.NewValueIsOutOfRangeError("pieces", pieces, 1, 1000)
	}
	p.pieces = pieces
	return nil
}

func (p *Parcel) setType(t Type) error {
	if _, err := TypeFromString(string(t)); err != nil {
		return err
	}
	p.parcelType = t
	return nil
}
