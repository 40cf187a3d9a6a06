package kernel

import (
	"fmt"
	"strings"

	"parcelops/internal/pkg/errs"
)

// ErrEntityIDIsNotConstructed indicates that an EntityID was not initialized
// through one of the constructor functions. It is returned when validating a
// zero-value EntityID.
var ErrEntityIDIsNotConstructed = errs.NewValueIsRequiredError(
	"EntityID must be created via EntityKind.Format or EntityIDFromString",
)

// EntityKind describes one category of record with its own identifier prefix
// and numbering sequence. Identifiers are human-readable, fixed-width and
// strictly increasing per kind (e.g. CL000007, SHP003, AG0004).
//
// The prefix/width pairs mirror the numbering scheme of the operational
// system this backend replaces; widths intentionally differ per kind.
type EntityKind struct {
	name   string
	prefix string
	width  int
}

// Registered entity kinds. Every creation path allocates its identifier from
// the sequence belonging to one of these kinds; kinds without a creation
// endpoint in this service (vehicle, tour, ...) are still registered so their
// sequences stay reserved.
var (
	KindClient    = EntityKind{name: "client", prefix: "CL", width: 6}
	KindVehicle   = EntityKind{name: "vehicle", prefix: "VH", width: 6}
	KindDriver    = EntityKind{name: "driver", prefix: "CH", width: 6}
	KindShipment  = EntityKind{name: "shipment", prefix: "SHP", width: 3}
	KindPackage   = EntityKind{name: "package", prefix: "PCG", width: 3}
	KindTour      = EntityKind{name: "tour", prefix: "TOU", width: 3}
	KindInvoice   = EntityKind{name: "invoice", prefix: "INV", width: 3}
	KindAgent     = EntityKind{name: "agent", prefix: "AG", width: 4}
	KindIncident  = EntityKind{name: "incident", prefix: "INC", width: 6}
	KindComplaint = EntityKind{name: "complaint", prefix: "REC", width: 6}
)

// Name returns the kind's registry name (e.g. "shipment").
func (k EntityKind) Name() string {
	return k.name
}

// Prefix returns the kind's identifier prefix (e.g. "SHP").
func (k EntityKind) Prefix() string {
	return k.prefix
}

// Validate reports whether the kind is one of the registered kinds.
func (k EntityKind) Validate() error {
	if k.name == "" || k.prefix == "" || k.width == 0 {
		return errs.NewValueIsInvalidError("entity kind")
	}
	return nil
}

// Format builds the identifier for sequence number n of this kind,
// zero-padding the suffix to the kind's width. Numbers that outgrow the
// width are not truncated; the identifier just gets longer, which preserves
// uniqueness at the cost of alignment.
func (k EntityKind) Format(n int64) EntityID {
	return EntityID{value: fmt.Sprintf("%s%0*d", k.prefix, k.width, n)}
}

// EntityID is a value object holding one allocated identifier. It is
// immutable once assigned and never reused; the zero value is invalid.
type EntityID struct {
	value string
}

// EntityIDFromString restores an EntityID from its stored representation.
// Returns an error for blank input.
func EntityIDFromString(s string) (EntityID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return EntityID{}, ErrEntityIDIsNotConstructed
	}
	return EntityID{value: s}, nil
}

// String returns the identifier text (e.g. "SHP003").
func (id EntityID) String() string {
	return id.value
}

// IsZero reports whether the identifier has not been assigned.
func (id EntityID) IsZero() bool {
	return id.value == ""
}

// IsEqual compares two identifiers using the same loose normalization as
// actor identity checks: surrounding whitespace and letter case are ignored.
// Session-stored identifiers and database-stored identifiers may differ in
// representation, so exact string equality is deliberately not required.
func (id EntityID) IsEqual(other EntityID) bool {
	return SameIdentity(id.value, other.value)
}

// Validate returns ErrEntityIDIsNotConstructed for a zero-value identifier.
func (id EntityID) Validate() error {
	if id.IsZero() {
		return ErrEntityIDIsNotConstructed
	}
	return nil
}

// SameIdentity compares two opaque identifiers tolerantly: both sides are
// trimmed and compared case-insensitively. This is the single comparison
// used for driver-ownership and client-ownership checks.
func SameIdentity(a, b string) bool {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	if a == "" || b == "" {
		return false
	}
	return strings.EqualFold(a, b)
}
