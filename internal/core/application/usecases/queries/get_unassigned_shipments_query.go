package queries

import (
	"errors"
	"time"

	"parcelops/internal/core/domain/model/kernel"
	"parcelops/internal/pkg/guard"
)

var (
	ErrGetUnassignedShipmentsQueryIsNotConstructed = errors.New(
		"GetUnassignedShipmentsQuery must be created via NewGetUnassignedShipmentsQuery constructor",
	)

	// ErrClaimablePoolRestricted is the authorization failure for a caller
	// browsing the claimable pool without a driver or staff role. The pool
	// feeds the driver dashboard; clients and anonymous callers have no use
	// for it beyond scraping open workloads.
	ErrClaimablePoolRestricted = errors.New("claimable pool is restricted to drivers and staff")
)

// GetUnassignedShipmentsQuery retrieves the claimable pool: pending
// shipments with no driver assigned.
type GetUnassignedShipmentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUnassignedShipmentsQuery creates a query for the claimable pool on
// behalf of the given actor. Only drivers and staff may browse the pool.
func NewGetUnassignedShipmentsQuery(actor kernel.Actor) (GetUnassignedShipmentsQuery, error) {
	if !actor.IsDriver() && !actor.IsStaff() {
		return GetUnassignedShipmentsQuery{}, ErrClaimablePoolRestricted
	}
	return GetUnassignedShipmentsQuery{guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUnassignedShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetUnassignedShipmentsQueryIsNotConstructed)
}

// GetUnassignedShipmentsQueryResponse is one claimable shipment.
type GetUnassignedShipmentsQueryResponse struct {
	ID            string
	PackageID     string
	Origin        string
	Destination   string
	Zone          string
	Speed         string
	Distance      string
	ScheduledDate *time.Time
	CreatedAt     time.Time
}
