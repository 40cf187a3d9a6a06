package queries

import (
	"errors"
	"time"

	"parcelops/internal/core/domain/model/kernel"
	"parcelops/internal/pkg/errs"
	"parcelops/internal/pkg/guard"
)

var (
	ErrTrackParcelQueryIsNotConstructed = errors.New(
		"TrackParcelQuery must be created via NewTrackParcelQuery constructor",
	)

	// ErrNotParcelOwner is the authorization failure for a client tracking a
	// package that belongs to another client. Non-client actors are not
	// subject to this check; the tracking read is otherwise open.
	ErrNotParcelOwner = errors.New("package belongs to another client")
)

// TrackParcelQuery is the public tracking lookup, keyed by the
// client-visible tracking number.
type TrackParcelQuery struct {
	trackingNumber string
	actor          kernel.Actor

	guard guard.ConstructorGuard
}

// NewTrackParcelQuery creates a tracking lookup for the given actor.
func NewTrackParcelQuery(trackingNumber string, actor kernel.Actor) (TrackParcelQuery, error) {
	if trackingNumber == "" {
		return TrackParcelQuery{}, errs.NewValueIsRequiredError("trackingNumber")
	}

	return TrackParcelQuery{
		trackingNumber: trackingNumber,
		actor:          actor,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackParcelQuery) Validate() error {
	return q.guard.Validate(ErrTrackParcelQueryIsNotConstructed)
}

// TrackingNumber returns the tracking number being looked up.
func (q TrackParcelQuery) TrackingNumber() string { return q.trackingNumber }

// Actor returns the requesting party.
func (q TrackParcelQuery) Actor() kernel.Actor { return q.actor }

// TrackingEvent is one entry of the tracking timeline.
type TrackingEvent struct {
	Description string
	Date        time.Time
}

// TrackingClient is the minimal owner identity included in the view.
type TrackingClient struct {
	ID    string
	Email string
}

// TrackParcelQueryResponse is the public tracking view.
//
// Status and Progress come from a coarse heuristic, not from the shipment
// status machine: the owning client's most recent shipment being DELIVERED
// reads as "Delivered"/100, a package with any shipment reads as
// "In Transit"/60, and a package with no shipment yet reads as "Created"/5.
type TrackParcelQueryResponse struct {
	TrackingNumber    string
	Status            string
	Progress          int
	EstimatedDelivery *time.Time
	Events            []TrackingEvent
	Client            TrackingClient
}
