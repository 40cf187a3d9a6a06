package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"parcelops/internal/core/domain/model/kernel"
	"parcelops/internal/core/domain/model/shipment"
	"parcelops/internal/pkg/errs"

	"gorm.io/gorm"
)

// TrackParcelQueryHandler assembles the public tracking view with direct
// SQL reads.
type TrackParcelQueryHandler struct {
	db *gorm.DB
}

// NewTrackParcelQueryHandler creates a handler for tracking lookups.
func NewTrackParcelQueryHandler(db *gorm.DB) TrackParcelQueryHandler {
	return TrackParcelQueryHandler{db: db}
}

// Handle executes the tracking lookup.
//
// The package is resolved by tracking number, then two independent signals
// feed the heuristic: whether this package has a shipment, and the status of
// the owning client's most recent shipment across all their packages. The
// event list is built in derivation order, not globally sorted.
func (h TrackParcelQueryHandler) Handle(
	ctx context.Context,
	query TrackParcelQuery,
) (TrackParcelQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackParcelQueryResponse{}, err
	}

	var (
		packageID      string
		clientID       string
		clientEmail    string
		packageCreated time.Time
	)

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.client_id,
			c.email,
			p.created_at
		FROM packages p
		JOIN clients c ON c.id = p.client_id
		WHERE p.tracking_number = ?
	`, query.TrackingNumber()).Row().Scan(&packageID, &clientID, &clientEmail, &packageCreated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TrackParcelQueryResponse{}, errs.NewObjectNotFoundError(
				"trackingNumber", query.TrackingNumber())
		}
		return TrackParcelQueryResponse{}, err
	}

	// an authenticated client may only track their own packages; every other
	// caller passes through unchecked
	if query.Actor().IsClient() && !kernel.SameIdentity(clientID, query.Actor().ID()) {
		return TrackParcelQueryResponse{}, ErrNotParcelOwner
	}

	resp := TrackParcelQueryResponse{
		TrackingNumber: query.TrackingNumber(),
		Client:         TrackingClient{ID: clientID, Email: clientEmail},
		Events: []TrackingEvent{
			{Description: "Package registered", Date: packageCreated},
		},
	}

	var (
		shipmentID      string
		scheduledDate   sql.NullTime
		shipmentCreated time.Time
		hasShipment     bool
	)

	err = h.db.WithContext(ctx).Raw(`
		SELECT id, scheduled_date, created_at
		FROM shipments
		WHERE package_id = ?
	`, packageID).Row().Scan(&shipmentID, &scheduledDate, &shipmentCreated)
	switch {
	case err == nil:
		hasShipment = true
		if scheduledDate.Valid {
			d := scheduledDate.Time
			resp.EstimatedDelivery = &d
		}
		resp.Events = append(resp.Events, TrackingEvent{
			Description: fmt.Sprintf("Shipment %s created", shipmentID),
			Date:        shipmentCreated,
		})
	case errors.Is(err, sql.ErrNoRows):
		// package exists before its shipment does
	default:
		return TrackParcelQueryResponse{}, err
	}

	var (
		latestStatus  string
		latestCreated time.Time
		hasLatest     bool
	)

	err = h.db.WithContext(ctx).Raw(`
		SELECT status, created_at
		FROM shipments
		WHERE client_id = ?
		ORDER BY created_at DESC
		LIMIT 1
	`, clientID).Row().Scan(&latestStatus, &latestCreated)
	switch {
	case err == nil:
		hasLatest = true
		resp.Events = append(resp.Events, TrackingEvent{
			Description: fmt.Sprintf("Latest shipment status: %s", latestStatus),
			Date:        latestCreated,
		})
	case errors.Is(err, sql.ErrNoRows):
	default:
		return TrackParcelQueryResponse{}, err
	}

	switch {
	case hasLatest && latestStatus == shipment.StatusDelivered.String():
		resp.Status = "Delivered"
		resp.Progress = 100
	case hasShipment:
		resp.Status = "In Transit"
		resp.Progress = 60
	default:
		resp.Status = "Created"
		resp.Progress = 5
	}

	return resp, nil
}
