package queries

import (
	"context"
	"database/sql"

	"parcelops/internal/core/domain/model/shipment"

	"gorm.io/gorm"
)

// GetUnassignedShipmentsQueryHandler reads the claimable pool with a direct
// SQL query, oldest first so long-waiting shipments surface at the top.
type GetUnassignedShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetUnassignedShipmentsQueryHandler creates a handler for claimable-pool
// queries.
func NewGetUnassignedShipmentsQueryHandler(db *gorm.DB) GetUnassignedShipmentsQueryHandler {
	return GetUnassignedShipmentsQueryHandler{db: db}
}

// Handle executes the query.
func (h GetUnassignedShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetUnassignedShipmentsQuery,
) ([]GetUnassignedShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	shipments := make([]GetUnassignedShipmentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			package_id,
			origin,
			destination,
			zone,
			speed,
			distance,
			scheduled_date,
			created_at
		FROM shipments
		WHERE driver_id IS NULL AND status = ?
		ORDER BY created_at
	`, shipment.StatusPending.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetUnassignedShipmentsQueryResponse
		var scheduledDate sql.NullTime

		err = rows.Scan(
			&resp.ID,
			&resp.PackageID,
			&resp.Origin,
			&resp.Destination,
			&resp.Zone,
			&resp.Speed,
			&resp.Distance,
			&scheduledDate,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if scheduledDate.Valid {
			d := scheduledDate.Time
			resp.ScheduledDate = &d
		}
		shipments = append(shipments, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}
