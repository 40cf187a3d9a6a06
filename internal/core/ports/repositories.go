package ports

import (
	"context"

	"parcelops/internal/core/domain/model/client"
	"parcelops/internal/core/domain/model/driver"
	"parcelops/internal/core/domain/model/kernel"
	"parcelops/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for package records.
type ParcelRepository interface {
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	Get(ctx context.Context, id kernel.EntityID) (*parcel.Parcel, error)

	// GetByTrackingNumber resolves the client-visible tracking number.
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*parcel.Parcel, error)
}

// DriverRepository defines the persistence contract for driver records.
type DriverRepository interface {
	Add(ctx context.Context, aggregate *driver.Driver) error

	Update(ctx context.Context, aggregate *driver.Driver) error

	Get(ctx context.Context, id kernel.EntityID) (*driver.Driver, error)

	// GetAll retrieves every driver; used by availability reconciliation.
	GetAll(ctx context.Context) ([]*driver.Driver, error)
}

// ClientRepository defines the persistence contract for client records.
type ClientRepository interface {
	Add(ctx context.Context, aggregate *client.Client) error

	Get(ctx context.Context, id kernel.EntityID) (*client.Client, error)
}

// InvoiceRepository exposes the referential check the shipment delete path
// needs. Full invoice management lives outside this service.
type InvoiceRepository interface {
	// FindByShipment returns the identifier of the invoice referencing the
	// shipment, or a zero EntityID when none exists.
	FindByShipment(ctx context.Context, shipmentID kernel.EntityID) (kernel.EntityID, error)
}
