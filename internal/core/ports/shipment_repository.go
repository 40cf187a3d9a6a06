package ports

import (
	"context"

	"parcelops/internal/core/domain/model/kernel"
	"parcelops/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment by its identifier.
	Get(ctx context.Context, id kernel.EntityID) (*shipment.Shipment, error)

	// GetForUpdate retrieves a shipment while holding a row-level write lock
	// for the remainder of the enclosing transaction. The claim protocol and
	// the driver status update depend on this lock: the re-read of the driver
	// field and the subsequent write must be one critical section.
	GetForUpdate(ctx context.Context, id kernel.EntityID) (*shipment.Shipment, error)

	// GetByPackageID retrieves the shipment linked to a package, if any.
	GetByPackageID(ctx context.Context, packageID kernel.EntityID) (*shipment.Shipment, error)

	// GetAllUnassigned retrieves PENDING shipments with no driver, oldest first.
	GetAllUnassigned(ctx context.Context) ([]*shipment.Shipment, error)

	// GetAllByDriver retrieves every shipment assigned to the given driver.
	GetAllByDriver(ctx context.Context, driverID kernel.EntityID) ([]*shipment.Shipment, error)

	// Delete removes a shipment. Referential checks against dependent records
	// are the caller's responsibility.
	Delete(ctx context.Context, id kernel.EntityID) error
}
