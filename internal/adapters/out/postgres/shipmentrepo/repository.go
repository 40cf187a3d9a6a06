package shipmentrepo

import (
	"context"
	"errors"

	"parcelops/internal/adapters/out/postgres/pgerrs"
	"parcelops/internal/core/domain/model/kernel"
	"parcelops/internal/core/domain/model/shipment"
	"parcelops/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormShipmentRepository implements ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.EntityID, aggregate any)
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new shipment to the database.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		// the only unique index besides the allocator-fed key is package_id,
		// so a unique violation here is a second shipment for the package
		if pgerrs.IsUniqueViolation(err) {
			return shipment.ErrDuplicateForPackage
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing shipment to the database. Select("*") forces the
// write of zeroed columns, so releasing a driver persists the NULL.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ShipmentDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a shipment by ID.
func (r *GormShipmentRepository) Get(ctx context.Context, id kernel.EntityID) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetForUpdate retrieves a shipment while holding a FOR UPDATE row lock for
// the rest of the enclosing transaction. A lock wait exceeding the
// transaction's lock_timeout surfaces as a ContentionTimeoutError.
func (r *GormShipmentRepository) GetForUpdate(ctx context.Context, id kernel.EntityID) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", id.String())
		}
		if pgerrs.IsLockTimeout(err) {
			return nil, errs.NewContentionTimeoutError("shipment "+id.String(), err)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByPackageID retrieves the shipment linked to a package.
func (r *GormShipmentRepository) GetByPackageID(
	ctx context.Context, packageID kernel.EntityID,
) (*shipment.Shipment, error) {
	if err := packageID.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "package_id = ?", packageID.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment for package", packageID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllUnassigned retrieves PENDING shipments with no driver, oldest first.
func (r *GormShipmentRepository) GetAllUnassigned(ctx context.Context) ([]*shipment.Shipment, error) {
	var dtos []ShipmentDTO
	err := r.db.WithContext(ctx).
		Where("driver_id IS NULL AND status = ?", shipment.StatusPending.String()).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

// GetAllByDriver retrieves every shipment assigned to the given driver.
func (r *GormShipmentRepository) GetAllByDriver(
	ctx context.Context, driverID kernel.EntityID,
) ([]*shipment.Shipment, error) {
	if err := driverID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ShipmentDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "driver_id = ?", driverID.String()).Error; err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

// Delete removes a shipment row.
func (r *GormShipmentRepository) Delete(ctx context.Context, id kernel.EntityID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ShipmentDTO{}, "id = ?", id.String())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("shipment", id.String())
	}

	return nil
}

func (r *GormShipmentRepository) toDomainAll(dtos []ShipmentDTO) ([]*shipment.Shipment, error) {
	shipments := make([]*shipment.Shipment, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		shipments = append(shipments, s)
	}

	return shipments, nil
}
