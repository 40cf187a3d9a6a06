package invoicerepo

import (
	"context"
	"errors"

	"parcelops/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormInvoiceRepository implements InvoiceRepository using GORM.
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GORM invoice repository.
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// FindByShipment returns the identifier of the invoice referencing the
// shipment, or a zero EntityID when none exists.
func (r *GormInvoiceRepository) FindByShipment(
	ctx context.Context, shipmentID kernel.EntityID,
) (kernel.EntityID, error) {
	if err := shipmentID.Validate(); err != nil {
		return kernel.EntityID{}, err
	}

	var dto InvoiceDTO
	err := r.db.WithContext(ctx).First(&dto, "shipment_id = ?", shipmentID.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return kernel.EntityID{}, nil
		}
		return kernel.EntityID{}, err
	}

	return kernel.EntityIDFromString(dto.ID)
}
