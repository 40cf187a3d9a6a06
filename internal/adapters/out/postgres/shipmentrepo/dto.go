// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence.
package shipmentrepo

import (
	"time"

	"parcelops/internal/core/domain/model/kernel"
	"parcelops/internal/core/domain/model/shipment"

	"github.com/shopspring/decimal"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. The package linkage is unique: a package has at most one
// shipment, enforced at the storage level.
type ShipmentDTO struct {
	ID            string `gorm:"type:varchar(16);primaryKey"`
	PackageID     string `gorm:"type:varchar(16);uniqueIndex"`
	ClientID      string `gorm:"type:varchar(16);index"`
	Origin        string
	Destination   string
	Zone          string          `gorm:"type:varchar(16)"`
	Speed         string          `gorm:"type:varchar(16)"`
	Distance      decimal.Decimal `gorm:"type:numeric(10,2)"`
	ScheduledDate *time.Time
	Description   string
	Status        string  `gorm:"type:varchar(16);index"`
	DriverID      *string `gorm:"type:varchar(16);index"`
	CreatedAt     time.Time
}

// TableName overrides GORM's default naming to use "shipments".
func (ShipmentDTO) TableName() string {
	return "shipments"
}

func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	var driverID *string
	if id := aggregate.Driver(); id != nil {
		s := id.String()
		driverID = &s
	}

	return ShipmentDTO{
		ID:            aggregate.ID().String(),
		PackageID:     aggregate.PackageID().String(),
		ClientID:      aggregate.ClientID().String(),
		Origin:        aggregate.Origin(),
		Destination:   aggregate.Destination(),
		Zone:          aggregate.Zone().String(),
		Speed:         aggregate.Speed().String(),
		Distance:      aggregate.Distance(),
		ScheduledDate: aggregate.ScheduledDate(),
		Description:   aggregate.Description(),
		Status:        aggregate.Status().String(),
		DriverID:      driverID,
		CreatedAt:     aggregate.CreatedAt(),
	}
}

func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.EntityIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	packageID, err := kernel.EntityIDFromString(dto.PackageID)
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.EntityIDFromString(dto.ClientID)
	if err != nil {
		return nil, err
	}

	var driverID *kernel.EntityID
	if dto.DriverID != nil {
		d, driverErr := kernel.EntityIDFromString(*dto.DriverID)
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &d
	}

	zone, err := shipment.ZoneFromString(dto.Zone)
	if err != nil {
		return nil, err
	}

	speed, err := shipment.SpeedFromString(dto.Speed)
	if err != nil {
		return nil, err
	}

	status, err := shipment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(
		id, packageID, clientID,
		dto.Origin, dto.Destination,
		zone, speed, dto.Distance,
		dto.ScheduledDate, dto.Description,
		status, driverID, dto.CreatedAt,
	)
}
