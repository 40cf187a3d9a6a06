// Package driverrepo provides data transfer objects and mapping functions
// for driver persistence.
package driverrepo

import (
	"time"

	"parcelops/internal/core/domain/model/driver"
	"parcelops/internal/core/domain/model/kernel"
)

// DriverDTO represents the database structure for persisting driver records.
type DriverDTO struct {
	ID            string `gorm:"type:varchar(16);primaryKey"`
	Name          string
	Email         string `gorm:"type:varchar(255);uniqueIndex"`
	Phone         string
	LicenseNumber string  `gorm:"type:varchar(64);uniqueIndex"`
	VehicleID     *string `gorm:"type:varchar(16)"`
	HiredAt       time.Time
	Available     bool
	Status        string `gorm:"type:varchar(16)"`
}

// TableName overrides GORM's default naming to use "drivers".
func (DriverDTO) TableName() string {
	return "drivers"
}

func fromDomain(aggregate *driver.Driver) DriverDTO {
	var vehicleID *string
	if id := aggregate.VehicleID(); id != nil {
		s := id.String()
		vehicleID = &s
	}

	return DriverDTO{
		ID:            aggregate.ID().String(),
		Name:          aggregate.Name(),
		Email:         aggregate.Email(),
		Phone:         aggregate.Phone(),
		LicenseNumber: aggregate.LicenseNumber(),
		VehicleID:     vehicleID,
		HiredAt:       aggregate.HiredAt(),
		Available:     aggregate.Available(),
		Status:        string(aggregate.Status()),
	}
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.EntityIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	var vehicleID *kernel.EntityID
	if dto.VehicleID != nil {
		v, vehicleErr := kernel.EntityIDFromString(*dto.VehicleID)
		if vehicleErr != nil {
			return nil, vehicleErr
		}
		vehicleID = &v
	}

	status, err := driver.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(
		id, dto.Name, dto.Email, dto.Phone,
		dto.LicenseNumber, vehicleID, dto.HiredAt,
		dto.Available, status,
	)
}
