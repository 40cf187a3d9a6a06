// Package parcelrepo provides data transfer objects and mapping functions
// for package persistence.
package parcelrepo

import (
	"time"

	"parcelops/internal/core/domain/model/kernel"
	"parcelops/internal/core/domain/model/parcel"

	"github.com/shopspring/decimal"
)

// ParcelDTO represents the database structure for persisting package records.
type ParcelDTO struct {
	ID             string          `gorm:"type:varchar(16);primaryKey"`
	TrackingNumber string          `gorm:"type:varchar(32);uniqueIndex"`
	ClientID       string          `gorm:"type:varchar(16);index"`
	Weight         decimal.Decimal `gorm:"type:numeric(10,2)"`
	Pieces         int
	ParcelType     string `gorm:"type:varchar(8)"`
	CreatedAt      time.Time
}

// TableName overrides GORM's default naming to use "packages".
func (ParcelDTO) TableName() string {
	return "packages"
}

func fromDomain(aggregate *parcel.Parcel) ParcelDTO {
	return ParcelDTO{
		ID:             aggregate.ID().String(),
		TrackingNumber: aggregate.TrackingNumber(),
		ClientID:       aggregate.ClientID().String(),
		Weight:         aggregate.Weight(),
		Pieces:         aggregate.Pieces(),
		ParcelType:     string(aggregate.ParcelType()),
		CreatedAt:      aggregate.CreatedAt(),
	}
}

func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.EntityIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.EntityIDFromString(dto.ClientID)
	if err != nil {
		return nil, err
	}

	parcelType, err := parcel.TypeFromString(dto.ParcelType)
	if err != nil {
		return nil, err
	}

	return parcel.RestoreParcel(
		id, dto.TrackingNumber, clientID,
		dto.Weight, dto.Pieces, parcelType, dto.CreatedAt,
	)
}
