// Package clientrepo provides data transfer objects and mapping functions
// for client persistence.
package clientrepo

import (
	"time"

	"parcelops/internal/core/domain/model/client"
	"parcelops/internal/core/domain/model/kernel"
)

// ClientDTO represents the database structure for persisting client records.
type ClientDTO struct {
	ID           string `gorm:"type:varchar(16);primaryKey"`
	Name         string
	Email        string `gorm:"type:varchar(255);uniqueIndex"`
	Phone        string
	Address      string
	City         string
	Country      string
	RegisteredAt time.Time
}

// TableName overrides GORM's default naming to use "clients".
func (ClientDTO) TableName() string {
	return "clients"
}

func fromDomain(aggregate *client.Client) ClientDTO {
	return ClientDTO{
		ID:           aggregate.ID().String(),
		Name:         aggregate.Name(),
		Email:        aggregate.Email(),
		Phone:        aggregate.Phone(),
		Address:      aggregate.Address(),
		City:         aggregate.City(),
		Country:      aggregate.Country(),
		RegisteredAt: aggregate.RegisteredAt(),
	}
}

func toDomain(dto ClientDTO) (*client.Client, error) {
	id, err := kernel.EntityIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	return client.RestoreClient(
		id, dto.Name, dto.Email, dto.Phone,
		dto.Address, dto.City, dto.Country, dto.RegisteredAt,
	)
}
