// Package invoicerepo holds the referential slice of invoice storage the
// shipment delete path consults. Invoice lifecycle management itself lives
// outside this service.
package invoicerepo

import "time"

// InvoiceDTO represents the database structure for invoice references.
type InvoiceDTO struct {
	ID         string `gorm:"type:varchar(16);primaryKey"`
	ShipmentID string `gorm:"type:varchar(16);uniqueIndex"`
	CreatedAt  time.Time
}

// TableName overrides GORM's default naming to use "invoices".
func (InvoiceDTO) TableName() string {
	return "invoices"
}
