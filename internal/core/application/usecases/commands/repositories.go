// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"parcelops/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each handler declares the narrowest unit of work it needs;
// the composition root adapts the full ports.UnitOfWork to these.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ShipmentRepoFactory provides the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// ParcelRepoFactory provides the parcel repository within a transaction.
	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	// DriverRepoFactory provides the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// ClientRepoFactory provides the client repository within a transaction.
	ClientRepoFactory interface {
		ClientRepository() ports.ClientRepository
	}

	// InvoiceRepoFactory provides the invoice repository within a transaction.
	InvoiceRepoFactory interface {
		InvoiceRepository() ports.InvoiceRepository
	}

	// SequenceFactory provides the identifier allocator within a transaction.
	SequenceFactory interface {
		Sequences() ports.SequenceAllocator
	}

	// ClientUoW manages transactions for client creation.
	ClientUoW interface {
		TxManager
		ClientRepoFactory
		SequenceFactory
	}

	// ClientUoWFactory creates client unit of work instances.
	ClientUoWFactory interface {
		Create() ClientUoW
	}

	// DriverUoW manages transactions for driver creation.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
		SequenceFactory
	}

	// DriverUoWFactory creates driver unit of work instances.
	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// ParcelUoW manages transactions for package creation, which verifies
	// the owning client before allocating the package identifier.
	ParcelUoW interface {
		TxManager
		ParcelRepoFactory
		ClientRepoFactory
		SequenceFactory
	}

	// ParcelUoWFactory creates parcel unit of work instances.
	ParcelUoWFactory interface {
		Create() ParcelUoW
	}

	// ShipmentUoW manages transactions for shipment-only operations:
	// the claim protocol, the driver status update, and staff edits.
	ShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
	}

	// ShipmentUoWFactory creates shipment unit of work instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// CreateShipmentUoW manages transactions for shipment creation, which
	// touches the parcel (one-shipment-per-package check) and the allocator.
	CreateShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
		ParcelRepoFactory
		SequenceFactory
	}

	// CreateShipmentUoWFactory creates shipment-creation unit of work instances.
	CreateShipmentUoWFactory interface {
		Create() CreateShipmentUoW
	}

	// DeleteShipmentUoW manages transactions for shipment deletion, which
	// consults the invoice store before removing anything.
	DeleteShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
		InvoiceRepoFactory
	}

	// DeleteShipmentUoWFactory creates shipment-deletion unit of work instances.
	DeleteShipmentUoWFactory interface {
		Create() DeleteShipmentUoW
	}

	// UoW manages transactions across driver and shipment aggregates.
	// Used by availability reconciliation.
	UoW interface {
		TxManager
		ShipmentRepoFactory
		DriverRepoFactory
	}

	// UoWFactory creates cross-aggregate unit of work instances.
	UoWFactory interface {
		Create() UoW
	}
)
