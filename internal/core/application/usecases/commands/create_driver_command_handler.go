package commands

import (
	"context"
	"time"

	"parcelops/internal/core/domain/model/driver"
	"parcelops/internal/core/domain/model/kernel"
)

// CreateDriverCommandHandler handles driver registration.
type CreateDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewCreateDriverCommandHandler creates a handler for driver registration.
func NewCreateDriverCommandHandler(uowFactory DriverUoWFactory) CreateDriverCommandHandler {
	return CreateDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver registration command and returns the new
// driver's identifier.
func (h CreateDriverCommandHandler) Handle(ctx context.Context, cmd CreateDriverCommand) (kernel.EntityID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.EntityID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.EntityID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	id, err := uow.Sequences().Next(ctx, kernel.KindDriver)
	if err != nil {
		return kernel.EntityID{}, err
	}

	newDriver, err := driver.NewDriver(
		id,
		cmd.Name(), cmd.Email(), cmd.Phone(), cmd.LicenseNumber(),
		cmd.VehicleID(),
		time.Now().UTC(),
	)
	if err != nil {
		return kernel.EntityID{}, err
	}

	if err = uow.DriverRepository().Add(ctx, newDriver); err != nil {
		return kernel.EntityID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.EntityID{}, err
	}

	return id, nil
}
