package commands

import (
	"context"
	"errors"
	"time"

	"parcelops/internal/core/domain/model/kernel"
	"parcelops/internal/core/domain/model/shipment"
	"parcelops/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrDuplicateShipmentForPackage is returned when the package already has a
// shipment. A package moves at most once. The handler pre-checks, but the
// decisive guard is the store's unique index on the package reference: a
// creation that loses a race past the pre-check surfaces the same sentinel
// from the repository.
var ErrDuplicateShipmentForPackage = shipment.ErrDuplicateForPackage

// CreateShipmentCommandHandler opens a shipment for a package.
// Resolves the package, rejects a second shipment for it, allocates the SHP
// identifier and persists the PENDING shipment in one transaction.
type CreateShipmentCommandHandler struct {
	uowFactory CreateShipmentUoWFactory
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation.
func NewCreateShipmentCommandHandler(uowFactory CreateShipmentUoWFactory) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment creation command and returns the new
// shipment's identifier.
func (h CreateShipmentCommandHandler) Handle(
	ctx context.Context, cmd CreateShipmentCommand,
) (kernel.EntityID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.EntityID{}, err
	}

	distance, err := decimal.NewFromString(cmd.Distance())
	if err != nil {
		return kernel.EntityID{}, errs.NewValueIsInvalidErrorWithCause("distance", err)
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.EntityID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pkg, err := uow.ParcelRepository().Get(ctx, cmd.PackageID())
	if err != nil {
		return kernel.EntityID{}, err
	}

	_, err = uow.ShipmentRepository().GetByPackageID(ctx, cmd.PackageID())
	switch {
	case err == nil:
		return kernel.EntityID{}, ErrDuplicateShipmentForPackage
	case !errors.Is(err, errs.ErrObjectNotFound):
		return kernel.EntityID{}, err
	}

	id, err := uow.Sequences().Next(ctx, kernel.KindShipment)
	if err != nil {
		return kernel.EntityID{}, err
	}

	newShipment, err := shipment.NewShipment(
		id,
		pkg.ID(),
		pkg.ClientID(),
		cmd.Origin(),
		cmd.Destination(),
		cmd.Zone(),
		cmd.Speed(),
		distance,
		cmd.ScheduledDate(),
		cmd.Description(),
		time.Now().UTC(),
	)
	if err != nil {
		return kernel.EntityID{}, err
	}

	if err = uow.ShipmentRepository().Add(ctx, newShipment); err != nil {
		return kernel.EntityID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.EntityID{}, err
	}

	return id, nil
}
