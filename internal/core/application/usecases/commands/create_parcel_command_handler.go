package commands

import (
	"context"
	"time"

	"parcelops/internal/core/domain/model/kernel"
	"parcelops/internal/core/domain/model/parcel"
	"parcelops/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// CreateParcelResult carries the identifiers created during package
// registration.
type CreateParcelResult struct {
	ID             kernel.EntityID
	TrackingNumber string
}

// CreateParcelCommandHandler handles package registration.
// Verifies the owning client, allocates the PCG identifier and issues the
// tracking number in one transaction.
type CreateParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewCreateParcelCommandHandler creates a handler for package registration.
func NewCreateParcelCommandHandler(uowFactory ParcelUoWFactory) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the package registration command.
func (h CreateParcelCommandHandler) Handle(
	ctx context.Context, cmd CreateParcelCommand,
) (CreateParcelResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateParcelResult{}, err
	}

	weight, err := decimal.NewFromString(cmd.Weight())
	if err != nil {
		return CreateParcelResult{}, errs.NewValueIsInvalidErrorWithCause("weight", err)
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateParcelResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err = uow.ClientRepository().Get(ctx, cmd.ClientID()); err != nil {
		return CreateParcelResult{}, err
	}

	id, err := uow.Sequences().Next(ctx, kernel.KindPackage)
	if err != nil {
		return CreateParcelResult{}, err
	}

	trackingNumber := parcel.NewTrackingNumber()

	newParcel, err := parcel.NewParcel(
		id,
		trackingNumber,
		cmd.ClientID(),
		weight,
		cmd.Pieces(),
		cmd.ParcelType(),
		time.Now().UTC(),
	)
	if err != nil {
		return CreateParcelResult{}, err
	}

	if err = uow.ParcelRepository().Add(ctx, newParcel); err != nil {
		return CreateParcelResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateParcelResult{}, err
	}

	return CreateParcelResult{ID: id, TrackingNumber: trackingNumber}, nil
}
