package commands

import (
	"context"
	"time"

	"parcelops/internal/core/domain/model/client"
	"parcelops/internal/core/domain/model/kernel"
)

// CreateClientCommandHandler handles client registration.
// Allocates the CL identifier and persists the record in one transaction,
// so an aborted registration releases its sequence number.
type CreateClientCommandHandler struct {
	uowFactory ClientUoWFactory
}

// NewCreateClientCommandHandler creates a handler for client registration.
func NewCreateClientCommandHandler(uowFactory ClientUoWFactory) CreateClientCommandHandler {
	return CreateClientCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the client registration command and returns the new
// client's identifier.
func (h CreateClientCommandHandler) Handle(ctx context.Context, cmd CreateClientCommand) (kernel.EntityID, error) {
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

	id, err := uow.Sequences().Next(ctx, kernel.KindClient)
	if err != nil {
		return kernel.EntityID{}, err
	}

	newClient, err := client.NewClient(
		id,
		cmd.Name(), cmd.Email(), cmd.Phone(),
		cmd.Address(), cmd.City(), cmd.Country(),
		time.Now().UTC(),
	)
	if err != nil {
		return kernel.EntityID{}, err
	}

	if err = uow.ClientRepository().Add(ctx, newClient); err != nil {
		return kernel.EntityID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.EntityID{}, err
	}

	return id, nil
}
