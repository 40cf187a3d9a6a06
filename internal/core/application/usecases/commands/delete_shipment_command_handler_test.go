package commands_test

import (
	"testing"

	"parcelops/internal/core/application/usecases/commands"
	"parcelops/internal/core/domain/model/kernel"
	"parcelops/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteShipmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	actor := kernel.NewActor("AG0001", kernel.RoleAgent)
	testShipment := newTestShipment(t, nil)

	cmd, err := commands.NewDeleteShipmentCommand(testShipment.ID(), actor)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	invoiceRepo := new(MockInvoiceRepository)
	uow := new(MockUoW)
	uow.On("ShipmentRepository").Return(shipmentRepo)
	uow.On("InvoiceRepository").Return(invoiceRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		shipmentRepo.On("GetForUpdate", ctx, testShipment.ID()).Return(testShipment, nil).Once(),
		invoiceRepo.On("FindByShipment", ctx, testShipment.ID()).Return(kernel.EntityID{}, nil).Once(),
		shipmentRepo.On("Delete", ctx, testShipment.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeleteShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteShipmentCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	shipmentRepo.AssertExpectations(t)
	invoiceRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteShipmentCommandHandler_Handle_BlockedByInvoice(t *testing.T) {
	ctx := t.Context()

	actor := kernel.NewActor("ADMIN-1", kernel.RoleAdmin)
	testShipment := newTestShipment(t, nil)
	invoiceID := kernel.KindInvoice.Format(12)

	cmd, err := commands.NewDeleteShipmentCommand(testShipment.ID(), actor)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	invoiceRepo := new(MockInvoiceRepository)
	uow := new(MockUoW)
	uow.On("ShipmentRepository").Return(shipmentRepo)
	uow.On("InvoiceRepository").Return(invoiceRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		shipmentRepo.On("GetForUpdate", ctx, testShipment.ID()).Return(testShipment, nil).Once(),
		invoiceRepo.On("FindByShipment", ctx, testShipment.ID()).Return(invoiceID, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeleteShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteShipmentCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrReferentialIntegrity)
	shipmentRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteShipmentCommandHandler_Handle_NotStaff(t *testing.T) {
	ctx := t.Context()

	actor := kernel.NewActor(kernel.KindDriver.Format(7).String(), kernel.RoleDriver)
	shipmentID := kernel.KindShipment.Format(3)

	cmd, err := commands.NewDeleteShipmentCommand(shipmentID, actor)
	require.NoError(t, err)

	factory := new(MockDeleteShipmentUoWFactory)
	handler := commands.NewDeleteShipmentCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrStaffRoleRequired)
	factory.AssertNotCalled(t, "Create")
}
