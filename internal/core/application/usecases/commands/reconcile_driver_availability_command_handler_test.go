package commands_test

import (
	"testing"
	"time"

	"parcelops/internal/core/application/usecases/commands"
	"parcelops/internal/core/domain/model/driver"
	"parcelops/internal/core/domain/model/kernel"
	"parcelops/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestDriver(t *testing.T, n int64, available bool) *driver.Driver {
	t.Helper()

	d, err := driver.RestoreDriver(
		kernel.KindDriver.Format(n),
		"Nina Petrova",
		"nina@example.com",
		"+33600000000",
		"LIC-00042",
		nil,
		time.Now().UTC(),
		available,
		driver.StatusActive,
	)
	require.NoError(t, err)
	return d
}

func TestReconcileDriverAvailabilityCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewReconcileDriverAvailabilityCommand()
	require.NoError(t, err)

	// busyDriver has an open assignment, idleDriver only finished ones
	busyDriver := newTestDriver(t, 1, true)
	idleDriver := newTestDriver(t, 2, false)

	busyID := busyDriver.ID()
	idleID := idleDriver.ID()

	openShipment := newTestShipment(t, &busyID)
	require.NoError(t, openShipment.SetStatus(shipment.StatusInTransit))

	doneShipment := newTestShipment(t, &idleID)
	require.NoError(t, doneShipment.SetStatus(shipment.StatusDelivered))

	shipmentRepo := new(MockShipmentRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)
	uow.On("ShipmentRepository").Return(shipmentRepo)
	uow.On("DriverRepository").Return(driverRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		driverRepo.On("GetAll", ctx).Return([]*driver.Driver{busyDriver, idleDriver}, nil).Once(),
		shipmentRepo.On("GetAllByDriver", ctx, busyID).
			Return([]*shipment.Shipment{openShipment}, nil).Once(),
		driverRepo.On("Update", ctx, mock.AnythingOfType("*driver.Driver")).Return(nil).Once(),
		shipmentRepo.On("GetAllByDriver", ctx, idleID).
			Return([]*shipment.Shipment{doneShipment}, nil).Once(),
		driverRepo.On("Update", ctx, mock.AnythingOfType("*driver.Driver")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReconcileDriverAvailabilityCommandHandler(factory)
	changed, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 2, changed)
	assert.False(t, busyDriver.Available())
	assert.True(t, idleDriver.Available())
}

func TestReconcileDriverAvailabilityCommandHandler_Handle_NoChanges(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewReconcileDriverAvailabilityCommand()
	require.NoError(t, err)

	freeDriver := newTestDriver(t, 3, true)
	freeID := freeDriver.ID()

	shipmentRepo := new(MockShipmentRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)
	uow.On("ShipmentRepository").Return(shipmentRepo)
	uow.On("DriverRepository").Return(driverRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		driverRepo.On("GetAll", ctx).Return([]*driver.Driver{freeDriver}, nil).Once(),
		shipmentRepo.On("GetAllByDriver", ctx, freeID).Return([]*shipment.Shipment{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReconcileDriverAvailabilityCommandHandler(factory)
	changed, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 0, changed)
	driverRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
