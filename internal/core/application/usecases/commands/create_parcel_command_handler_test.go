package commands_test

import (
	"strings"
	"testing"
	"time"

	"parcelops/internal/core/application/usecases/commands"
	"parcelops/internal/core/domain/model/client"
	"parcelops/internal/core/domain/model/kernel"
	"parcelops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *client.Client {
	t.Helper()

	c, err := client.RestoreClient(
		kernel.KindClient.Format(7),
		"Acme SARL",
		"contact@acme.example",
		"+33100000000",
		"1 rue de la Paix",
		"Paris",
		"France",
		time.Now().UTC(),
	)
	require.NoError(t, err)
	return c
}

func TestCreateParcelCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	testClient := newTestClient(t)
	parcelID := kernel.KindPackage.Format(2)

	cmd, err := commands.NewCreateParcelCommand(testClient.ID(), "2.5", 3, "ELEC")
	require.NoError(t, err)

	clientRepo := new(MockClientRepository)
	parcelRepo := new(MockParcelRepository)
	sequences := new(MockSequenceAllocator)
	uow := new(MockUoW)
	uow.On("ClientRepository").Return(clientRepo)
	uow.On("ParcelRepository").Return(parcelRepo)
	uow.On("Sequences").Return(sequences)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		clientRepo.On("Get", ctx, testClient.ID()).Return(testClient, nil).Once(),
		sequences.On("Next", ctx, kernel.KindPackage).Return(parcelID, nil).Once(),
		parcelRepo.On("Add", ctx, mock.AnythingOfType("*parcel.Parcel")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateParcelCommandHandler(factory)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, parcelID, result.ID)
	assert.True(t, strings.HasPrefix(result.TrackingNumber, "SW"))
	assert.Len(t, result.TrackingNumber, 14)
	clientRepo.AssertExpectations(t)
	parcelRepo.AssertExpectations(t)
	sequences.AssertExpectations(t)
}

func TestCreateParcelCommandHandler_Handle_ClientNotFound(t *testing.T) {
	ctx := t.Context()

	clientID := kernel.KindClient.Format(404)
	cmd, err := commands.NewCreateParcelCommand(clientID, "1.0", 1, "DOC")
	require.NoError(t, err)

	clientRepo := new(MockClientRepository)
	uow := new(MockUoW)
	uow.On("ClientRepository").Return(clientRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		clientRepo.On("Get", ctx, clientID).
			Return(nil, errs.NewObjectNotFoundError("clientID", clientID.String())).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateParcelCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestNewCreateParcelCommand_InvalidInput(t *testing.T) {
	clientID := kernel.KindClient.Format(7)

	_, err := commands.NewCreateParcelCommand(clientID, "2.5", 3, "LIVESTOCK")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewCreateParcelCommand(clientID, "", 3, "DOC")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewCreateParcelCommand(clientID, "2.5", 0, "DOC")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}
