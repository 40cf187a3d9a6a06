package queries_test

import (
	"testing"

	"parcelops/internal/core/application/usecases/queries"
	"parcelops/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetUnassignedShipmentsQuery_DriverAndStaffAllowed(t *testing.T) {
	for _, actor := range []kernel.Actor{
		kernel.NewActor("CH000001", kernel.RoleDriver),
		kernel.NewActor("AD0001", kernel.RoleAdmin),
		kernel.NewActor("AG0001", kernel.RoleAgent),
	} {
		query, err := queries.NewGetUnassignedShipmentsQuery(actor)
		require.NoError(t, err, "role %s", actor.Role())
		require.NoError(t, query.Validate())
	}
}

func TestNewGetUnassignedShipmentsQuery_ClientsAndAnonymousRejected(t *testing.T) {
	for _, actor := range []kernel.Actor{
		kernel.NewActor("CL000001", kernel.RoleClient),
		kernel.Anonymous(),
	} {
		_, err := queries.NewGetUnassignedShipmentsQuery(actor)
		require.Error(t, err, "role %s", actor.Role())
		assert.ErrorIs(t, err, queries.ErrClaimablePoolRestricted)
	}
}

func TestGetUnassignedShipmentsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetUnassignedShipmentsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetUnassignedShipmentsQueryIsNotConstructed)
}
