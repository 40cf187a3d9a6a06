package parcel_test

import (
	"testing"
	"time"

	"parcelops/internal/core/domain/model/kernel"
	"parcelops/internal/core/domain/model/parcel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParcel(t *testing.T) {
	p, err := parcel.NewParcel(
		kernel.KindPackage.Format(1),
		"SW123456789ABC",
		kernel.KindClient.Format(1),
		decimal.RequireFromString("2.50"),
		3,
		parcel.TypeDocuments,
		time.Now(),
	)
	require.NoError(t, err)

	assert.Equal(t, "PCG001", p.ID().String())
	assert.Equal(t, "SW123456789ABC", p.TrackingNumber())
	assert.True(t, p.IsOwnedBy("cl000001"))
	assert.False(t, p.IsOwnedBy("CL000002"))
}

func TestNewParcel_Validation(t *testing.T) {
	valid := func() (kernel.EntityID, string, kernel.EntityID, decimal.Decimal, int, parcel.Type) {
		return kernel.KindPackage.Format(1), "SW1", kernel.KindClient.Format(1),
			decimal.NewFromInt(1), 1, parcel.TypeOther
	}

	t.Run("blank_tracking_number", func(t *testing.T) {
		id, _, client, w, pieces, typ := valid()
		_, err := parcel.NewParcel(id, "  ", client, w, pieces, typ, time.Now())
		require.Error(t, err)
	})

	t.Run("zero_weight", func(t *testing.T) {
		id, tn, client, _, pieces, typ := valid()
		_, err := parcel.NewParcel(id, tn, client, decimal.Zero, pieces, typ, time.Now())
		require.Error(t, err)
	})

	t.Run("zero_pieces", func(t *testing.T) {
		id, tn, client, w, _, typ := valid()
		_, err := parcel.NewParcel(id, tn, client, w, 0, typ, time.Now())
		require.Error(t, err)
	})

	t.Run("unknown_type", func(t *testing.T) {
		id, tn, client, w, pieces, _ := valid()
		_, err := parcel.NewParcel(id, tn, client, w, pieces, parcel.Type("FOOD"), time.Now())
		require.Error(t, err)
	})
}

func TestNewTrackingNumber(t *testing.T) {
	a := parcel.NewTrackingNumber()
	b := parcel.NewTrackingNumber()

	assert.NotEqual(t, a, b)
	assert.Len(t, a, 14)
	assert.Equal(t, "SW", a[:2])
}
