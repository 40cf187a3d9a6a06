package driver_test

import (
	"testing"
	"time"

	"parcelops/internal/core/domain/model/driver"
	"parcelops/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDriver(t *testing.T) {
	d, err := driver.NewDriver(
		kernel.KindDriver.Format(1),
		"Sami Ben Ali",
		"sami@example.com",
		"+216 20 000 000",
		"TN-889901",
		nil,
		time.Now(),
	)
	require.NoError(t, err)

	assert.Equal(t, "CH000001", d.ID().String())
	assert.True(t, d.Available())
	assert.Equal(t, driver.StatusActive, d.Status())
	assert.Nil(t, d.VehicleID())
}

func TestNewDriver_Validation(t *testing.T) {
	id := kernel.KindDriver.Format(1)

	_, err := driver.NewDriver(id, "", "a@b.c", "", "L1", nil, time.Now())
	require.Error(t, err, "name required")

	_, err = driver.NewDriver(id, "X", "not-an-email", "", "L1", nil, time.Now())
	require.Error(t, err, "email invalid")

	_, err = driver.NewDriver(id, "X", "a@b.c", "", " ", nil, time.Now())
	require.Error(t, err, "license required")
}

func TestStatusFromString(t *testing.T) {
	for _, valid := range []string{"active", "inactive", "suspended", "on_leave"} {
		_, err := driver.StatusFromString(valid)
		require.NoError(t, err, valid)
	}

	_, err := driver.StatusFromString("fired")
	require.Error(t, err)
}

func TestRestoreDriver(t *testing.T) {
	vehicle := kernel.KindVehicle.Format(2)

	d, err := driver.RestoreDriver(
		kernel.KindDriver.Format(5),
		"Leila Trabelsi",
		"leila@example.com",
		"",
		"TN-100200",
		&vehicle,
		time.Now(),
		false,
		driver.StatusOnLeave,
	)
	require.NoError(t, err)

	assert.False(t, d.Available())
	assert.Equal(t, driver.StatusOnLeave, d.Status())
	require.NotNil(t, d.VehicleID())
	assert.Equal(t, "VH000002", d.VehicleID().String())
}
