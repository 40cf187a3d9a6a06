package errs_test

import (
	"errors"
	"testing"

	"parcelops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("shipmentID", "SHP003")

		assert.Equal(t, "shipmentID", err.ParamName)
		assert.Equal(t, "SHP003", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: SHP003", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("clientID", "CL000001", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: clientID, ID is: CL000001 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("zone")

		assert.Equal(t, "zone", err.ParamName)
		assert.Equal(t, "value is invalid: zone", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("zone", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: zone (cause: invalid format)", err.Error())
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("packageID")

	assert.Equal(t, "packageID", err.ParamName)
	require.NoError(t, err.Cause)
	assert.Equal(t, "value is required: packageID", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
}

func TestValueIsOutOfRangeError(t *testing.T) {
	err := errs.NewValueIsOutOfRangeError("pieces", 0, 1, 1000)

	assert.Equal(t, "pieces", err.ParamName)
	assert.Equal(t, 0, err.Value)
	assert.Equal(t, "value is invalid: 0 is pieces, min value is 1, max value is 1000", err.Error())
	assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
}

func TestContentionTimeoutError(t *testing.T) {
	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("canceling statement due to lock timeout")
		err := errs.NewContentionTimeoutError("shipment SHP001", cause)

		assert.Equal(t, "shipment SHP001", err.Resource)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"contention timeout: shipment SHP001 (cause: canceling statement due to lock timeout)",
			err.Error())
		assert.Equal(t, errs.ErrContentionTimeout, err.Unwrap())
	})

	t.Run("without cause", func(t *testing.T) {
		err := errs.NewContentionTimeoutError("sequence shipment", nil)
		assert.Equal(t, "contention timeout: sequence shipment", err.Error())
	})
}

func TestReferentialIntegrityError(t *testing.T) {
	err := errs.NewReferentialIntegrityError("shipment", "SHP001", "invoice INV001")

	assert.Equal(t, "shipment", err.ParamName)
	assert.Equal(t, "SHP001", err.ID)
	assert.Equal(t, "invoice INV001", err.Dependent)
	assert.Equal(t,
		"referential integrity violation: shipment SHP001 is referenced by invoice INV001",
		err.Error())
	assert.Equal(t, errs.ErrReferentialIntegrity, err.Unwrap())
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("id", "X"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewValueIsInvalidError("speed"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsRequiredError("origin"), errs.ErrValueIsRequired)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("weight", -1, 0, 100), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, errs.NewContentionTimeoutError("sequence client", nil), errs.ErrContentionTimeout)
	require.ErrorIs(t,
		errs.NewReferentialIntegrityError("shipment", "SHP001", "invoice"),
		errs.ErrReferentialIntegrity)
}

func TestSanitizeNewlines(t *testing.T) {
	err := errs.NewValueIsOutOfRangeError("description", "line\nbreak", 0, 10)
	assert.Contains(t, err.Error(), "line break")
	assert.NotContains(t, err.Error(), "\n")
}
