package steamworks

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultErr(t *testing.T) {
	assert.NoError(t, ResultOK.Err())

	assert.ErrorIs(t, ResultIOFailure.Err(), ErrIOFailure)
	assert.ErrorIs(t, ResultNoConnection.Err(), ErrIOFailure)
	assert.ErrorIs(t, ResultNotLoggedOn.Err(), ErrNotLoggedOn)
	assert.ErrorIs(t, ResultInvalidParam.Err(), ErrInvalidParam)
	assert.ErrorIs(t, ResultAccessDenied.Err(), ErrAccessDenied)
	assert.ErrorIs(t, ResultTimeout.Err(), ErrTimeout)
	assert.ErrorIs(t, ResultServiceUnavailable.Err(), ErrTimeout)
	assert.ErrorIs(t, ResultBusy.Err(), ErrBusy)
	assert.ErrorIs(t, ResultLimitExceeded.Err(), ErrLimitExceeded)
	assert.ErrorIs(t, ResultNoMatch.Err(), ErrNoMatch)
}

func TestResultErrGeneric(t *testing.T) {
	err := ResultFail.Err()
	require.Error(t, err)
	// Generic failures are distinguishable from every sentinel.
	assert.False(t, errors.Is(err, ErrIOFailure))
	assert.True(t, errors.Is(err, errGenericFailure))
}

func TestCallFailed(t *testing.T) {
	err := callFailed("StoreStats")
	assert.ErrorIs(t, err, ErrCallFailed)
	assert.Contains(t, err.Error(), "steam api call failed")
}
