package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecondAcquireFails(t *testing.T) {
	key := t.Name()

	guard, err := acquire(key)
	require.NoError(t, err)

	_, err = acquire(key)
	assert.ErrorIs(t, err, ErrAlreadyRunning)

	require.NoError(t, guard.Release())
	again, err := acquire(key)
	require.NoError(t, err)
	assert.NoError(t, again.Release())
}

func TestReleaseIsIdempotent(t *testing.T) {
	guard, err := acquire(t.Name())
	require.NoError(t, err)

	assert.NoError(t, guard.Release())
	assert.NoError(t, guard.Release())

	var nilGuard *InstanceGuard
	assert.NoError(t, nilGuard.Release())
}

func TestLockPortInRange(t *testing.T) {
	for _, key := range []string{"", "TimeLogger", "TimeLogger/1000", "TimeLogger/0"} {
		port := lockPort(key)
		assert.GreaterOrEqual(t, port, minLockPort)
		assert.LessOrEqual(t, port, maxLockPort)
	}
	assert.Equal(t, lockPort("TimeLogger/1000"), lockPort("TimeLogger/1000"))
}
