package env

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests modify the real process environment, so they can't run in
// parallel.

func TestOSSetLookup(t *testing.T) {
	const key = "ENVBRIDGE_TEST_OS"
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))

	_, ok := OS{}.Lookup(key)
	assert.False(t, ok)

	require.NoError(t, OS{}.Set(key, "bar"))
	val, ok := OS{}.Lookup(key)
	assert.True(t, ok)
	assert.Equal(t, "bar", val)
	assert.Equal(t, "bar", os.Getenv(key))

	require.NoError(t, OS{}.Set(key, "baz"))
	val, ok = OS{}.Lookup(key)
	assert.True(t, ok)
	assert.Equal(t, "baz", val)

	assert.ErrorIs(t, OS{}.Set("", "bar"), ErrInvalidKey)
	assert.ErrorIs(t, OS{}.Set("A=B", "bar"), ErrInvalidKey)
}

func TestNativeSeesOSWrites(t *testing.T) {
	const key = "ENVBRIDGE_TEST_NATIVE"
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))

	_, ok := Native{}.Lookup(key)
	assert.False(t, ok)

	require.NoError(t, Native{}.Set(key, "/vendor/lib/rfsa/adsp"))
	val, ok := Native{}.Lookup(key)
	assert.True(t, ok)
	assert.Equal(t, "/vendor/lib/rfsa/adsp", val)

	val, ok = OS{}.Lookup(key)
	assert.True(t, ok)
	assert.Equal(t, "/vendor/lib/rfsa/adsp", val)

	_, ok = Native{}.Lookup(key + "\x00X")
	assert.False(t, ok)
}

func TestSyncFromLibc(t *testing.T) {
	const key = "ENVBRIDGE_TEST_SYNC"
	t.Setenv(key, "value")

	SyncFromLibc()
	// Once synced, both views agree and there's nothing left to copy.
	assert.Equal(t, 0, SyncFromLibc())

	val, ok := Native{}.Lookup(key)
	assert.True(t, ok)
	assert.Equal(t, "value", val)
	val, ok = OS{}.Lookup(key)
	assert.True(t, ok)
	assert.Equal(t, "value", val)
}
