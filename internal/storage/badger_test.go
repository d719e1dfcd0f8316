package storage

import (
	"context"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a temporary BadgerDB instance for testing.
// It returns the store and a cleanup function.
func setupTestDB(t *testing.T, dir string) (*BadgerKV, func()) {
	t.Helper()

	testLogger := logrus.New()
	testLogger.SetOutput(os.Stderr)
	testLogger.SetLevel(logrus.ErrorLevel)

	kv, err := NewBadgerKV(dir, testLogger)
	require.NoError(t, err, "Failed to create test BadgerDB store")

	cleanup := func() {
		assert.NoError(t, kv.Close(), "Failed to close test BadgerDB store")
	}
	return kv, cleanup
}

func TestBadgerKV_SetAndGet(t *testing.T) {
	kv, cleanup := setupTestDB(t, t.TempDir())
	defer cleanup()

	ctx := context.Background()

	// --- Missing key ---
	v, ok, err := kv.Get(ctx, KeySavedLinks)
	require.NoError(t, err, "Getting a missing key should not error")
	assert.False(t, ok)
	assert.Empty(t, v)

	// --- Set then Get ---
	require.NoError(t, kv.Set(ctx, KeySavedLinks, `[{"id":1}]`))
	require.NoError(t, kv.Set(ctx, KeyDarkMode, "true"))

	v, ok, err = kv.Get(ctx, KeySavedLinks)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":1}]`, v)

	v, ok, err = kv.Get(ctx, KeyDarkMode)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "true", v)

	// --- Overwrite replaces the whole value ---
	require.NoError(t, kv.Set(ctx, KeySavedLinks, `[]`))
	v, _, err = kv.Get(ctx, KeySavedLinks)
	require.NoError(t, err)
	assert.Equal(t, `[]`, v)

	// --- Empty string is stored, not treated as missing ---
	require.NoError(t, kv.Set(ctx, KeyDarkMode, ""))
	v, ok, err = kv.Get(ctx, KeyDarkMode)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, v)
}

func TestBadgerKV_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	kv, cleanup := setupTestDB(t, dir)
	require.NoError(t, kv.Set(ctx, KeyDarkMode, "false"))
	cleanup()

	reopened, cleanup := setupTestDB(t, dir)
	defer cleanup()

	v, ok, err := reopened.Get(ctx, KeyDarkMode)
	require.NoError(t, err)
	assert.True(t, ok, "Value should persist across reopen")
	assert.Equal(t, "false", v)
}

func TestBadgerKV_InMemory(t *testing.T) {
	kv, cleanup := setupTestDB(t, "")
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, "k", "v"))

	v, ok, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestMemory_Errors(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	require.NoError(t, m.Set(ctx, "k", "v"))

	m.GetErr = assert.AnError
	_, _, err := m.Get(ctx, "k")
	assert.ErrorIs(t, err, assert.AnError)

	m.SetErr = assert.AnError
	assert.ErrorIs(t, m.Set(ctx, "k", "w"), assert.AnError)
}
