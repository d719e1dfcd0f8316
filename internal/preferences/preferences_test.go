package preferences

import (
	"context"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inspilink/internal/storage"
)

func testLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.ErrorLevel)
	return l
}

func TestDarkMode_Defaults(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()

	assert.False(t, New(kv, false, testLogger()).DarkMode(ctx))
	assert.True(t, New(kv, true, testLogger()).DarkMode(ctx))

	// Malformed values are treated as absent.
	for _, raw := range []string{"yes", "1", "TRUE", ""} {
		require.NoError(t, kv.Set(ctx, storage.KeyDarkMode, raw))
		assert.True(t, New(kv, true, testLogger()).DarkMode(ctx), raw)
	}

	kv.GetErr = assert.AnError
	assert.True(t, New(kv, true, testLogger()).DarkMode(ctx))
}

func TestDarkMode_SetAndToggle(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()
	p := New(kv, false, testLogger())

	require.NoError(t, p.SetDarkMode(ctx, true))
	raw, _, _ := kv.Get(ctx, storage.KeyDarkMode)
	assert.Equal(t, "true", raw)
	assert.True(t, p.DarkMode(ctx))

	on, err := p.ToggleDarkMode(ctx)
	require.NoError(t, err)
	assert.False(t, on)
	raw, _, _ = kv.Get(ctx, storage.KeyDarkMode)
	assert.Equal(t, "false", raw)

	kv.SetErr = assert.AnError
	on, err = p.ToggleDarkMode(ctx)
	assert.ErrorIs(t, err, assert.AnError)
	assert.False(t, on, "a failed toggle reports the unchanged value")
}
