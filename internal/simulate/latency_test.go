package simulate

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLatency_WaitsForDelay(t *testing.T) {
	l := NewLatency(30 * time.Millisecond)
	start := time.Now()
	assert.NoError(t, l.Wait(context.Background()))
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestLatency_ContextCancelled(t *testing.T) {
	l := NewLatency(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, l.Wait(ctx), context.Canceled)

	// Zero delay still honours a dead context.
	assert.ErrorIs(t, NewLatency(0).Wait(ctx), context.Canceled)
}

func TestLatency_FailureRate(t *testing.T) {
	ctx := context.Background()

	always := NewLatency(0, WithFailureRate(1))
	assert.ErrorIs(t, always.Wait(ctx), ErrFailed)

	never := NewLatency(0, WithFailureRate(0))
	assert.NoError(t, never.Wait(ctx))

	half := NewLatency(0, WithFailureRate(0.5), WithRoll(func() float64 { return 0.49 }))
	assert.ErrorIs(t, half.Wait(ctx), ErrFailed)

	half = NewLatency(0, WithFailureRate(0.5), WithRoll(func() float64 { return 0.5 }))
	assert.NoError(t, half.Wait(ctx))

	// Out-of-range rates are clamped.
	assert.ErrorIs(t, NewLatency(0, WithFailureRate(7)).Wait(ctx), ErrFailed)
	assert.NoError(t, NewLatency(0, WithFailureRate(-1)).Wait(ctx))
}
