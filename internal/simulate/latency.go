// Package simulate stands in for a remote backend: calls wait for a fixed
// delay and may fail at a configured rate.
package simulate

import (
	"context"
	"errors"
	"math/rand"
	"time"
)

// ErrFailed is returned when a simulated call fails.
var ErrFailed = errors.New("simulated backend call failed")

// Latency is a fake remote call with a fixed delay.
type Latency struct {
	delay    time.Duration
	failRate float64
	roll     func() float64
}

// Option configures a Latency.
type Option func(*Latency)

// WithFailureRate makes a fraction of calls fail. Values are clamped to [0, 1].
func WithFailureRate(rate float64) Option {
	return func(l *Latency) { l.failRate = min(max(rate, 0), 1) }
}

// WithRoll overrides the random source used to decide failures. It must
// return values in [0, 1).
func WithRoll(roll func() float64) Option {
	return func(l *Latency) { l.roll = roll }
}

// NewLatency creates a call that waits delay and, by default, never fails.
func NewLatency(delay time.Duration, opts ...Option) *Latency {
	l := &Latency{delay: delay, roll: rand.Float64}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Wait blocks for the configured delay. It returns ctx.Err() if ctx ends
// first and ErrFailed for a simulated failure.
func (l *Latency) Wait(ctx context.Context) error {
	if l.delay > 0 {
		timer := time.NewTimer(l.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return ctx.Err()
		}
	} else if err := ctx.Err(); err != nil {
		return err
	}

	if l.failRate > 0 && l.roll() < l.failRate {
		return ErrFailed
	}
	return nil
}
