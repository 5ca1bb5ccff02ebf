package circuit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// outcome is one recorded call: true for success.
type outcome bool

const (
	ok   outcome = true
	fail outcome = false
)

func record(b *Breaker, outcomes ...outcome) (last StateChange) {
	for _, o := range outcomes {
		if o {
			_, last = b.RecordSuccess()
		} else {
			_, last = b.RecordFailure()
		}
	}
	return last
}

func TestNewBreakerIsClosed(t *testing.T) {
	b := New("audit-stream")
	assert.Equal(t, "audit-stream", b.Name())
	assert.Equal(t, StateClosed, b.State())
	assert.False(t, b.IsOpen())
}

func TestBreakerTransitions(t *testing.T) {
	tests := []struct {
		name     string
		failures int
		success  int
		outcomes []outcome
		open     bool
		change   StateChange
	}{
		{"below failure threshold", 3, 2, []outcome{fail, fail}, false, StateChange{}},
		{"opens at failure threshold", 3, 2, []outcome{fail, fail, fail}, true, StateChange{Opened: true}},
		{"success resets failure run", 3, 2, []outcome{fail, fail, ok, fail, fail}, false, StateChange{}},
		{"stays open on more failures", 1, 2, []outcome{fail, fail}, true, StateChange{}},
		{"half way to closing", 1, 2, []outcome{fail, ok}, true, StateChange{}},
		{"closes after success run", 1, 2, []outcome{fail, ok, ok}, false, StateChange{Closed: true}},
		{"failure resets success run", 1, 3, []outcome{fail, ok, ok, fail, ok, ok}, true, StateChange{}},
		{"closes after a clean run", 1, 3, []outcome{fail, ok, ok, fail, ok, ok, ok}, false, StateChange{Closed: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New("edge-functions", WithFailureThreshold(tt.failures), WithSuccessThreshold(tt.success))
			change := record(b, tt.outcomes...)
			assert.Equal(t, tt.open, b.IsOpen())
			assert.Equal(t, tt.change, change)
		})
	}
}

func TestBreakerFallbackSignals(t *testing.T) {
	b := New("audit-stream", WithFailureThreshold(1), WithSuccessThreshold(1))

	useFallback, _ := b.RecordFailure()
	require.True(t, useFallback)
	useFallback, change := b.RecordFailure()
	assert.True(t, useFallback)
	assert.False(t, change.Opened)

	usePrimary, change := b.RecordSuccess()
	assert.True(t, usePrimary)
	assert.True(t, change.Closed)
}

func TestNonPositiveThresholdsKeepDefaults(t *testing.T) {
	b := New("x", WithFailureThreshold(0), WithSuccessThreshold(-1))
	assert.Equal(t, defaultFailureThreshold, b.failureThreshold)
	assert.Equal(t, defaultSuccessThreshold, b.successThreshold)
}

func TestAllowWaitsForCooldown(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	b := New("edge-functions",
		WithFailureThreshold(2),
		WithSuccessThreshold(2),
		WithCooldown(30*time.Second),
		WithClock(func() time.Time { return now }),
	)

	assert.True(t, b.Allow())
	record(b, fail, fail)
	require.True(t, b.IsOpen())
	assert.False(t, b.Allow())

	now = now.Add(31 * time.Second)
	assert.True(t, b.Allow(), "one trial after the cooldown")
	assert.False(t, b.Allow(), "only one trial per cooldown")

	record(b, fail)
	now = now.Add(10 * time.Second)
	assert.False(t, b.Allow(), "a failed trial restarts the cooldown")

	now = now.Add(30 * time.Second)
	require.True(t, b.Allow())
	record(b, ok)
	assert.True(t, b.Allow(), "a successful trial lets calls through")
	change := record(b, ok)
	assert.True(t, change.Closed)
	assert.False(t, b.IsOpen())
}

func TestAllowWithoutCooldownNeverBlocks(t *testing.T) {
	b := New("audit-stream", WithFailureThreshold(1))
	record(b, fail)
	require.True(t, b.IsOpen())
	assert.True(t, b.Allow())
}
