package resilience

import (
	"context"
	"testing"
	"time"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testBreaker opens after three failed lookups and lets tests advance the
// clock instead of sleeping through the cooldown.
func testBreaker() (*CircuitBreaker, *time.Time) {
	cb := NewCircuitBreaker(CircuitBreakerConfig{
		FailureThreshold: 3,
		ResetTimeout:     30 * time.Second,
	})
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	cb.now = func() time.Time { return now }
	return cb, &now
}

func lookup(cb *CircuitBreaker, err error) (string, error) {
	return ExecuteVal(context.Background(), cb, func(ctx context.Context) (string, error) {
		if err != nil {
			return "", err
		}
		return "place-id", nil
	})
}

func TestCircuitBreaker_PassesThroughWhenClosed(t *testing.T) {
	cb, _ := testBreaker()

	got, err := lookup(cb, nil)
	require.NoError(t, err)
	assert.Equal(t, "place-id", got)
	assert.Equal(t, CircuitClosed, cb.State())
}

func TestCircuitBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	cb, _ := testBreaker()
	outage := eris.New("places: unexpected status 500")

	for i := 0; i < 3; i++ {
		_, err := lookup(cb, outage)
		require.Error(t, err)
	}
	assert.Equal(t, CircuitOpen, cb.State())

	// Further lookups are rejected without reaching the provider.
	called := false
	_, err := ExecuteVal(context.Background(), cb, func(ctx context.Context) (string, error) {
		called = true
		return "", nil
	})
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.False(t, called)
}

func TestCircuitBreaker_SuccessResetsFailureCount(t *testing.T) {
	cb, _ := testBreaker()
	outage := eris.New("places: unexpected status 500")

	_, _ = lookup(cb, outage)
	_, _ = lookup(cb, outage)
	_, err := lookup(cb, nil)
	require.NoError(t, err)

	// Two more failures are within the threshold again.
	_, _ = lookup(cb, outage)
	_, _ = lookup(cb, outage)
	assert.Equal(t, CircuitClosed, cb.State())
}

func TestCircuitBreaker_ProbeSuccessCloses(t *testing.T) {
	cb, now := testBreaker()
	outage := eris.New("places: unexpected status 500")

	for i := 0; i < 3; i++ {
		_, _ = lookup(cb, outage)
	}
	require.Equal(t, CircuitOpen, cb.State())

	*now = now.Add(31 * time.Second)
	require.Equal(t, CircuitHalfOpen, cb.State())

	_, err := lookup(cb, nil)
	require.NoError(t, err)
	assert.Equal(t, CircuitClosed, cb.State())
}

func TestCircuitBreaker_ProbeFailureReopens(t *testing.T) {
	cb, now := testBreaker()
	outage := eris.New("places: unexpected status 500")

	for i := 0; i < 3; i++ {
		_, _ = lookup(cb, outage)
	}

	*now = now.Add(31 * time.Second)
	_, err := lookup(cb, outage)
	require.Error(t, err)
	assert.Equal(t, CircuitOpen, cb.State())

	// The cooldown restarts from the failed probe.
	_, err = lookup(cb, nil)
	assert.ErrorIs(t, err, ErrCircuitOpen)
}

func TestCircuitBreaker_SingleProbeWhileHalfOpen(t *testing.T) {
	cb, now := testBreaker()
	outage := eris.New("places: unexpected status 500")

	for i := 0; i < 3; i++ {
		_, _ = lookup(cb, outage)
	}
	*now = now.Add(31 * time.Second)

	probe, err := cb.admit()
	require.NoError(t, err)
	assert.True(t, probe)

	// A second call while the probe is in flight is rejected.
	_, err = cb.admit()
	assert.ErrorIs(t, err, ErrCircuitOpen)

	cb.record(true, nil)
	assert.Equal(t, CircuitClosed, cb.State())
}

func TestCircuitBreaker_DefaultsApplied(t *testing.T) {
	cb := NewCircuitBreaker(CircuitBreakerConfig{})
	assert.Equal(t, 5, cb.cfg.FailureThreshold)
	assert.Equal(t, 30*time.Second, cb.cfg.ResetTimeout)
}
