package resilience

import (
	"context"
	"testing"
	"time"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fastRetry keeps the attempt loop quick under test.
var fastRetry = RetryConfig{
	MaxAttempts:    3,
	InitialBackoff: time.Millisecond,
	MaxBackoff:     4 * time.Millisecond,
	Multiplier:     2.0,
}

func TestDo_FirstAttemptSucceeds(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastRetry, func(ctx context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestDo_RecoversFromRateLimit(t *testing.T) {
	// Directory throttles the first two lookups, then lets one through.
	calls := 0
	err := Do(context.Background(), fastRetry, func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return NewTransientError(eris.New("places: unexpected status 429"), 429)
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDo_PermanentErrorNotRetried(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastRetry, func(ctx context.Context) error {
		calls++
		return eris.New("places: unexpected status 403")
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
	assert.Contains(t, err.Error(), "status 403")
}

func TestDo_ExhaustsAttempts(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastRetry, func(ctx context.Context) error {
		calls++
		return NewTransientError(eris.New("places: unexpected status 503"), 503)
	})

	require.Error(t, err)
	assert.Equal(t, 3, calls)
	assert.Contains(t, err.Error(), "status 503")
}

func TestDo_ContextCancelStopsRetrying(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	err := Do(ctx, fastRetry, func(ctx context.Context) error {
		calls++
		cancel()
		return NewTransientError(eris.New("places: unexpected status 500"), 500)
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestDo_ZeroConfigUsesDefaults(t *testing.T) {
	// An empty config must still terminate rather than loop forever.
	calls := 0
	cfg := RetryConfig{InitialBackoff: time.Microsecond}
	err := Do(context.Background(), cfg, func(ctx context.Context) error {
		calls++
		return NewTransientError(eris.New("places: unexpected status 502"), 502)
	})

	require.Error(t, err)
	assert.Equal(t, 3, calls)
}

func TestNextBackoff(t *testing.T) {
	cfg := RetryConfig{MaxBackoff: 10 * time.Millisecond, Multiplier: 2.0}

	assert.Equal(t, 2*time.Millisecond, nextBackoff(time.Millisecond, cfg))
	assert.Equal(t, 8*time.Millisecond, nextBackoff(4*time.Millisecond, cfg))
	assert.Equal(t, 10*time.Millisecond, nextBackoff(8*time.Millisecond, cfg), "capped at MaxBackoff")
	assert.Equal(t, 10*time.Millisecond, nextBackoff(10*time.Millisecond, cfg), "stays at cap")
}
