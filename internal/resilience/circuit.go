package resilience

import (
	"context"
	"sync"
	"time"

	"github.com/rotisserie/eris"
)

// ErrCircuitOpen is returned when a call is rejected because the provider
// has failed too many times in a row and the cooldown has not elapsed.
var ErrCircuitOpen = eris.New("circuit breaker is open")

// CircuitState is the breaker's observable state.
type CircuitState int

const (
	// CircuitClosed lets calls through.
	CircuitClosed CircuitState = iota
	// CircuitOpen rejects calls until the cooldown elapses.
	CircuitOpen
	// CircuitHalfOpen admits a single probe call to test recovery.
	CircuitHalfOpen
)

func (s CircuitState) String() string {
	switch s {
	case CircuitClosed:
		return "closed"
	case CircuitOpen:
		return "open"
	case CircuitHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// CircuitBreakerConfig sizes the breaker for one provider.
type CircuitBreakerConfig struct {
	// FailureThreshold is the consecutive-failure count that opens the
	// circuit.
	FailureThreshold int

	// ResetTimeout is how long the circuit stays open before admitting a
	// probe call.
	ResetTimeout time.Duration
}

// DefaultCircuitBreakerConfig tolerates a burst of rejected lookups during
// enrichment before giving the directory a half-minute to recover.
func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		FailureThreshold: 5,
		ResetTimeout:     30 * time.Second,
	}
}

// CircuitBreaker stops hammering a provider that keeps failing. After
// FailureThreshold consecutive failures it rejects calls outright; once
// ResetTimeout passes, one probe call is admitted, and its outcome either
// closes the circuit or restarts the cooldown.
type CircuitBreaker struct {
	cfg CircuitBreakerConfig

	mu       sync.Mutex
	failures int
	openedAt time.Time
	probing  bool

	now func() time.Time
}

// NewCircuitBreaker creates a breaker, falling back to defaults for
// unset config fields.
func NewCircuitBreaker(cfg CircuitBreakerConfig) *CircuitBreaker {
	def := DefaultCircuitBreakerConfig()
	if cfg.FailureThreshold <= 0 {
		cfg.FailureThreshold = def.FailureThreshold
	}
	if cfg.ResetTimeout <= 0 {
		cfg.ResetTimeout = def.ResetTimeout
	}
	return &CircuitBreaker{cfg: cfg, now: time.Now}
}

// ExecuteVal runs fn through the breaker, preserving its return value.
// Returns ErrCircuitOpen without calling fn when the circuit is open.
func ExecuteVal[T any](ctx context.Context, cb *CircuitBreaker, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	probe, err := cb.admit()
	if err != nil {
		return zero, err
	}

	val, err := fn(ctx)
	cb.record(probe, err)
	if err != nil {
		return zero, err
	}
	return val, nil
}

// State reports the breaker's current state.
func (cb *CircuitBreaker) State() CircuitState {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.failures < cb.cfg.FailureThreshold {
		return CircuitClosed
	}
	if cb.now().Sub(cb.openedAt) < cb.cfg.ResetTimeout {
		return CircuitOpen
	}
	return CircuitHalfOpen
}

// admit decides whether a call may proceed, and whether it is the
// half-open probe.
func (cb *CircuitBreaker) admit() (probe bool, err error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.failures < cb.cfg.FailureThreshold {
		return false, nil
	}
	if cb.now().Sub(cb.openedAt) < cb.cfg.ResetTimeout {
		return false, ErrCircuitOpen
	}
	// One probe at a time while half-open.
	if cb.probing {
		return false, ErrCircuitOpen
	}
	cb.probing = true
	return true, nil
}

func (cb *CircuitBreaker) record(probe bool, err error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if probe {
		cb.probing = false
	}

	if err == nil {
		cb.failures = 0
		return
	}

	cb.failures++
	cb.openedAt = cb.now()
}
