// Package resilience shields the pipeline's provider calls — directory
// lookups and LLM requests — from rate limiting and upstream flakiness.
// It retries transient failures with exponential backoff and trips a
// circuit breaker when a provider stays down.
package resilience

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// RetryConfig controls backoff between attempts at a provider call.
type RetryConfig struct {
	// MaxAttempts counts the first try too; 1 disables retries.
	MaxAttempts int

	// InitialBackoff is the delay before the first retry.
	InitialBackoff time.Duration

	// MaxBackoff caps the delay between attempts.
	MaxBackoff time.Duration

	// Multiplier scales the delay after each failed attempt.
	Multiplier float64
}

// DefaultRetryConfig suits the directory API: 429s clear within a second
// or two, so three attempts with short backoff recovers the common case
// without stalling a run.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:    3,
		InitialBackoff: 500 * time.Millisecond,
		MaxBackoff:     30 * time.Second,
		Multiplier:     2.0,
	}
}

// Do runs fn until it succeeds, returns a non-transient error, or exhausts
// cfg.MaxAttempts. Only transient provider errors are retried; context
// cancellation ends the attempt loop immediately.
func Do(ctx context.Context, cfg RetryConfig, fn func(ctx context.Context) error) error {
	attempts := cfg.MaxAttempts
	if attempts <= 0 {
		attempts = 3
	}

	delay := cfg.InitialBackoff
	if delay <= 0 {
		delay = 500 * time.Millisecond
	}

	for attempt := 1; ; attempt++ {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		if ctx.Err() != nil || !IsTransient(err) || attempt >= attempts {
			return err
		}

		zap.L().Warn("provider call failed, retrying",
			zap.Int("attempt", attempt),
			zap.Duration("backoff", delay),
			zap.Error(err),
		)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return err
		case <-timer.C:
		}

		delay = nextBackoff(delay, cfg)
	}
}

func nextBackoff(delay time.Duration, cfg RetryConfig) time.Duration {
	mult := cfg.Multiplier
	if mult <= 0 {
		mult = 2.0
	}
	next := time.Duration(float64(delay) * mult)

	max := cfg.MaxBackoff
	if max <= 0 {
		max = 30 * time.Second
	}
	if next > max {
		next = max
	}
	return next
}
