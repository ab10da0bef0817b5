// Package retry provides retry functionality with exponential backoff and jitter.
// Designed for resilient external service calls (Omniscient Hub, GitHub API).
// No external dependencies - uses only standard library.
package retry

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"time"
)

// PermanentError indicates that an error should not be retried.
type PermanentError struct {
	Err error
}

func (e *PermanentError) Error() string {
	return e.Err.Error()
}

func (e *PermanentError) Unwrap() error {
	return e.Err
}

// Permanent wraps an error to indicate it should not be retried.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &PermanentError{Err: err}
}

// IsPermanent checks if an error is permanent (should not be retried).
func IsPermanent(err error) bool {
	var permanentErr *PermanentError
	return errors.As(err, &permanentErr)
}

// Config holds retry configuration.
type Config struct {
	// MaxAttempts is the maximum number of attempts (including the first).
	// Default: 3
	MaxAttempts int

	// InitialDelay is the delay before the first retry.
	// Default: 100ms
	InitialDelay time.Duration

	// MaxDelay caps the backoff delay.
	// Default: 10s
	MaxDelay time.Duration

	// Multiplier is the exponential backoff multiplier.
	// Default: 2.0
	Multiplier float64

	// Jitter adds randomness to delays to avoid thundering herds.
	// Expressed as a fraction of the delay (0.2 = ±20%).
	// Default: 0.2
	Jitter float64
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:  3,
		InitialDelay: 100 * time.Millisecond,
		MaxDelay:     10 * time.Second,
		Multiplier:   2.0,
		Jitter:       0.2,
	}
}

// normalize fills in zero values with defaults.
func (c Config) normalize() Config {
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 3
	}
	if c.InitialDelay <= 0 {
		c.InitialDelay = 100 * time.Millisecond
	}
	if c.MaxDelay <= 0 {
		c.MaxDelay = 10 * time.Second
	}
	if c.Multiplier <= 1.0 {
		c.Multiplier = 2.0
	}
	if c.Jitter < 0 {
		c.Jitter = 0
	}
	return c
}

// Delay calculates the backoff delay for the given attempt (1-based).
func (c Config) Delay(attempt int) time.Duration {
	cfg := c.normalize()

	delay := float64(cfg.InitialDelay) * math.Pow(cfg.Multiplier, float64(attempt-1))
	if delay > float64(cfg.MaxDelay) {
		delay = float64(cfg.MaxDelay)
	}

	if cfg.Jitter > 0 {
		jitter := delay * cfg.Jitter
		delay += (rand.Float64()*2 - 1) * jitter
	}

	if delay < 0 {
		delay = 0
	}

	return time.Duration(delay)
}

// Do executes fn with retries according to the config.
// It stops on success, a permanent error, or context cancellation.
func Do(ctx context.Context, cfg Config, fn func(context.Context) error) error {
	cfg = cfg.normalize()

	var lastErr error
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(cfg.Delay(attempt - 1)):
			}
		}

		err := fn(ctx)
		if err == nil {
			return nil
		}

		if IsPermanent(err) {
			var permanent *PermanentError
			errors.As(err, &permanent)
			return permanent.Err
		}

		lastErr = err
	}

	return lastErr
}
