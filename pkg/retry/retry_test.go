package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig() Config {
	return Config{MaxAttempts: 3, InitialDelay: time.Millisecond, Jitter: 0}
}

func TestDo_SucceedsFirstAttempt(t *testing.T) {
	var calls int
	err := Do(context.Background(), fastConfig(), func(context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestDo_RetriesTransientErrors(t *testing.T) {
	var calls int
	err := Do(context.Background(), fastConfig(), func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDo_ExhaustsAttempts(t *testing.T) {
	transient := errors.New("still down")

	var calls int
	err := Do(context.Background(), fastConfig(), func(context.Context) error {
		calls++
		return transient
	})

	assert.ErrorIs(t, err, transient)
	assert.Equal(t, 3, calls)
}

func TestDo_PermanentErrorStopsImmediately(t *testing.T) {
	boom := errors.New("bad request")

	var calls int
	err := Do(context.Background(), fastConfig(), func(context.Context) error {
		calls++
		return Permanent(boom)
	})

	// The wrapper is stripped before returning.
	assert.Equal(t, boom, err)
	assert.Equal(t, 1, calls)
}

func TestDo_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	cfg := Config{MaxAttempts: 5, InitialDelay: time.Hour, Jitter: 0}
	var calls int
	errCh := make(chan error, 1)
	go func() {
		errCh <- Do(ctx, cfg, func(context.Context) error {
			calls++
			return errors.New("transient")
		})
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls)
	case <-time.After(time.Second):
		t.Fatal("Do did not return after cancellation")
	}
}

func TestPermanent(t *testing.T) {
	assert.Nil(t, Permanent(nil))

	wrapped := Permanent(errors.New("boom"))
	assert.True(t, IsPermanent(wrapped))
	assert.False(t, IsPermanent(errors.New("boom")))
}

func TestDelay_ExponentialGrowthAndCap(t *testing.T) {
	cfg := Config{
		MaxAttempts:  5,
		InitialDelay: 100 * time.Millisecond,
		MaxDelay:     300 * time.Millisecond,
		Multiplier:   2.0,
		Jitter:       0,
	}

	assert.Equal(t, 100*time.Millisecond, cfg.Delay(1))
	assert.Equal(t, 200*time.Millisecond, cfg.Delay(2))
	assert.Equal(t, 300*time.Millisecond, cfg.Delay(3))
	assert.Equal(t, 300*time.Millisecond, cfg.Delay(4))
}

func TestDelay_JitterStaysWithinBounds(t *testing.T) {
	cfg := Config{
		MaxAttempts:  3,
		InitialDelay: 100 * time.Millisecond,
		MaxDelay:     10 * time.Second,
		Multiplier:   2.0,
		Jitter:       0.2,
	}

	for i := 0; i < 100; i++ {
		delay := cfg.Delay(1)
		assert.GreaterOrEqual(t, delay, 80*time.Millisecond)
		assert.LessOrEqual(t, delay, 120*time.Millisecond)
	}
}
