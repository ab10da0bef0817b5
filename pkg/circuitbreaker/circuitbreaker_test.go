package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		Name:             "test",
		FailureThreshold: 3,
		SuccessThreshold: 2,
		Timeout:          50 * time.Millisecond,
	}
}

func tripOpen(t *testing.T, cb *CircuitBreaker) {
	t.Helper()
	for i := 0; i < 3; i++ {
		require.NoError(t, cb.Allow())
		cb.RecordFailure()
	}
	require.Equal(t, StateOpen, cb.State())
}

func TestBreaker_OpensAfterThreshold(t *testing.T) {
	cb := New(testConfig())

	cb.RecordFailure()
	cb.RecordFailure()
	assert.Equal(t, StateClosed, cb.State())

	cb.RecordFailure()
	assert.Equal(t, StateOpen, cb.State())
	assert.ErrorIs(t, cb.Allow(), ErrCircuitOpen)
}

func TestBreaker_SuccessResetsFailureCount(t *testing.T) {
	cb := New(testConfig())

	cb.RecordFailure()
	cb.RecordFailure()
	cb.RecordSuccess()
	cb.RecordFailure()
	cb.RecordFailure()

	assert.Equal(t, StateClosed, cb.State())
}

func TestBreaker_HalfOpenAfterTimeout(t *testing.T) {
	cb := New(testConfig())
	tripOpen(t, cb)

	time.Sleep(60 * time.Millisecond)

	// First request after the timeout probes the service.
	require.NoError(t, cb.Allow())
	assert.Equal(t, StateHalfOpen, cb.State())

	// Only one probe is allowed at a time.
	assert.ErrorIs(t, cb.Allow(), ErrTooManyRequests)
}

func TestBreaker_HalfOpenClosesAfterSuccesses(t *testing.T) {
	cb := New(testConfig())
	tripOpen(t, cb)

	time.Sleep(60 * time.Millisecond)
	require.NoError(t, cb.Allow())

	cb.RecordSuccess()
	assert.Equal(t, StateHalfOpen, cb.State())

	cb.RecordSuccess()
	assert.Equal(t, StateClosed, cb.State())
}

func TestBreaker_HalfOpenReopensOnFailure(t *testing.T) {
	cb := New(testConfig())
	tripOpen(t, cb)

	time.Sleep(60 * time.Millisecond)
	require.NoError(t, cb.Allow())

	cb.RecordFailure()
	assert.Equal(t, StateOpen, cb.State())
}

func TestExecute(t *testing.T) {
	cb := New(testConfig())
	boom := errors.New("boom")

	for i := 0; i < 3; i++ {
		err := cb.Execute(context.Background(), func(context.Context) error { return boom })
		assert.ErrorIs(t, err, boom)
	}

	// Open circuit blocks without invoking fn.
	var called bool
	err := cb.Execute(context.Background(), func(context.Context) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.False(t, called)
}

func TestBreaker_OnStateChange(t *testing.T) {
	var transitions []string
	config := testConfig()
	config.OnStateChange = func(name string, from, to State) {
		transitions = append(transitions, from.String()+">"+to.String())
	}

	cb := New(config)
	tripOpen(t, cb)
	cb.Reset()

	assert.Equal(t, []string{"closed>open", "open>closed"}, transitions)
}

func TestStatus(t *testing.T) {
	cb := New(testConfig())
	cb.RecordFailure()

	status := cb.Status()
	assert.Equal(t, "test", status.Name)
	assert.Equal(t, "closed", status.State)
	assert.Equal(t, 1, status.Failures)
}
