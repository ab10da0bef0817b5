package messaging

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cityspark/cityspark-hub/internal/domain/shared"
)

func syncBus(t *testing.T) *InMemoryEventBus {
	t.Helper()
	bus := NewInMemoryEventBus(Config{AsyncMode: false})
	t.Cleanup(func() { bus.Close() })
	return bus
}

func TestBus_PublishToSubscriber(t *testing.T) {
	bus := syncBus(t)

	var received []shared.Event
	require.NoError(t, bus.Subscribe(shared.EventProfileCreated, func(e shared.Event) error {
		received = append(received, e)
		return nil
	}))

	event := shared.NewProfileCreatedEvent("student-1", "visual", "beginner")
	require.NoError(t, bus.Publish(event))
	require.NoError(t, bus.Publish(shared.NewArtGeneratedEvent("art_1", "modern", "user-1", "city")))

	require.Len(t, received, 1)
	assert.Equal(t, shared.EventProfileCreated, received[0].EventType())
}

func TestBus_SubscribeAll(t *testing.T) {
	bus := syncBus(t)

	var count int
	require.NoError(t, bus.SubscribeAll(func(e shared.Event) error {
		count++
		return nil
	}))

	require.NoError(t, bus.Publish(shared.NewProfileCreatedEvent("student-1", "visual", "beginner")))
	require.NoError(t, bus.Publish(shared.NewArtGeneratedEvent("art_1", "modern", "user-1", "city")))

	assert.Equal(t, 2, count)
}

func TestBus_HandlerErrorDoesNotStopOthers(t *testing.T) {
	bus := syncBus(t)

	var called bool
	require.NoError(t, bus.Subscribe(shared.EventProfileCreated, func(e shared.Event) error {
		return errors.New("boom")
	}))
	require.NoError(t, bus.Subscribe(shared.EventProfileCreated, func(e shared.Event) error {
		called = true
		return nil
	}))

	require.NoError(t, bus.Publish(shared.NewProfileCreatedEvent("student-1", "visual", "beginner")))
	assert.True(t, called)
}

func TestBus_NilArguments(t *testing.T) {
	bus := syncBus(t)

	assert.Error(t, bus.Subscribe(shared.EventProfileCreated, nil))
	assert.Error(t, bus.SubscribeAll(nil))
	assert.Error(t, bus.Publish(nil))
}

func TestBus_AsyncDelivery(t *testing.T) {
	bus := NewInMemoryEventBus(Config{AsyncMode: true, WorkerPoolSize: 4})

	var mu sync.Mutex
	var count int
	require.NoError(t, bus.SubscribeAll(func(e shared.Event) error {
		mu.Lock()
		count++
		mu.Unlock()
		return nil
	}))

	for i := 0; i < 20; i++ {
		require.NoError(t, bus.Publish(shared.NewArtInteractionEvent(shared.EventArtViewed, "art_1", "user-1", 0, i)))
	}

	// Close waits for in-flight handlers.
	require.NoError(t, bus.Close())

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 20, count)
}

func TestBus_ClosedBusRejectsOperations(t *testing.T) {
	bus := NewInMemoryEventBus(DefaultConfig())
	require.NoError(t, bus.Close())

	assert.ErrorIs(t, bus.Publish(shared.NewProfileCreatedEvent("s", "visual", "beginner")), ErrBusClosed)
	assert.ErrorIs(t, bus.Subscribe(shared.EventProfileCreated, func(shared.Event) error { return nil }), ErrBusClosed)
	assert.ErrorIs(t, bus.SubscribeAll(func(shared.Event) error { return nil }), ErrBusClosed)

	// Closing twice is fine.
	assert.NoError(t, bus.Close())
}

func TestBus_PublishWithoutSubscribersSkipsMetrics(t *testing.T) {
	bus := syncBus(t)

	require.NoError(t, bus.Publish(shared.NewProfileCreatedEvent("student-1", "visual", "beginner")))
	assert.Zero(t, bus.Metrics().Snapshot().TotalPublished)
}

func TestMetrics_Snapshot(t *testing.T) {
	m := NewMetrics()

	m.RecordPublish(shared.EventArtLiked)
	m.RecordPublish(shared.EventArtLiked)
	m.RecordPublish(shared.EventArtViewed)
	m.RecordHandlerExecution(shared.EventArtLiked, 10*time.Millisecond, true)
	m.RecordHandlerExecution(shared.EventArtLiked, 30*time.Millisecond, false)

	snap := m.Snapshot()
	assert.Equal(t, int64(3), snap.TotalPublished)
	assert.Equal(t, int64(2), snap.TotalHandlerExecs)
	assert.InDelta(t, 0.5, snap.HandlerSuccessRate, 1e-9)
	assert.Equal(t, 20*time.Millisecond, snap.AverageHandlerDuration)
}

func TestMetrics_EmptySnapshot(t *testing.T) {
	snap := NewMetrics().Snapshot()

	assert.Zero(t, snap.TotalPublished)
	assert.Equal(t, 1.0, snap.HandlerSuccessRate)
	assert.Zero(t, snap.AverageHandlerDuration)
}
