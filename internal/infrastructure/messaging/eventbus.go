// Package messaging implements the in-process event bus connecting domain
// commands to the analytics aggregator and other subscribers.
package messaging

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cityspark/cityspark-hub/internal/domain/shared"
	"github.com/cityspark/cityspark-hub/pkg/logger"
)

// Bus errors.
var (
	// ErrBusClosed is returned when operations are attempted on a closed bus.
	ErrBusClosed = errors.New("event bus is closed")
)

// ══════════════════════════════════════════════════════════════════════════════
// IN-MEMORY EVENT BUS
// ══════════════════════════════════════════════════════════════════════════════

// InMemoryEventBus is a single-instance implementation of shared.EventBus.
// The stores it feeds are in-memory and instance-local, so a distributed
// bus buys nothing here.
type InMemoryEventBus struct {
	mu          sync.RWMutex
	handlers    map[shared.EventType][]shared.EventHandler
	allHandlers []shared.EventHandler
	asyncMode   bool
	workerPool  chan struct{}
	log         *logger.Logger
	metrics     *Metrics
	instanceID  string
	closed      bool
	closeCh     chan struct{}
	wg          sync.WaitGroup
}

// Config contains configuration for InMemoryEventBus.
type Config struct {
	// AsyncMode runs handlers on a worker pool instead of inline.
	AsyncMode bool

	// WorkerPoolSize is the number of concurrent workers for async mode.
	WorkerPoolSize int

	// Logger for structured logging.
	Logger *logger.Logger
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		AsyncMode:      true,
		WorkerPoolSize: 10,
	}
}

// NewInMemoryEventBus creates a new in-memory event bus.
func NewInMemoryEventBus(config Config) *InMemoryEventBus {
	if config.Logger == nil {
		config.Logger = logger.Default()
	}
	if config.WorkerPoolSize <= 0 {
		config.WorkerPoolSize = 10
	}

	return &InMemoryEventBus{
		handlers:   make(map[shared.EventType][]shared.EventHandler),
		asyncMode:  config.AsyncMode,
		workerPool: make(chan struct{}, config.WorkerPoolSize),
		log:        config.Logger.With(logger.Component("eventbus")),
		metrics:    NewMetrics(),
		instanceID: uuid.NewString(),
		closeCh:    make(chan struct{}),
	}
}

// InstanceID identifies this bus instance.
func (b *InMemoryEventBus) InstanceID() string {
	return b.instanceID
}

// Subscribe registers a handler for a specific event type.
func (b *InMemoryEventBus) Subscribe(eventType shared.EventType, handler shared.EventHandler) error {
	if handler == nil {
		return errors.New("handler cannot be nil")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrBusClosed
	}

	b.handlers[eventType] = append(b.handlers[eventType], handler)
	return nil
}

// SubscribeAll registers a handler for all events.
func (b *InMemoryEventBus) SubscribeAll(handler shared.EventHandler) error {
	if handler == nil {
		return errors.New("handler cannot be nil")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrBusClosed
	}

	b.allHandlers = append(b.allHandlers, handler)
	return nil
}

// Publish sends an event to all subscribed handlers.
func (b *InMemoryEventBus) Publish(event shared.Event) error {
	if event == nil {
		return errors.New("event cannot be nil")
	}

	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return ErrBusClosed
	}

	handlers := make([]shared.EventHandler, 0, len(b.handlers[event.EventType()])+len(b.allHandlers))
	handlers = append(handlers, b.handlers[event.EventType()]...)
	handlers = append(handlers, b.allHandlers...)
	b.mu.RUnlock()

	if len(handlers) == 0 {
		return nil
	}

	b.metrics.RecordPublish(event.EventType())

	if b.asyncMode {
		for _, handler := range handlers {
			b.executeAsync(event, handler)
		}
		return nil
	}

	for _, handler := range handlers {
		if err := b.executeSync(event, handler); err != nil {
			b.log.Error("handler error",
				logger.EventType(string(event.EventType())),
				logger.Err(err),
			)
		}
	}
	return nil
}

// executeAsync runs a handler on the worker pool.
func (b *InMemoryEventBus) executeAsync(event shared.Event, handler shared.EventHandler) {
	b.wg.Add(1)

	go func() {
		defer b.wg.Done()

		select {
		case b.workerPool <- struct{}{}:
			defer func() { <-b.workerPool }()
		case <-b.closeCh:
			return
		}

		if err := b.executeSync(event, handler); err != nil {
			b.log.Error("async handler error",
				logger.EventType(string(event.EventType())),
				logger.Err(err),
			)
		}
	}()
}

func (b *InMemoryEventBus) executeSync(event shared.Event, handler shared.EventHandler) error {
	start := time.Now()
	err := handler(event)
	b.metrics.RecordHandlerExecution(event.EventType(), time.Since(start), err == nil)
	return err
}

// Close gracefully shuts down the event bus, waiting for in-flight
// handlers to finish.
func (b *InMemoryEventBus) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	close(b.closeCh)
	b.mu.Unlock()

	b.wg.Wait()
	b.log.Info("event bus closed")
	return nil
}

// Metrics returns the bus metrics tracker.
func (b *InMemoryEventBus) Metrics() *Metrics {
	return b.metrics
}

// ══════════════════════════════════════════════════════════════════════════════
// METRICS
// ══════════════════════════════════════════════════════════════════════════════

// Metrics tracks event bus performance.
type Metrics struct {
	mu sync.RWMutex

	publishedTotal    map[shared.EventType]int64
	handlerExecutions int64
	handlerSuccesses  int64
	handlerFailures   int64
	totalDuration     time.Duration
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{
		publishedTotal: make(map[shared.EventType]int64),
	}
}

// RecordPublish records a published event.
func (m *Metrics) RecordPublish(eventType shared.EventType) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.publishedTotal[eventType]++
}

// RecordHandlerExecution records a handler run.
func (m *Metrics) RecordHandlerExecution(eventType shared.EventType, duration time.Duration, success bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.handlerExecutions++
	m.totalDuration += duration
	if success {
		m.handlerSuccesses++
	} else {
		m.handlerFailures++
	}
}

// Snapshot is a point-in-time view of the metrics.
type Snapshot struct {
	TotalPublished         int64         `json:"total_published"`
	TotalHandlerExecs      int64         `json:"total_handler_execs"`
	HandlerSuccessRate     float64       `json:"handler_success_rate"`
	AverageHandlerDuration time.Duration `json:"average_handler_duration"`
}

// Snapshot returns a copy of current metrics.
func (m *Metrics) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var published int64
	for _, count := range m.publishedTotal {
		published += count
	}

	successRate := 1.0
	if m.handlerExecutions > 0 {
		successRate = float64(m.handlerSuccesses) / float64(m.handlerExecutions)
	}

	avg := time.Duration(0)
	if m.handlerExecutions > 0 {
		avg = m.totalDuration / time.Duration(m.handlerExecutions)
	}

	return Snapshot{
		TotalPublished:         published,
		TotalHandlerExecs:      m.handlerExecutions,
		HandlerSuccessRate:     successRate,
		AverageHandlerDuration: avg,
	}
}
