package memory

import (
	"context"
	"sync"

	"github.com/cityspark/cityspark-hub/internal/domain/analytics"
)

// EventLog is the in-memory analytics.EventLog implementation. Events are
// append-only and indexed by user for metric queries.
type EventLog struct {
	mu     sync.RWMutex
	events []analytics.Event
	byUser map[string][]int
}

// NewEventLog creates an empty event log.
func NewEventLog() *EventLog {
	return &EventLog{
		byUser: make(map[string][]int),
	}
}

// Append records an event.
func (l *EventLog) Append(_ context.Context, event analytics.Event) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.byUser[event.UserID] = append(l.byUser[event.UserID], len(l.events))
	l.events = append(l.events, event)
	return nil
}

// FindByUser returns all events for the user in insertion order.
func (l *EventLog) FindByUser(_ context.Context, userID string) ([]analytics.Event, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	indexes := l.byUser[userID]
	events := make([]analytics.Event, 0, len(indexes))
	for _, idx := range indexes {
		events = append(events, l.events[idx])
	}
	return events, nil
}

// Count returns the total number of stored events.
func (l *EventLog) Count(_ context.Context) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.events)
}
