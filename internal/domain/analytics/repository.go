package analytics

import (
	"context"
)

// EventLog defines the append-only event store.
type EventLog interface {
	// Append records an event.
	Append(ctx context.Context, event Event) error

	// FindByUser returns all events for the user in insertion order.
	FindByUser(ctx context.Context, userID string) ([]Event, error)

	// Count returns the total number of stored events.
	Count(ctx context.Context) int
}
