// Package eventhandler contains subscribers that react to domain events.
package eventhandler

import (
	"context"

	"github.com/cityspark/cityspark-hub/internal/domain/analytics"
	"github.com/cityspark/cityspark-hub/internal/domain/shared"
	"github.com/cityspark/cityspark-hub/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// ANALYTICS FORWARDER
// Mirrors every domain event into the analytics log so platform activity
// shows up in user metrics without each handler tracking explicitly.
// ══════════════════════════════════════════════════════════════════════════════

// AnalyticsForwarder appends domain events to the analytics event log.
type AnalyticsForwarder struct {
	events analytics.EventLog
	log    *logger.Logger
}

// NewAnalyticsForwarder creates a new AnalyticsForwarder.
func NewAnalyticsForwarder(events analytics.EventLog, log *logger.Logger) *AnalyticsForwarder {
	if log == nil {
		log = logger.Default()
	}
	return &AnalyticsForwarder{
		events: events,
		log:    log.With(logger.Component("analytics_forwarder")),
	}
}

// Register subscribes the forwarder to every event on the bus.
func (f *AnalyticsForwarder) Register(bus shared.EventSubscriber) error {
	return bus.SubscribeAll(f.Handle)
}

// Handle converts a domain event into an analytics entry. The aggregate ID
// doubles as the user ID, which holds for student and interaction events;
// gallery aggregates show up under the piece ID.
func (f *AnalyticsForwarder) Handle(event shared.Event) error {
	entry := analytics.NewEventAt(
		string(event.EventType()),
		event.AggregateID(),
		event.Payload(),
		event.OccurredAt(),
	)

	if err := f.events.Append(context.Background(), entry); err != nil {
		f.log.Warn("forward to analytics failed",
			logger.EventType(string(event.EventType())),
			logger.Err(err),
		)
		return err
	}
	return nil
}
