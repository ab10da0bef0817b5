package command

import (
	"context"
	"errors"

	"github.com/cityspark/cityspark-hub/internal/domain/analytics"
	"github.com/cityspark/cityspark-hub/internal/domain/shared"
	"github.com/cityspark/cityspark-hub/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// TRACK EVENT COMMAND
// Appends a learning event to the analytics log. Event types are open;
// the aggregations pick out the ones they understand.
// ══════════════════════════════════════════════════════════════════════════════

// TrackEventCommand contains one learning event to record.
type TrackEventCommand struct {
	EventType string
	UserID    string
	Data      map[string]interface{}
}

// Validate validates the command.
func (c TrackEventCommand) Validate() error {
	if c.EventType == "" {
		return errors.New("track_event: event_type is required")
	}
	if c.UserID == "" {
		return errors.New("track_event: user_id is required")
	}
	return nil
}

// TrackEventHandler handles the TrackEventCommand.
type TrackEventHandler struct {
	events analytics.EventLog
	log    *logger.Logger
}

// NewTrackEventHandler creates a new TrackEventHandler.
func NewTrackEventHandler(events analytics.EventLog, log *logger.Logger) *TrackEventHandler {
	if log == nil {
		log = logger.Default()
	}
	return &TrackEventHandler{
		events: events,
		log:    log.With(logger.Component("track_event")),
	}
}

// Execute appends the event and returns it.
func (h *TrackEventHandler) Execute(ctx context.Context, cmd TrackEventCommand) (analytics.Event, error) {
	if err := cmd.Validate(); err != nil {
		return analytics.Event{}, shared.WrapError("analytics", "TrackEvent", shared.ErrInvalidInput, "invalid command", err)
	}

	event := analytics.NewEvent(cmd.EventType, cmd.UserID, cmd.Data)
	if err := h.events.Append(ctx, event); err != nil {
		return analytics.Event{}, err
	}

	h.log.Debug("event tracked",
		logger.EventType(cmd.EventType),
		logger.String("user_id", cmd.UserID),
	)
	return event, nil
}
