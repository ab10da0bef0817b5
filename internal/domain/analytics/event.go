// Package analytics contains the learning event log, per-user metric
// aggregation, and insight detection.
package analytics

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/cityspark/cityspark-hub/pkg/timeutil"
)

// ══════════════════════════════════════════════════════════════════════════════
// EVENTS
// ══════════════════════════════════════════════════════════════════════════════

// Well-known event types. Tracking accepts arbitrary types; these are the
// ones the aggregations care about.
const (
	TypeLearningSession  = "learning_session"
	TypeVideoWatch       = "video_watch"
	TypeQuizAttempt      = "quiz_attempt"
	TypeQuizCompleted    = "quiz_completed"
	TypeModuleStarted    = "module_started"
	TypeModuleCompleted  = "module_completed"
	TypeDiscussionPost   = "discussion_post"
	TypeAssignmentSubmit = "assignment_submit"
)

// Event is a single tracked learning event. Events are append-only.
type Event struct {
	ID        string                 `json:"id"`
	Type      string                 `json:"type"`
	UserID    string                 `json:"user_id"`
	Timestamp time.Time              `json:"timestamp"`
	Data      map[string]interface{} `json:"data"`
}

// NewEvent builds an event with a high-resolution timestamp ID.
func NewEvent(eventType, userID string, data map[string]interface{}) Event {
	return NewEventAt(eventType, userID, data, timeutil.Now())
}

// NewEventAt is NewEvent with an explicit timestamp.
func NewEventAt(eventType, userID string, data map[string]interface{}, now time.Time) Event {
	return Event{
		ID:        fmt.Sprintf("event_%s", timeutil.CompactTimestampMicro(now)),
		Type:      eventType,
		UserID:    userID,
		Timestamp: now,
		Data:      data,
	}
}

// DurationMinutes extracts the duration payload field, tolerating the
// numeric types JSON decoding produces.
func (e Event) DurationMinutes() float64 {
	return e.numericField("duration_minutes")
}

// Score extracts the score payload field.
func (e Event) Score() float64 {
	return e.numericField("score")
}

func (e Event) numericField(key string) float64 {
	raw, ok := e.Data[key]
	if !ok {
		return 0
	}
	switch v := raw.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		f, _ := v.Float64()
		return f
	default:
		return 0
	}
}
