package shared

import (
	"time"
)

// EventType represents the type of domain event.
type EventType string

// Domain event types. Each event represents something significant that
// happened in the domain; the analytics aggregator subscribes to all of them.
const (
	// Student events
	EventProfileCreated      EventType = "student.profile_created"
	EventPerformanceAnalyzed EventType = "student.performance_analyzed"

	// Learning events
	EventLearningPathGenerated EventType = "learning.path_generated"
	EventOutcomesPredicted     EventType = "learning.outcomes_predicted"

	// Art events
	EventArtGenerated       EventType = "art.generated"
	EventArtLiked           EventType = "art.liked"
	EventArtViewed          EventType = "art.viewed"
	EventArtFeatured        EventType = "art.featured"
	EventCollectionCreated  EventType = "art.collection_created"

	// Assessment events
	EventSubmissionEvaluated EventType = "assessment.submission_evaluated"
)

// Event is the base interface for all domain events.
type Event interface {
	// EventType returns the type of the event.
	EventType() EventType

	// OccurredAt returns when the event occurred.
	OccurredAt() time.Time

	// AggregateID returns the ID of the aggregate that produced this event.
	AggregateID() string

	// Payload returns the event data as a map for serialization.
	Payload() map[string]interface{}
}

// EventHandler processes a published event.
type EventHandler func(Event) error

// EventPublisher publishes domain events to interested subscribers.
type EventPublisher interface {
	Publish(event Event) error
}

// EventSubscriber registers handlers for published events.
type EventSubscriber interface {
	// Subscribe registers a handler for an event type.
	Subscribe(eventType EventType, handler EventHandler) error

	// SubscribeAll registers a handler for all events.
	SubscribeAll(handler EventHandler) error
}

// EventBus combines publishing and subscribing.
type EventBus interface {
	EventPublisher
	EventSubscriber
}

// BaseEvent provides common event functionality.
type BaseEvent struct {
	ID            string    `json:"id"`
	Type          EventType `json:"type"`
	Timestamp     time.Time `json:"timestamp"`
	AggregateId   string    `json:"aggregate_id"`
	CorrelationID string    `json:"correlation_id,omitempty"`
}

// EventType implements Event interface.
func (e BaseEvent) EventType() EventType {
	return e.Type
}

// OccurredAt implements Event interface.
func (e BaseEvent) OccurredAt() time.Time {
	return e.Timestamp
}

// AggregateID implements Event interface.
func (e BaseEvent) AggregateID() string {
	return e.AggregateId
}

// NewBaseEvent creates a new base event.
func NewBaseEvent(eventType EventType, aggregateID string) BaseEvent {
	return BaseEvent{
		Type:        eventType,
		Timestamp:   time.Now().UTC(),
		AggregateId: aggregateID,
	}
}

// WithCorrelationID sets the correlation ID for tracing.
func (e BaseEvent) WithCorrelationID(id string) BaseEvent {
	e.CorrelationID = id
	return e
}

// ProfileCreatedEvent is emitted when a student profile is created or replaced.
type ProfileCreatedEvent struct {
	BaseEvent
	LearningStyle string `json:"learning_style"`
	SkillLevel    string `json:"skill_level"`
}

// Payload implements Event interface.
func (e ProfileCreatedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"learning_style": e.LearningStyle,
		"skill_level":    e.SkillLevel,
	}
}

// NewProfileCreatedEvent creates a new ProfileCreatedEvent.
func NewProfileCreatedEvent(studentID, learningStyle, skillLevel string) ProfileCreatedEvent {
	return ProfileCreatedEvent{
		BaseEvent:     NewBaseEvent(EventProfileCreated, studentID),
		LearningStyle: learningStyle,
		SkillLevel:    skillLevel,
	}
}

// PerformanceAnalyzedEvent is emitted after a performance record is appended.
type PerformanceAnalyzedEvent struct {
	BaseEvent
	Score        float64 `json:"score"`
	MasteryLevel float64 `json:"mastery_level"`
	Difficulty   string  `json:"difficulty"`
}

// Payload implements Event interface.
func (e PerformanceAnalyzedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"score":         e.Score,
		"mastery_level": e.MasteryLevel,
		"difficulty":    e.Difficulty,
	}
}

// NewPerformanceAnalyzedEvent creates a new PerformanceAnalyzedEvent.
func NewPerformanceAnalyzedEvent(studentID string, score, mastery float64, difficulty string) PerformanceAnalyzedEvent {
	return PerformanceAnalyzedEvent{
		BaseEvent:    NewBaseEvent(EventPerformanceAnalyzed, studentID),
		Score:        score,
		MasteryLevel: mastery,
		Difficulty:   difficulty,
	}
}

// LearningPathGeneratedEvent is emitted when a learning path is generated.
type LearningPathGeneratedEvent struct {
	BaseEvent
	Subject           string `json:"subject"`
	ModuleCount       int    `json:"module_count"`
	EstimatedDuration int    `json:"estimated_duration"`
}

// Payload implements Event interface.
func (e LearningPathGeneratedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"subject":            e.Subject,
		"module_count":       e.ModuleCount,
		"estimated_duration": e.EstimatedDuration,
	}
}

// NewLearningPathGeneratedEvent creates a new LearningPathGeneratedEvent.
func NewLearningPathGeneratedEvent(studentID, subject string, moduleCount, estimatedDuration int) LearningPathGeneratedEvent {
	return LearningPathGeneratedEvent{
		BaseEvent:         NewBaseEvent(EventLearningPathGenerated, studentID),
		Subject:           subject,
		ModuleCount:       moduleCount,
		EstimatedDuration: estimatedDuration,
	}
}

// ArtGeneratedEvent is emitted when a new art piece is created.
type ArtGeneratedEvent struct {
	BaseEvent
	Style  string `json:"style"`
	Owner  string `json:"owner,omitempty"`
	Prompt string `json:"prompt"`
}

// Payload implements Event interface.
func (e ArtGeneratedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"style":  e.Style,
		"owner":  e.Owner,
		"prompt": e.Prompt,
	}
}

// NewArtGeneratedEvent creates a new ArtGeneratedEvent.
func NewArtGeneratedEvent(artID, style, owner, prompt string) ArtGeneratedEvent {
	return ArtGeneratedEvent{
		BaseEvent: NewBaseEvent(EventArtGenerated, artID),
		Style:     style,
		Owner:     owner,
		Prompt:    prompt,
	}
}

// ArtInteractionEvent is emitted for likes, views and feature toggles.
type ArtInteractionEvent struct {
	BaseEvent
	UserID string `json:"user_id,omitempty"`
	Likes  int    `json:"likes"`
	Views  int    `json:"views"`
}

// Payload implements Event interface.
func (e ArtInteractionEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"user_id": e.UserID,
		"likes":   e.Likes,
		"views":   e.Views,
	}
}

// NewArtInteractionEvent creates an interaction event of the given type.
func NewArtInteractionEvent(eventType EventType, artID, userID string, likes, views int) ArtInteractionEvent {
	return ArtInteractionEvent{
		BaseEvent: NewBaseEvent(eventType, artID),
		UserID:    userID,
		Likes:     likes,
		Views:     views,
	}
}

// CollectionCreatedEvent is emitted when an art collection is created.
type CollectionCreatedEvent struct {
	BaseEvent
	Name     string `json:"name"`
	ArtCount int    `json:"art_count"`
	Owner    string `json:"owner"`
}

// Payload implements Event interface.
func (e CollectionCreatedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"name":      e.Name,
		"art_count": e.ArtCount,
		"owner":     e.Owner,
	}
}

// NewCollectionCreatedEvent creates a new CollectionCreatedEvent.
func NewCollectionCreatedEvent(collectionID, name, owner string, artCount int) CollectionCreatedEvent {
	return CollectionCreatedEvent{
		BaseEvent: NewBaseEvent(EventCollectionCreated, collectionID),
		Name:      name,
		ArtCount:  artCount,
		Owner:     owner,
	}
}

// SubmissionEvaluatedEvent is emitted when an assessment submission is scored.
type SubmissionEvaluatedEvent struct {
	BaseEvent
	StudentID string  `json:"student_id"`
	Score     float64 `json:"score"`
	Passed    bool    `json:"passed"`
}

// Payload implements Event interface.
func (e SubmissionEvaluatedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"student_id": e.StudentID,
		"score":      e.Score,
		"passed":     e.Passed,
	}
}

// NewSubmissionEvaluatedEvent creates a new SubmissionEvaluatedEvent.
func NewSubmissionEvaluatedEvent(assessmentID, studentID string, score float64, passed bool) SubmissionEvaluatedEvent {
	return SubmissionEvaluatedEvent{
		BaseEvent: NewBaseEvent(EventSubmissionEvaluated, assessmentID),
		StudentID: studentID,
		Score:     score,
		Passed:    passed,
	}
}
