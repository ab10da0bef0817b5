package query

import (
	"context"
	"errors"

	"github.com/cityspark/cityspark-hub/internal/domain/analytics"
	"github.com/cityspark/cityspark-hub/internal/domain/shared"
	"github.com/cityspark/cityspark-hub/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// USER ANALYTICS QUERIES
// Trailing-window metrics and pattern insights over the event log.
// ══════════════════════════════════════════════════════════════════════════════

// UserMetricsQuery identifies the user and the trailing window.
type UserMetricsQuery struct {
	UserID string
	Days   int
}

// Validate validates the query.
func (q UserMetricsQuery) Validate() error {
	if q.UserID == "" {
		return errors.New("user_metrics: user_id is required")
	}
	return nil
}

// UserAnalyticsHandler handles metrics and insight queries.
type UserAnalyticsHandler struct {
	events analytics.EventLog
	log    *logger.Logger
}

// NewUserAnalyticsHandler creates a new UserAnalyticsHandler.
func NewUserAnalyticsHandler(events analytics.EventLog, log *logger.Logger) *UserAnalyticsHandler {
	if log == nil {
		log = logger.Default()
	}
	return &UserAnalyticsHandler{
		events: events,
		log:    log.With(logger.Component("user_analytics")),
	}
}

// Metrics aggregates the user's events over the trailing window. A user
// with no events gets zeroed metrics, never an error.
func (h *UserAnalyticsHandler) Metrics(ctx context.Context, q UserMetricsQuery) (analytics.Metrics, error) {
	if err := q.Validate(); err != nil {
		return analytics.Metrics{}, shared.WrapError("analytics", "UserMetrics", shared.ErrInvalidInput, "invalid query", err)
	}

	events, err := h.events.FindByUser(ctx, q.UserID)
	if err != nil {
		return analytics.Metrics{}, err
	}
	return analytics.CalculateMetrics(q.UserID, events, q.Days), nil
}

// Insights inspects the user's full event history for known patterns.
func (h *UserAnalyticsHandler) Insights(ctx context.Context, userID string) ([]analytics.Insight, error) {
	if userID == "" {
		return nil, shared.WrapError("analytics", "UserInsights", shared.ErrInvalidInput, "invalid query",
			errors.New("user_insights: user_id is required"))
	}

	events, err := h.events.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return analytics.GenerateInsights(events), nil
}
