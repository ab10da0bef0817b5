package query

import (
	"context"
	"errors"

	"github.com/cityspark/cityspark-hub/internal/domain/learning"
	"github.com/cityspark/cityspark-hub/internal/domain/shared"
	"github.com/cityspark/cityspark-hub/internal/domain/student"
	"github.com/cityspark/cityspark-hub/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// GET RECOMMENDATIONS QUERY
// Ranks content, activity and peer suggestions for a student.
// ══════════════════════════════════════════════════════════════════════════════

// GetRecommendationsQuery identifies the student and optional context.
type GetRecommendationsQuery struct {
	StudentID string
	Context   learning.Context
}

// Validate validates the query.
func (q GetRecommendationsQuery) Validate() error {
	if q.StudentID == "" {
		return errors.New("get_recommendations: student_id is required")
	}
	return nil
}

// GetRecommendationsHandler handles the GetRecommendationsQuery.
type GetRecommendationsHandler struct {
	profiles student.Repository
	log      *logger.Logger
}

// NewGetRecommendationsHandler creates a new GetRecommendationsHandler.
func NewGetRecommendationsHandler(profiles student.Repository, log *logger.Logger) *GetRecommendationsHandler {
	if log == nil {
		log = logger.Default()
	}
	return &GetRecommendationsHandler{
		profiles: profiles,
		log:      log.With(logger.Component("get_recommendations")),
	}
}

// Execute returns ranked recommendations for the student.
func (h *GetRecommendationsHandler) Execute(ctx context.Context, q GetRecommendationsQuery) ([]learning.Recommendation, error) {
	if err := q.Validate(); err != nil {
		return nil, shared.WrapError("learning", "GetRecommendations", shared.ErrInvalidInput, "invalid query", err)
	}

	profile, err := h.profiles.FindByID(ctx, student.StudentID(q.StudentID))
	if err != nil {
		return nil, err
	}

	recommendations := learning.Recommend(profile, q.Context)
	h.log.Debug("recommendations ranked",
		logger.StudentID(q.StudentID),
		logger.Int("count", len(recommendations)),
	)
	return recommendations, nil
}
