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
// PREDICT OUTCOMES QUERY
// Estimates completion probability, mastery and time for a stored path.
// ══════════════════════════════════════════════════════════════════════════════

// PredictOutcomesQuery identifies the student and subject.
type PredictOutcomesQuery struct {
	StudentID string
	Subject   string
}

// Validate validates the query.
func (q PredictOutcomesQuery) Validate() error {
	if q.StudentID == "" {
		return errors.New("predict_outcomes: student_id is required")
	}
	if q.Subject == "" {
		return errors.New("predict_outcomes: subject is required")
	}
	return nil
}

// PredictOutcomesHandler handles the PredictOutcomesQuery.
type PredictOutcomesHandler struct {
	profiles  student.Repository
	paths     learning.PathRepository
	predictor *learning.Predictor
	log       *logger.Logger
}

// NewPredictOutcomesHandler creates a new PredictOutcomesHandler.
func NewPredictOutcomesHandler(
	profiles student.Repository,
	paths learning.PathRepository,
	predictor *learning.Predictor,
	log *logger.Logger,
) *PredictOutcomesHandler {
	if log == nil {
		log = logger.Default()
	}
	return &PredictOutcomesHandler{
		profiles:  profiles,
		paths:     paths,
		predictor: predictor,
		log:       log.With(logger.Component("predict_outcomes")),
	}
}

// Execute predicts outcomes for the student's stored path.
func (h *PredictOutcomesHandler) Execute(ctx context.Context, q PredictOutcomesQuery) (learning.Prediction, error) {
	if err := q.Validate(); err != nil {
		return learning.Prediction{}, shared.WrapError("learning", "PredictOutcomes", shared.ErrInvalidInput, "invalid query", err)
	}

	profile, err := h.profiles.FindByID(ctx, student.StudentID(q.StudentID))
	if err != nil {
		return learning.Prediction{}, err
	}

	path, err := h.paths.Find(ctx, student.StudentID(q.StudentID), q.Subject)
	if err != nil {
		return learning.Prediction{}, err
	}

	prediction := h.predictor.Predict(profile, path)
	h.log.Debug("outcomes predicted",
		logger.StudentID(q.StudentID),
		logger.Subject(q.Subject),
		logger.Float64("completion_probability", prediction.CompletionProbability),
	)
	return prediction, nil
}
