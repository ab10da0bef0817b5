package command

import (
	"context"
	"errors"

	"github.com/cityspark/cityspark-hub/internal/domain/assessment"
	"github.com/cityspark/cityspark-hub/internal/domain/shared"
	"github.com/cityspark/cityspark-hub/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// EVALUATE SUBMISSION COMMAND
// Scores a student's answers against an assessment and stores the result.
// Resubmitting overwrites the previous result.
// ══════════════════════════════════════════════════════════════════════════════

// EvaluateSubmissionCommand contains a student's answers.
type EvaluateSubmissionCommand struct {
	AssessmentID string
	StudentID    string
	Answers      map[string]string
}

// Validate validates the command.
func (c EvaluateSubmissionCommand) Validate() error {
	if c.AssessmentID == "" {
		return errors.New("evaluate_submission: assessment_id is required")
	}
	if c.StudentID == "" {
		return errors.New("evaluate_submission: student_id is required")
	}
	return nil
}

// EvaluateSubmissionHandler handles the EvaluateSubmissionCommand.
type EvaluateSubmissionHandler struct {
	assessments assessment.Repository
	publisher   shared.EventPublisher
	log         *logger.Logger
}

// NewEvaluateSubmissionHandler creates a new EvaluateSubmissionHandler.
func NewEvaluateSubmissionHandler(
	assessments assessment.Repository,
	publisher shared.EventPublisher,
	log *logger.Logger,
) *EvaluateSubmissionHandler {
	if log == nil {
		log = logger.Default()
	}
	return &EvaluateSubmissionHandler{
		assessments: assessments,
		publisher:   publisher,
		log:         log.With(logger.Component("evaluate_submission")),
	}
}

// Execute scores the submission and stores the result.
func (h *EvaluateSubmissionHandler) Execute(ctx context.Context, cmd EvaluateSubmissionCommand) (assessment.Result, error) {
	if err := cmd.Validate(); err != nil {
		return assessment.Result{}, shared.WrapError("assessment", "EvaluateSubmission", shared.ErrInvalidInput, "invalid command", err)
	}

	target, err := h.assessments.FindByID(ctx, cmd.AssessmentID)
	if err != nil {
		return assessment.Result{}, err
	}

	result := target.Evaluate(cmd.StudentID, cmd.Answers)
	if err := h.assessments.SaveResult(ctx, result); err != nil {
		return assessment.Result{}, err
	}

	if h.publisher != nil {
		event := shared.NewSubmissionEvaluatedEvent(result.AssessmentID, result.StudentID, result.Score, result.Passed)
		if err := h.publisher.Publish(event); err != nil {
			h.log.Warn("publish failed", logger.Err(err))
		}
	}

	h.log.Info("submission evaluated",
		logger.String("assessment_id", result.AssessmentID),
		logger.StudentID(result.StudentID),
		logger.Score(result.Score),
		logger.Bool("passed", result.Passed),
	)
	return result, nil
}
