package command

import (
	"context"
	"errors"

	"github.com/cityspark/cityspark-hub/internal/domain/assessment"
	"github.com/cityspark/cityspark-hub/internal/domain/shared"
	"github.com/cityspark/cityspark-hub/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// CREATE ASSESSMENT COMMAND
// ══════════════════════════════════════════════════════════════════════════════

// CreateAssessmentCommand contains the data to create an assessment.
type CreateAssessmentCommand struct {
	ID           string
	Title        string
	Type         string
	CourseID     string
	Questions    []assessment.Question
	TimeLimit    int
	MaxScore     float64
	PassingScore float64
}

// Validate validates the command.
func (c CreateAssessmentCommand) Validate() error {
	if c.Title == "" {
		return errors.New("create_assessment: title is required")
	}
	return nil
}

// CreateAssessmentHandler handles the CreateAssessmentCommand.
type CreateAssessmentHandler struct {
	assessments assessment.Repository
	log         *logger.Logger
}

// NewCreateAssessmentHandler creates a new CreateAssessmentHandler.
func NewCreateAssessmentHandler(assessments assessment.Repository, log *logger.Logger) *CreateAssessmentHandler {
	if log == nil {
		log = logger.Default()
	}
	return &CreateAssessmentHandler{
		assessments: assessments,
		log:         log.With(logger.Component("create_assessment")),
	}
}

// Execute creates the assessment with quiz defaults applied.
func (h *CreateAssessmentHandler) Execute(ctx context.Context, cmd CreateAssessmentCommand) (*assessment.Assessment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, shared.WrapError("assessment", "CreateAssessment", shared.ErrInvalidInput, "invalid command", err)
	}

	created := assessment.New(assessment.Input{
		ID:           cmd.ID,
		Title:        cmd.Title,
		Type:         cmd.Type,
		CourseID:     cmd.CourseID,
		Questions:    cmd.Questions,
		TimeLimit:    cmd.TimeLimit,
		MaxScore:     cmd.MaxScore,
		PassingScore: cmd.PassingScore,
	})

	if err := h.assessments.Save(ctx, created); err != nil {
		return nil, err
	}

	h.log.Info("assessment created",
		logger.String("assessment_id", created.ID),
		logger.String("type", created.Type),
		logger.Int("questions", len(created.Questions)),
	)
	return created, nil
}
