package command

import (
	"context"
	"errors"

	"github.com/cityspark/cityspark-hub/internal/domain/learning"
	"github.com/cityspark/cityspark-hub/internal/domain/shared"
	"github.com/cityspark/cityspark-hub/internal/domain/student"
	"github.com/cityspark/cityspark-hub/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// GENERATE PATH COMMAND
// Builds a personalized learning path for a student and subject.
// Regenerating the same pair overwrites the stored path.
// ══════════════════════════════════════════════════════════════════════════════

// GeneratePathCommand contains the data to generate a path.
type GeneratePathCommand struct {
	StudentID string
	Subject   string
	Goals     []string
}

// Validate validates the command.
func (c GeneratePathCommand) Validate() error {
	if c.StudentID == "" {
		return errors.New("generate_path: student_id is required")
	}
	if c.Subject == "" {
		return errors.New("generate_path: subject is required")
	}
	return nil
}

// GeneratePathHandler handles the GeneratePathCommand.
type GeneratePathHandler struct {
	profiles  student.Repository
	paths     learning.PathRepository
	publisher shared.EventPublisher
	log       *logger.Logger
}

// NewGeneratePathHandler creates a new GeneratePathHandler.
func NewGeneratePathHandler(
	profiles student.Repository,
	paths learning.PathRepository,
	publisher shared.EventPublisher,
	log *logger.Logger,
) *GeneratePathHandler {
	if log == nil {
		log = logger.Default()
	}
	return &GeneratePathHandler{
		profiles:  profiles,
		paths:     paths,
		publisher: publisher,
		log:       log.With(logger.Component("generate_path")),
	}
}

// Execute generates and stores the path.
func (h *GeneratePathHandler) Execute(ctx context.Context, cmd GeneratePathCommand) (*learning.Path, error) {
	if err := cmd.Validate(); err != nil {
		return nil, shared.WrapError("learning", "GeneratePath", shared.ErrInvalidInput, "invalid command", err)
	}

	profile, err := h.profiles.FindByID(ctx, student.StudentID(cmd.StudentID))
	if err != nil {
		return nil, err
	}

	path, err := learning.GeneratePath(profile, cmd.Subject, cmd.Goals)
	if err != nil {
		return nil, err
	}

	if err := h.paths.Save(ctx, path); err != nil {
		return nil, err
	}

	if h.publisher != nil {
		event := shared.NewLearningPathGeneratedEvent(
			cmd.StudentID,
			path.Subject,
			len(path.Modules),
			path.EstimatedDuration,
		)
		if err := h.publisher.Publish(event); err != nil {
			h.log.Warn("publish failed", logger.Err(err))
		}
	}

	h.log.Info("learning path generated",
		logger.StudentID(cmd.StudentID),
		logger.Subject(path.Subject),
		logger.Int("modules", len(path.Modules)),
		logger.Int("estimated_duration", path.EstimatedDuration),
	)
	return path, nil
}
