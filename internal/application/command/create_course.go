package command

import (
	"context"
	"errors"

	"github.com/cityspark/cityspark-hub/internal/domain/curriculum"
	"github.com/cityspark/cityspark-hub/internal/domain/shared"
	"github.com/cityspark/cityspark-hub/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// CREATE COURSE COMMAND
// ══════════════════════════════════════════════════════════════════════════════

// CreateCourseCommand contains the data to create a course.
type CreateCourseCommand struct {
	ID            string
	Title         string
	Description   string
	Subject       string
	Difficulty    string
	Duration      int
	Modules       []string
	Objectives    []string
	Prerequisites []string
}

// Validate validates the command.
func (c CreateCourseCommand) Validate() error {
	if c.Title == "" {
		return errors.New("create_course: title is required")
	}
	if c.Subject == "" {
		return errors.New("create_course: subject is required")
	}
	return nil
}

// CreateCourseHandler handles the CreateCourseCommand.
type CreateCourseHandler struct {
	courses curriculum.Repository
	log     *logger.Logger
}

// NewCreateCourseHandler creates a new CreateCourseHandler.
func NewCreateCourseHandler(courses curriculum.Repository, log *logger.Logger) *CreateCourseHandler {
	if log == nil {
		log = logger.Default()
	}
	return &CreateCourseHandler{
		courses: courses,
		log:     log.With(logger.Component("create_course")),
	}
}

// Execute creates the course.
func (h *CreateCourseHandler) Execute(ctx context.Context, cmd CreateCourseCommand) (*curriculum.Course, error) {
	if err := cmd.Validate(); err != nil {
		return nil, shared.WrapError("curriculum", "CreateCourse", shared.ErrInvalidInput, "invalid command", err)
	}

	course := curriculum.New(curriculum.Input{
		ID:            cmd.ID,
		Title:         cmd.Title,
		Description:   cmd.Description,
		Subject:       cmd.Subject,
		Difficulty:    cmd.Difficulty,
		Duration:      cmd.Duration,
		Modules:       cmd.Modules,
		Objectives:    cmd.Objectives,
		Prerequisites: cmd.Prerequisites,
	})

	if err := h.courses.Save(ctx, course); err != nil {
		return nil, err
	}

	h.log.Info("course created",
		logger.String("course_id", course.ID),
		logger.Subject(course.Subject),
		logger.String("difficulty", course.Difficulty),
	)
	return course, nil
}
