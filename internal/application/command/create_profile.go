// Package command contains write operations (CQRS - Commands).
package command

import (
	"context"
	"errors"

	"github.com/cityspark/cityspark-hub/internal/domain/shared"
	"github.com/cityspark/cityspark-hub/internal/domain/student"
	"github.com/cityspark/cityspark-hub/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// CREATE PROFILE COMMAND
// Creates or replaces a student learning profile. Replacing discards the
// existing performance history; callers re-creating a profile start fresh.
// ══════════════════════════════════════════════════════════════════════════════

// CreateProfileCommand contains the data to create a profile.
type CreateProfileCommand struct {
	StudentID     string
	LearningStyle string
	SkillLevel    string
	Interests     []string
	Goals         []string
	Strengths     []string
	Weaknesses    []string
}

// Validate validates the command.
func (c CreateProfileCommand) Validate() error {
	if c.StudentID == "" {
		return errors.New("create_profile: student_id is required")
	}
	return nil
}

// ProfileArchiver mirrors profile snapshots to durable storage. Optional;
// archive failures are logged, never surfaced.
type ProfileArchiver interface {
	SaveProfile(ctx context.Context, profile *student.Profile) error
}

// CreateProfileHandler handles the CreateProfileCommand.
type CreateProfileHandler struct {
	profiles  student.Repository
	archiver  ProfileArchiver
	publisher shared.EventPublisher
	log       *logger.Logger
}

// NewCreateProfileHandler creates a new CreateProfileHandler. archiver
// may be nil when no database is configured.
func NewCreateProfileHandler(
	profiles student.Repository,
	archiver ProfileArchiver,
	publisher shared.EventPublisher,
	log *logger.Logger,
) *CreateProfileHandler {
	if log == nil {
		log = logger.Default()
	}
	return &CreateProfileHandler{
		profiles:  profiles,
		archiver:  archiver,
		publisher: publisher,
		log:       log.With(logger.Component("create_profile")),
	}
}

// Execute creates or replaces the profile.
func (h *CreateProfileHandler) Execute(ctx context.Context, cmd CreateProfileCommand) (*student.Profile, error) {
	if err := cmd.Validate(); err != nil {
		return nil, shared.WrapError("student", "CreateProfile", shared.ErrInvalidInput, "invalid command", err)
	}

	profile, err := student.NewProfile(student.StudentID(cmd.StudentID), student.ProfileInput{
		LearningStyle: cmd.LearningStyle,
		SkillLevel:    cmd.SkillLevel,
		Interests:     cmd.Interests,
		Goals:         cmd.Goals,
		Strengths:     cmd.Strengths,
		Weaknesses:    cmd.Weaknesses,
	})
	if err != nil {
		return nil, err
	}

	if err := h.profiles.Save(ctx, profile); err != nil {
		return nil, err
	}

	if h.archiver != nil {
		if err := h.archiver.SaveProfile(ctx, profile); err != nil {
			h.log.Warn("profile archive failed",
				logger.StudentID(cmd.StudentID),
				logger.Err(err),
			)
		}
	}

	if h.publisher != nil {
		event := shared.NewProfileCreatedEvent(
			cmd.StudentID,
			string(profile.LearningStyle),
			string(profile.SkillLevel),
		)
		if err := h.publisher.Publish(event); err != nil {
			h.log.Warn("publish failed", logger.Err(err))
		}
	}

	h.log.Info("profile created",
		logger.StudentID(cmd.StudentID),
		logger.String("learning_style", string(profile.LearningStyle)),
		logger.String("skill_level", string(profile.SkillLevel)),
	)
	return profile, nil
}
