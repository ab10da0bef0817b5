// Package query contains read operations (CQRS - Queries).
package query

import (
	"context"
	"errors"

	"github.com/cityspark/cityspark-hub/internal/domain/shared"
	"github.com/cityspark/cityspark-hub/internal/domain/student"
	"github.com/cityspark/cityspark-hub/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// GET PROFILE QUERY
// ══════════════════════════════════════════════════════════════════════════════

// GetProfileQuery identifies the profile to fetch.
type GetProfileQuery struct {
	StudentID string
}

// Validate validates the query.
func (q GetProfileQuery) Validate() error {
	if q.StudentID == "" {
		return errors.New("get_profile: student_id is required")
	}
	return nil
}

// GetProfileHandler handles the GetProfileQuery.
type GetProfileHandler struct {
	profiles student.Repository
	log      *logger.Logger
}

// NewGetProfileHandler creates a new GetProfileHandler.
func NewGetProfileHandler(profiles student.Repository, log *logger.Logger) *GetProfileHandler {
	if log == nil {
		log = logger.Default()
	}
	return &GetProfileHandler{
		profiles: profiles,
		log:      log.With(logger.Component("get_profile")),
	}
}

// Execute returns the profile, including its performance history.
func (h *GetProfileHandler) Execute(ctx context.Context, q GetProfileQuery) (*student.Profile, error) {
	if err := q.Validate(); err != nil {
		return nil, shared.WrapError("student", "GetProfile", shared.ErrInvalidInput, "invalid query", err)
	}
	return h.profiles.FindByID(ctx, student.StudentID(q.StudentID))
}
