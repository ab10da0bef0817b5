package student

import (
	"context"
)

// Repository defines persistence operations for student profiles.
// Implementations live in internal/infrastructure/persistence.
type Repository interface {
	// Save stores a profile, replacing any existing profile with the same ID.
	Save(ctx context.Context, profile *Profile) error

	// FindByID returns the profile for the given student.
	// Returns shared.ErrStudentNotFound if the profile does not exist.
	FindByID(ctx context.Context, id StudentID) (*Profile, error)

	// AppendPerformance atomically appends a record to the profile history
	// and bumps its UpdatedAt. Returns the updated profile.
	// Returns shared.ErrStudentNotFound if the profile does not exist.
	AppendPerformance(ctx context.Context, id StudentID, record PerformanceRecord) (*Profile, error)
}
