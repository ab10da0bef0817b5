package learning

import (
	"context"

	"github.com/cityspark/cityspark-hub/internal/domain/student"
)

// PathRepository defines persistence for generated learning paths, keyed
// by (student, subject).
type PathRepository interface {
	// Save stores a path, replacing any previous path for the same
	// student and subject.
	Save(ctx context.Context, path *Path) error

	// Find returns the stored path for the student and subject.
	// Returns shared.ErrLearningPathNotFound if none exists.
	Find(ctx context.Context, id student.StudentID, subject string) (*Path, error)

	// FindByStudent returns all stored paths for the student.
	FindByStudent(ctx context.Context, id student.StudentID) ([]*Path, error)
}
