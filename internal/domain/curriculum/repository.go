package curriculum

import (
	"context"
)

// Repository defines persistence for the course catalog.
type Repository interface {
	// Save stores a course, replacing any with the same ID.
	Save(ctx context.Context, course *Course) error

	// FindByID returns the course with the given ID.
	// Returns shared.ErrCourseNotFound if it does not exist.
	FindByID(ctx context.Context, id string) (*Course, error)

	// List returns courses matching the filter.
	List(ctx context.Context, filter CourseFilter) ([]*Course, error)
}
