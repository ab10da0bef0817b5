package query

import (
	"context"
	"errors"

	"github.com/cityspark/cityspark-hub/internal/domain/curriculum"
	"github.com/cityspark/cityspark-hub/internal/domain/shared"
	"github.com/cityspark/cityspark-hub/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// COURSE QUERIES
// ══════════════════════════════════════════════════════════════════════════════

// ListCoursesQuery narrows the course listing. Empty fields are ignored.
type ListCoursesQuery struct {
	Subject    string
	Difficulty string
}

// CoursesHandler handles course read queries.
type CoursesHandler struct {
	courses curriculum.Repository
	log     *logger.Logger
}

// NewCoursesHandler creates a new CoursesHandler.
func NewCoursesHandler(courses curriculum.Repository, log *logger.Logger) *CoursesHandler {
	if log == nil {
		log = logger.Default()
	}
	return &CoursesHandler{
		courses: courses,
		log:     log.With(logger.Component("courses_query")),
	}
}

// Get returns a single course.
func (h *CoursesHandler) Get(ctx context.Context, courseID string) (*curriculum.Course, error) {
	if courseID == "" {
		return nil, shared.WrapError("curriculum", "GetCourse", shared.ErrInvalidInput, "invalid query",
			errors.New("get_course: course_id is required"))
	}
	return h.courses.FindByID(ctx, courseID)
}

// List returns courses matching the filter in insertion order.
func (h *CoursesHandler) List(ctx context.Context, q ListCoursesQuery) ([]*curriculum.Course, error) {
	return h.courses.List(ctx, curriculum.CourseFilter{
		Subject:    q.Subject,
		Difficulty: q.Difficulty,
	})
}
