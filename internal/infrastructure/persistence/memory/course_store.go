package memory

import (
	"context"
	"sync"

	"github.com/cityspark/cityspark-hub/internal/domain/curriculum"
	"github.com/cityspark/cityspark-hub/internal/domain/shared"
)

// CourseStore is the in-memory curriculum.Repository implementation.
type CourseStore struct {
	mu      sync.RWMutex
	courses map[string]*curriculum.Course
	order   []string
}

// NewCourseStore creates an empty course store.
func NewCourseStore() *CourseStore {
	return &CourseStore{
		courses: make(map[string]*curriculum.Course),
	}
}

// Save stores a course, replacing any with the same ID.
func (s *CourseStore) Save(_ context.Context, course *curriculum.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.courses[course.ID]; !exists {
		s.order = append(s.order, course.ID)
	}
	s.courses[course.ID] = course.Clone()
	return nil
}

// FindByID returns a copy of the stored course.
func (s *CourseStore) FindByID(_ context.Context, id string) (*curriculum.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	course, ok := s.courses[id]
	if !ok {
		return nil, shared.ErrCourseNotFound
	}
	return course.Clone(), nil
}

// List returns courses matching the filter in insertion order.
func (s *CourseStore) List(_ context.Context, filter curriculum.CourseFilter) ([]*curriculum.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var courses []*curriculum.Course
	for _, id := range s.order {
		course := s.courses[id]
		if filter.Matches(course) {
			courses = append(courses, course.Clone())
		}
	}
	return courses, nil
}
