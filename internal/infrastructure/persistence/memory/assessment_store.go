package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/cityspark/cityspark-hub/internal/domain/assessment"
	"github.com/cityspark/cityspark-hub/internal/domain/shared"
)

// AssessmentStore is the in-memory assessment.Repository implementation.
type AssessmentStore struct {
	mu          sync.RWMutex
	assessments map[string]*assessment.Assessment
	results     map[string]assessment.Result // keyed by assessment_student
}

// NewAssessmentStore creates an empty assessment store.
func NewAssessmentStore() *AssessmentStore {
	return &AssessmentStore{
		assessments: make(map[string]*assessment.Assessment),
		results:     make(map[string]assessment.Result),
	}
}

// Save stores an assessment, replacing any with the same ID.
func (s *AssessmentStore) Save(_ context.Context, a *assessment.Assessment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.assessments[a.ID] = a.Clone()
	return nil
}

// FindByID returns a copy of the stored assessment.
func (s *AssessmentStore) FindByID(_ context.Context, id string) (*assessment.Assessment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.assessments[id]
	if !ok {
		return nil, shared.ErrAssessmentNotFound
	}
	return a.Clone(), nil
}

// SaveResult stores a submission result; a resubmission overwrites.
func (s *AssessmentStore) SaveResult(_ context.Context, result assessment.Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := fmt.Sprintf("%s_%s", result.AssessmentID, result.StudentID)
	s.results[key] = result
	return nil
}
