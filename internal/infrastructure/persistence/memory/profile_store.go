// Package memory provides the in-memory stores that back the hub. They
// are the authoritative storage; Postgres and Redis mirrors are optional
// add-ons. All stores are safe for concurrent use and hand out deep
// copies, never internal pointers.
package memory

import (
	"context"
	"sync"

	"github.com/cityspark/cityspark-hub/internal/domain/shared"
	"github.com/cityspark/cityspark-hub/internal/domain/student"
	"github.com/cityspark/cityspark-hub/pkg/timeutil"
)

// ProfileStore is the in-memory student.Repository implementation.
type ProfileStore struct {
	mu       sync.RWMutex
	profiles map[student.StudentID]*student.Profile
}

// NewProfileStore creates an empty profile store.
func NewProfileStore() *ProfileStore {
	return &ProfileStore{
		profiles: make(map[student.StudentID]*student.Profile),
	}
}

// Save stores a profile, replacing any existing one with the same ID.
func (s *ProfileStore) Save(_ context.Context, profile *student.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profiles[profile.ID] = profile.Clone()
	return nil
}

// FindByID returns a copy of the stored profile.
func (s *ProfileStore) FindByID(_ context.Context, id student.StudentID) (*student.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, ok := s.profiles[id]
	if !ok {
		return nil, shared.ErrStudentNotFound
	}
	return profile.Clone(), nil
}

// AppendPerformance appends a record to the stored profile under the
// store lock, so concurrent appends cannot lose history entries.
func (s *ProfileStore) AppendPerformance(_ context.Context, id student.StudentID, record student.PerformanceRecord) (*student.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile, ok := s.profiles[id]
	if !ok {
		return nil, shared.ErrStudentNotFound
	}

	profile.History = append(profile.History, record)
	profile.UpdatedAt = timeutil.Now()
	return profile.Clone(), nil
}

// Count returns the number of stored profiles.
func (s *ProfileStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.profiles)
}
