package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/cityspark/cityspark-hub/internal/domain/learning"
	"github.com/cityspark/cityspark-hub/internal/domain/shared"
	"github.com/cityspark/cityspark-hub/internal/domain/student"
)

// PathStore is the in-memory learning.PathRepository implementation.
// Paths are keyed by (student, subject); regenerating overwrites.
type PathStore struct {
	mu    sync.RWMutex
	paths map[string]*learning.Path
}

// NewPathStore creates an empty path store.
func NewPathStore() *PathStore {
	return &PathStore{
		paths: make(map[string]*learning.Path),
	}
}

func pathKey(id student.StudentID, subject string) string {
	return fmt.Sprintf("%s_%s", id, subject)
}

// Save stores a path, replacing any previous path for the same key.
func (s *PathStore) Save(_ context.Context, path *learning.Path) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.paths[pathKey(path.StudentID, path.Subject)] = path.Clone()
	return nil
}

// Find returns the stored path for the student and subject.
func (s *PathStore) Find(_ context.Context, id student.StudentID, subject string) (*learning.Path, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	path, ok := s.paths[pathKey(id, subject)]
	if !ok {
		return nil, shared.ErrLearningPathNotFound
	}
	return path.Clone(), nil
}

// FindByStudent returns all stored paths for the student.
func (s *PathStore) FindByStudent(_ context.Context, id student.StudentID) ([]*learning.Path, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	prefix := string(id) + "_"
	var paths []*learning.Path
	for key, path := range s.paths {
		if strings.HasPrefix(key, prefix) {
			paths = append(paths, path.Clone())
		}
	}
	return paths, nil
}
