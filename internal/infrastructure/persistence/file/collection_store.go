// Package file provides flat-file persistence for the collection catalog.
// Collections are kept as a single JSON array on disk, rewritten on each
// append; the catalog is small and write-rare, so a database is overkill.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/cityspark/cityspark-hub/internal/domain/art"
)

// CollectionStore is the file-backed art.CollectionRepository.
type CollectionStore struct {
	mu   sync.Mutex
	path string
}

// NewCollectionStore creates a store writing to the given file path. The
// file and its parent directories are created on first append.
func NewCollectionStore(path string) *CollectionStore {
	return &CollectionStore{path: path}
}

// Append loads the existing catalog, adds the collection, and rewrites
// the file atomically via a temp file rename.
func (s *CollectionStore) Append(_ context.Context, collection *art.Collection) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	collections, err := s.load()
	if err != nil {
		return fmt.Errorf("load collections: %w", err)
	}

	collections = append(collections, collection.Clone())
	return s.write(collections)
}

// List returns all stored collections in insertion order.
func (s *CollectionStore) List(_ context.Context) ([]*art.Collection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	collections, err := s.load()
	if err != nil {
		return nil, fmt.Errorf("load collections: %w", err)
	}
	return collections, nil
}

func (s *CollectionStore) load() ([]*art.Collection, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}

	var collections []*art.Collection
	if err := json.Unmarshal(data, &collections); err != nil {
		return nil, err
	}
	return collections, nil
}

func (s *CollectionStore) write(collections []*art.Collection) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(collections, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
