package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/cityspark/cityspark-hub/internal/domain/art"
	"github.com/cityspark/cityspark-hub/internal/domain/shared"
)

// GalleryStore is the in-memory art.GalleryRepository implementation.
type GalleryStore struct {
	mu     sync.RWMutex
	pieces map[string]*art.Piece
	order  []string // insertion order, breaks created_at ties deterministically
}

// NewGalleryStore creates an empty gallery store.
func NewGalleryStore() *GalleryStore {
	return &GalleryStore{
		pieces: make(map[string]*art.Piece),
	}
}

// Save stores a piece, replacing any existing one with the same ID.
func (s *GalleryStore) Save(_ context.Context, piece *art.Piece) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.pieces[piece.ID]; !exists {
		s.order = append(s.order, piece.ID)
	}
	s.pieces[piece.ID] = piece.Clone()
	return nil
}

// FindByID returns a copy of the stored piece.
func (s *GalleryStore) FindByID(_ context.Context, id string) (*art.Piece, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	piece, ok := s.pieces[id]
	if !ok {
		return nil, shared.ErrArtNotFound
	}
	return piece.Clone(), nil
}

// List returns pieces matching the filter, newest first.
func (s *GalleryStore) List(_ context.Context, filter art.Filter) ([]*art.Piece, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pieces := make([]*art.Piece, 0, len(s.pieces))
	for _, id := range s.order {
		piece := s.pieces[id]
		if matches(piece, filter) {
			pieces = append(pieces, piece.Clone())
		}
	}

	sort.SliceStable(pieces, func(i, j int) bool {
		return pieces[i].CreatedAt.After(pieces[j].CreatedAt)
	})
	return pieces, nil
}

// All returns every piece in insertion order.
func (s *GalleryStore) All(_ context.Context) ([]*art.Piece, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pieces := make([]*art.Piece, 0, len(s.order))
	for _, id := range s.order {
		pieces = append(pieces, s.pieces[id].Clone())
	}
	return pieces, nil
}

// Update applies mutate to the stored piece under the store lock, so
// concurrent like/view increments cannot lose updates.
func (s *GalleryStore) Update(_ context.Context, id string, mutate func(*art.Piece)) (*art.Piece, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	piece, ok := s.pieces[id]
	if !ok {
		return nil, shared.ErrArtNotFound
	}

	mutate(piece)
	return piece.Clone(), nil
}

// Exists reports whether a piece with the given ID is stored.
func (s *GalleryStore) Exists(_ context.Context, id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.pieces[id]
	return ok
}

func matches(piece *art.Piece, filter art.Filter) bool {
	if filter.Style != "" && piece.Style != filter.Style {
		return false
	}
	if filter.Owner != "" && piece.Owner != filter.Owner {
		return false
	}
	if filter.Featured != nil && piece.Featured != *filter.Featured {
		return false
	}
	for _, tag := range filter.Tags {
		if !hasTag(piece, tag) {
			return false
		}
	}
	return true
}

func hasTag(piece *art.Piece, tag string) bool {
	for _, t := range piece.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
