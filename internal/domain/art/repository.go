package art

import (
	"context"
)

// Filter narrows gallery listings. Zero-valued fields are ignored;
// Featured is a pointer so both featured and unfeatured can be selected.
type Filter struct {
	Style    Style
	Owner    string
	Tags     []string // piece must carry every listed tag
	Featured *bool
}

// GalleryRepository defines persistence for art pieces.
type GalleryRepository interface {
	// Save stores a piece, replacing any existing piece with the same ID.
	Save(ctx context.Context, piece *Piece) error

	// FindByID returns the piece with the given ID.
	// Returns shared.ErrArtNotFound if it does not exist.
	FindByID(ctx context.Context, id string) (*Piece, error)

	// List returns pieces matching the filter, newest first.
	List(ctx context.Context, filter Filter) ([]*Piece, error)

	// All returns every piece in insertion order. Popularity ranking
	// depends on this order to break score ties deterministically.
	All(ctx context.Context) ([]*Piece, error)

	// Update atomically applies mutate to the stored piece and returns the
	// result. Returns shared.ErrArtNotFound if the piece does not exist.
	Update(ctx context.Context, id string, mutate func(*Piece)) (*Piece, error)

	// Exists reports whether a piece with the given ID is stored.
	Exists(ctx context.Context, id string) bool
}

// CollectionRepository defines durable storage for collections.
type CollectionRepository interface {
	// Append adds a collection to the catalog.
	Append(ctx context.Context, collection *Collection) error

	// List returns all stored collections in insertion order.
	List(ctx context.Context) ([]*Collection, error)
}
