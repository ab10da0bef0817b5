package query

import (
	"context"
	"errors"

	"github.com/cityspark/cityspark-hub/internal/domain/art"
	"github.com/cityspark/cityspark-hub/internal/domain/shared"
	"github.com/cityspark/cityspark-hub/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// GALLERY QUERIES
// Reads over the art gallery: single pieces, filtered listings, popularity
// ranking, style suggestions and presets.
// ══════════════════════════════════════════════════════════════════════════════

// defaultPopularLimit caps the popular listing when no limit is requested.
const defaultPopularLimit = 10

// GetArtQuery identifies the piece to fetch.
type GetArtQuery struct {
	ArtID string
}

// Validate validates the query.
func (q GetArtQuery) Validate() error {
	if q.ArtID == "" {
		return errors.New("get_art: art_id is required")
	}
	return nil
}

// ListGalleryQuery narrows the gallery listing.
type ListGalleryQuery struct {
	Style    string
	Owner    string
	Tags     []string
	Featured *bool
}

// PopularRanker reads the cached popularity ranking. Optional; when absent
// or failing, ranking falls back to scanning the gallery.
type PopularRanker interface {
	TopIDs(ctx context.Context, limit int) ([]string, error)
}

// GalleryHandler handles gallery read queries.
type GalleryHandler struct {
	gallery     art.GalleryRepository
	collections art.CollectionRepository
	ranker      PopularRanker
	log         *logger.Logger
}

// NewGalleryHandler creates a new GalleryHandler. ranker may be nil when
// no Redis instance is configured.
func NewGalleryHandler(
	gallery art.GalleryRepository,
	collections art.CollectionRepository,
	ranker PopularRanker,
	log *logger.Logger,
) *GalleryHandler {
	if log == nil {
		log = logger.Default()
	}
	return &GalleryHandler{
		gallery:     gallery,
		collections: collections,
		ranker:      ranker,
		log:         log.With(logger.Component("gallery_query")),
	}
}

// Get returns a single piece.
func (h *GalleryHandler) Get(ctx context.Context, q GetArtQuery) (*art.Piece, error) {
	if err := q.Validate(); err != nil {
		return nil, shared.WrapError("art", "GetArt", shared.ErrInvalidInput, "invalid query", err)
	}
	return h.gallery.FindByID(ctx, q.ArtID)
}

// List returns pieces matching the filter, newest first.
func (h *GalleryHandler) List(ctx context.Context, q ListGalleryQuery) ([]*art.Piece, error) {
	return h.gallery.List(ctx, art.Filter{
		Style:    art.Style(q.Style),
		Owner:    q.Owner,
		Tags:     q.Tags,
		Featured: q.Featured,
	})
}

// Popular returns the top pieces by popularity score. Ties keep the
// order pieces were added to the gallery. The cached ranking is consulted
// first; on a miss, error or stale entries the gallery is scanned directly.
func (h *GalleryHandler) Popular(ctx context.Context, limit int) ([]*art.Piece, error) {
	if limit <= 0 {
		limit = defaultPopularLimit
	}

	if h.ranker != nil {
		pieces, err := h.popularFromCache(ctx, limit)
		switch {
		case err != nil:
			h.log.Warn("popularity cache read failed, scanning gallery", logger.Err(err))
		case len(pieces) < limit:
			// The cache may hold stale IDs or fewer entries than the
			// gallery; the scan is authoritative.
		default:
			return pieces, nil
		}
	}

	all, err := h.gallery.All(ctx)
	if err != nil {
		return nil, err
	}
	return art.RankByPopularity(all, limit), nil
}

// popularFromCache resolves cached IDs to pieces. Stale IDs whose pieces
// are gone are skipped; the caller falls back to a scan on a short result.
// Within the cache, equal scores come back in member order, not gallery
// insertion order, so the cached ranking is best effort on ties.
func (h *GalleryHandler) popularFromCache(ctx context.Context, limit int) ([]*art.Piece, error) {
	ids, err := h.ranker.TopIDs(ctx, limit)
	if err != nil {
		return nil, err
	}

	pieces := make([]*art.Piece, 0, len(ids))
	for _, id := range ids {
		piece, err := h.gallery.FindByID(ctx, id)
		if err != nil {
			continue
		}
		pieces = append(pieces, piece)
	}
	return pieces, nil
}

// SuggestStyles returns style suggestions for a prompt.
func (h *GalleryHandler) SuggestStyles(prompt string) []string {
	return art.SuggestStyles(prompt)
}

// Presets returns all known style presets.
func (h *GalleryHandler) Presets() map[art.Style]art.Preset {
	return art.Presets()
}

// Collections returns all stored collections in insertion order.
func (h *GalleryHandler) Collections(ctx context.Context) ([]*art.Collection, error) {
	return h.collections.List(ctx)
}
