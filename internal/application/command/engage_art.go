package command

import (
	"context"
	"errors"

	"github.com/cityspark/cityspark-hub/internal/domain/art"
	"github.com/cityspark/cityspark-hub/internal/domain/shared"
	"github.com/cityspark/cityspark-hub/pkg/logger"
	"github.com/cityspark/cityspark-hub/pkg/timeutil"
)

// ══════════════════════════════════════════════════════════════════════════════
// ENGAGE ART COMMANDS
// Like and view interactions. Likes touch UpdatedAt, views do not.
// ══════════════════════════════════════════════════════════════════════════════

// EngageArtCommand identifies the piece and acting user for an interaction.
type EngageArtCommand struct {
	ArtID  string
	UserID string
}

// Validate validates the command.
func (c EngageArtCommand) Validate() error {
	if c.ArtID == "" {
		return errors.New("engage_art: art_id is required")
	}
	return nil
}

// EngageArtHandler handles like and view interactions on gallery pieces.
type EngageArtHandler struct {
	gallery   art.GalleryRepository
	cache     PopularityCache
	publisher shared.EventPublisher
	log       *logger.Logger
}

// NewEngageArtHandler creates a new EngageArtHandler. cache may be nil
// when no Redis instance is configured.
func NewEngageArtHandler(
	gallery art.GalleryRepository,
	cache PopularityCache,
	publisher shared.EventPublisher,
	log *logger.Logger,
) *EngageArtHandler {
	if log == nil {
		log = logger.Default()
	}
	return &EngageArtHandler{
		gallery:   gallery,
		cache:     cache,
		publisher: publisher,
		log:       log.With(logger.Component("engage_art")),
	}
}

// Like increments the like count and returns the updated piece.
func (h *EngageArtHandler) Like(ctx context.Context, cmd EngageArtCommand) (*art.Piece, error) {
	if err := cmd.Validate(); err != nil {
		return nil, shared.WrapError("art", "LikeArt", shared.ErrInvalidInput, "invalid command", err)
	}

	now := timeutil.Now()
	piece, err := h.gallery.Update(ctx, cmd.ArtID, func(p *art.Piece) {
		p.Likes++
		p.UpdatedAt = now
	})
	if err != nil {
		return nil, err
	}

	h.afterInteraction(ctx, shared.EventArtLiked, piece, cmd.UserID)
	h.log.Info("art liked", logger.ArtID(piece.ID), logger.Int("likes", piece.Likes))
	return piece, nil
}

// View increments the view count and returns the updated piece. Views do
// not touch UpdatedAt.
func (h *EngageArtHandler) View(ctx context.Context, cmd EngageArtCommand) (*art.Piece, error) {
	if err := cmd.Validate(); err != nil {
		return nil, shared.WrapError("art", "ViewArt", shared.ErrInvalidInput, "invalid command", err)
	}

	piece, err := h.gallery.Update(ctx, cmd.ArtID, func(p *art.Piece) {
		p.Views++
	})
	if err != nil {
		return nil, err
	}

	h.afterInteraction(ctx, shared.EventArtViewed, piece, cmd.UserID)
	return piece, nil
}

func (h *EngageArtHandler) afterInteraction(ctx context.Context, eventType shared.EventType, piece *art.Piece, userID string) {
	if h.cache != nil {
		if err := h.cache.UpdateScore(ctx, piece.ID, piece.PopularityScore()); err != nil {
			h.log.Warn("popularity cache update failed", logger.ArtID(piece.ID), logger.Err(err))
		}
	}

	if h.publisher != nil {
		event := shared.NewArtInteractionEvent(eventType, piece.ID, userID, piece.Likes, piece.Views)
		if err := h.publisher.Publish(event); err != nil {
			h.log.Warn("publish failed", logger.Err(err))
		}
	}
}
