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
// CURATE ART COMMANDS
// Editorial operations on gallery pieces: metadata updates and featuring.
// ══════════════════════════════════════════════════════════════════════════════

// UpdateArtCommand carries the editable fields of a piece. Nil pointers
// leave the current value in place.
type UpdateArtCommand struct {
	ArtID       string
	Title       *string
	Description *string
	Tags        []string
}

// Validate validates the command.
func (c UpdateArtCommand) Validate() error {
	if c.ArtID == "" {
		return errors.New("update_art: art_id is required")
	}
	if c.Title == nil && c.Description == nil && c.Tags == nil {
		return shared.ErrInvalidArtUpdate
	}
	return nil
}

// FeatureArtCommand marks a piece as featured.
type FeatureArtCommand struct {
	ArtID    string
	Featured bool
}

// Validate validates the command.
func (c FeatureArtCommand) Validate() error {
	if c.ArtID == "" {
		return errors.New("feature_art: art_id is required")
	}
	return nil
}

// CurateArtHandler handles editorial art commands.
type CurateArtHandler struct {
	gallery   art.GalleryRepository
	publisher shared.EventPublisher
	log       *logger.Logger
}

// NewCurateArtHandler creates a new CurateArtHandler.
func NewCurateArtHandler(
	gallery art.GalleryRepository,
	publisher shared.EventPublisher,
	log *logger.Logger,
) *CurateArtHandler {
	if log == nil {
		log = logger.Default()
	}
	return &CurateArtHandler{
		gallery:   gallery,
		publisher: publisher,
		log:       log.With(logger.Component("curate_art")),
	}
}

// Update applies the provided fields and bumps UpdatedAt.
func (h *CurateArtHandler) Update(ctx context.Context, cmd UpdateArtCommand) (*art.Piece, error) {
	if err := cmd.Validate(); err != nil {
		return nil, shared.WrapError("art", "UpdateArt", shared.ErrInvalidInput, "invalid command", err)
	}

	now := timeutil.Now()
	piece, err := h.gallery.Update(ctx, cmd.ArtID, func(p *art.Piece) {
		if cmd.Title != nil {
			p.Title = *cmd.Title
		}
		if cmd.Description != nil {
			p.Description = *cmd.Description
		}
		if cmd.Tags != nil {
			p.Tags = append([]string(nil), cmd.Tags...)
		}
		p.UpdatedAt = now
	})
	if err != nil {
		return nil, err
	}

	h.log.Info("art updated", logger.ArtID(piece.ID))
	return piece, nil
}

// Feature toggles the featured flag and bumps UpdatedAt.
func (h *CurateArtHandler) Feature(ctx context.Context, cmd FeatureArtCommand) (*art.Piece, error) {
	if err := cmd.Validate(); err != nil {
		return nil, shared.WrapError("art", "FeatureArt", shared.ErrInvalidInput, "invalid command", err)
	}

	now := timeutil.Now()
	piece, err := h.gallery.Update(ctx, cmd.ArtID, func(p *art.Piece) {
		p.Featured = cmd.Featured
		p.UpdatedAt = now
	})
	if err != nil {
		return nil, err
	}

	if h.publisher != nil && cmd.Featured {
		event := shared.NewArtInteractionEvent(shared.EventArtFeatured, piece.ID, "", piece.Likes, piece.Views)
		if err := h.publisher.Publish(event); err != nil {
			h.log.Warn("publish failed", logger.Err(err))
		}
	}

	h.log.Info("art featured",
		logger.ArtID(piece.ID),
		logger.Bool("featured", piece.Featured),
	)
	return piece, nil
}
