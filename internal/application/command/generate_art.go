package command

import (
	"context"
	"errors"

	"github.com/cityspark/cityspark-hub/internal/domain/art"
	"github.com/cityspark/cityspark-hub/internal/domain/shared"
	"github.com/cityspark/cityspark-hub/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// GENERATE ART COMMAND
// Generates an urban art piece from a prompt and stores it in the gallery.
// ══════════════════════════════════════════════════════════════════════════════

// GenerateArtCommand contains the data to generate a piece.
type GenerateArtCommand struct {
	Prompt string
	Style  string
	UserID string
}

// Validate validates the command.
func (c GenerateArtCommand) Validate() error {
	if c.Prompt == "" {
		return errors.New("generate_art: prompt is required")
	}
	return nil
}

// PopularityCache mirrors popularity scores to a cache. Optional; cache
// failures are logged, never surfaced.
type PopularityCache interface {
	UpdateScore(ctx context.Context, artID string, score float64) error
}

// GenerateArtHandler handles the GenerateArtCommand.
type GenerateArtHandler struct {
	gallery   art.GalleryRepository
	cache     PopularityCache
	publisher shared.EventPublisher
	log       *logger.Logger
}

// NewGenerateArtHandler creates a new GenerateArtHandler. cache may be
// nil when no Redis instance is configured.
func NewGenerateArtHandler(
	gallery art.GalleryRepository,
	cache PopularityCache,
	publisher shared.EventPublisher,
	log *logger.Logger,
) *GenerateArtHandler {
	if log == nil {
		log = logger.Default()
	}
	return &GenerateArtHandler{
		gallery:   gallery,
		cache:     cache,
		publisher: publisher,
		log:       log.With(logger.Component("generate_art")),
	}
}

// Execute generates the piece and stores it.
func (h *GenerateArtHandler) Execute(ctx context.Context, cmd GenerateArtCommand) (*art.Piece, error) {
	if err := cmd.Validate(); err != nil {
		return nil, shared.WrapError("art", "GenerateArt", shared.ErrInvalidInput, "invalid command", err)
	}

	style := art.Style(cmd.Style)
	if cmd.Style == "" {
		style = art.StyleModern
	}

	piece, err := art.NewPiece(cmd.Prompt, style, cmd.UserID)
	if err != nil {
		return nil, err
	}

	if err := h.gallery.Save(ctx, piece); err != nil {
		return nil, err
	}

	if h.cache != nil {
		if err := h.cache.UpdateScore(ctx, piece.ID, piece.PopularityScore()); err != nil {
			h.log.Warn("popularity cache update failed", logger.ArtID(piece.ID), logger.Err(err))
		}
	}

	if h.publisher != nil {
		event := shared.NewArtGeneratedEvent(piece.ID, string(piece.Style), piece.Owner, piece.Prompt)
		if err := h.publisher.Publish(event); err != nil {
			h.log.Warn("publish failed", logger.Err(err))
		}
	}

	h.log.Info("art generated",
		logger.ArtID(piece.ID),
		logger.Style(string(piece.Style)),
		logger.Int("tags", len(piece.Tags)),
	)
	return piece, nil
}
