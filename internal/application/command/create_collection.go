package command

import (
	"context"
	"errors"

	"github.com/cityspark/cityspark-hub/internal/domain/art"
	"github.com/cityspark/cityspark-hub/internal/domain/shared"
	"github.com/cityspark/cityspark-hub/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// CREATE COLLECTION COMMAND
// Groups verified gallery pieces into a named collection. Art IDs not in
// the gallery are dropped silently rather than rejected.
// ══════════════════════════════════════════════════════════════════════════════

// CreateCollectionCommand contains the data to create a collection.
type CreateCollectionCommand struct {
	Name        string
	Description string
	ArtIDs      []string
	UserID      string
}

// Validate validates the command.
func (c CreateCollectionCommand) Validate() error {
	if c.Name == "" {
		return errors.New("create_collection: name is required")
	}
	return nil
}

// CreateCollectionHandler handles the CreateCollectionCommand.
type CreateCollectionHandler struct {
	gallery     art.GalleryRepository
	collections art.CollectionRepository
	publisher   shared.EventPublisher
	log         *logger.Logger
}

// NewCreateCollectionHandler creates a new CreateCollectionHandler.
func NewCreateCollectionHandler(
	gallery art.GalleryRepository,
	collections art.CollectionRepository,
	publisher shared.EventPublisher,
	log *logger.Logger,
) *CreateCollectionHandler {
	if log == nil {
		log = logger.Default()
	}
	return &CreateCollectionHandler{
		gallery:     gallery,
		collections: collections,
		publisher:   publisher,
		log:         log.With(logger.Component("create_collection")),
	}
}

// Execute verifies the art IDs, creates the collection, and appends it to
// the durable catalog.
func (h *CreateCollectionHandler) Execute(ctx context.Context, cmd CreateCollectionCommand) (*art.Collection, error) {
	if err := cmd.Validate(); err != nil {
		return nil, shared.WrapError("art", "CreateCollection", shared.ErrInvalidInput, "invalid command", err)
	}

	verified := make([]string, 0, len(cmd.ArtIDs))
	for _, id := range cmd.ArtIDs {
		if h.gallery.Exists(ctx, id) {
			verified = append(verified, id)
		}
	}
	if dropped := len(cmd.ArtIDs) - len(verified); dropped > 0 {
		h.log.Debug("dropped unknown art ids", logger.Int("dropped", dropped))
	}

	collection, err := art.NewCollection(cmd.Name, cmd.Description, verified, cmd.UserID)
	if err != nil {
		return nil, err
	}

	if err := h.collections.Append(ctx, collection); err != nil {
		return nil, err
	}

	if h.publisher != nil {
		event := shared.NewCollectionCreatedEvent(collection.ID, collection.Name, collection.Owner, len(collection.ArtIDs))
		if err := h.publisher.Publish(event); err != nil {
			h.log.Warn("publish failed", logger.Err(err))
		}
	}

	h.log.Info("collection created",
		logger.String("collection_id", collection.ID),
		logger.Int("art_count", len(collection.ArtIDs)),
	)
	return collection, nil
}
