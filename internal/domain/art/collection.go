package art

import (
	"fmt"
	"strings"
	"time"

	"github.com/cityspark/cityspark-hub/internal/domain/shared"
	"github.com/cityspark/cityspark-hub/pkg/timeutil"
)

// ══════════════════════════════════════════════════════════════════════════════
// COLLECTIONS
// ══════════════════════════════════════════════════════════════════════════════

// Collection groups gallery pieces under a name. Collections are durably
// appended to a flat JSON file rather than held in memory.
type Collection struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ArtIDs      []string  `json:"art_ids"`
	Owner       string    `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Public      bool      `json:"public"`
	Likes       int       `json:"likes"`
	Views       int       `json:"views"`
}

// NewCollection builds a collection from already-verified art IDs. IDs that
// do not exist in the gallery must be filtered out by the caller before
// construction; unknown IDs are dropped, never rejected.
func NewCollection(name, description string, artIDs []string, owner string) (*Collection, error) {
	return NewCollectionAt(name, description, artIDs, owner, timeutil.Now())
}

// NewCollectionAt is NewCollection with an explicit creation time.
func NewCollectionAt(name, description string, artIDs []string, owner string, now time.Time) (*Collection, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.ErrCollectionEmpty
	}

	return &Collection{
		ID:          fmt.Sprintf("collection_%s", timeutil.CompactTimestamp(now)),
		Name:        name,
		Description: description,
		ArtIDs:      append([]string(nil), artIDs...),
		Owner:       owner,
		CreatedAt:   now,
		UpdatedAt:   now,
		Public:      false,
	}, nil
}

// Clone returns a deep copy of the collection.
func (c *Collection) Clone() *Collection {
	if c == nil {
		return nil
	}

	clone := *c
	clone.ArtIDs = append([]string(nil), c.ArtIDs...)
	return &clone
}
