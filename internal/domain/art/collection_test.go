package art

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cityspark/cityspark-hub/internal/domain/shared"
)

func TestNewCollectionAt(t *testing.T) {
	collection, err := NewCollectionAt("Night Walks", "evening pieces", []string{"art_1", "art_2"}, "user-1", testTime)
	require.NoError(t, err)

	assert.Equal(t, "collection_20250314_150926", collection.ID)
	assert.Equal(t, "Night Walks", collection.Name)
	assert.Equal(t, []string{"art_1", "art_2"}, collection.ArtIDs)
	assert.Equal(t, "user-1", collection.Owner)
	assert.False(t, collection.Public)
	assert.Zero(t, collection.Likes)
	assert.Equal(t, collection.CreatedAt, collection.UpdatedAt)
}

func TestNewCollectionAt_EmptyName(t *testing.T) {
	_, err := NewCollectionAt("  ", "", nil, "user-1", testTime)
	assert.ErrorIs(t, err, shared.ErrCollectionEmpty)
	assert.True(t, shared.IsValidation(err))
}

func TestNewCollectionAt_NoArtIDs(t *testing.T) {
	collection, err := NewCollectionAt("Empty", "", nil, "user-1", testTime)
	require.NoError(t, err)
	assert.Empty(t, collection.ArtIDs)
}

func TestCollection_CloneIsDeep(t *testing.T) {
	collection, err := NewCollectionAt("Walls", "", []string{"art_1"}, "user-1", testTime)
	require.NoError(t, err)

	clone := collection.Clone()
	clone.ArtIDs[0] = "mutated"

	assert.Equal(t, "art_1", collection.ArtIDs[0])
}
