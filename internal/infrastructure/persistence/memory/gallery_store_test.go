package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cityspark/cityspark-hub/internal/domain/art"
	"github.com/cityspark/cityspark-hub/internal/domain/shared"
)

func testPiece(t *testing.T, prompt string, style art.Style, owner string, at time.Time) *art.Piece {
	t.Helper()
	piece, err := art.NewPieceAt(prompt, style, owner, at)
	require.NoError(t, err)
	return piece
}

func TestGalleryStore_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	store := NewGalleryStore()
	piece := testPiece(t, "urban wall", art.StyleModern, "user-1", time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC))

	require.NoError(t, store.Save(ctx, piece))

	found, err := store.FindByID(ctx, piece.ID)
	require.NoError(t, err)
	assert.Equal(t, piece.ID, found.ID)

	// The store hands out copies, never internal pointers.
	found.Likes = 99
	again, err := store.FindByID(ctx, piece.ID)
	require.NoError(t, err)
	assert.Zero(t, again.Likes)
}

func TestGalleryStore_FindMissing(t *testing.T) {
	_, err := NewGalleryStore().FindByID(context.Background(), "art_nope")
	assert.ErrorIs(t, err, shared.ErrArtNotFound)
	assert.True(t, shared.IsNotFound(err))
}

func TestGalleryStore_SaveSameIDReplaces(t *testing.T) {
	ctx := context.Background()
	store := NewGalleryStore()
	at := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

	first := testPiece(t, "first prompt", art.StyleModern, "user-1", at)
	second := testPiece(t, "second prompt", art.StyleAbstract, "user-2", at)
	require.Equal(t, first.ID, second.ID)

	require.NoError(t, store.Save(ctx, first))
	require.NoError(t, store.Save(ctx, second))

	found, err := store.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "second prompt", found.Prompt)

	all, err := store.List(ctx, art.Filter{})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestGalleryStore_ListFilters(t *testing.T) {
	ctx := context.Background()
	store := NewGalleryStore()
	base := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

	modern := testPiece(t, "city lights", art.StyleModern, "user-1", base)
	graffiti := testPiece(t, "street wall", art.StyleGraffiti, "user-2", base.Add(time.Second))
	eco := testPiece(t, "green rooftop", art.StyleEcoArt, "user-1", base.Add(2*time.Second))

	require.NoError(t, store.Save(ctx, modern))
	require.NoError(t, store.Save(ctx, graffiti))
	require.NoError(t, store.Save(ctx, eco))

	// Newest first.
	all, err := store.List(ctx, art.Filter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, eco.ID, all[0].ID)
	assert.Equal(t, modern.ID, all[2].ID)

	byStyle, err := store.List(ctx, art.Filter{Style: art.StyleGraffiti})
	require.NoError(t, err)
	require.Len(t, byStyle, 1)
	assert.Equal(t, graffiti.ID, byStyle[0].ID)

	byOwner, err := store.List(ctx, art.Filter{Owner: "user-1"})
	require.NoError(t, err)
	assert.Len(t, byOwner, 2)

	byTag, err := store.List(ctx, art.Filter{Tags: []string{"street_art"}})
	require.NoError(t, err)
	require.Len(t, byTag, 1)
	assert.Equal(t, graffiti.ID, byTag[0].ID)

	featured := true
	noneFeatured, err := store.List(ctx, art.Filter{Featured: &featured})
	require.NoError(t, err)
	assert.Empty(t, noneFeatured)
}

func TestGalleryStore_AllKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	store := NewGalleryStore()
	base := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

	// Saved newest-first on purpose; All must not re-sort by creation time.
	newer := testPiece(t, "street wall", art.StyleGraffiti, "user-2", base.Add(time.Second))
	older := testPiece(t, "city lights", art.StyleModern, "user-1", base)

	require.NoError(t, store.Save(ctx, newer))
	require.NoError(t, store.Save(ctx, older))

	all, err := store.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, newer.ID, all[0].ID)
	assert.Equal(t, older.ID, all[1].ID)

	// Copies, never internal pointers.
	all[0].Likes = 99
	found, err := store.FindByID(ctx, newer.ID)
	require.NoError(t, err)
	assert.Zero(t, found.Likes)
}

func TestGalleryStore_UpdateMutatesUnderLock(t *testing.T) {
	ctx := context.Background()
	store := NewGalleryStore()
	piece := testPiece(t, "urban wall", art.StyleModern, "user-1", time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC))
	require.NoError(t, store.Save(ctx, piece))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Update(ctx, piece.ID, func(p *art.Piece) { p.Likes++ })
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	found, err := store.FindByID(ctx, piece.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, found.Likes)
}

func TestGalleryStore_UpdateMissing(t *testing.T) {
	_, err := NewGalleryStore().Update(context.Background(), "art_nope", func(p *art.Piece) {})
	assert.ErrorIs(t, err, shared.ErrArtNotFound)
}

func TestGalleryStore_Exists(t *testing.T) {
	ctx := context.Background()
	store := NewGalleryStore()
	piece := testPiece(t, "urban wall", art.StyleModern, "", time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC))
	require.NoError(t, store.Save(ctx, piece))

	assert.True(t, store.Exists(ctx, piece.ID))
	assert.False(t, store.Exists(ctx, "art_nope"))
}
