package query

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cityspark/cityspark-hub/internal/domain/art"
	"github.com/cityspark/cityspark-hub/internal/infrastructure/persistence/memory"
)

type stubRanker struct {
	ids []string
	err error
}

func (r stubRanker) TopIDs(_ context.Context, limit int) ([]string, error) {
	if r.err != nil {
		return nil, r.err
	}
	if len(r.ids) > limit {
		return r.ids[:limit], nil
	}
	return r.ids, nil
}

func seedGallery(t *testing.T, store *memory.GalleryStore, prompt string, likes int, at time.Time) *art.Piece {
	t.Helper()
	piece, err := art.NewPieceAt(prompt, art.StyleModern, "user-1", at)
	require.NoError(t, err)
	piece.Likes = likes
	require.NoError(t, store.Save(context.Background(), piece))
	return piece
}

func TestPopular_TiesKeepGalleryOrder(t *testing.T) {
	ctx := context.Background()
	store := memory.NewGalleryStore()
	base := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	first := seedGallery(t, store, "quiet alley", 0, base)
	second := seedGallery(t, store, "neon bridge", 0, base.Add(time.Second))

	handler := NewGalleryHandler(store, nil, nil, nil)

	top, err := handler.Popular(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, first.ID, top[0].ID)
	assert.Equal(t, second.ID, top[1].ID)
}

func TestPopular_RanksByScore(t *testing.T) {
	ctx := context.Background()
	store := memory.NewGalleryStore()
	base := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	plain := seedGallery(t, store, "quiet alley", 0, base)
	liked := seedGallery(t, store, "neon bridge", 5, base.Add(time.Second))

	handler := NewGalleryHandler(store, nil, nil, nil)

	top, err := handler.Popular(ctx, 1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, liked.ID, top[0].ID)

	all, err := handler.Popular(ctx, 10)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, plain.ID, all[1].ID)
}

func TestPopular_ServesFromCache(t *testing.T) {
	ctx := context.Background()
	store := memory.NewGalleryStore()
	base := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	first := seedGallery(t, store, "quiet alley", 0, base)
	second := seedGallery(t, store, "neon bridge", 5, base.Add(time.Second))

	ranker := stubRanker{ids: []string{second.ID, first.ID}}
	handler := NewGalleryHandler(store, nil, ranker, nil)

	top, err := handler.Popular(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, second.ID, top[0].ID)
	assert.Equal(t, first.ID, top[1].ID)
}

func TestPopular_StaleCacheFallsBackToScan(t *testing.T) {
	ctx := context.Background()
	store := memory.NewGalleryStore()
	base := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	first := seedGallery(t, store, "quiet alley", 0, base)
	second := seedGallery(t, store, "neon bridge", 0, base.Add(time.Second))

	// The cache remembers a piece the gallery no longer holds; the short
	// result triggers a full scan with gallery-order ties.
	ranker := stubRanker{ids: []string{"art_19990101_000000", second.ID}}
	handler := NewGalleryHandler(store, nil, ranker, nil)

	top, err := handler.Popular(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, first.ID, top[0].ID)
	assert.Equal(t, second.ID, top[1].ID)
}

func TestPopular_CacheErrorFallsBackToScan(t *testing.T) {
	ctx := context.Background()
	store := memory.NewGalleryStore()
	piece := seedGallery(t, store, "quiet alley", 3, time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC))

	ranker := stubRanker{err: errors.New("redis down")}
	handler := NewGalleryHandler(store, nil, ranker, nil)

	top, err := handler.Popular(ctx, 1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, piece.ID, top[0].ID)
}
