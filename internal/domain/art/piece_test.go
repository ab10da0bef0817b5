package art

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cityspark/cityspark-hub/internal/domain/shared"
)

var testTime = time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)

func TestNewPieceAt(t *testing.T) {
	piece, err := NewPieceAt("vibrant city skyline at night", StyleGraffiti, "user-1", testTime)
	require.NoError(t, err)

	assert.Equal(t, "art_20250314_150926", piece.ID)
	assert.Equal(t, "Vibrant City Skyline - Graffiti Style Style", piece.Title)
	assert.Equal(t, "user-1", piece.Owner)
	assert.Equal(t, StyleGraffiti, piece.Style)
	assert.Equal(t, "/static/generated_art/art_20250314_150926.jpg", piece.ImageURL)
	assert.Equal(t, "/static/generated_art/art_20250314_150926_thumb.jpg", piece.ThumbnailURL)
	assert.Equal(t, len("vibrant city skyline at night"), piece.Metadata.PromptLength)
	assert.Equal(t, "CitySpark-Art-v1.0", piece.Metadata.GenerationModel)
	assert.Zero(t, piece.Likes)
	assert.Zero(t, piece.Views)
	assert.False(t, piece.Featured)
}

func TestNewPieceAt_Tags(t *testing.T) {
	piece, err := NewPieceAt("urban street scene", StyleGraffiti, "", testTime)
	require.NoError(t, err)

	// Style label, prompt keywords, and graffiti bonus tags, sorted.
	assert.Equal(t, []string{"graffiti", "spray_paint", "street", "street_art", "urban", "wall_art"}, piece.Tags)
	assert.True(t, sort.StringsAreSorted(piece.Tags))
	assert.Equal(t, piece.Tags, piece.Metadata.Keywords)
}

func TestNewPieceAt_EmptyPrompt(t *testing.T) {
	_, err := NewPieceAt("   ", StyleModern, "user-1", testTime)
	assert.ErrorIs(t, err, shared.ErrInvalidPrompt)
	assert.True(t, shared.IsValidation(err))
}

func TestPopularityScore(t *testing.T) {
	piece := &Piece{Likes: 10, Views: 50}
	assert.InDelta(t, 25.0, piece.PopularityScore(), 1e-9)

	assert.Zero(t, (&Piece{}).PopularityScore())
}

func TestRankByPopularity(t *testing.T) {
	a := &Piece{ID: "a", Likes: 1, Views: 0}  // 2.0
	b := &Piece{ID: "b", Likes: 5, Views: 10} // 11.0
	c := &Piece{ID: "c", Likes: 0, Views: 20} // 2.0, ties with a
	d := &Piece{ID: "d", Likes: 3, Views: 0}  // 6.0

	ranked := RankByPopularity([]*Piece{a, b, c, d}, 0)
	require.Len(t, ranked, 4)
	assert.Equal(t, "b", ranked[0].ID)
	assert.Equal(t, "d", ranked[1].ID)
	// Equal scores keep input order.
	assert.Equal(t, "a", ranked[2].ID)
	assert.Equal(t, "c", ranked[3].ID)

	top2 := RankByPopularity([]*Piece{a, b, c, d}, 2)
	require.Len(t, top2, 2)
	assert.Equal(t, "b", top2[0].ID)

	// Input order is untouched.
	assert.Equal(t, "a", a.ID)
}

func TestLookupPreset_Unknown(t *testing.T) {
	preset := LookupPreset(Style("watercolor"))
	assert.Equal(t, "Watercolor", preset.Name)
	assert.Empty(t, preset.ColorPalette)
}

func TestSuggestStyles(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
		want   []string
	}{
		{
			name:   "urban bucket",
			prompt: "busy city crossing",
			want:   []string{"street_art", "graffiti", "urban"},
		},
		{
			name:   "eco bucket",
			prompt: "green rooftop garden",
			want:   []string{"eco_art", "nature_inspired", "sustainable"},
		},
		{
			name:   "tech bucket",
			prompt: "digital billboard glow",
			want:   []string{"digital", "cyberpunk", "tech_art"},
		},
		{
			name:   "multiple buckets in bucket order",
			prompt: "modern city nights",
			want: []string{
				"street_art", "graffiti", "urban",
				"modern", "abstract", "contemporary",
			},
		},
		{
			name:   "no match falls back to modern defaults",
			prompt: "a quiet lake",
			want:   []string{"modern", "abstract", "contemporary"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SuggestStyles(tt.prompt))
		})
	}
}

func TestPiece_CloneIsDeep(t *testing.T) {
	piece, err := NewPieceAt("urban wall", StyleModern, "user-1", testTime)
	require.NoError(t, err)

	clone := piece.Clone()
	clone.Tags[0] = "mutated"
	clone.Metadata.Keywords[0] = "mutated"

	assert.NotEqual(t, "mutated", piece.Tags[0])
	assert.NotEqual(t, "mutated", piece.Metadata.Keywords[0])
}
