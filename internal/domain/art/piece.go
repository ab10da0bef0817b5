// Package art contains the urban art gallery model: generated pieces,
// style presets, popularity ranking, and collections.
package art

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/cityspark/cityspark-hub/internal/domain/shared"
	"github.com/cityspark/cityspark-hub/pkg/timeutil"
)

// ══════════════════════════════════════════════════════════════════════════════
// STYLE PRESETS
// ══════════════════════════════════════════════════════════════════════════════

// Style identifies an art generation style.
type Style string

const (
	StyleModern   Style = "modern"
	StyleGraffiti Style = "graffiti"
	StyleAbstract Style = "abstract"
	StyleEcoArt   Style = "eco_art"
)

// Preset describes a known generation style.
type Preset struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	ColorPalette []string `json:"color_palette"`
	Techniques   []string `json:"techniques"`
}

var stylePresets = map[Style]Preset{
	StyleModern: {
		Name:         "Modern Urban",
		Description:  "Contemporary urban art with clean lines and bold colors",
		ColorPalette: []string{"#FF6B6B", "#4ECDC4", "#45B7D1", "#96CEB4", "#FFEAA7"},
		Techniques:   []string{"digital", "mixed_media", "collage"},
	},
	StyleGraffiti: {
		Name:         "Graffiti Style",
		Description:  "Classic street art with spray paint techniques",
		ColorPalette: []string{"#FF0000", "#FFD700", "#00FF00", "#FF00FF", "#00FFFF"},
		Techniques:   []string{"spray_paint", "stencil", "freehand"},
	},
	StyleAbstract: {
		Name:         "Abstract Urban",
		Description:  "Abstract interpretation of urban landscapes",
		ColorPalette: []string{"#2C3E50", "#E74C3C", "#F39C12", "#27AE60", "#8E44AD"},
		Techniques:   []string{"geometric", "expressionist", "minimalist"},
	},
	StyleEcoArt: {
		Name:         "Eco Urban Art",
		Description:  "Environmentally conscious urban art themes",
		ColorPalette: []string{"#27AE60", "#16A085", "#2980B9", "#8E44AD", "#F39C12"},
		Techniques:   []string{"recycled_materials", "natural_elements", "sustainable"},
	},
}

// LookupPreset returns the preset for a style. Unknown styles get a
// capitalized display name and no palette.
func LookupPreset(style Style) Preset {
	if preset, ok := stylePresets[style]; ok {
		return preset
	}
	return Preset{Name: capitalize(string(style))}
}

// Presets returns all known style presets keyed by style.
func Presets() map[Style]Preset {
	out := make(map[Style]Preset, len(stylePresets))
	for style, preset := range stylePresets {
		out[style] = preset
	}
	return out
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ══════════════════════════════════════════════════════════════════════════════
// ENTITY
// ══════════════════════════════════════════════════════════════════════════════

// Metadata describes how a piece was generated.
type Metadata struct {
	PromptLength    int      `json:"prompt_length"`
	Style           Style    `json:"style"`
	GenerationModel string   `json:"generation_model"`
	Resolution      string   `json:"resolution"`
	Format          string   `json:"format"`
	Keywords        []string `json:"keywords"`
}

// Piece is a generated urban art piece in the gallery.
type Piece struct {
	ID           string    `json:"id"`
	Prompt       string    `json:"prompt"`
	Style        Style     `json:"style"`
	Owner        string    `json:"user_id,omitempty"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Metadata     Metadata  `json:"metadata"`
	ImageURL     string    `json:"image_url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	Tags         []string  `json:"tags"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	Likes        int       `json:"likes"`
	Views        int       `json:"views"`
	Featured     bool      `json:"featured"`
}

const generationModel = "CitySpark-Art-v1.0"

// NewPiece generates a piece for the prompt and style. The creation time
// feeds the piece ID, so pieces generated in the same second share an ID
// and the later one wins in the gallery.
func NewPiece(prompt string, style Style, owner string) (*Piece, error) {
	return NewPieceAt(prompt, style, owner, timeutil.Now())
}

// NewPieceAt is NewPiece with an explicit creation time.
func NewPieceAt(prompt string, style Style, owner string, now time.Time) (*Piece, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, shared.ErrInvalidPrompt
	}

	id := fmt.Sprintf("art_%s", timeutil.CompactTimestamp(now))
	tags := generateTags(prompt, style)

	return &Piece{
		ID:          id,
		Prompt:      prompt,
		Style:       style,
		Owner:       owner,
		Title:       generateTitle(prompt, style),
		Description: generateDescription(prompt, style),
		Metadata: Metadata{
			PromptLength:    len(prompt),
			Style:           style,
			GenerationModel: generationModel,
			Resolution:      "1920x1080",
			Format:          "digital_art",
			Keywords:        tags,
		},
		ImageURL:     fmt.Sprintf("/static/generated_art/%s.jpg", id),
		ThumbnailURL: fmt.Sprintf("/static/generated_art/%s_thumb.jpg", id),
		Tags:         tags,
		CreatedAt:    now,
	}, nil
}

// PopularityScore weighs likes heavier than views. The score is derived,
// never stored.
func (p *Piece) PopularityScore() float64 {
	return float64(p.Likes)*2 + float64(p.Views)*0.1
}

// Clone returns a deep copy of the piece.
func (p *Piece) Clone() *Piece {
	if p == nil {
		return nil
	}

	clone := *p
	clone.Tags = append([]string(nil), p.Tags...)
	clone.Metadata.Keywords = append([]string(nil), p.Metadata.Keywords...)
	return &clone
}

// ══════════════════════════════════════════════════════════════════════════════
// GENERATION HELPERS
// ══════════════════════════════════════════════════════════════════════════════

// generateTitle builds a title from the first three prompt words and the
// style display name.
func generateTitle(prompt string, style Style) string {
	words := strings.Fields(prompt)
	if len(words) > 3 {
		words = words[:3]
	}
	return fmt.Sprintf("%s - %s Style", titleCase(strings.Join(words, " ")), LookupPreset(style).Name)
}

// titleCase capitalizes the first letter of each word.
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, word := range words {
		words[i] = capitalize(word)
	}
	return strings.Join(words, " ")
}

func generateDescription(prompt string, style Style) string {
	return fmt.Sprintf("AI-generated urban art inspired by: %s. %s", prompt, LookupPreset(style).Description)
}

var urbanKeywords = map[string]bool{
	"city":         true,
	"urban":        true,
	"street":       true,
	"building":     true,
	"skyline":      true,
	"modern":       true,
	"contemporary": true,
}

// generateTags collects the style label, urban keywords appearing in the
// prompt, and style bonus tags. Tags are deduplicated and sorted so output
// is deterministic.
func generateTags(prompt string, style Style) []string {
	seen := map[string]bool{string(style): true}

	for _, word := range strings.Fields(strings.ToLower(prompt)) {
		if urbanKeywords[word] {
			seen[word] = true
		}
	}

	switch style {
	case StyleGraffiti:
		seen["street_art"], seen["spray_paint"], seen["wall_art"] = true, true, true
	case StyleEcoArt:
		seen["environment"], seen["sustainable"], seen["green"] = true, true, true
	case StyleModern:
		seen["contemporary"], seen["minimalist"], seen["clean"] = true, true, true
	}

	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// ══════════════════════════════════════════════════════════════════════════════
// STYLE SUGGESTIONS
// ══════════════════════════════════════════════════════════════════════════════

var suggestionBuckets = []struct {
	triggers []string
	styles   []string
}{
	{[]string{"city", "urban", "street"}, []string{"street_art", "graffiti", "urban"}},
	{[]string{"modern", "contemporary", "abstract"}, []string{"modern", "abstract", "contemporary"}},
	{[]string{"nature", "green", "eco"}, []string{"eco_art", "nature_inspired", "sustainable"}},
	{[]string{"tech", "digital", "cyber"}, []string{"digital", "cyberpunk", "tech_art"}},
}

// SuggestStyles matches keyword buckets against the prompt and returns
// the deduplicated union of their styles, in bucket order. When nothing
// matches it falls back to the modern defaults.
func SuggestStyles(prompt string) []string {
	lower := strings.ToLower(prompt)

	var suggestions []string
	seen := map[string]bool{}
	for _, bucket := range suggestionBuckets {
		matched := false
		for _, trigger := range bucket.triggers {
			if strings.Contains(lower, trigger) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		for _, style := range bucket.styles {
			if !seen[style] {
				seen[style] = true
				suggestions = append(suggestions, style)
			}
		}
	}

	if len(suggestions) == 0 {
		return []string{"modern", "abstract", "contemporary"}
	}
	return suggestions
}

// ══════════════════════════════════════════════════════════════════════════════
// RANKING
// ══════════════════════════════════════════════════════════════════════════════

// RankByPopularity returns the top pieces by popularity score, descending.
// Equal scores keep their input order.
func RankByPopularity(pieces []*Piece, limit int) []*Piece {
	ranked := append([]*Piece(nil), pieces...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].PopularityScore() > ranked[j].PopularityScore()
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
