package omniscient

import (
	"fmt"
	"strings"

	"github.com/cityspark/cityspark-hub/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// LOCAL FALLBACKS
// ══════════════════════════════════════════════════════════════════════════════
// Produced when the hub is unreachable. Every fallback body carries
// source "fallback" and a reduced confidence so callers can tell.

const sourceFallback = "fallback"

// fallbackRecommendations derives courses from the top three interests.
func fallbackRecommendations(profile *student.Profile) []Recommendation {
	interests := profile.Interests
	if len(interests) > 3 {
		interests = interests[:3]
	}

	recommendations := make([]Recommendation, 0, len(interests))
	for _, interest := range interests {
		recommendations = append(recommendations, Recommendation{
			Type:              "content",
			Title:             fmt.Sprintf("Advanced %s Course", titleCase(interest)),
			Description:       fmt.Sprintf("Learn advanced %s concepts", interest),
			Difficulty:        string(profile.SkillLevel),
			EstimatedDuration: "4 weeks",
			ConfidenceScore:   0.75,
			Source:            sourceFallback,
		})
	}
	return recommendations
}

// fallbackAnalysis computes simple session statistics locally.
func fallbackAnalysis(sessions []SessionDTO) PatternAnalysis {
	if len(sessions) == 0 {
		return PatternAnalysis{Status: "insufficient_data"}
	}

	var totalDuration float64
	for _, session := range sessions {
		totalDuration += session.Duration
	}

	return PatternAnalysis{
		TotalSessions:        len(sessions),
		AverageSessionLength: totalDuration / float64(len(sessions)),
		MostActiveHour:       mostActiveHour(sessions),
		LearningStyle:        inferLearningStyle(sessions),
		ConfidenceLevel:      0.6,
		Source:               sourceFallback,
	}
}

// fallbackPrediction uses the fixed completion table per skill level.
func fallbackPrediction(level student.SkillLevel, pathDuration int) OutcomePrediction {
	completionProbability := 0.7
	switch level {
	case student.LevelBeginner:
		completionProbability = 0.85
	case student.LevelIntermediate:
		completionProbability = 0.75
	case student.LevelAdvanced:
		completionProbability = 0.65
	case student.LevelExpert:
		completionProbability = 0.55
	}

	return OutcomePrediction{
		CompletionProbability:   completionProbability,
		ExpectedMastery:         0.8,
		EstimatedCompletionTime: float64(pathDuration) * 1.1,
		RiskFactors:             []string{"limited_api_integration"},
		SuccessFactors:          []string{"structured_learning_path"},
		ConfidenceLevel:         0.5,
		Source:                  sourceFallback,
	}
}

// fallbackContent derives introductory courses from the top five interests.
func fallbackContent(interests []string) []ContentItem {
	if len(interests) == 0 {
		interests = []string{"general"}
	}
	if len(interests) > 5 {
		interests = interests[:5]
	}

	content := make([]ContentItem, 0, len(interests))
	for _, interest := range interests {
		content = append(content, ContentItem{
			Type:           "course",
			Title:          fmt.Sprintf("Introduction to %s", titleCase(interest)),
			Description:    fmt.Sprintf("Learn the fundamentals of %s", interest),
			Difficulty:     "beginner",
			Rating:         4.5,
			RelevanceScore: 0.7,
			Source:         sourceFallback,
		})
	}
	return content
}

// mostActiveHour returns the hour with the most sessions, defaulting to
// 14 (2 PM) with no data.
func mostActiveHour(sessions []SessionDTO) int {
	counts := make(map[int]int)
	for _, session := range sessions {
		if !session.Timestamp.IsZero() {
			counts[session.Timestamp.Hour()]++
		}
	}

	if len(counts) == 0 {
		return 14
	}

	best, bestCount := 14, 0
	for hour := 0; hour < 24; hour++ {
		if counts[hour] > bestCount {
			best, bestCount = hour, counts[hour]
		}
	}
	return best
}

var contentTypeStyles = map[string]string{
	"video":       "visual",
	"text":        "reading",
	"interactive": "kinesthetic",
	"audio":       "auditory",
}

// inferLearningStyle maps the most common session content type onto a
// learning style, defaulting to visual.
func inferLearningStyle(sessions []SessionDTO) string {
	counts := make(map[string]int)
	for _, session := range sessions {
		contentType := session.ContentType
		if contentType == "" {
			contentType = "unknown"
		}
		counts[contentType]++
	}

	mostCommon, bestCount := "video", 0
	for contentType, count := range counts {
		if count > bestCount || (count == bestCount && contentType < mostCommon) {
			mostCommon, bestCount = contentType, count
		}
	}

	if style, ok := contentTypeStyles[mostCommon]; ok {
		return style
	}
	return "visual"
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
