package learning

import (
	"fmt"
	"sort"

	"github.com/cityspark/cityspark-hub/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// RECOMMENDATIONS
// ══════════════════════════════════════════════════════════════════════════════

// maxRecommendations caps the size of a recommendation list.
const maxRecommendations = 10

// Recommendation is a single ranked suggestion for a student.
type Recommendation struct {
	Type           string             `json:"type"`
	Title          string             `json:"title"`
	Description    string             `json:"description"`
	RelevanceScore float64            `json:"relevance_score"`
	Difficulty     student.Difficulty `json:"difficulty,omitempty"`
}

// Context carries optional request context for recommendations. It is
// accepted for interface stability; ranking currently depends on the
// profile alone.
type Context map[string]interface{}

// Recommend merges content, activity and peer recommendations for the
// profile, sorted by relevance descending. Ties keep their insertion
// order, so interests always rank ahead of weaknesses at equal scores.
func Recommend(profile *student.Profile, _ Context) []Recommendation {
	recommendations := make([]Recommendation, 0, len(profile.Interests)+len(profile.Weaknesses)+3)

	for _, interest := range profile.Interests {
		recommendations = append(recommendations, Recommendation{
			Type:           "content",
			Title:          fmt.Sprintf("Advanced %s", interest),
			Description:    fmt.Sprintf("Deep dive into %s based on your interests", interest),
			RelevanceScore: 0.9,
			Difficulty:     student.DifficultyMedium,
		})
	}

	for _, weakness := range profile.Weaknesses {
		recommendations = append(recommendations, Recommendation{
			Type:           "content",
			Title:          fmt.Sprintf("Master %s", weakness),
			Description:    fmt.Sprintf("Strengthen your %s skills", weakness),
			RelevanceScore: 0.85,
			Difficulty:     student.DifficultyBeginner,
		})
	}

	recommendations = append(recommendations,
		Recommendation{
			Type:           "activity",
			Title:          "Collaborative Project",
			Description:    "Work with peers on a real-world project",
			RelevanceScore: 0.8,
		},
		Recommendation{
			Type:           "activity",
			Title:          "Quiz Challenge",
			Description:    "Test your knowledge with interactive quizzes",
			RelevanceScore: 0.75,
		},
		Recommendation{
			Type:           "peer",
			Title:          "Study Group",
			Description:    "Join a study group with similar goals",
			RelevanceScore: 0.7,
		},
	)

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].RelevanceScore > recommendations[j].RelevanceScore
	})

	if len(recommendations) > maxRecommendations {
		recommendations = recommendations[:maxRecommendations]
	}
	return recommendations
}
