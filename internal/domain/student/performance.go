package student

import (
	"time"

	"github.com/cityspark/cityspark-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// VALUE OBJECTS
// ══════════════════════════════════════════════════════════════════════════════

// Difficulty is the difficulty vocabulary used by activities and performance
// analysis. Note: this is a separate axis from SkillLevel and deliberately
// uses "medium" where SkillLevel uses "intermediate".
type Difficulty string

const (
	DifficultyBeginner Difficulty = "beginner"
	DifficultyMedium   Difficulty = "medium"
	DifficultyAdvanced Difficulty = "advanced"
	DifficultyExpert   Difficulty = "expert"
)

// MasteryMultiplier returns the weight applied to a raw score when
// computing mastery at this difficulty.
func (d Difficulty) MasteryMultiplier() float64 {
	switch d {
	case DifficultyBeginner:
		return 1.0
	case DifficultyMedium:
		return 1.2
	case DifficultyAdvanced:
		return 1.5
	case DifficultyExpert:
		return 2.0
	default:
		return 1.0
	}
}

// Activity is a completed learning activity submitted for analysis.
type Activity struct {
	Subject        string
	Score          float64 // 0..100
	TimeSpent      int     // minutes
	CompletionRate float64 // 0.0..1.0
	Difficulty     Difficulty
}

// Validate checks the activity fields are in range.
func (a Activity) Validate() error {
	if a.Score < 0 || a.Score > 100 {
		return shared.ErrInvalidScore
	}
	if a.TimeSpent < 0 {
		return shared.ErrInvalidTimeSpent
	}
	if a.CompletionRate < 0 || a.CompletionRate > 1 {
		return shared.ErrInvalidCompletion
	}
	return nil
}

// ══════════════════════════════════════════════════════════════════════════════
// PERFORMANCE ANALYSIS
// ══════════════════════════════════════════════════════════════════════════════

// PerformanceRecord is the result of analyzing one activity. Records are
// appended to the profile history and never mutated afterwards.
type PerformanceRecord struct {
	Timestamp      time.Time  `json:"timestamp"`
	Subject        string     `json:"subject"`
	Score          float64    `json:"score"`
	TimeSpent      int        `json:"time_spent"`
	CompletionRate float64    `json:"completion_rate"`
	Difficulty     Difficulty `json:"difficulty"`

	Efficiency     float64    `json:"efficiency"`
	MasteryLevel   float64    `json:"mastery_level"`
	NextDifficulty Difficulty `json:"next_difficulty"`
	Advice         []string   `json:"advice"`
}

// Analyze computes the derived performance metrics for an activity.
func Analyze(activity Activity) (PerformanceRecord, error) {
	if err := activity.Validate(); err != nil {
		return PerformanceRecord{}, err
	}

	mastery := activity.Score * activity.Difficulty.MasteryMultiplier() / 100
	if mastery > 1.0 {
		mastery = 1.0
	}

	return PerformanceRecord{
		Timestamp:      time.Now().UTC(),
		Subject:        activity.Subject,
		Score:          activity.Score,
		TimeSpent:      activity.TimeSpent,
		CompletionRate: activity.CompletionRate,
		Difficulty:     activity.Difficulty,
		Efficiency:     efficiency(activity.Score, activity.TimeSpent),
		MasteryLevel:   mastery,
		NextDifficulty: NextDifficulty(mastery),
		Advice:         Advice(activity.Score),
	}, nil
}

// efficiency is score per minute spent. Zero time means zero efficiency,
// never a division by zero.
func efficiency(score float64, timeSpent int) float64 {
	if timeSpent <= 0 {
		return 0
	}
	return score / float64(timeSpent)
}

// NextDifficulty recommends the difficulty for the next activity based on
// the achieved mastery level.
func NextDifficulty(mastery float64) Difficulty {
	switch {
	case mastery < 0.3:
		return DifficultyBeginner
	case mastery < 0.6:
		return DifficultyMedium
	case mastery < 0.8:
		return DifficultyAdvanced
	default:
		return DifficultyExpert
	}
}

// Advice returns the study advice band for a raw score.
func Advice(score float64) []string {
	switch {
	case score < 60:
		return []string{
			"Review fundamental concepts",
			"Schedule additional practice sessions",
		}
	case score < 80:
		return []string{
			"Focus on challenging topics",
			"Try different learning approaches",
		}
	default:
		return []string{
			"Advance to next difficulty level",
			"Help peers with similar topics",
		}
	}
}
