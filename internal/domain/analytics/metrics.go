package analytics

import (
	"sort"

	"github.com/cityspark/cityspark-hub/pkg/timeutil"
)

// ══════════════════════════════════════════════════════════════════════════════
// METRICS
// ══════════════════════════════════════════════════════════════════════════════

// Metrics summarizes a user's learning activity over a trailing window.
type Metrics struct {
	UserID              string  `json:"user_id"`
	PeriodDays          int     `json:"period_days"`
	TotalEvents         int     `json:"total_events"`
	LearningTimeMinutes float64 `json:"learning_time_minutes"`
	CompletionRate      float64 `json:"completion_rate"`
	AverageScore        float64 `json:"average_score"`
	EngagementScore     float64 `json:"engagement_score"`
}

// DefaultMetricsDays is the window used when no period is requested.
const DefaultMetricsDays = 30

var learningTimeTypes = map[string]bool{
	TypeLearningSession: true,
	TypeVideoWatch:      true,
	TypeQuizAttempt:     true,
}

var engagementTypes = map[string]bool{
	TypeVideoWatch:       true,
	TypeQuizAttempt:      true,
	TypeDiscussionPost:   true,
	TypeAssignmentSubmit: true,
}

// CalculateMetrics aggregates the user's events inside the trailing window.
// The events slice must already be scoped to a single user.
func CalculateMetrics(userID string, events []Event, days int) Metrics {
	if days <= 0 {
		days = DefaultMetricsDays
	}
	cutoff := timeutil.TrailingWindow(days)

	var windowed []Event
	for _, event := range events {
		if !event.Timestamp.Before(cutoff) {
			windowed = append(windowed, event)
		}
	}

	return Metrics{
		UserID:              userID,
		PeriodDays:          days,
		TotalEvents:         len(windowed),
		LearningTimeMinutes: learningTime(windowed),
		CompletionRate:      completionRate(windowed),
		AverageScore:        averageScore(windowed),
		EngagementScore:     engagementScore(windowed),
	}
}

func learningTime(events []Event) float64 {
	var total float64
	for _, event := range events {
		if learningTimeTypes[event.Type] {
			total += event.DurationMinutes()
		}
	}
	return total
}

// completionRate is completed/started modules as a percentage. No starts
// means zero, never a division by zero.
func completionRate(events []Event) float64 {
	var started, completed int
	for _, event := range events {
		switch event.Type {
		case TypeModuleStarted:
			started++
		case TypeModuleCompleted:
			completed++
		}
	}

	if started == 0 {
		return 0
	}
	return float64(completed) / float64(started) * 100
}

func averageScore(events []Event) float64 {
	var sum float64
	var count int
	for _, event := range events {
		if event.Type == TypeQuizCompleted {
			sum += event.Score()
			count++
		}
	}

	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// engagementScore awards 5 points per engagement event, capped at 100.
func engagementScore(events []Event) float64 {
	var count int
	for _, event := range events {
		if engagementTypes[event.Type] {
			count++
		}
	}

	score := float64(count * 5)
	if score > 100 {
		score = 100
	}
	return score
}

// ══════════════════════════════════════════════════════════════════════════════
// INSIGHTS
// ══════════════════════════════════════════════════════════════════════════════

// Insight is a detected learning pattern with a recommendation.
type Insight struct {
	Type           string `json:"type"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Recommendation string `json:"recommendation"`
}

// GenerateInsights inspects the user's full event history for known
// patterns. The events slice must already be scoped to a single user.
func GenerateInsights(events []Event) []Insight {
	insights := []Insight{}

	if isNightLearner(events) {
		insights = append(insights, Insight{
			Type:           "learning_pattern",
			Title:          "Night Learner",
			Description:    "You learn most effectively during evening hours",
			Recommendation: "Schedule important learning activities for 7-10 PM",
		})
	}

	if isImproving(events) {
		insights = append(insights, Insight{
			Type:           "progress_trend",
			Title:          "Improving Performance",
			Description:    "Your scores have been trending upward",
			Recommendation: "Keep up the current learning strategy",
		})
	}

	return insights
}

// isNightLearner reports whether more than 60% of session and video events
// fall in the evening band.
func isNightLearner(events []Event) bool {
	var total, evening int
	for _, event := range events {
		if event.Type != TypeLearningSession && event.Type != TypeVideoWatch {
			continue
		}
		total++
		if timeutil.IsEveningHour(event.Timestamp) {
			evening++
		}
	}

	if total == 0 {
		return false
	}
	return float64(evening)/float64(total) > 0.6
}

// isImproving compares the average of the last three quiz scores against
// the first three. Needs at least three completed quizzes.
func isImproving(events []Event) bool {
	var quizzes []Event
	for _, event := range events {
		if event.Type == TypeQuizCompleted {
			quizzes = append(quizzes, event)
		}
	}
	if len(quizzes) < 3 {
		return false
	}

	sort.SliceStable(quizzes, func(i, j int) bool {
		return quizzes[i].Timestamp.Before(quizzes[j].Timestamp)
	})

	early := avgScore(quizzes[:3])
	recent := avgScore(quizzes[len(quizzes)-3:])
	return recent > early
}

func avgScore(events []Event) float64 {
	var sum float64
	for _, event := range events {
		sum += event.Score()
	}
	return sum / float64(len(events))
}
