// Package assessment contains quiz/exam definitions and submission scoring.
package assessment

import (
	"fmt"
	"time"

	"github.com/cityspark/cityspark-hub/pkg/timeutil"
)

// ══════════════════════════════════════════════════════════════════════════════
// TYPES
// ══════════════════════════════════════════════════════════════════════════════

// Question is a single gradeable question.
type Question struct {
	ID            string `json:"id"`
	Text          string `json:"text,omitempty"`
	CorrectAnswer string `json:"correct_answer"`
}

// Assessment defines a gradeable unit attached to a course.
type Assessment struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Type         string     `json:"type"`
	CourseID     string     `json:"course_id"`
	Questions    []Question `json:"questions"`
	TimeLimit    int        `json:"time_limit"` // minutes
	MaxScore     float64    `json:"max_score"`
	PassingScore float64    `json:"passing_score"`
	CreatedAt    time.Time  `json:"created_at"`
}

// Input carries the fields used to create an assessment. Zero values fall
// back to quiz defaults.
type Input struct {
	ID           string
	Title        string
	Type         string
	CourseID     string
	Questions    []Question
	TimeLimit    int
	MaxScore     float64
	PassingScore float64
}

// New builds an assessment with defaults applied: quiz type, 60 minute
// limit, 100 max score, 70 to pass.
func New(input Input) *Assessment {
	return NewAt(input, timeutil.Now())
}

// NewAt is New with an explicit creation time.
func NewAt(input Input, now time.Time) *Assessment {
	id := input.ID
	if id == "" {
		id = fmt.Sprintf("assessment_%s", timeutil.CompactTimestamp(now))
	}

	assessmentType := input.Type
	if assessmentType == "" {
		assessmentType = "quiz"
	}
	timeLimit := input.TimeLimit
	if timeLimit == 0 {
		timeLimit = 60
	}
	maxScore := input.MaxScore
	if maxScore == 0 {
		maxScore = 100
	}
	passingScore := input.PassingScore
	if passingScore == 0 {
		passingScore = 70
	}

	return &Assessment{
		ID:           id,
		Title:        input.Title,
		Type:         assessmentType,
		CourseID:     input.CourseID,
		Questions:    append([]Question(nil), input.Questions...),
		TimeLimit:    timeLimit,
		MaxScore:     maxScore,
		PassingScore: passingScore,
		CreatedAt:    now,
	}
}

// Clone returns a deep copy of the assessment.
func (a *Assessment) Clone() *Assessment {
	if a == nil {
		return nil
	}

	clone := *a
	clone.Questions = append([]Question(nil), a.Questions...)
	return &clone
}

// ══════════════════════════════════════════════════════════════════════════════
// SCORING
// ══════════════════════════════════════════════════════════════════════════════

// Result is the outcome of evaluating a submission.
type Result struct {
	AssessmentID string    `json:"assessment_id"`
	StudentID    string    `json:"student_id"`
	Score        float64   `json:"score"`
	MaxScore     float64   `json:"max_score"`
	Passed       bool      `json:"passed"`
	Feedback     string    `json:"feedback"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

// Evaluate scores the answers against the assessment. An assessment with
// no questions scores zero.
func (a *Assessment) Evaluate(studentID string, answers map[string]string) Result {
	score := a.score(answers)

	return Result{
		AssessmentID: a.ID,
		StudentID:    studentID,
		Score:        score,
		MaxScore:     a.MaxScore,
		Passed:       score >= a.PassingScore,
		Feedback:     a.feedback(score),
		SubmittedAt:  timeutil.Now(),
	}
}

func (a *Assessment) score(answers map[string]string) float64 {
	if len(a.Questions) == 0 {
		return 0
	}

	var correct int
	for _, question := range a.Questions {
		if answers[question.ID] == question.CorrectAnswer {
			correct++
		}
	}
	return float64(correct) / float64(len(a.Questions)) * a.MaxScore
}

func (a *Assessment) feedback(score float64) string {
	percentage := score / a.MaxScore * 100

	switch {
	case percentage >= 90:
		return "Excellent work! You've mastered this material."
	case percentage >= 80:
		return "Great job! You have a strong understanding of this topic."
	case percentage >= 70:
		return "Good work! Review the areas where you lost points."
	default:
		return "You need to review this material more thoroughly."
	}
}
