// Package learning contains learning path generation, recommendation
// ranking, and outcome prediction. Pure domain logic - the only inputs
// are student profiles and the subject being studied.
package learning

import (
	"fmt"
	"strings"
	"time"

	"github.com/cityspark/cityspark-hub/internal/domain/shared"
	"github.com/cityspark/cityspark-hub/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// TYPES
// ══════════════════════════════════════════════════════════════════════════════

// Module is a single step of a learning path.
type Module struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Duration int    `json:"duration"` // minutes
}

// SuggestedActivity is a learning-style specific activity attached to a path.
type SuggestedActivity struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

// AssessmentPoint marks a scheduled assessment within the path.
type AssessmentPoint struct {
	Type   string  `json:"type"`
	Module int     `json:"module"`
	Weight float64 `json:"weight"`
}

// Path is a generated personalized learning path. Regenerating a path for
// the same (student, subject) pair replaces the previous one.
type Path struct {
	StudentID             student.StudentID    `json:"student_id"`
	Subject               string               `json:"subject"`
	Goals                 []string             `json:"goals"`
	Modules               []Module             `json:"modules"`
	EstimatedDuration     int                  `json:"estimated_duration"` // hours
	DifficultyProgression []student.Difficulty `json:"difficulty_progression"`
	LearningActivities    []SuggestedActivity  `json:"learning_activities"`
	AssessmentPoints      []AssessmentPoint    `json:"assessment_points"`
	CreatedAt             time.Time            `json:"created_at"`
}

// Clone returns a deep copy of the path.
func (p *Path) Clone() *Path {
	if p == nil {
		return nil
	}

	clone := *p
	clone.Goals = append([]string(nil), p.Goals...)
	clone.Modules = append([]Module(nil), p.Modules...)
	clone.DifficultyProgression = append([]student.Difficulty(nil), p.DifficultyProgression...)
	clone.LearningActivities = append([]SuggestedActivity(nil), p.LearningActivities...)
	clone.AssessmentPoints = append([]AssessmentPoint(nil), p.AssessmentPoints...)
	return &clone
}

// ══════════════════════════════════════════════════════════════════════════════
// GENERATION
// ══════════════════════════════════════════════════════════════════════════════

// baseDurationHours is the estimated duration of a path before skill-level
// pace adjustment.
const baseDurationHours = 40

// GeneratePath builds a personalized learning path for the given profile.
func GeneratePath(profile *student.Profile, subject string, goals []string) (*Path, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return nil, shared.ErrInvalidSubject
	}

	return &Path{
		StudentID:             profile.ID,
		Subject:               subject,
		Goals:                 append([]string(nil), goals...),
		Modules:               buildModules(profile.LearningStyle, subject),
		EstimatedDuration:     int(baseDurationHours * profile.SkillLevel.PaceMultiplier()),
		DifficultyProgression: difficultyProgression(profile.SkillLevel),
		LearningActivities:    suggestActivities(profile.LearningStyle, subject),
		AssessmentPoints:      planAssessments(),
		CreatedAt:             time.Now().UTC(),
	}, nil
}

// buildModules returns the five baseline modules plus up to two modules
// tailored to the learning style.
func buildModules(style student.LearningStyle, subject string) []Module {
	modules := []Module{
		{Name: fmt.Sprintf("Introduction to %s", subject), Type: "video", Duration: 30},
		{Name: fmt.Sprintf("%s Fundamentals", subject), Type: "interactive", Duration: 45},
		{Name: fmt.Sprintf("Practice Exercises - %s", subject), Type: "exercise", Duration: 60},
		{Name: fmt.Sprintf("Advanced %s Concepts", subject), Type: "reading", Duration: 40},
		{Name: fmt.Sprintf("%s Project", subject), Type: "project", Duration: 120},
	}

	switch style {
	case student.StyleVisual:
		modules = append(modules,
			Module{Name: fmt.Sprintf("Visual Guide to %s", subject), Type: "infographic", Duration: 20},
			Module{Name: fmt.Sprintf("%s Diagrams & Charts", subject), Type: "visual", Duration: 25},
		)
	case student.StyleAuditory:
		modules = append(modules,
			Module{Name: fmt.Sprintf("%s Audio Lecture", subject), Type: "audio", Duration: 35},
			Module{Name: fmt.Sprintf("%s Podcast Series", subject), Type: "podcast", Duration: 45},
		)
	}

	return modules
}

// difficultyProgression is the fixed four-step plan for each skill level.
func difficultyProgression(level student.SkillLevel) []student.Difficulty {
	switch level {
	case student.LevelIntermediate:
		return []student.Difficulty{
			student.DifficultyMedium, student.DifficultyMedium,
			student.DifficultyAdvanced, student.DifficultyAdvanced,
		}
	case student.LevelAdvanced:
		return []student.Difficulty{
			student.DifficultyAdvanced, student.DifficultyExpert,
			student.DifficultyExpert, student.DifficultyExpert,
		}
	case student.LevelExpert:
		return []student.Difficulty{
			student.DifficultyExpert, student.DifficultyExpert,
			student.DifficultyExpert, student.DifficultyExpert,
		}
	default:
		return []student.Difficulty{
			student.DifficultyBeginner, student.DifficultyBeginner,
			student.DifficultyMedium, student.DifficultyMedium,
		}
	}
}

// suggestActivities returns style-specific activities, with a reading and
// exercise fallback for styles without tailored content.
func suggestActivities(style student.LearningStyle, subject string) []SuggestedActivity {
	switch style {
	case student.StyleVisual:
		return []SuggestedActivity{
			{Type: "video", Name: fmt.Sprintf("Visual %s Tutorial", subject)},
			{Type: "infographic", Name: fmt.Sprintf("%s Mind Map", subject)},
		}
	case student.StyleAuditory:
		return []SuggestedActivity{
			{Type: "podcast", Name: fmt.Sprintf("%s Audio Lesson", subject)},
			{Type: "discussion", Name: fmt.Sprintf("%s Study Group", subject)},
		}
	default:
		return []SuggestedActivity{
			{Type: "reading", Name: fmt.Sprintf("%s Textbook", subject)},
			{Type: "exercise", Name: fmt.Sprintf("%s Practice Problems", subject)},
		}
	}
}

// planAssessments schedules the assessment points of a path. Weights sum
// to 1.0.
func planAssessments() []AssessmentPoint {
	return []AssessmentPoint{
		{Type: "quiz", Module: 1, Weight: 0.1},
		{Type: "assignment", Module: 3, Weight: 0.2},
		{Type: "project", Module: 5, Weight: 0.3},
		{Type: "final_exam", Module: 5, Weight: 0.4},
	}
}
