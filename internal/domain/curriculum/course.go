// Package curriculum contains the course catalog.
package curriculum

import (
	"fmt"
	"time"

	"github.com/cityspark/cityspark-hub/pkg/timeutil"
)

// Course is an educational content unit.
type Course struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Subject       string    `json:"subject"`
	Difficulty    string    `json:"difficulty"`
	Duration      int       `json:"duration"` // hours
	Modules       []string  `json:"modules"`
	Objectives    []string  `json:"objectives"`
	Prerequisites []string  `json:"prerequisites"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Input carries the fields used to create a course.
type Input struct {
	ID            string
	Title         string
	Description   string
	Subject       string
	Difficulty    string
	Duration      int
	Modules       []string
	Objectives    []string
	Prerequisites []string
}

// New builds a course. Missing difficulty defaults to beginner.
func New(input Input) *Course {
	return NewAt(input, timeutil.Now())
}

// NewAt is New with an explicit creation time.
func NewAt(input Input, now time.Time) *Course {
	id := input.ID
	if id == "" {
		id = fmt.Sprintf("course_%s", timeutil.CompactTimestamp(now))
	}

	difficulty := input.Difficulty
	if difficulty == "" {
		difficulty = "beginner"
	}

	return &Course{
		ID:            id,
		Title:         input.Title,
		Description:   input.Description,
		Subject:       input.Subject,
		Difficulty:    difficulty,
		Duration:      input.Duration,
		Modules:       append([]string(nil), input.Modules...),
		Objectives:    append([]string(nil), input.Objectives...),
		Prerequisites: append([]string(nil), input.Prerequisites...),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Clone returns a deep copy of the course.
func (c *Course) Clone() *Course {
	if c == nil {
		return nil
	}

	clone := *c
	clone.Modules = append([]string(nil), c.Modules...)
	clone.Objectives = append([]string(nil), c.Objectives...)
	clone.Prerequisites = append([]string(nil), c.Prerequisites...)
	return &clone
}

// CourseFilter narrows course listings. Empty fields are ignored.
type CourseFilter struct {
	Subject    string
	Difficulty string
}

// Matches reports whether the course satisfies the filter.
func (f CourseFilter) Matches(course *Course) bool {
	if f.Subject != "" && course.Subject != f.Subject {
		return false
	}
	if f.Difficulty != "" && course.Difficulty != f.Difficulty {
		return false
	}
	return true
}
