package curriculum

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testTime = time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)

func TestNewAt_Defaults(t *testing.T) {
	course := NewAt(Input{Title: "Go Basics", Subject: "programming"}, testTime)

	assert.Equal(t, "course_20250314_150926", course.ID)
	assert.Equal(t, "beginner", course.Difficulty)
	assert.Equal(t, course.CreatedAt, course.UpdatedAt)
}

func TestNewAt_ExplicitID(t *testing.T) {
	course := NewAt(Input{ID: "go-101", Difficulty: "advanced"}, testTime)

	assert.Equal(t, "go-101", course.ID)
	assert.Equal(t, "advanced", course.Difficulty)
}

func TestCourseFilter_Matches(t *testing.T) {
	course := NewAt(Input{Subject: "math", Difficulty: "intermediate"}, testTime)

	tests := []struct {
		name   string
		filter CourseFilter
		want   bool
	}{
		{"empty filter matches all", CourseFilter{}, true},
		{"subject match", CourseFilter{Subject: "math"}, true},
		{"subject mismatch", CourseFilter{Subject: "art"}, false},
		{"difficulty match", CourseFilter{Difficulty: "intermediate"}, true},
		{"difficulty mismatch", CourseFilter{Difficulty: "beginner"}, false},
		{"both match", CourseFilter{Subject: "math", Difficulty: "intermediate"}, true},
		{"one of two mismatches", CourseFilter{Subject: "math", Difficulty: "beginner"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(course))
		})
	}
}

func TestCourse_CloneIsDeep(t *testing.T) {
	course := NewAt(Input{Modules: []string{"intro"}}, testTime)

	clone := course.Clone()
	clone.Modules[0] = "mutated"

	assert.Equal(t, "intro", course.Modules[0])
}
