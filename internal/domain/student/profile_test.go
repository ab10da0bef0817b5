package student

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cityspark/cityspark-hub/internal/domain/shared"
)

func TestNewProfile_Normalization(t *testing.T) {
	profile, err := NewProfile("student-1", ProfileInput{
		LearningStyle: "  VISUAL ",
		SkillLevel:    "Advanced",
		Interests:     []string{"go", "art"},
	})
	require.NoError(t, err)

	assert.Equal(t, StudentID("student-1"), profile.ID)
	assert.Equal(t, StyleVisual, profile.LearningStyle)
	assert.Equal(t, LevelAdvanced, profile.SkillLevel)
	assert.Equal(t, []string{"go", "art"}, profile.Interests)
	assert.Empty(t, profile.History)
	assert.Equal(t, profile.CreatedAt, profile.UpdatedAt)
}

func TestNewProfile_UnknownEnumsFallBack(t *testing.T) {
	profile, err := NewProfile("student-2", ProfileInput{
		LearningStyle: "telepathic",
		SkillLevel:    "grandmaster",
	})
	require.NoError(t, err)

	assert.Equal(t, StyleVisual, profile.LearningStyle)
	assert.Equal(t, LevelBeginner, profile.SkillLevel)
}

func TestNewProfile_InvalidID(t *testing.T) {
	tests := []struct {
		name string
		id   StudentID
	}{
		{"empty", ""},
		{"whitespace", "student 1"},
		{"newline", "student\n1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProfile(tt.id, ProfileInput{})
			assert.ErrorIs(t, err, shared.ErrInvalidStudentID)
		})
	}
}

func TestProfile_AppendRecord(t *testing.T) {
	profile, err := NewProfile("student-3", ProfileInput{})
	require.NoError(t, err)

	created := profile.UpdatedAt
	record, err := Analyze(Activity{Subject: "math", Score: 75, TimeSpent: 30, CompletionRate: 0.9})
	require.NoError(t, err)

	profile.AppendRecord(record)

	assert.Len(t, profile.History, 1)
	assert.Equal(t, "math", profile.History[0].Subject)
	assert.False(t, profile.UpdatedAt.Before(created))
}

func TestProfile_CloneIsDeep(t *testing.T) {
	profile, err := NewProfile("student-4", ProfileInput{
		Interests: []string{"go"},
		Goals:     []string{"ship"},
	})
	require.NoError(t, err)
	profile.AppendRecord(PerformanceRecord{Subject: "go"})

	clone := profile.Clone()
	clone.Interests[0] = "rust"
	clone.History[0].Subject = "rust"

	assert.Equal(t, "go", profile.Interests[0])
	assert.Equal(t, "go", profile.History[0].Subject)
}

func TestPaceMultiplier(t *testing.T) {
	assert.Equal(t, 1.5, LevelBeginner.PaceMultiplier())
	assert.Equal(t, 1.0, LevelIntermediate.PaceMultiplier())
	assert.Equal(t, 0.8, LevelAdvanced.PaceMultiplier())
	assert.Equal(t, 0.6, LevelExpert.PaceMultiplier())
}
