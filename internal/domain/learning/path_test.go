package learning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cityspark/cityspark-hub/internal/domain/shared"
	"github.com/cityspark/cityspark-hub/internal/domain/student"
)

func newTestProfile(t *testing.T, style, level string) *student.Profile {
	t.Helper()
	profile, err := student.NewProfile("student-1", student.ProfileInput{
		LearningStyle: style,
		SkillLevel:    level,
	})
	require.NoError(t, err)
	return profile
}

func TestGeneratePath_Baseline(t *testing.T) {
	profile := newTestProfile(t, "reading", "intermediate")

	path, err := GeneratePath(profile, "Mathematics", []string{"pass the exam"})
	require.NoError(t, err)

	assert.Equal(t, student.StudentID("student-1"), path.StudentID)
	assert.Equal(t, "Mathematics", path.Subject)
	assert.Equal(t, []string{"pass the exam"}, path.Goals)

	// Five baseline modules, no style extras for reading.
	require.Len(t, path.Modules, 5)
	assert.Equal(t, "Introduction to Mathematics", path.Modules[0].Name)
	assert.Equal(t, "video", path.Modules[0].Type)
	assert.Equal(t, "Mathematics Project", path.Modules[4].Name)
	assert.Equal(t, 120, path.Modules[4].Duration)

	// Intermediate pace keeps the 40 hour base.
	assert.Equal(t, 40, path.EstimatedDuration)
}

func TestGeneratePath_StyleModules(t *testing.T) {
	visual, err := GeneratePath(newTestProfile(t, "visual", "beginner"), "Art", nil)
	require.NoError(t, err)
	require.Len(t, visual.Modules, 7)
	assert.Equal(t, "infographic", visual.Modules[5].Type)
	assert.Equal(t, "visual", visual.Modules[6].Type)

	auditory, err := GeneratePath(newTestProfile(t, "auditory", "beginner"), "Art", nil)
	require.NoError(t, err)
	require.Len(t, auditory.Modules, 7)
	assert.Equal(t, "audio", auditory.Modules[5].Type)
	assert.Equal(t, "podcast", auditory.Modules[6].Type)

	kinesthetic, err := GeneratePath(newTestProfile(t, "kinesthetic", "beginner"), "Art", nil)
	require.NoError(t, err)
	assert.Len(t, kinesthetic.Modules, 5)
}

func TestGeneratePath_DurationByLevel(t *testing.T) {
	tests := []struct {
		level string
		want  int
	}{
		{"beginner", 60},
		{"intermediate", 40},
		{"advanced", 32},
		{"expert", 24},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			path, err := GeneratePath(newTestProfile(t, "reading", tt.level), "Go", nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, path.EstimatedDuration)
		})
	}
}

func TestGeneratePath_DifficultyProgression(t *testing.T) {
	beginner, err := GeneratePath(newTestProfile(t, "reading", "beginner"), "Go", nil)
	require.NoError(t, err)
	assert.Equal(t, []student.Difficulty{
		student.DifficultyBeginner, student.DifficultyBeginner,
		student.DifficultyMedium, student.DifficultyMedium,
	}, beginner.DifficultyProgression)

	expert, err := GeneratePath(newTestProfile(t, "reading", "expert"), "Go", nil)
	require.NoError(t, err)
	assert.Equal(t, []student.Difficulty{
		student.DifficultyExpert, student.DifficultyExpert,
		student.DifficultyExpert, student.DifficultyExpert,
	}, expert.DifficultyProgression)
}

func TestGeneratePath_AssessmentWeightsSumToOne(t *testing.T) {
	path, err := GeneratePath(newTestProfile(t, "reading", "beginner"), "Go", nil)
	require.NoError(t, err)

	require.Len(t, path.AssessmentPoints, 4)
	var total float64
	for _, point := range path.AssessmentPoints {
		total += point.Weight
	}
	assert.InDelta(t, 1.0, total, 1e-9)
	assert.Equal(t, "final_exam", path.AssessmentPoints[3].Type)
}

func TestGeneratePath_EmptySubject(t *testing.T) {
	_, err := GeneratePath(newTestProfile(t, "reading", "beginner"), "   ", nil)
	assert.ErrorIs(t, err, shared.ErrInvalidSubject)
}

func TestPath_CloneIsDeep(t *testing.T) {
	path, err := GeneratePath(newTestProfile(t, "visual", "beginner"), "Go", []string{"learn"})
	require.NoError(t, err)

	clone := path.Clone()
	clone.Goals[0] = "changed"
	clone.Modules[0].Name = "changed"

	assert.Equal(t, "learn", path.Goals[0])
	assert.Equal(t, "Introduction to Go", path.Modules[0].Name)
}
