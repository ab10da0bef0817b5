package student

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cityspark/cityspark-hub/internal/domain/shared"
)

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name           string
		activity       Activity
		wantMastery    float64
		wantNext       Difficulty
		wantEfficiency float64
	}{
		{
			name: "beginner difficulty keeps raw score",
			activity: Activity{
				Subject:        "math",
				Score:          50,
				TimeSpent:      25,
				CompletionRate: 0.8,
				Difficulty:     DifficultyBeginner,
			},
			wantMastery:    0.5,
			wantNext:       DifficultyMedium,
			wantEfficiency: 2.0,
		},
		{
			name: "medium difficulty boosts mastery",
			activity: Activity{
				Subject:        "math",
				Score:          80,
				TimeSpent:      40,
				CompletionRate: 1.0,
				Difficulty:     DifficultyMedium,
			},
			wantMastery:    0.96,
			wantNext:       DifficultyExpert,
			wantEfficiency: 2.0,
		},
		{
			name: "expert multiplier caps at full mastery",
			activity: Activity{
				Subject:        "physics",
				Score:          90,
				TimeSpent:      30,
				CompletionRate: 1.0,
				Difficulty:     DifficultyExpert,
			},
			wantMastery:    1.0,
			wantNext:       DifficultyExpert,
			wantEfficiency: 3.0,
		},
		{
			name: "low score recommends beginner",
			activity: Activity{
				Subject:        "chemistry",
				Score:          20,
				TimeSpent:      60,
				CompletionRate: 0.3,
				Difficulty:     DifficultyBeginner,
			},
			wantMastery:    0.2,
			wantNext:       DifficultyBeginner,
			wantEfficiency: 20.0 / 60.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := Analyze(tt.activity)
			require.NoError(t, err)

			assert.Equal(t, tt.activity.Subject, record.Subject)
			assert.InDelta(t, tt.wantMastery, record.MasteryLevel, 1e-9)
			assert.Equal(t, tt.wantNext, record.NextDifficulty)
			assert.InDelta(t, tt.wantEfficiency, record.Efficiency, 1e-9)
			assert.NotEmpty(t, record.Advice)
			assert.False(t, record.Timestamp.IsZero())
		})
	}
}

func TestAnalyze_ZeroTimeSpent(t *testing.T) {
	record, err := Analyze(Activity{Score: 70, TimeSpent: 0, CompletionRate: 0.5})
	require.NoError(t, err)
	assert.Zero(t, record.Efficiency)
}

func TestAnalyze_Validation(t *testing.T) {
	tests := []struct {
		name     string
		activity Activity
		wantErr  error
	}{
		{"score above range", Activity{Score: 101}, shared.ErrInvalidScore},
		{"negative score", Activity{Score: -1}, shared.ErrInvalidScore},
		{"negative time", Activity{Score: 50, TimeSpent: -5}, shared.ErrInvalidTimeSpent},
		{"completion above one", Activity{Score: 50, CompletionRate: 1.5}, shared.ErrInvalidCompletion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Analyze(tt.activity)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, shared.IsValidation(err))
		})
	}
}

func TestNextDifficulty_Bands(t *testing.T) {
	assert.Equal(t, DifficultyBeginner, NextDifficulty(0.0))
	assert.Equal(t, DifficultyBeginner, NextDifficulty(0.29))
	assert.Equal(t, DifficultyMedium, NextDifficulty(0.3))
	assert.Equal(t, DifficultyMedium, NextDifficulty(0.59))
	assert.Equal(t, DifficultyAdvanced, NextDifficulty(0.6))
	assert.Equal(t, DifficultyAdvanced, NextDifficulty(0.79))
	assert.Equal(t, DifficultyExpert, NextDifficulty(0.8))
	assert.Equal(t, DifficultyExpert, NextDifficulty(1.0))
}

func TestAdvice_Bands(t *testing.T) {
	assert.Contains(t, Advice(45)[0], "fundamental")
	assert.Contains(t, Advice(70)[0], "challenging")
	assert.Contains(t, Advice(85)[0], "next difficulty")
	assert.Contains(t, Advice(80)[0], "next difficulty")
	assert.Contains(t, Advice(60)[0], "challenging")
}

func TestMasteryMultiplier(t *testing.T) {
	assert.Equal(t, 1.0, DifficultyBeginner.MasteryMultiplier())
	assert.Equal(t, 1.2, DifficultyMedium.MasteryMultiplier())
	assert.Equal(t, 1.5, DifficultyAdvanced.MasteryMultiplier())
	assert.Equal(t, 2.0, DifficultyExpert.MasteryMultiplier())
	assert.Equal(t, 1.0, Difficulty("unknown").MasteryMultiplier())
}
