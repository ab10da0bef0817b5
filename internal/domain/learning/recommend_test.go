package learning

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cityspark/cityspark-hub/internal/domain/student"
)

func TestRecommend_Ordering(t *testing.T) {
	profile, err := student.NewProfile("student-1", student.ProfileInput{
		Interests:  []string{"algebra"},
		Weaknesses: []string{"geometry"},
	})
	require.NoError(t, err)

	recommendations := Recommend(profile, nil)
	require.Len(t, recommendations, 5)

	assert.Equal(t, "Advanced algebra", recommendations[0].Title)
	assert.Equal(t, 0.9, recommendations[0].RelevanceScore)
	assert.Equal(t, "Master geometry", recommendations[1].Title)
	assert.Equal(t, "Collaborative Project", recommendations[2].Title)
	assert.Equal(t, "Quiz Challenge", recommendations[3].Title)
	assert.Equal(t, "Study Group", recommendations[4].Title)

	for i := 1; i < len(recommendations); i++ {
		assert.LessOrEqual(t, recommendations[i].RelevanceScore, recommendations[i-1].RelevanceScore)
	}
}

func TestRecommend_TiesKeepInsertionOrder(t *testing.T) {
	profile, err := student.NewProfile("student-2", student.ProfileInput{
		Interests: []string{"algebra", "calculus"},
	})
	require.NoError(t, err)

	recommendations := Recommend(profile, nil)
	assert.Equal(t, "Advanced algebra", recommendations[0].Title)
	assert.Equal(t, "Advanced calculus", recommendations[1].Title)
}

func TestRecommend_CappedAtTen(t *testing.T) {
	var interests []string
	for i := 0; i < 12; i++ {
		interests = append(interests, fmt.Sprintf("topic-%d", i))
	}
	profile, err := student.NewProfile("student-3", student.ProfileInput{Interests: interests})
	require.NoError(t, err)

	recommendations := Recommend(profile, nil)
	assert.Len(t, recommendations, 10)
	// The cap trims the lower-scored activity/peer suggestions first.
	for _, rec := range recommendations {
		assert.Equal(t, "content", rec.Type)
	}
}

func TestRecommend_EmptyProfileStillSuggests(t *testing.T) {
	profile, err := student.NewProfile("student-4", student.ProfileInput{})
	require.NoError(t, err)

	recommendations := Recommend(profile, nil)
	require.Len(t, recommendations, 3)
	assert.Equal(t, "activity", recommendations[0].Type)
	assert.Equal(t, "peer", recommendations[2].Type)
}
