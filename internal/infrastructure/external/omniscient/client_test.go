package omniscient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cityspark/cityspark-hub/internal/domain/learning"
	"github.com/cityspark/cityspark-hub/internal/domain/student"
	"github.com/cityspark/cityspark-hub/pkg/retry"
)

func testClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	config := DefaultClientConfig(baseURL)
	config.Timeout = 2 * time.Second
	config.RetryConfig = retry.Config{MaxAttempts: 1, InitialDelay: time.Millisecond}
	return NewClient(config)
}

func hubProfile(t *testing.T, interests ...string) *student.Profile {
	t.Helper()
	profile, err := student.NewProfile("student-1", student.ProfileInput{
		LearningStyle: "visual",
		SkillLevel:    "beginner",
		Interests:     interests,
	})
	require.NoError(t, err)
	return profile
}

func TestGetLearningRecommendations_HubResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ai/learning/recommendations", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var request recommendationsRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		assert.Equal(t, "student-1", request.StudentProfile.StudentID)
		assert.Equal(t, "learning_recommendations", request.RequestType)

		json.NewEncoder(w).Encode(recommendationsResponse{Recommendations: []Recommendation{
			{Type: "content", Title: "Graph Theory Deep Dive", ConfidenceScore: 0.92, Source: "omniscient"},
		}})
	}))
	defer server.Close()

	recommendations := testClient(t, server.URL).GetLearningRecommendations(
		context.Background(), hubProfile(t, "math"), nil)

	require.Len(t, recommendations, 1)
	assert.Equal(t, "Graph Theory Deep Dive", recommendations[0].Title)
	assert.Equal(t, "omniscient", recommendations[0].Source)
}

func TestGetLearningRecommendations_FallbackWhenDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	recommendations := testClient(t, server.URL).GetLearningRecommendations(
		context.Background(), hubProfile(t, "math", "art", "music", "history"), nil)

	// Top three interests only, flagged as locally produced.
	require.Len(t, recommendations, 3)
	assert.Equal(t, "Advanced Math Course", recommendations[0].Title)
	assert.Equal(t, "beginner", recommendations[0].Difficulty)
	for _, rec := range recommendations {
		assert.Equal(t, "fallback", rec.Source)
		assert.InDelta(t, 0.75, rec.ConfidenceScore, 1e-9)
	}
}

func TestGetLearningRecommendations_FallbackOn500(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	recommendations := testClient(t, server.URL).GetLearningRecommendations(
		context.Background(), hubProfile(t, "math"), nil)

	require.Len(t, recommendations, 1)
	assert.Equal(t, "fallback", recommendations[0].Source)
}

func TestAnalyzeLearningPattern_HubResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ai/learning/analyze", r.URL.Path)
		json.NewEncoder(w).Encode(PatternAnalysis{
			TotalSessions:   12,
			LearningStyle:   "auditory",
			ConfidenceLevel: 0.9,
			Source:          "omniscient",
		})
	}))
	defer server.Close()

	analysis := testClient(t, server.URL).AnalyzeLearningPattern(context.Background(), "student-1", nil)

	assert.Equal(t, 12, analysis.TotalSessions)
	assert.Equal(t, "omniscient", analysis.Source)
}

func TestAnalyzeLearningPattern_FallbackStats(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	sessions := []SessionDTO{
		{Timestamp: time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC), Duration: 30, ContentType: "audio"},
		{Timestamp: time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC), Duration: 60, ContentType: "audio"},
		{Timestamp: time.Date(2025, 3, 15, 20, 0, 0, 0, time.UTC), Duration: 30, ContentType: "video"},
	}

	analysis := testClient(t, server.URL).AnalyzeLearningPattern(context.Background(), "student-1", sessions)

	assert.Equal(t, 3, analysis.TotalSessions)
	assert.InDelta(t, 40.0, analysis.AverageSessionLength, 1e-9)
	assert.Equal(t, 9, analysis.MostActiveHour)
	assert.Equal(t, "auditory", analysis.LearningStyle)
	assert.InDelta(t, 0.6, analysis.ConfidenceLevel, 1e-9)
	assert.Equal(t, "fallback", analysis.Source)
}

func TestAnalyzeLearningPattern_FallbackNoSessions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	analysis := testClient(t, server.URL).AnalyzeLearningPattern(context.Background(), "student-1", nil)

	assert.Equal(t, "insufficient_data", analysis.Status)
	assert.Zero(t, analysis.TotalSessions)
}

func TestPredictLearningOutcomes_FallbackTable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	profile := hubProfile(t)
	path, err := learning.GeneratePath(profile, "math", nil)
	require.NoError(t, err)

	prediction := testClient(t, server.URL).PredictLearningOutcomes(context.Background(), profile, path)

	assert.InDelta(t, 0.85, prediction.CompletionProbability, 1e-9)
	assert.InDelta(t, float64(path.EstimatedDuration)*1.1, prediction.EstimatedCompletionTime, 1e-9)
	assert.InDelta(t, 0.5, prediction.ConfidenceLevel, 1e-9)
	assert.Equal(t, "fallback", prediction.Source)
}

func TestGetPersonalizedContent_HubResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ai/content/personalize", r.URL.Path)
		json.NewEncoder(w).Encode(personalizeResponse{Content: []ContentItem{
			{Type: "course", Title: "Street Art History", RelevanceScore: 0.95},
		}})
	}))
	defer server.Close()

	content := testClient(t, server.URL).GetPersonalizedContent(context.Background(), "student-1", []string{"art"})

	require.Len(t, content, 1)
	assert.Equal(t, "Street Art History", content[0].Title)
}

func TestGetPersonalizedContent_FallbackDefaultsToGeneral(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	content := testClient(t, server.URL).GetPersonalizedContent(context.Background(), "student-1", nil)

	require.Len(t, content, 1)
	assert.Equal(t, "Introduction to General", content[0].Title)
	assert.Equal(t, "beginner", content[0].Difficulty)
	assert.InDelta(t, 0.7, content[0].RelevanceScore, 1e-9)
	assert.Equal(t, "fallback", content[0].Source)
}

func TestClient_SendsBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(personalizeResponse{})
	}))
	defer server.Close()

	config := DefaultClientConfig(server.URL)
	config.APIKey = "hub-key"
	config.RetryConfig = retry.Config{MaxAttempts: 1, InitialDelay: time.Millisecond}

	NewClient(config).GetPersonalizedContent(context.Background(), "student-1", []string{"art"})

	assert.Equal(t, "Bearer hub-key", gotAuth)
}
