// Package omniscient implements the Omniscient Core AI Hub client. The
// hub provides AI-powered recommendations, pattern analysis, and outcome
// prediction; every operation degrades to a local fallback when the hub
// is unreachable, so callers never see transport errors.
package omniscient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cityspark/cityspark-hub/internal/domain/learning"
	"github.com/cityspark/cityspark-hub/internal/domain/student"
	"github.com/cityspark/cityspark-hub/pkg/circuitbreaker"
	"github.com/cityspark/cityspark-hub/pkg/logger"
	"github.com/cityspark/cityspark-hub/pkg/retry"
)

// ══════════════════════════════════════════════════════════════════════════════
// CONFIGURATION
// ══════════════════════════════════════════════════════════════════════════════

// DefaultBaseURL is the production hub endpoint.
const DefaultBaseURL = "https://api.omniscient-hub.com"

// ClientConfig contains configuration for the hub client.
type ClientConfig struct {
	// BaseURL is the hub API base URL.
	BaseURL string

	// APIKey is sent as a bearer token when set.
	APIKey string

	// Timeout is the HTTP request timeout.
	Timeout time.Duration

	// CircuitBreakerConfig for fault tolerance.
	CircuitBreakerConfig circuitbreaker.Config

	// RetryConfig for transient failures.
	RetryConfig retry.Config

	// Logger for structured logging.
	Logger *logger.Logger
}

// DefaultClientConfig returns sensible defaults.
func DefaultClientConfig(baseURL string) ClientConfig {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return ClientConfig{
		BaseURL:              baseURL,
		Timeout:              30 * time.Second,
		CircuitBreakerConfig: circuitbreaker.DefaultConfig("omniscient"),
		RetryConfig:          retry.DefaultConfig(),
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// CLIENT
// ══════════════════════════════════════════════════════════════════════════════

// Client is the Omniscient Hub API client.
type Client struct {
	config     ClientConfig
	httpClient *http.Client
	log        *logger.Logger
	breaker    *circuitbreaker.CircuitBreaker
}

// NewClient creates a new hub client.
func NewClient(config ClientConfig) *Client {
	if config.Logger == nil {
		config.Logger = logger.Default()
	}
	if config.Timeout <= 0 {
		config.Timeout = 30 * time.Second
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		log:     config.Logger.With(logger.Component("omniscient")),
		breaker: circuitbreaker.New(config.CircuitBreakerConfig),
	}
}

// GetLearningRecommendations fetches AI recommendations, falling back to
// the interest-based heuristic when the hub is unavailable.
func (c *Client) GetLearningRecommendations(ctx context.Context, profile *student.Profile, reqContext map[string]interface{}) []Recommendation {
	request := recommendationsRequest{
		StudentProfile: toProfileDTO(profile),
		Context:        reqContext,
		RequestType:    "learning_recommendations",
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
	}

	var response recommendationsResponse
	if err := c.post(ctx, "/ai/learning/recommendations", request, &response); err != nil {
		c.log.Warn("hub unavailable, using fallback recommendations",
			logger.StudentID(profile.ID.String()),
			logger.Err(err),
		)
		return fallbackRecommendations(profile)
	}
	return response.Recommendations
}

// AnalyzeLearningPattern analyzes sessions via the hub, falling back to
// local statistics when unavailable.
func (c *Client) AnalyzeLearningPattern(ctx context.Context, studentID string, sessions []SessionDTO) PatternAnalysis {
	request := analyzeRequest{
		StudentID:    studentID,
		LearningData: sessions,
		AnalysisType: "learning_patterns",
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	}

	var analysis PatternAnalysis
	if err := c.post(ctx, "/ai/learning/analyze", request, &analysis); err != nil {
		c.log.Warn("hub unavailable, using fallback analysis",
			logger.StudentID(studentID),
			logger.Err(err),
		)
		return fallbackAnalysis(sessions)
	}
	return analysis
}

// PredictLearningOutcomes predicts path outcomes via the hub, falling
// back to the skill-level table when unavailable.
func (c *Client) PredictLearningOutcomes(ctx context.Context, profile *student.Profile, path *learning.Path) OutcomePrediction {
	request := predictRequest{
		StudentProfile: toProfileDTO(profile),
		LearningPath: PathDTO{
			Subject:           path.Subject,
			ModuleCount:       len(path.Modules),
			EstimatedDuration: path.EstimatedDuration,
		},
		PredictionType: "learning_outcomes",
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
	}

	var prediction OutcomePrediction
	if err := c.post(ctx, "/ai/learning/predict", request, &prediction); err != nil {
		c.log.Warn("hub unavailable, using fallback prediction",
			logger.StudentID(profile.ID.String()),
			logger.Err(err),
		)
		return fallbackPrediction(profile.SkillLevel, path.EstimatedDuration)
	}
	return prediction
}

// GetPersonalizedContent fetches personalized content, falling back to
// interest-derived introductory courses when unavailable.
func (c *Client) GetPersonalizedContent(ctx context.Context, studentID string, interests []string) []ContentItem {
	request := personalizeRequest{
		StudentID: studentID,
		Preferences: map[string]interface{}{
			"interests": interests,
		},
		ContentType: "educational",
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}

	var response personalizeResponse
	if err := c.post(ctx, "/ai/content/personalize", request, &response); err != nil {
		c.log.Warn("hub unavailable, using fallback content",
			logger.StudentID(studentID),
			logger.Err(err),
		)
		return fallbackContent(interests)
	}
	return response.Content
}

// BreakerStatus exposes the circuit breaker state for health endpoints.
func (c *Client) BreakerStatus() circuitbreaker.Status {
	return c.breaker.Status()
}

// ══════════════════════════════════════════════════════════════════════════════
// TRANSPORT
// ══════════════════════════════════════════════════════════════════════════════

// post sends a JSON request guarded by the circuit breaker and retry
// policy, decoding the response into out.
func (c *Client) post(ctx context.Context, path string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	return c.breaker.Execute(ctx, func(ctx context.Context) error {
		return retry.Do(ctx, c.config.RetryConfig, func(ctx context.Context) error {
			return c.doRequest(ctx, path, body, out)
		})
	})
}

func (c *Client) doRequest(ctx context.Context, path string, body []byte, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return retry.Permanent(fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	if c.config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("hub request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("hub returned %d", resp.StatusCode)
	}
	if resp.StatusCode >= 400 {
		io.Copy(io.Discard, resp.Body)
		return retry.Permanent(fmt.Errorf("hub returned %d", resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return retry.Permanent(fmt.Errorf("decode response: %w", err))
	}
	return nil
}

func toProfileDTO(profile *student.Profile) ProfileDTO {
	return ProfileDTO{
		StudentID:     profile.ID.String(),
		LearningStyle: string(profile.LearningStyle),
		SkillLevel:    string(profile.SkillLevel),
		Interests:     profile.Interests,
		Goals:         profile.Goals,
		Weaknesses:    profile.Weaknesses,
	}
}
