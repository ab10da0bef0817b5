package omniscient

import (
	"time"
)

// ══════════════════════════════════════════════════════════════════════════════
// REQUEST DTOs
// ══════════════════════════════════════════════════════════════════════════════

// ProfileDTO is the wire representation of a student profile.
type ProfileDTO struct {
	StudentID     string   `json:"student_id"`
	LearningStyle string   `json:"learning_style"`
	SkillLevel    string   `json:"skill_level"`
	Interests     []string `json:"interests"`
	Goals         []string `json:"goals"`
	Weaknesses    []string `json:"weaknesses"`
}

// PathDTO is the wire representation of a learning path.
type PathDTO struct {
	Subject           string `json:"subject"`
	ModuleCount       int    `json:"module_count"`
	EstimatedDuration int    `json:"estimated_duration"`
}

// SessionDTO is one learning session used for pattern analysis.
type SessionDTO struct {
	Timestamp   time.Time `json:"timestamp"`
	Duration    float64   `json:"duration"` // minutes
	ContentType string    `json:"content_type"`
}

type recommendationsRequest struct {
	StudentProfile ProfileDTO             `json:"student_profile"`
	Context        map[string]interface{} `json:"context"`
	RequestType    string                 `json:"request_type"`
	Timestamp      string                 `json:"timestamp"`
}

type analyzeRequest struct {
	StudentID    string       `json:"student_id"`
	LearningData []SessionDTO `json:"learning_data"`
	AnalysisType string       `json:"analysis_type"`
	Timestamp    string       `json:"timestamp"`
}

type predictRequest struct {
	StudentProfile ProfileDTO `json:"student_profile"`
	LearningPath   PathDTO    `json:"learning_path"`
	PredictionType string     `json:"prediction_type"`
	Timestamp      string     `json:"timestamp"`
}

type personalizeRequest struct {
	StudentID   string                 `json:"student_id"`
	Preferences map[string]interface{} `json:"preferences"`
	ContentType string                 `json:"content_type"`
	Timestamp   string                 `json:"timestamp"`
}

// ══════════════════════════════════════════════════════════════════════════════
// RESPONSE DTOs
// ══════════════════════════════════════════════════════════════════════════════

// Recommendation is an AI-powered learning recommendation. Source is
// "fallback" when the hub was unreachable and the local heuristic
// produced the result.
type Recommendation struct {
	Type              string  `json:"type"`
	Title             string  `json:"title"`
	Description       string  `json:"description"`
	Difficulty        string  `json:"difficulty,omitempty"`
	EstimatedDuration string  `json:"estimated_duration,omitempty"`
	ConfidenceScore   float64 `json:"confidence_score,omitempty"`
	Source            string  `json:"source,omitempty"`
}

type recommendationsResponse struct {
	Recommendations []Recommendation `json:"recommendations"`
}

// PatternAnalysis summarizes a student's learning sessions.
type PatternAnalysis struct {
	Status               string  `json:"status,omitempty"`
	TotalSessions        int     `json:"total_sessions,omitempty"`
	AverageSessionLength float64 `json:"average_session_length,omitempty"`
	MostActiveHour       int     `json:"most_active_hour,omitempty"`
	LearningStyle        string  `json:"learning_style,omitempty"`
	ConfidenceLevel      float64 `json:"confidence_level,omitempty"`
	Source               string  `json:"source,omitempty"`
}

// OutcomePrediction estimates path completion from the hub's models.
type OutcomePrediction struct {
	CompletionProbability   float64  `json:"completion_probability"`
	ExpectedMastery         float64  `json:"expected_mastery"`
	EstimatedCompletionTime float64  `json:"estimated_completion_time"`
	RiskFactors             []string `json:"risk_factors"`
	SuccessFactors          []string `json:"success_factors"`
	ConfidenceLevel         float64  `json:"confidence_level,omitempty"`
	Source                  string   `json:"source,omitempty"`
}

// ContentItem is a personalized content suggestion.
type ContentItem struct {
	Type           string  `json:"type"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	Difficulty     string  `json:"difficulty,omitempty"`
	Rating         float64 `json:"rating,omitempty"`
	RelevanceScore float64 `json:"relevance_score,omitempty"`
	Source         string  `json:"source,omitempty"`
}

type personalizeResponse struct {
	Content []ContentItem `json:"content"`
}
