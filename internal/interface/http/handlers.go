// Package http implements the REST API for CitySpark Hub.
package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cityspark/cityspark-hub/internal/application/command"
	"github.com/cityspark/cityspark-hub/internal/application/query"
	"github.com/cityspark/cityspark-hub/internal/domain/assessment"
	"github.com/cityspark/cityspark-hub/internal/domain/learning"
	"github.com/cityspark/cityspark-hub/internal/domain/shared"
	"github.com/cityspark/cityspark-hub/internal/infrastructure/external/omniscient"
	"github.com/cityspark/cityspark-hub/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// ERROR MAPPING
// ══════════════════════════════════════════════════════════════════════════════

// writeDomainError maps a domain error to an HTTP status. NotFound is 404,
// validation 400, everything else 500.
func (s *Server) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case shared.IsNotFound(err):
		writeJSONError(w, http.StatusNotFound, "not_found", err.Error())
	case shared.IsValidation(err):
		writeJSONError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		s.logger.Error("request failed",
			logger.Err(err),
			logger.String("path", r.URL.Path),
			logger.String("request_id", getRequestID(r.Context())),
		)
		writeJSONError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
	}
}

// decodeBody decodes a JSON request body, answering 400 itself on failure.
func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_body", "Request body must be valid JSON")
		return false
	}
	return true
}

// ══════════════════════════════════════════════════════════════════════════════
// HEALTH & STATUS HANDLERS
// ══════════════════════════════════════════════════════════════════════════════

// handleRoot serves the root endpoint with basic API information.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	info := map[string]interface{}{
		"name":        "CitySpark Hub API",
		"version":     "v1",
		"description": "Personalized learning and urban art platform",
		"endpoints": map[string]string{
			"health":          "/health",
			"profiles":        "/api/v1/learning/profiles",
			"recommendations": "/api/v1/learning/recommendations/{id}",
			"gallery":         "/api/v1/art/gallery",
			"popular":         "/api/v1/art/popular",
			"analytics":       "/api/v1/analytics/events",
			"courses":         "/api/v1/courses",
		},
	}

	writeJSON(w, http.StatusOK, info)
}

// handleHealth handles the health check endpoint.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.deps.HealthChecker != nil {
		status := s.deps.HealthChecker.Check(r.Context())
		if !status.Healthy {
			writeJSON(w, http.StatusServiceUnavailable, status)
			return
		}
		writeJSON(w, http.StatusOK, status)
		return
	}

	// Default health response
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"uptime":  s.Uptime().String(),
		"version": "v1",
	})
}

// handleReady handles the readiness probe endpoint (for Kubernetes).
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if s.deps.HealthChecker != nil {
		status := s.deps.HealthChecker.Check(r.Context())
		if !status.Ready {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not_ready",
				"reason": status.Message,
			})
			return
		}
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// handleLive handles the liveness probe endpoint (for Kubernetes).
func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "alive"})
}

// handleMetrics exposes basic server metrics.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	metrics := map[string]interface{}{
		"uptime_seconds": s.Uptime().Seconds(),
		"running":        s.IsRunning(),
	}

	writeJSON(w, http.StatusOK, metrics)
}

// ══════════════════════════════════════════════════════════════════════════════
// LEARNING HANDLERS
// ══════════════════════════════════════════════════════════════════════════════

// handleCreateProfile handles POST /api/v1/learning/profiles
func (s *Server) handleCreateProfile(w http.ResponseWriter, r *http.Request) {
	var body struct {
		StudentID     string   `json:"student_id"`
		LearningStyle string   `json:"learning_style"`
		SkillLevel    string   `json:"skill_level"`
		Interests     []string `json:"interests"`
		Goals         []string `json:"goals"`
		Strengths     []string `json:"strengths"`
		Weaknesses    []string `json:"weaknesses"`
	}
	if !s.decodeBody(w, r, &body) {
		return
	}

	profile, err := s.deps.CreateProfileHandler.Execute(r.Context(), command.CreateProfileCommand{
		StudentID:     body.StudentID,
		LearningStyle: body.LearningStyle,
		SkillLevel:    body.SkillLevel,
		Interests:     body.Interests,
		Goals:         body.Goals,
		Strengths:     body.Strengths,
		Weaknesses:    body.Weaknesses,
	})
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, profile)
}

// handleGetProfile handles GET /api/v1/learning/profiles/{id}
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := s.deps.GetProfileHandler.Execute(r.Context(), query.GetProfileQuery{
		StudentID: r.PathValue("id"),
	})
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// handleAnalyzePerformance handles POST /api/v1/learning/performance
func (s *Server) handleAnalyzePerformance(w http.ResponseWriter, r *http.Request) {
	var body struct {
		StudentID      string  `json:"student_id"`
		Subject        string  `json:"subject"`
		Score          float64 `json:"score"`
		TimeSpent      int     `json:"time_spent"`
		CompletionRate float64 `json:"completion_rate"`
		Difficulty     string  `json:"difficulty"`
	}
	if !s.decodeBody(w, r, &body) {
		return
	}

	record, err := s.deps.AnalyzePerformanceHandler.Execute(r.Context(), command.AnalyzePerformanceCommand{
		StudentID:      body.StudentID,
		Subject:        body.Subject,
		Score:          body.Score,
		TimeSpent:      body.TimeSpent,
		CompletionRate: body.CompletionRate,
		Difficulty:     body.Difficulty,
	})
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, record)
}

// handleGeneratePath handles POST /api/v1/learning/paths
func (s *Server) handleGeneratePath(w http.ResponseWriter, r *http.Request) {
	var body struct {
		StudentID string   `json:"student_id"`
		Subject   string   `json:"subject"`
		Goals     []string `json:"goals"`
	}
	if !s.decodeBody(w, r, &body) {
		return
	}

	path, err := s.deps.GeneratePathHandler.Execute(r.Context(), command.GeneratePathCommand{
		StudentID: body.StudentID,
		Subject:   body.Subject,
		Goals:     body.Goals,
	})
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, path)
}

// handleGetRecommendations handles GET /api/v1/learning/recommendations/{id}
func (s *Server) handleGetRecommendations(w http.ResponseWriter, r *http.Request) {
	recommendations, err := s.deps.GetRecommendationsHandler.Execute(r.Context(), query.GetRecommendationsQuery{
		StudentID: r.PathValue("id"),
		Context:   learning.Context{"subject": getQueryParam(r, "subject", "")},
	})
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	writeJSONWithMeta(w, r, http.StatusOK, recommendations, &ResponseMeta{
		TotalCount: len(recommendations),
	})
}

// handlePredictOutcomes handles POST /api/v1/learning/predict
func (s *Server) handlePredictOutcomes(w http.ResponseWriter, r *http.Request) {
	var body struct {
		StudentID string `json:"student_id"`
		Subject   string `json:"subject"`
	}
	if !s.decodeBody(w, r, &body) {
		return
	}

	prediction, err := s.deps.PredictOutcomesHandler.Execute(r.Context(), query.PredictOutcomesQuery{
		StudentID: body.StudentID,
		Subject:   body.Subject,
	})
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, prediction)
}

// ══════════════════════════════════════════════════════════════════════════════
// ART GALLERY HANDLERS
// ══════════════════════════════════════════════════════════════════════════════

// handleGenerateArt handles POST /api/v1/art/generate
func (s *Server) handleGenerateArt(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Prompt string `json:"prompt"`
		Style  string `json:"style"`
		UserID string `json:"user_id"`
	}
	if !s.decodeBody(w, r, &body) {
		return
	}

	piece, err := s.deps.GenerateArtHandler.Execute(r.Context(), command.GenerateArtCommand{
		Prompt: body.Prompt,
		Style:  body.Style,
		UserID: body.UserID,
	})
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, piece)
}

// handleListGallery handles GET /api/v1/art/gallery
func (s *Server) handleListGallery(w http.ResponseWriter, r *http.Request) {
	q := query.ListGalleryQuery{
		Style: getQueryParam(r, "style", ""),
		Owner: getQueryParam(r, "user_id", ""),
	}
	if tags := r.URL.Query()["tag"]; len(tags) > 0 {
		q.Tags = tags
	}
	if featured := r.URL.Query().Get("featured"); featured != "" {
		value := featured == "true" || featured == "1"
		q.Featured = &value
	}

	pieces, err := s.deps.GalleryHandler.List(r.Context(), q)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	writeJSONWithMeta(w, r, http.StatusOK, pieces, &ResponseMeta{
		TotalCount: len(pieces),
	})
}

// handlePopularArt handles GET /api/v1/art/popular
func (s *Server) handlePopularArt(w http.ResponseWriter, r *http.Request) {
	limit := getQueryParamInt(r, "limit", 10)

	pieces, err := s.deps.GalleryHandler.Popular(r.Context(), limit)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	writeJSONWithMeta(w, r, http.StatusOK, pieces, &ResponseMeta{
		TotalCount: len(pieces),
	})
}

// handleStylePresets handles GET /api/v1/art/styles
func (s *Server) handleStylePresets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.deps.GalleryHandler.Presets())
}

// handleSuggestStyles handles GET /api/v1/art/styles/suggest
func (s *Server) handleSuggestStyles(w http.ResponseWriter, r *http.Request) {
	prompt := getQueryParam(r, "prompt", "")
	if prompt == "" {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "prompt query parameter is required")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"prompt":      prompt,
		"suggestions": s.deps.GalleryHandler.SuggestStyles(prompt),
	})
}

// handleGetArt handles GET /api/v1/art/{id}
func (s *Server) handleGetArt(w http.ResponseWriter, r *http.Request) {
	piece, err := s.deps.GalleryHandler.Get(r.Context(), query.GetArtQuery{ArtID: r.PathValue("id")})
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, piece)
}

// handleUpdateArt handles PUT /api/v1/art/{id}. A missing piece answers
// 200 with null data rather than 404.
func (s *Server) handleUpdateArt(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Title       *string  `json:"title"`
		Description *string  `json:"description"`
		Tags        []string `json:"tags"`
	}
	if !s.decodeBody(w, r, &body) {
		return
	}

	piece, err := s.deps.CurateArtHandler.Update(r.Context(), command.UpdateArtCommand{
		ArtID:       r.PathValue("id"),
		Title:       body.Title,
		Description: body.Description,
		Tags:        body.Tags,
	})
	if err != nil {
		if errors.Is(err, shared.ErrArtNotFound) {
			writeJSON(w, http.StatusOK, nil)
			return
		}
		s.writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, piece)
}

// handleLikeArt handles POST /api/v1/art/{id}/like
func (s *Server) handleLikeArt(w http.ResponseWriter, r *http.Request) {
	piece, err := s.deps.EngageArtHandler.Like(r.Context(), command.EngageArtCommand{
		ArtID:  r.PathValue("id"),
		UserID: getQueryParam(r, "user_id", ""),
	})
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, piece)
}

// handleViewArt handles POST /api/v1/art/{id}/view
func (s *Server) handleViewArt(w http.ResponseWriter, r *http.Request) {
	piece, err := s.deps.EngageArtHandler.View(r.Context(), command.EngageArtCommand{
		ArtID:  r.PathValue("id"),
		UserID: getQueryParam(r, "user_id", ""),
	})
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, piece)
}

// handleFeatureArt handles POST /api/v1/art/{id}/feature. Like update,
// a missing piece answers 200 with null data.
func (s *Server) handleFeatureArt(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Featured *bool `json:"featured"`
	}
	if !s.decodeBody(w, r, &body) {
		return
	}

	featured := true
	if body.Featured != nil {
		featured = *body.Featured
	}

	piece, err := s.deps.CurateArtHandler.Feature(r.Context(), command.FeatureArtCommand{
		ArtID:    r.PathValue("id"),
		Featured: featured,
	})
	if err != nil {
		if errors.Is(err, shared.ErrArtNotFound) {
			writeJSON(w, http.StatusOK, nil)
			return
		}
		s.writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, piece)
}

// handleCreateCollection handles POST /api/v1/art/collections
func (s *Server) handleCreateCollection(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name        string   `json:"name"`
		Description string   `json:"description"`
		ArtIDs      []string `json:"art_ids"`
		UserID      string   `json:"user_id"`
	}
	if !s.decodeBody(w, r, &body) {
		return
	}

	collection, err := s.deps.CreateCollectionHandler.Execute(r.Context(), command.CreateCollectionCommand{
		Name:        body.Name,
		Description: body.Description,
		ArtIDs:      body.ArtIDs,
		UserID:      body.UserID,
	})
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, collection)
}

// handleListCollections handles GET /api/v1/art/collections
func (s *Server) handleListCollections(w http.ResponseWriter, r *http.Request) {
	collections, err := s.deps.GalleryHandler.Collections(r.Context())
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	writeJSONWithMeta(w, r, http.StatusOK, collections, &ResponseMeta{
		TotalCount: len(collections),
	})
}

// ══════════════════════════════════════════════════════════════════════════════
// ANALYTICS HANDLERS
// ══════════════════════════════════════════════════════════════════════════════

// handleTrackEvent handles POST /api/v1/analytics/events
func (s *Server) handleTrackEvent(w http.ResponseWriter, r *http.Request) {
	var body struct {
		EventType string                 `json:"event_type"`
		UserID    string                 `json:"user_id"`
		Data      map[string]interface{} `json:"data"`
	}
	if !s.decodeBody(w, r, &body) {
		return
	}

	event, err := s.deps.TrackEventHandler.Execute(r.Context(), command.TrackEventCommand{
		EventType: body.EventType,
		UserID:    body.UserID,
		Data:      body.Data,
	})
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, event)
}

// handleUserMetrics handles GET /api/v1/analytics/users/{id}/metrics
func (s *Server) handleUserMetrics(w http.ResponseWriter, r *http.Request) {
	metrics, err := s.deps.UserAnalyticsHandler.Metrics(r.Context(), query.UserMetricsQuery{
		UserID: r.PathValue("id"),
		Days:   getQueryParamInt(r, "days", 0),
	})
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, metrics)
}

// handleUserInsights handles GET /api/v1/analytics/users/{id}/insights
func (s *Server) handleUserInsights(w http.ResponseWriter, r *http.Request) {
	insights, err := s.deps.UserAnalyticsHandler.Insights(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	writeJSONWithMeta(w, r, http.StatusOK, insights, &ResponseMeta{
		TotalCount: len(insights),
	})
}

// ══════════════════════════════════════════════════════════════════════════════
// ASSESSMENT & COURSE HANDLERS
// ══════════════════════════════════════════════════════════════════════════════

// handleCreateAssessment handles POST /api/v1/assessments
func (s *Server) handleCreateAssessment(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ID           string                `json:"id"`
		Title        string                `json:"title"`
		Type         string                `json:"type"`
		CourseID     string                `json:"course_id"`
		Questions    []assessment.Question `json:"questions"`
		TimeLimit    int                   `json:"time_limit"`
		MaxScore     float64               `json:"max_score"`
		PassingScore float64               `json:"passing_score"`
	}
	if !s.decodeBody(w, r, &body) {
		return
	}

	created, err := s.deps.CreateAssessmentHandler.Execute(r.Context(), command.CreateAssessmentCommand{
		ID:           body.ID,
		Title:        body.Title,
		Type:         body.Type,
		CourseID:     body.CourseID,
		Questions:    body.Questions,
		TimeLimit:    body.TimeLimit,
		MaxScore:     body.MaxScore,
		PassingScore: body.PassingScore,
	})
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// handleEvaluateSubmission handles POST /api/v1/assessments/{id}/submissions
func (s *Server) handleEvaluateSubmission(w http.ResponseWriter, r *http.Request) {
	var body struct {
		StudentID string            `json:"student_id"`
		Answers   map[string]string `json:"answers"`
	}
	if !s.decodeBody(w, r, &body) {
		return
	}

	result, err := s.deps.EvaluateSubmissionHandler.Execute(r.Context(), command.EvaluateSubmissionCommand{
		AssessmentID: r.PathValue("id"),
		StudentID:    body.StudentID,
		Answers:      body.Answers,
	})
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// handleCreateCourse handles POST /api/v1/courses
func (s *Server) handleCreateCourse(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ID            string   `json:"id"`
		Title         string   `json:"title"`
		Description   string   `json:"description"`
		Subject       string   `json:"subject"`
		Difficulty    string   `json:"difficulty"`
		Duration      int      `json:"duration"`
		Modules       []string `json:"modules"`
		Objectives    []string `json:"objectives"`
		Prerequisites []string `json:"prerequisites"`
	}
	if !s.decodeBody(w, r, &body) {
		return
	}

	course, err := s.deps.CreateCourseHandler.Execute(r.Context(), command.CreateCourseCommand{
		ID:            body.ID,
		Title:         body.Title,
		Description:   body.Description,
		Subject:       body.Subject,
		Difficulty:    body.Difficulty,
		Duration:      body.Duration,
		Modules:       body.Modules,
		Objectives:    body.Objectives,
		Prerequisites: body.Prerequisites,
	})
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, course)
}

// handleListCourses handles GET /api/v1/courses
func (s *Server) handleListCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := s.deps.CoursesHandler.List(r.Context(), query.ListCoursesQuery{
		Subject:    getQueryParam(r, "subject", ""),
		Difficulty: getQueryParam(r, "difficulty", ""),
	})
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	writeJSONWithMeta(w, r, http.StatusOK, courses, &ResponseMeta{
		TotalCount: len(courses),
	})
}

// handleGetCourse handles GET /api/v1/courses/{id}
func (s *Server) handleGetCourse(w http.ResponseWriter, r *http.Request) {
	course, err := s.deps.CoursesHandler.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, course)
}

// ══════════════════════════════════════════════════════════════════════════════
// OMNISCIENT HUB HANDLERS
// ══════════════════════════════════════════════════════════════════════════════

// handleAnalyzePattern handles POST /api/v1/learning/patterns. The hub
// client degrades to a local fallback, so this never answers 5xx for
// upstream failures.
func (s *Server) handleAnalyzePattern(w http.ResponseWriter, r *http.Request) {
	var body struct {
		StudentID string                  `json:"student_id"`
		Sessions  []omniscient.SessionDTO `json:"sessions"`
	}
	if !s.decodeBody(w, r, &body) {
		return
	}
	if body.StudentID == "" {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "student_id is required")
		return
	}

	analysis := s.deps.Omniscient.AnalyzeLearningPattern(r.Context(), body.StudentID, body.Sessions)
	writeJSON(w, http.StatusOK, analysis)
}

// handlePersonalizedContent handles GET /api/v1/learning/content/{id}
func (s *Server) handlePersonalizedContent(w http.ResponseWriter, r *http.Request) {
	studentID := r.PathValue("id")
	interests := r.URL.Query()["interest"]

	content := s.deps.Omniscient.GetPersonalizedContent(r.Context(), studentID, interests)
	writeJSONWithMeta(w, r, http.StatusOK, content, &ResponseMeta{
		TotalCount: len(content),
	})
}

// ══════════════════════════════════════════════════════════════════════════════
// EDUCATIONAL CONTENT HANDLERS
// ══════════════════════════════════════════════════════════════════════════════

// handleScrapeRepository handles POST /api/v1/content/scrape
func (s *Server) handleScrapeRepository(w http.ResponseWriter, r *http.Request) {
	var body struct {
		RepoURL string `json:"repo_url"`
	}
	if !s.decodeBody(w, r, &body) {
		return
	}
	if body.RepoURL == "" {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "repo_url is required")
		return
	}

	repo, err := s.deps.Scraper.ScrapeRepository(r.Context(), body.RepoURL)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, repo)
}

// handleSearchRepositories handles GET /api/v1/content/search
func (s *Server) handleSearchRepositories(w http.ResponseWriter, r *http.Request) {
	q := getQueryParam(r, "q", "")
	if q == "" {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "q query parameter is required")
		return
	}

	educational := true
	if v := r.URL.Query().Get("educational"); v != "" {
		educational = v == "true" || v == "1"
	}

	results, err := s.deps.Scraper.SearchRepositories(r.Context(), q, educational)
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	writeJSONWithMeta(w, r, http.StatusOK, results, &ResponseMeta{
		TotalCount: len(results),
	})
}

// handleEducationalAssets handles GET /api/v1/content/repos/{id}/educational
func (s *Server) handleEducationalAssets(w http.ResponseWriter, r *http.Request) {
	files, err := s.deps.Scraper.EducationalAssets(r.PathValue("id"))
	if err != nil {
		s.writeDomainError(w, r, err)
		return
	}

	writeJSONWithMeta(w, r, http.StatusOK, files, &ResponseMeta{
		TotalCount: len(files),
	})
}
