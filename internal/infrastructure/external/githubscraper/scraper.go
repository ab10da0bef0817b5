// Package githubscraper scrapes GitHub repositories for educational
// content via the GitHub REST API. Filtering, relevance scoring, and
// categorization are pure functions over fetched file listings.
package githubscraper

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cityspark/cityspark-hub/internal/domain/shared"
	"github.com/cityspark/cityspark-hub/pkg/circuitbreaker"
	"github.com/cityspark/cityspark-hub/pkg/logger"
	"github.com/cityspark/cityspark-hub/pkg/retry"
	"github.com/cityspark/cityspark-hub/pkg/timeutil"
)

// ══════════════════════════════════════════════════════════════════════════════
// TYPES
// ══════════════════════════════════════════════════════════════════════════════

// File is one file entry from a repository listing.
type File struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	Type        string `json:"type"`
	Size        int64  `json:"size"`
	DownloadURL string `json:"download_url,omitempty"`
	HTMLURL     string `json:"html_url,omitempty"`
}

// EducationalFile is a file annotated with relevance and category.
type EducationalFile struct {
	File
	EducationalRelevance float64 `json:"educational_relevance"`
	CategorizedAs        string  `json:"categorized_as"`
}

// Repository is a scraped repository with its educational files.
type Repository struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	FullName         string            `json:"full_name"`
	Description      string            `json:"description"`
	Language         string            `json:"language"`
	Stars            int               `json:"stars"`
	Forks            int               `json:"forks"`
	UpdatedAt        string            `json:"updated_at"`
	Contents         []File            `json:"contents"`
	EducationalFiles []EducationalFile `json:"educational_files"`
	ScrapedAt        time.Time         `json:"scraped_at"`
}

// SearchResult is one repository from a search response.
type SearchResult struct {
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	Description string `json:"description"`
	Language    string `json:"language"`
	Stars       int    `json:"stargazers_count"`
	HTMLURL     string `json:"html_url"`
}

// ══════════════════════════════════════════════════════════════════════════════
// CONFIGURATION
// ══════════════════════════════════════════════════════════════════════════════

// DefaultBaseURL is the GitHub REST API endpoint.
const DefaultBaseURL = "https://api.github.com"

// Config contains scraper configuration.
type Config struct {
	// BaseURL is the GitHub API base URL.
	BaseURL string

	// APIToken authenticates requests when set, raising rate limits.
	APIToken string

	// Timeout is the HTTP request timeout.
	Timeout time.Duration

	// MaxDepth bounds the recursive content listing.
	MaxDepth int

	// CircuitBreakerConfig for fault tolerance.
	CircuitBreakerConfig circuitbreaker.Config

	// RetryConfig for transient failures.
	RetryConfig retry.Config

	// Logger for structured logging.
	Logger *logger.Logger
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL:              DefaultBaseURL,
		Timeout:              30 * time.Second,
		MaxDepth:             5,
		CircuitBreakerConfig: circuitbreaker.DefaultConfig("github"),
		RetryConfig:          retry.DefaultConfig(),
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// SCRAPER
// ══════════════════════════════════════════════════════════════════════════════

// Scraper fetches and annotates repository content.
type Scraper struct {
	config     Config
	httpClient *http.Client
	log        *logger.Logger
	breaker    *circuitbreaker.CircuitBreaker

	mu           sync.RWMutex
	repositories map[string]*Repository
}

// NewScraper creates a scraper with the given configuration.
func NewScraper(config Config) *Scraper {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.Timeout <= 0 {
		config.Timeout = 30 * time.Second
	}
	if config.MaxDepth <= 0 {
		config.MaxDepth = 5
	}
	if config.Logger == nil {
		config.Logger = logger.Default()
	}

	return &Scraper{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		log:          config.Logger.With(logger.Component("github_scraper")),
		breaker:      circuitbreaker.New(config.CircuitBreakerConfig),
		repositories: make(map[string]*Repository),
	}
}

// ParseRepoURL extracts owner and repo from a repository URL or
// "owner/repo" shorthand.
func ParseRepoURL(repoURL string) (owner, repo string, err error) {
	parts := strings.Split(strings.Trim(repoURL, "/"), "/")
	if len(parts) < 2 {
		return "", "", shared.ErrInvalidRepoURL
	}
	owner, repo = parts[len(parts)-2], parts[len(parts)-1]
	if owner == "" || repo == "" {
		return "", "", shared.ErrInvalidRepoURL
	}
	return owner, repo, nil
}

// ScrapeRepository fetches repository metadata and contents, annotating
// educational files. The result is cached by repository ID.
func (s *Scraper) ScrapeRepository(ctx context.Context, repoURL string) (*Repository, error) {
	owner, repo, err := ParseRepoURL(repoURL)
	if err != nil {
		return nil, err
	}

	var meta struct {
		Name            string `json:"name"`
		FullName        string `json:"full_name"`
		Description     string `json:"description"`
		Language        string `json:"language"`
		StargazersCount int    `json:"stargazers_count"`
		ForksCount      int    `json:"forks_count"`
		UpdatedAt       string `json:"updated_at"`
	}
	if err := s.get(ctx, fmt.Sprintf("/repos/%s/%s", owner, repo), nil, &meta); err != nil {
		return nil, err
	}

	contents, err := s.fetchContents(ctx, owner, repo, "", 0)
	if err != nil {
		return nil, err
	}

	name := meta.Name
	if name == "" {
		name = repo
	}
	fullName := meta.FullName
	if fullName == "" {
		fullName = owner + "/" + repo
	}

	scraped := &Repository{
		ID:               fmt.Sprintf("%s_%s", owner, repo),
		Name:             name,
		FullName:         fullName,
		Description:      meta.Description,
		Language:         meta.Language,
		Stars:            meta.StargazersCount,
		Forks:            meta.ForksCount,
		UpdatedAt:        meta.UpdatedAt,
		Contents:         contents,
		EducationalFiles: FilterEducational(contents),
		ScrapedAt:        timeutil.Now(),
	}

	s.mu.Lock()
	s.repositories[scraped.ID] = scraped
	s.mu.Unlock()

	s.log.Info("scraped repository",
		logger.String("repo", scraped.FullName),
		logger.Int("files", len(scraped.Contents)),
		logger.Int("educational", len(scraped.EducationalFiles)),
	)
	return scraped, nil
}

// EducationalAssets returns the educational files of a scraped repository.
func (s *Scraper) EducationalAssets(repoID string) ([]EducationalFile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	repo, ok := s.repositories[repoID]
	if !ok {
		return nil, shared.WrapError("github", "EducationalAssets", shared.ErrNotFound,
			fmt.Sprintf("repository %s not scraped", repoID), nil)
	}
	return repo.EducationalFiles, nil
}

// SearchRepositories searches GitHub, optionally biasing the query toward
// educational content, sorted by stars descending.
func (s *Scraper) SearchRepositories(ctx context.Context, query string, educational bool) ([]SearchResult, error) {
	searchQuery := query
	if educational {
		searchQuery += " educational tutorial"
	}

	params := url.Values{
		"q":        {searchQuery},
		"sort":     {"stars"},
		"order":    {"desc"},
		"per_page": {strconv.Itoa(20)},
	}

	var response struct {
		Items []SearchResult `json:"items"`
	}
	if err := s.get(ctx, "/search/repositories", params, &response); err != nil {
		return nil, err
	}
	return response.Items, nil
}

// fetchContents lists files recursively up to MaxDepth.
func (s *Scraper) fetchContents(ctx context.Context, owner, repo, path string, depth int) ([]File, error) {
	if depth > s.config.MaxDepth {
		return nil, nil
	}

	var listing []File
	endpoint := fmt.Sprintf("/repos/%s/%s/contents/%s", owner, repo, path)
	if err := s.get(ctx, endpoint, nil, &listing); err != nil {
		return nil, err
	}

	var files []File
	for _, item := range listing {
		switch item.Type {
		case "file":
			files = append(files, item)
		case "dir":
			sub, err := s.fetchContents(ctx, owner, repo, item.Path, depth+1)
			if err != nil {
				return nil, err
			}
			files = append(files, sub...)
		}
	}
	return files, nil
}

// get performs a GET guarded by the circuit breaker and retry policy.
func (s *Scraper) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	return s.breaker.Execute(ctx, func(ctx context.Context) error {
		return retry.Do(ctx, s.config.RetryConfig, func(ctx context.Context) error {
			return s.doRequest(ctx, path, params, out)
		})
	})
}

func (s *Scraper) doRequest(ctx context.Context, path string, params url.Values, out interface{}) error {
	endpoint := s.config.BaseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return retry.Permanent(fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if s.config.APIToken != "" {
		req.Header.Set("Authorization", "token "+s.config.APIToken)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("github request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusTooManyRequests:
		io.Copy(io.Discard, resp.Body)
		return retry.Permanent(shared.ErrGitHubRateLimited)
	case resp.StatusCode >= 500:
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("github returned %d", resp.StatusCode)
	case resp.StatusCode >= 400:
		io.Copy(io.Discard, resp.Body)
		return retry.Permanent(fmt.Errorf("github returned %d", resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return retry.Permanent(fmt.Errorf("decode response: %w", err))
	}
	return nil
}
