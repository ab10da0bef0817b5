package githubscraper

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cityspark/cityspark-hub/internal/domain/shared"
	"github.com/cityspark/cityspark-hub/pkg/retry"
)

func testScraper(t *testing.T, baseURL string) *Scraper {
	t.Helper()
	config := DefaultConfig()
	config.BaseURL = baseURL
	config.Timeout = 2 * time.Second
	config.RetryConfig = retry.Config{MaxAttempts: 1, InitialDelay: time.Millisecond}
	return NewScraper(config)
}

func fakeGitHub(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /repos/acme/learn-go", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"name":             "learn-go",
			"full_name":        "acme/learn-go",
			"description":      "Go tutorials",
			"language":         "Go",
			"stargazers_count": 1200,
			"forks_count":      340,
			"updated_at":       "2025-03-01T00:00:00Z",
		})
	})
	mux.HandleFunc("GET /repos/acme/learn-go/contents/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]File{
			{Name: "README.md", Path: "README.md", Type: "file"},
			{Name: "tutorial", Path: "tutorial", Type: "dir"},
			{Name: "Makefile", Path: "Makefile", Type: "file"},
		})
	})
	mux.HandleFunc("GET /repos/acme/learn-go/contents/tutorial", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]File{
			{Name: "intro.md", Path: "tutorial/intro.md", Type: "file"},
		})
	})
	mux.HandleFunc("GET /search/repositories", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"items": []SearchResult{
				{Name: "learn-go", FullName: "acme/learn-go", Stars: 1200},
				{Name: "go-course", FullName: "acme/go-course", Stars: 800},
			},
		})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestScrapeRepository(t *testing.T) {
	server := fakeGitHub(t)
	scraper := testScraper(t, server.URL)

	repo, err := scraper.ScrapeRepository(context.Background(), "https://github.com/acme/learn-go")
	require.NoError(t, err)

	assert.Equal(t, "acme_learn-go", repo.ID)
	assert.Equal(t, "acme/learn-go", repo.FullName)
	assert.Equal(t, "Go", repo.Language)
	assert.Equal(t, 1200, repo.Stars)

	// Directory listing is flattened, dirs themselves excluded.
	require.Len(t, repo.Contents, 3)
	assert.Equal(t, "README.md", repo.Contents[0].Name)
	assert.Equal(t, "tutorial/intro.md", repo.Contents[1].Path)
	assert.Equal(t, "Makefile", repo.Contents[2].Name)

	// Makefile is neither an educational extension nor keyword path.
	require.Len(t, repo.EducationalFiles, 2)
	assert.Equal(t, "documentation", repo.EducationalFiles[0].CategorizedAs)
	assert.Equal(t, "tutorial", repo.EducationalFiles[1].CategorizedAs)
}

func TestScrapeRepository_InvalidURL(t *testing.T) {
	scraper := testScraper(t, "http://unused.invalid")

	_, err := scraper.ScrapeRepository(context.Background(), "not-a-repo")
	assert.ErrorIs(t, err, shared.ErrInvalidRepoURL)
}

func TestScrapeRepository_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := testScraper(t, server.URL).ScrapeRepository(context.Background(), "acme/ghost")
	assert.Error(t, err)
}

func TestScrapeRepository_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	_, err := testScraper(t, server.URL).ScrapeRepository(context.Background(), "acme/learn-go")
	assert.ErrorIs(t, err, shared.ErrGitHubRateLimited)
}

func TestEducationalAssets(t *testing.T) {
	server := fakeGitHub(t)
	scraper := testScraper(t, server.URL)

	_, err := scraper.ScrapeRepository(context.Background(), "acme/learn-go")
	require.NoError(t, err)

	assets, err := scraper.EducationalAssets("acme_learn-go")
	require.NoError(t, err)
	assert.Len(t, assets, 2)
}

func TestEducationalAssets_NotScraped(t *testing.T) {
	scraper := testScraper(t, "http://unused.invalid")

	_, err := scraper.EducationalAssets("acme_ghost")
	require.Error(t, err)
	assert.True(t, shared.IsNotFound(err))
}

func TestSearchRepositories(t *testing.T) {
	var gotQuery string
	mux := http.NewServeMux()
	mux.HandleFunc("GET /search/repositories", func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"items": []SearchResult{{Name: "learn-go", Stars: 1200}},
		})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	results, err := testScraper(t, server.URL).SearchRepositories(context.Background(), "golang", true)
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "learn-go", results[0].Name)
	assert.Equal(t, "golang educational tutorial", gotQuery)
}

func TestSearchRepositories_PlainQuery(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		json.NewEncoder(w).Encode(map[string]interface{}{"items": []SearchResult{}})
	}))
	defer server.Close()

	_, err := testScraper(t, server.URL).SearchRepositories(context.Background(), "golang", false)
	require.NoError(t, err)
	assert.Equal(t, "golang", gotQuery)
}

func TestScraper_SendsAuthToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]interface{}{"items": []SearchResult{}})
	}))
	defer server.Close()

	config := DefaultConfig()
	config.BaseURL = server.URL
	config.APIToken = "gh-token"
	config.RetryConfig = retry.Config{MaxAttempts: 1, InitialDelay: time.Millisecond}

	_, err := NewScraper(config).SearchRepositories(context.Background(), "golang", false)
	require.NoError(t, err)
	assert.Equal(t, "token gh-token", gotAuth)
}
