package githubscraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterEducational(t *testing.T) {
	files := []File{
		{Name: "README.md", Path: "README.md", Type: "file"},
		{Name: "main.py", Path: "src/main.py", Type: "file"},
		{Name: "binary.exe", Path: "bin/binary.exe", Type: "file"},
		{Name: "lesson.rst", Path: "tutorial/lesson.rst", Type: "file"},
		{Name: "docs", Path: "docs", Type: "dir"},
	}

	educational := FilterEducational(files)

	require.Len(t, educational, 3)
	assert.Equal(t, "README.md", educational[0].Name)
	assert.Equal(t, "main.py", educational[1].Name)
	// Matched by the tutorial path keyword despite the extension.
	assert.Equal(t, "lesson.rst", educational[2].Name)
}

func TestRelevance(t *testing.T) {
	tests := []struct {
		name string
		file File
		want float64
	}{
		{"plain file", File{Name: "notes.md", Path: "notes.md"}, 0.5},
		{"tutorial path", File{Name: "intro.md", Path: "tutorial/intro.md"}, 0.8},
		{"example path", File{Name: "usage.py", Path: "examples/usage.py"}, 0.7},
		{"readme", File{Name: "README.md", Path: "README.md"}, 0.7},
		{"guide readme", File{Name: "readme.txt", Path: "guide/readme.txt"}, 1.0},
		{"everything clamps at one", File{Name: "readme.md", Path: "learn/examples/readme.md"}, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Relevance(tt.file), 1e-9)
		})
	}
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		name string
		file File
		want string
	}{
		{"readme wins over tutorial path", File{Name: "README.md", Path: "tutorial/README.md"}, "documentation"},
		{"tutorial wins over example", File{Name: "intro.py", Path: "tutorial/examples/intro.py"}, "tutorial"},
		{"example", File{Name: "usage.py", Path: "examples/usage.py"}, "example"},
		{"code", File{Name: "app.js", Path: "src/app.js"}, "code"},
		{"markdown docs", File{Name: "notes.md", Path: "notes.md"}, "documentation"},
		{"fallback", File{Name: "data.pdf", Path: "data.pdf"}, "resource"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Categorize(tt.file))
		})
	}
}

func TestParseRepoURL(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantOwner string
		wantRepo  string
		wantErr   bool
	}{
		{"full https url", "https://github.com/golang/go", "golang", "go", false},
		{"trailing slash", "https://github.com/golang/go/", "golang", "go", false},
		{"shorthand", "golang/go", "golang", "go", false},
		{"single segment", "golang", "", "", true},
		{"empty", "", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, repo, err := ParseRepoURL(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOwner, owner)
			assert.Equal(t, tt.wantRepo, repo)
		})
	}
}
