package githubscraper

import (
	"strings"
)

// ══════════════════════════════════════════════════════════════════════════════
// EDUCATIONAL CONTENT FILTERING
// ══════════════════════════════════════════════════════════════════════════════

var educationalExtensions = []string{
	".md", ".txt", ".py", ".js", ".html", ".css",
	".ipynb", ".pdf", ".doc", ".docx",
}

var educationalKeywords = []string{
	"tutorial", "guide", "learn", "education", "course",
	"example", "demo", "documentation", "readme",
}

// FilterEducational selects files that look educational by extension or
// path keyword, annotating each with relevance and category.
func FilterEducational(files []File) []EducationalFile {
	var educational []EducationalFile
	for _, file := range files {
		if file.Type != "file" {
			continue
		}

		name := strings.ToLower(file.Name)
		path := strings.ToLower(file.Path)

		if !hasEducationalExtension(name) && !hasEducationalKeyword(path) {
			continue
		}

		educational = append(educational, EducationalFile{
			File:                 file,
			EducationalRelevance: Relevance(file),
			CategorizedAs:        Categorize(file),
		})
	}
	return educational
}

func hasEducationalExtension(name string) bool {
	for _, ext := range educationalExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

func hasEducationalKeyword(path string) bool {
	for _, keyword := range educationalKeywords {
		if strings.Contains(path, keyword) {
			return true
		}
	}
	return false
}

// Relevance scores how educationally relevant a file is: base 0.5 with
// bonuses for tutorial/guide/learn paths, example/demo paths, and readme
// files, clamped at 1.0.
func Relevance(file File) float64 {
	score := 0.5

	name := strings.ToLower(file.Name)
	path := strings.ToLower(file.Path)

	if containsAny(path, "tutorial", "guide", "learn") {
		score += 0.3
	}
	if containsAny(path, "example", "demo") {
		score += 0.2
	}
	if strings.HasPrefix(name, "readme") {
		score += 0.2
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}

// Categorize buckets a file by name and path. Order matters: readme wins
// over tutorial paths, tutorials over examples.
func Categorize(file File) string {
	name := strings.ToLower(file.Name)
	path := strings.ToLower(file.Path)

	switch {
	case strings.HasPrefix(name, "readme"):
		return "documentation"
	case strings.Contains(path, "tutorial"):
		return "tutorial"
	case containsAny(path, "example", "demo"):
		return "example"
	case hasSuffixAny(name, ".py", ".js", ".html", ".css"):
		return "code"
	case hasSuffixAny(name, ".md", ".txt"):
		return "documentation"
	default:
		return "resource"
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func hasSuffixAny(s string, suffixes ...string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}
