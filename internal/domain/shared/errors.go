// Package shared contains common domain types, errors, and events that are
// used across all domain packages. This package has zero external dependencies.
package shared

import (
	"errors"
	"fmt"
)

// Base domain errors that can be used for error checking with errors.Is().
var (
	// Entity errors
	ErrNotFound      = errors.New("entity not found")
	ErrAlreadyExists = errors.New("entity already exists")
	ErrInvalidEntity = errors.New("invalid entity")

	// Validation errors
	ErrValidation      = errors.New("validation error")
	ErrInvalidID       = errors.New("invalid ID")
	ErrInvalidInput    = errors.New("invalid input")
	ErrEmptyValue      = errors.New("value cannot be empty")
	ErrNegativeValue   = errors.New("value cannot be negative")
	ErrValueOutOfRange = errors.New("value out of range")
	ErrInvalidFormat   = errors.New("invalid format")

	// External service errors
	ErrExternalService    = errors.New("external service error")
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrTimeout            = errors.New("operation timeout")
	ErrRateLimited        = errors.New("rate limited")
)

// DomainError represents a domain-specific error with context.
type DomainError struct {
	Domain  string // e.g., "student", "art", "analytics"
	Op      string // Operation that failed, e.g., "Analyze", "Generate"
	Kind    error  // Base error type for errors.Is() checking
	Message string // Human-readable message
	Err     error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s.%s: %s: %v", e.Domain, e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s.%s: %s", e.Domain, e.Op, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap().
func (e *DomainError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return e.Kind
}

// Is implements errors.Is() matching.
func (e *DomainError) Is(target error) bool {
	if e.Kind != nil && errors.Is(e.Kind, target) {
		return true
	}
	if e.Err != nil && errors.Is(e.Err, target) {
		return true
	}
	return false
}

// NewDomainError creates a new domain error.
func NewDomainError(domain, op string, kind error, message string) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
	}
}

// WrapError wraps an existing error with domain context.
func WrapError(domain, op string, kind error, message string, err error) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// Student domain errors
var (
	ErrStudentNotFound     = NewDomainError("student", "Find", ErrNotFound, "student not found")
	ErrInvalidStudentID    = NewDomainError("student", "Validate", ErrInvalidID, "invalid student ID")
	ErrInvalidScore        = NewDomainError("student", "Validate", ErrValueOutOfRange, "score must be between 0 and 100")
	ErrInvalidTimeSpent    = NewDomainError("student", "Validate", ErrNegativeValue, "time spent cannot be negative")
	ErrInvalidCompletion   = NewDomainError("student", "Validate", ErrValueOutOfRange, "completion rate must be between 0.0 and 1.0")
	ErrInvalidLearningData = NewDomainError("student", "Validate", ErrInvalidInput, "invalid learning profile data")
)

// Learning domain errors
var (
	ErrLearningPathNotFound = NewDomainError("learning", "FindPath", ErrNotFound, "learning path not found")
	ErrInvalidSubject       = NewDomainError("learning", "Validate", ErrEmptyValue, "subject is required")
)

// Art domain errors
var (
	ErrArtNotFound      = NewDomainError("art", "Find", ErrNotFound, "art piece not found")
	ErrInvalidPrompt    = NewDomainError("art", "Validate", ErrEmptyValue, "prompt is required")
	ErrInvalidArtUpdate = NewDomainError("art", "Update", ErrInvalidInput, "invalid art piece update")
	ErrCollectionEmpty  = NewDomainError("art", "CreateCollection", ErrInvalidInput, "collection name is required")
)

// Assessment domain errors
var (
	ErrAssessmentNotFound = NewDomainError("assessment", "Find", ErrNotFound, "assessment not found")
)

// Curriculum domain errors
var (
	ErrCourseNotFound = NewDomainError("curriculum", "Find", ErrNotFound, "course not found")
)

// External service errors
var (
	ErrHubUnavailable    = NewDomainError("omniscient", "Request", ErrServiceUnavailable, "Omniscient Hub is unavailable")
	ErrHubTimeout        = NewDomainError("omniscient", "Request", ErrTimeout, "Omniscient Hub request timeout")
	ErrGitHubUnavailable = NewDomainError("github", "Request", ErrServiceUnavailable, "GitHub API is unavailable")
	ErrGitHubRateLimited = NewDomainError("github", "Request", ErrRateLimited, "GitHub API rate limit exceeded")
	ErrInvalidRepoURL    = NewDomainError("github", "Parse", ErrInvalidFormat, "invalid repository URL")
)

// IsNotFound checks if the error is a "not found" error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation checks if the error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrInvalidID) ||
		errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrEmptyValue) ||
		errors.Is(err, ErrNegativeValue) ||
		errors.Is(err, ErrValueOutOfRange) ||
		errors.Is(err, ErrInvalidFormat)
}

// IsExternalService checks if the error is from an external service.
func IsExternalService(err error) bool {
	return errors.Is(err, ErrExternalService) ||
		errors.Is(err, ErrServiceUnavailable) ||
		errors.Is(err, ErrTimeout) ||
		errors.Is(err, ErrRateLimited)
}
