package assessment

import (
	"context"
)

// Repository defines persistence for assessments and submission results.
type Repository interface {
	// Save stores an assessment, replacing any with the same ID.
	Save(ctx context.Context, assessment *Assessment) error

	// FindByID returns the assessment with the given ID.
	// Returns shared.ErrAssessmentNotFound if it does not exist.
	FindByID(ctx context.Context, id string) (*Assessment, error)

	// SaveResult stores a submission result. A student resubmitting the
	// same assessment overwrites the previous result.
	SaveResult(ctx context.Context, result Result) error
}
