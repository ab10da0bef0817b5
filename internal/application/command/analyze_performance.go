package command

import (
	"context"
	"errors"

	"github.com/cityspark/cityspark-hub/internal/domain/shared"
	"github.com/cityspark/cityspark-hub/internal/domain/student"
	"github.com/cityspark/cityspark-hub/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// ANALYZE PERFORMANCE COMMAND
// Scores a completed activity, appends the record to the profile history,
// and recommends the next difficulty.
// ══════════════════════════════════════════════════════════════════════════════

// AnalyzePerformanceCommand contains a completed learning activity.
type AnalyzePerformanceCommand struct {
	StudentID      string
	Subject        string
	Score          float64
	TimeSpent      int
	CompletionRate float64
	Difficulty     string
}

// Validate validates the command.
func (c AnalyzePerformanceCommand) Validate() error {
	if c.StudentID == "" {
		return errors.New("analyze_performance: student_id is required")
	}
	return nil
}

// RecordArchiver mirrors performance records to durable storage.
type RecordArchiver interface {
	ArchiveRecord(ctx context.Context, id student.StudentID, record student.PerformanceRecord) error
}

// AnalyzePerformanceHandler handles the AnalyzePerformanceCommand.
type AnalyzePerformanceHandler struct {
	profiles  student.Repository
	archiver  RecordArchiver
	publisher shared.EventPublisher
	log       *logger.Logger
}

// NewAnalyzePerformanceHandler creates a new AnalyzePerformanceHandler.
// archiver may be nil when no database is configured.
func NewAnalyzePerformanceHandler(
	profiles student.Repository,
	archiver RecordArchiver,
	publisher shared.EventPublisher,
	log *logger.Logger,
) *AnalyzePerformanceHandler {
	if log == nil {
		log = logger.Default()
	}
	return &AnalyzePerformanceHandler{
		profiles:  profiles,
		archiver:  archiver,
		publisher: publisher,
		log:       log.With(logger.Component("analyze_performance")),
	}
}

// Execute analyzes the activity and appends the record.
func (h *AnalyzePerformanceHandler) Execute(ctx context.Context, cmd AnalyzePerformanceCommand) (student.PerformanceRecord, error) {
	if err := cmd.Validate(); err != nil {
		return student.PerformanceRecord{}, shared.WrapError("student", "Analyze", shared.ErrInvalidInput, "invalid command", err)
	}

	record, err := student.Analyze(student.Activity{
		Subject:        cmd.Subject,
		Score:          cmd.Score,
		TimeSpent:      cmd.TimeSpent,
		CompletionRate: cmd.CompletionRate,
		Difficulty:     student.Difficulty(cmd.Difficulty),
	})
	if err != nil {
		return student.PerformanceRecord{}, err
	}

	if _, err := h.profiles.AppendPerformance(ctx, student.StudentID(cmd.StudentID), record); err != nil {
		return student.PerformanceRecord{}, err
	}

	if h.archiver != nil {
		if err := h.archiver.ArchiveRecord(ctx, student.StudentID(cmd.StudentID), record); err != nil {
			h.log.Warn("record archive failed",
				logger.StudentID(cmd.StudentID),
				logger.Err(err),
			)
		}
	}

	if h.publisher != nil {
		event := shared.NewPerformanceAnalyzedEvent(
			cmd.StudentID,
			record.Score,
			record.MasteryLevel,
			string(record.Difficulty),
		)
		if err := h.publisher.Publish(event); err != nil {
			h.log.Warn("publish failed", logger.Err(err))
		}
	}

	h.log.Info("performance analyzed",
		logger.StudentID(cmd.StudentID),
		logger.Subject(cmd.Subject),
		logger.Score(record.Score),
		logger.Mastery(record.MasteryLevel),
	)
	return record, nil
}
