package postgres

import (
	"context"
	"fmt"

	"github.com/cityspark/cityspark-hub/internal/domain/student"
)

// PerformanceArchive durably stores profile snapshots and analyzed
// performance records. Writes are fire-and-forget from the caller's
// perspective; the archive never serves reads on the hot path.
type PerformanceArchive struct {
	conn *Connection
}

// NewPerformanceArchive creates an archive over the connection.
func NewPerformanceArchive(conn *Connection) *PerformanceArchive {
	return &PerformanceArchive{conn: conn}
}

// SaveProfile upserts a profile snapshot.
func (a *PerformanceArchive) SaveProfile(ctx context.Context, profile *student.Profile) error {
	query := `
		INSERT INTO profile_snapshots (
			student_id, learning_style, skill_level,
			interests, goals, strengths, weaknesses,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (student_id) DO UPDATE SET
			learning_style = EXCLUDED.learning_style,
			skill_level    = EXCLUDED.skill_level,
			interests      = EXCLUDED.interests,
			goals          = EXCLUDED.goals,
			strengths      = EXCLUDED.strengths,
			weaknesses     = EXCLUDED.weaknesses,
			created_at     = EXCLUDED.created_at,
			updated_at     = EXCLUDED.updated_at
	`

	_, err := a.conn.Exec(ctx, query,
		profile.ID.String(),
		string(profile.LearningStyle),
		string(profile.SkillLevel),
		profile.Interests,
		profile.Goals,
		profile.Strengths,
		profile.Weaknesses,
		profile.CreatedAt,
		profile.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("postgres: save profile: %w", err)
	}
	return nil
}

// ArchiveRecord appends an analyzed performance record.
func (a *PerformanceArchive) ArchiveRecord(ctx context.Context, id student.StudentID, record student.PerformanceRecord) error {
	query := `
		INSERT INTO performance_records (
			student_id, subject, score, time_spent, completion_rate,
			difficulty, efficiency, mastery_level, next_difficulty, recorded_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := a.conn.Exec(ctx, query,
		id.String(),
		record.Subject,
		record.Score,
		record.TimeSpent,
		record.CompletionRate,
		string(record.Difficulty),
		record.Efficiency,
		record.MasteryLevel,
		string(record.NextDifficulty),
		record.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("postgres: archive record: %w", err)
	}
	return nil
}

// RecordCount returns the number of archived records for a student.
func (a *PerformanceArchive) RecordCount(ctx context.Context, id student.StudentID) (int64, error) {
	var count int64
	err := a.conn.QueryRow(ctx,
		`SELECT count(*) FROM performance_records WHERE student_id = $1`,
		id.String(),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("postgres: record count: %w", err)
	}
	return count, nil
}
