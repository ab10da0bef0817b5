// Package student contains the student learning profile model.
// This is the core of the personalization logic - no external dependencies.
package student

import (
	"strings"
	"time"

	"github.com/cityspark/cityspark-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// VALUE OBJECTS
// ══════════════════════════════════════════════════════════════════════════════

// StudentID uniquely identifies a student on the platform.
type StudentID string

// IsValid checks that the student ID is non-empty and has no whitespace.
func (s StudentID) IsValid() bool {
	id := string(s)
	return len(id) > 0 && len(id) <= 64 && !strings.ContainsAny(id, " \t\n\r")
}

// String returns the string representation of the ID.
func (s StudentID) String() string {
	return string(s)
}

// ══════════════════════════════════════════════════════════════════════════════
// ENUMS
// ══════════════════════════════════════════════════════════════════════════════

// LearningStyle describes how a student prefers to consume material.
type LearningStyle string

const (
	StyleVisual      LearningStyle = "visual"
	StyleAuditory    LearningStyle = "auditory"
	StyleReading     LearningStyle = "reading"
	StyleKinesthetic LearningStyle = "kinesthetic"
)

// IsValid checks that the learning style is one of the known values.
func (l LearningStyle) IsValid() bool {
	switch l {
	case StyleVisual, StyleAuditory, StyleReading, StyleKinesthetic:
		return true
	default:
		return false
	}
}

// NormalizeLearningStyle maps unknown input to the visual default.
func NormalizeLearningStyle(raw string) LearningStyle {
	style := LearningStyle(strings.ToLower(strings.TrimSpace(raw)))
	if !style.IsValid() {
		return StyleVisual
	}
	return style
}

// SkillLevel describes the student's overall proficiency.
type SkillLevel string

const (
	LevelBeginner     SkillLevel = "beginner"
	LevelIntermediate SkillLevel = "intermediate"
	LevelAdvanced     SkillLevel = "advanced"
	LevelExpert       SkillLevel = "expert"
)

// IsValid checks that the skill level is one of the known values.
func (s SkillLevel) IsValid() bool {
	switch s {
	case LevelBeginner, LevelIntermediate, LevelAdvanced, LevelExpert:
		return true
	default:
		return false
	}
}

// NormalizeSkillLevel maps unknown input to the beginner default.
func NormalizeSkillLevel(raw string) SkillLevel {
	level := SkillLevel(strings.ToLower(strings.TrimSpace(raw)))
	if !level.IsValid() {
		return LevelBeginner
	}
	return level
}

// PaceMultiplier returns the duration multiplier applied to learning paths
// for this skill level.
func (s SkillLevel) PaceMultiplier() float64 {
	switch s {
	case LevelBeginner:
		return 1.5
	case LevelIntermediate:
		return 1.0
	case LevelAdvanced:
		return 0.8
	case LevelExpert:
		return 0.6
	default:
		return 1.0
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// ENTITY
// ══════════════════════════════════════════════════════════════════════════════

// Profile is the aggregate root of the student domain. It holds the
// personalization attributes and the append-only performance history.
type Profile struct {
	ID            StudentID
	LearningStyle LearningStyle
	SkillLevel    SkillLevel
	Interests     []string
	Goals         []string
	Strengths     []string
	Weaknesses    []string
	History       []PerformanceRecord
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ProfileInput carries the raw attributes used to build a profile.
// Unknown enum values fall back to defaults instead of failing.
type ProfileInput struct {
	LearningStyle string
	SkillLevel    string
	Interests     []string
	Goals         []string
	Strengths     []string
	Weaknesses    []string
}

// NewProfile builds a fresh profile. Recreating a profile for an existing
// ID replaces it entirely, history included.
func NewProfile(id StudentID, input ProfileInput) (*Profile, error) {
	if !id.IsValid() {
		return nil, shared.ErrInvalidStudentID
	}

	now := time.Now().UTC()
	return &Profile{
		ID:            id,
		LearningStyle: NormalizeLearningStyle(input.LearningStyle),
		SkillLevel:    NormalizeSkillLevel(input.SkillLevel),
		Interests:     cloneLabels(input.Interests),
		Goals:         cloneLabels(input.Goals),
		Strengths:     cloneLabels(input.Strengths),
		Weaknesses:    cloneLabels(input.Weaknesses),
		History:       nil,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// AppendRecord adds a performance record to the history and bumps UpdatedAt.
func (p *Profile) AppendRecord(record PerformanceRecord) {
	p.History = append(p.History, record)
	p.UpdatedAt = time.Now().UTC()
}

// Clone returns a deep copy of the profile.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}

	clone := *p
	clone.Interests = cloneLabels(p.Interests)
	clone.Goals = cloneLabels(p.Goals)
	clone.Strengths = cloneLabels(p.Strengths)
	clone.Weaknesses = cloneLabels(p.Weaknesses)
	clone.History = make([]PerformanceRecord, len(p.History))
	copy(clone.History, p.History)
	return &clone
}

func cloneLabels(labels []string) []string {
	if len(labels) == 0 {
		return nil
	}
	out := make([]string, len(labels))
	copy(out, labels)
	return out
}
