package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ProfileStore defines read operations over parsed candidate profiles.
type ProfileStore interface {
	All(ctx context.Context) ([]Profile, error)
	Count(ctx context.Context) (int, error)
}

// ErrorLogStore defines operations over the resume parse-error log.
// Only the cardinality of the log is consumed by reporting.
type ErrorLogStore interface {
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, entry ErrorRecord) error
}

// Profile is a parsed resume record. Profiles are written by the upstream
// resume parser and are read-only from this service's perspective. Empty
// scalar fields mean the value was absent from the parsed resume.
type Profile struct {
	ID          string
	Name        string
	Email       string
	Contact     string
	Education   string
	Experience  string
	Skills      SkillSet
	SkillsScore float64
	CreatedAt   time.Time
}

// ErrorRecord is one failed resume parse.
type ErrorRecord struct {
	ID        uuid.UUID
	Filename  string
	Reason    string
	CreatedAt time.Time
}
