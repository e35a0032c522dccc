package postgres

import (
	"context"
	"fmt"

	"github.com/candidatehub/server/internal/model"
)

var _ model.ErrorLogStore = (*ErrorLogRepository)(nil)

// ErrorLogRepository persists resume parse failures. Reporting only ever
// consumes the row count.
type ErrorLogRepository struct {
	db *Connection
}

func NewErrorLogRepository(db *Connection) *ErrorLogRepository {
	return &ErrorLogRepository{
		db: db,
	}
}

// Count returns the number of recorded parse failures.
func (r *ErrorLogRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM resume_errors`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count resume errors: %w", err)
	}

	return count, nil
}

// Create records one parse failure.
func (r *ErrorLogRepository) Create(ctx context.Context, entry model.ErrorRecord) error {
	query := `INSERT INTO resume_errors (id, filename, reason) VALUES ($1, $2, $3)`

	_, err := r.db.Exec(ctx, query, entry.ID, entry.Filename, entry.Reason)
	if err != nil {
		return fmt.Errorf("failed to create resume error: %w", err)
	}

	return nil
}
