package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for admin users.
type UserStore interface {
	GetByUsername(ctx context.Context, username string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	Create(ctx context.Context, user User) (User, error)
}

// User represents a stored admin identity. Passwords are kept only as
// bcrypt hashes, never in clear text.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash []byte
	CreatedAt    time.Time
}
