package model

import "github.com/google/uuid"

// TokenManager issues and validates admin session tokens.
type TokenManager interface {
	GenerateSessionToken(userID uuid.UUID) (string, error)
	ParseSessionToken(token string) (uuid.UUID, error)
}
