package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/candidatehub/server/internal/logger"
	"github.com/candidatehub/server/internal/model"
)

// dummyHash is compared against when the username is unknown, so the two
// failure paths take comparable time.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// Auth authenticates admin users and issues session tokens.
type Auth struct {
	userStore model.UserStore
	tokens    model.TokenManager
	logger    *logger.Logger
}

func NewAuth(userStore model.UserStore, tokens model.TokenManager, logger *logger.Logger) *Auth {
	return &Auth{
		userStore: userStore,
		tokens:    tokens,
		logger:    logger,
	}
}

// Login verifies the credentials and returns a session token. Unknown users
// and wrong passwords both yield ErrInvalidCredentials so a caller cannot
// probe which usernames exist.
func (a *Auth) Login(ctx context.Context, username, password string) (string, error) {
	user, err := a.userStore.GetByUsername(ctx, username)
	if errors.Is(err, model.ErrNotFound) {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		a.logger.Info("Auth service: login attempt for unknown user",
			"username", username)
		return "", model.ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("failed to get user by username: %w", err)
	}

	if bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)) != nil {
		a.logger.Info("Auth service: wrong password",
			"username", username)
		return "", model.ErrInvalidCredentials
	}

	token, err := a.tokens.GenerateSessionToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}

	a.logger.Info("Auth service: login successful",
		"username", username)

	return token, nil
}

// Authenticate resolves a session token to its user.
func (a *Auth) Authenticate(ctx context.Context, tokenString string) (model.User, error) {
	userID, err := a.tokens.ParseSessionToken(tokenString)
	if err != nil {
		return model.User{}, model.ErrInvalidCredentials
	}

	user, err := a.userStore.GetByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, model.ErrInvalidCredentials
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

// EnsureAdmin creates the seed admin user when it does not exist yet. A
// blank username disables seeding.
func (a *Auth) EnsureAdmin(ctx context.Context, username, password string) error {
	if username == "" {
		return nil
	}

	_, err := a.userStore.GetByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return fmt.Errorf("failed to get user by username: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	if _, err := a.userStore.Create(ctx, model.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: hash,
	}); err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	a.logger.Info("Auth service: seeded admin user",
		"username", username)

	return nil
}
