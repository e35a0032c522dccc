// Package appctx stores and retrieves the authenticated user on a request
// context.
package appctx

import (
	"context"

	"github.com/candidatehub/server/internal/model"
)

type contextKey string

const userKey contextKey = "user"

// WithUser returns a copy of ctx carrying the authenticated user.
func WithUser(ctx context.Context, user model.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFrom retrieves the authenticated user from ctx.
//
// Returns the user and a boolean indicating whether one was set.
func UserFrom(ctx context.Context) (model.User, bool) {
	user, ok := ctx.Value(userKey).(model.User)
	return user, ok
}
