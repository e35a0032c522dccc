package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/candidatehub/server/internal/api/http/appctx"
	"github.com/candidatehub/server/internal/logger"
	"github.com/candidatehub/server/internal/model"
)

// SessionCookie is the cookie carrying the admin session token.
const SessionCookie = "session_token"

// AuthService resolves session tokens to users.
type AuthService interface {
	Authenticate(ctx context.Context, token string) (model.User, error)
}

// Authenticate validates session tokens and injects the user into the
// request context.
type Authenticate struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(authService AuthService, logger *logger.Logger) *Authenticate {
	return &Authenticate{authService: authService, logger: logger}
}

// Handle reads the token from the Authorization header or the session
// cookie, validates it and passes the request on with the user in context.
// Requests without a valid token get a 401 response.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := m.extractToken(r)
		if tokenString == "" {
			m.unauthorized(w, "authorization token required")
			return
		}

		user, err := m.authService.Authenticate(r.Context(), tokenString)
		if err != nil {
			m.logger.Info("authentication failed",
				"path", r.URL.Path,
				"error", err.Error())
			m.unauthorized(w, "invalid or expired session")
			return
		}

		next.ServeHTTP(w, r.WithContext(appctx.WithUser(r.Context(), user)))
	})
}

func (m *Authenticate) extractToken(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := r.Cookie(SessionCookie); err == nil {
		return cookie.Value
	}
	return ""
}

func (m *Authenticate) unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": message}); err != nil {
		m.logger.Error("failed to write response", "error", err.Error())
	}
}
