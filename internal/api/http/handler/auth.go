package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/candidatehub/server/internal/api/http/appctx"
	"github.com/candidatehub/server/internal/api/http/middleware"
	"github.com/candidatehub/server/internal/logger"
	"github.com/candidatehub/server/internal/token"
)

// AuthService verifies credentials and issues session tokens.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// Auth handles admin login and logout.
type Auth struct {
	service AuthService
	logger  *logger.Logger
}

// NewAuth creates a new Auth handler instance.
func NewAuth(service AuthService, logger *logger.Logger) *Auth {
	return &Auth{service: service, logger: logger}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login verifies the posted credentials, sets the session cookie and returns
// the token in the body for clients that prefer the Authorization header.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}

	sessionToken, err := h.service.Login(r.Context(), req.Username, strings.TrimSpace(req.Password))
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    sessionToken,
		Path:     "/",
		Expires:  time.Now().Add(token.SessionTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, h.logger, http.StatusOK, map[string]string{"token": sessionToken})
}

// Logout expires the session cookie.
func (h *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	if user, ok := appctx.UserFrom(r.Context()); ok {
		h.logger.Info("admin logged out", "username", user.Username)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, h.logger, http.StatusOK, map[string]string{"message": "logged out"})
}
