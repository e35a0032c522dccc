package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/candidatehub/server/internal/logger"
	"github.com/candidatehub/server/internal/model"
)

func writeJSON(w http.ResponseWriter, log *logger.Logger, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error("failed to write response", "error", err.Error())
	}
}

func writeError(w http.ResponseWriter, log *logger.Logger, status int, message string) {
	writeJSON(w, log, status, map[string]string{"error": message})
}

// handleError maps service errors to HTTP responses. Unexpected errors are
// logged and reported as a generic 500 so internals never leak to clients.
func handleError(w http.ResponseWriter, log *logger.Logger, err error) {
	var storageErr *model.StorageError
	if errors.As(err, &storageErr) {
		writeError(w, log, http.StatusBadGateway, storageErr.Error())
		return
	}

	switch {
	case errors.Is(err, model.ErrInvalidCredentials):
		writeError(w, log, http.StatusUnauthorized, err.Error())
	case errors.Is(err, model.ErrMissingFile),
		errors.Is(err, model.ErrEmptyFilename),
		errors.Is(err, model.ErrInvalidExtension):
		writeError(w, log, http.StatusBadRequest, err.Error())
	case errors.Is(err, model.ErrNotFound):
		writeError(w, log, http.StatusNotFound, err.Error())
	default:
		log.Error("request failed", "error", err.Error())
		writeError(w, log, http.StatusInternalServerError, "internal server error")
	}
}
