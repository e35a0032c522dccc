package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/candidatehub/server/internal/logger"
	"github.com/candidatehub/server/internal/model"
)

// fileField is the multipart form field carrying the resume.
const fileField = "resume"

// UploadService stores validated resume files.
type UploadService interface {
	Store(ctx context.Context, filename string, size int64, content io.Reader) (string, error)
}

// Upload handles resume file uploads.
type Upload struct {
	service     UploadService
	maxFileSize int64
	logger      *logger.Logger
}

// NewUpload creates a new Upload handler instance.
func NewUpload(service UploadService, maxFileSize int64, logger *logger.Logger) *Upload {
	return &Upload{service: service, maxFileSize: maxFileSize, logger: logger}
}

// Store accepts a multipart form upload and stores the resume. Responds with
// the stored object name on success.
func (h *Upload) Store(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize)

	if err := r.ParseMultipartForm(h.maxFileSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, h.logger, http.StatusRequestEntityTooLarge, "file too large")
			return
		}
		handleError(w, h.logger, model.ErrMissingFile)
		return
	}

	file, header, err := r.FormFile(fileField)
	if err != nil {
		handleError(w, h.logger, model.ErrMissingFile)
		return
	}
	defer func() {
		if err := file.Close(); err != nil {
			h.logger.Error("failed to close uploaded file", "error", err.Error())
		}
	}()

	objectName, err := h.service.Store(r.Context(), header.Filename, header.Size, file)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, map[string]string{"filename": objectName})
}
