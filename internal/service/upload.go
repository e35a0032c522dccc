package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/candidatehub/server/internal/logger"
	"github.com/candidatehub/server/internal/model"
)

const allowedExtension = "pdf"

// Upload validates incoming resume files and hands them to the blob store.
type Upload struct {
	storage model.Storage
	logger  *logger.Logger
	now     func() time.Time
}

func NewUpload(storage model.Storage, logger *logger.Logger) *Upload {
	return &Upload{
		storage: storage,
		logger:  logger,
		now:     time.Now,
	}
}

// Store validates the filename, derives a timestamped object name and stores
// the content. Returns the stored object name.
//
// The object name is the original base name with spaces replaced by
// underscores, an underscore plus the current Unix timestamp, and the
// original extension. Two identically named uploads within the same second
// would collide; the later write wins.
func (s *Upload) Store(ctx context.Context, filename string, size int64, content io.Reader) (string, error) {
	if strings.TrimSpace(filename) == "" {
		return "", model.ErrEmptyFilename
	}

	ext := path.Ext(filename)
	if ext == "" || !strings.EqualFold(strings.TrimPrefix(ext, "."), allowedExtension) {
		return "", model.ErrInvalidExtension
	}

	base := strings.ReplaceAll(strings.TrimSuffix(filename, ext), " ", "_")
	objectName := fmt.Sprintf("%s_%d%s", base, s.now().Unix(), ext)

	if exists, err := s.storage.Exists(ctx, objectName); err == nil && exists {
		s.logger.Info("Upload service: object name already taken, overwriting",
			"object", objectName)
	}

	if err := s.storage.Upload(ctx, objectName, content, size); err != nil {
		s.logger.Error("Upload service: blob store rejected object",
			"object", objectName,
			"error", err.Error())
		return "", &model.StorageError{Err: err}
	}

	s.logger.Info("Upload service: stored resume",
		"object", objectName,
		"size", size)

	return objectName, nil
}
