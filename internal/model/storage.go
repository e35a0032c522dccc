package model

import (
	"context"
	"io"
)

// Storage is the blob store holding uploaded resume files.
type Storage interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64) error
	Exists(ctx context.Context, key string) (bool, error)
}
