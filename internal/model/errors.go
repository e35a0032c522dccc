package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by stores when an entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials is returned for any failed login attempt. It is
	// deliberately the same for unknown users and wrong passwords.
	ErrInvalidCredentials = errors.New("invalid admin username or password")
	// ErrMissingFile is returned when the upload request has no file part.
	ErrMissingFile = errors.New("no file part in the request")
	// ErrEmptyFilename is returned when a file was sent without a name.
	ErrEmptyFilename = errors.New("no file selected")
	// ErrInvalidExtension is returned for non-PDF uploads.
	ErrInvalidExtension = errors.New("only PDF files are allowed")
)

// StorageError reports a blob store failure together with its cause. The
// cause is surfaced to the uploader so they know the upload did not stick.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("upload failed: %s", e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
