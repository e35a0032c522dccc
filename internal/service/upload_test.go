package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/candidatehub/server/internal/model"
	"github.com/candidatehub/server/internal/testutil"
)

func fixedClock(unix int64) func() time.Time {
	return func() time.Time { return time.Unix(unix, 0) }
}

func TestUploadService_Store(t *testing.T) {
	tests := []struct {
		name       string
		filename   string
		wantObject string
		wantErr    error
	}{
		{
			name:       "plain pdf",
			filename:   "resume.pdf",
			wantObject: "resume_1700000000.pdf",
		},
		{
			name:       "uppercase extension accepted, casing preserved",
			filename:   "resume.PDF",
			wantObject: "resume_1700000000.PDF",
		},
		{
			name:       "spaces become underscores",
			filename:   "John Doe.pdf",
			wantObject: "John_Doe_1700000000.pdf",
		},
		{
			name:     "wrong extension rejected",
			filename: "resume.docx",
			wantErr:  model.ErrInvalidExtension,
		},
		{
			name:     "no extension rejected",
			filename: "noextension",
			wantErr:  model.ErrInvalidExtension,
		},
		{
			name:     "empty filename rejected",
			filename: "",
			wantErr:  model.ErrEmptyFilename,
		},
		{
			name:     "blank filename rejected",
			filename: "   ",
			wantErr:  model.ErrEmptyFilename,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := &MockStorage{}
			if tt.wantErr == nil {
				storage.On("Exists", mock.Anything, tt.wantObject).Return(false, nil)
				storage.On("Upload", mock.Anything, tt.wantObject, mock.Anything, int64(4)).Return(nil)
			}

			svc := NewUpload(storage, testutil.MakeNoopLogger())
			svc.now = fixedClock(1700000000)

			object, err := svc.Store(context.Background(), tt.filename, 4, bytes.NewReader([]byte("%PDF")))

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantObject, object)
			storage.AssertExpectations(t)
		})
	}
}

func TestUploadService_Store_DistinctTimestamps(t *testing.T) {
	storage := &MockStorage{}
	storage.On("Exists", mock.Anything, mock.Anything).Return(false, nil)
	storage.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	svc := NewUpload(storage, testutil.MakeNoopLogger())

	svc.now = fixedClock(1700000000)
	first, err := svc.Store(context.Background(), "John Doe.pdf", 4, bytes.NewReader([]byte("%PDF")))
	require.NoError(t, err)

	svc.now = fixedClock(1700000001)
	second, err := svc.Store(context.Background(), "John Doe.pdf", 4, bytes.NewReader([]byte("%PDF")))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestUploadService_Store_StorageFailure(t *testing.T) {
	cause := errors.New("bucket quota exceeded")
	storage := &MockStorage{}
	storage.On("Exists", mock.Anything, mock.Anything).Return(false, nil)
	storage.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(cause)

	svc := NewUpload(storage, testutil.MakeNoopLogger())
	svc.now = fixedClock(1700000000)

	_, err := svc.Store(context.Background(), "resume.pdf", 4, bytes.NewReader([]byte("%PDF")))

	var storageErr *model.StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, storageErr.Error(), "bucket quota exceeded")
}

func TestUploadService_Store_ExistsCheckFailureIsIgnored(t *testing.T) {
	storage := &MockStorage{}
	storage.On("Exists", mock.Anything, mock.Anything).Return(false, errors.New("stat failed"))
	storage.On("Upload", mock.Anything, "resume_1700000000.pdf", mock.Anything, int64(4)).Return(nil)

	svc := NewUpload(storage, testutil.MakeNoopLogger())
	svc.now = fixedClock(1700000000)

	object, err := svc.Store(context.Background(), "resume.pdf", 4, bytes.NewReader([]byte("%PDF")))

	require.NoError(t, err)
	assert.Equal(t, "resume_1700000000.pdf", object)
}
