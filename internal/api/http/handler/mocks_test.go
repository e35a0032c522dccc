package handler

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/candidatehub/server/internal/model"
)

// MockReportService mocks the ReportService interface
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) Query(ctx context.Context, search string) ([]model.Profile, model.StatsSummary, error) {
	args := m.Called(ctx, search)
	return args.Get(0).([]model.Profile), args.Get(1).(model.StatsSummary), args.Error(2)
}

func (m *MockReportService) ExportCSV(ctx context.Context, search string) ([]byte, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockReportService) SkillsDistribution(ctx context.Context) (model.SkillsDistribution, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.SkillsDistribution), args.Error(1)
}

// MockUploadService mocks the UploadService interface
type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) Store(ctx context.Context, filename string, size int64, content io.Reader) (string, error) {
	args := m.Called(ctx, filename, size, content)
	return args.String(0), args.Error(1)
}

// MockAuthService mocks the AuthService interface
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}
