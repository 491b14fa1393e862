package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"imglabeler/internal/domain"
)

// MockLabelService is a mock implementation of service.LabelService.
type MockLabelService struct {
	mock.Mock
}

func (m *MockLabelService) Detect(ctx context.Context, n domain.UploadNotification) (domain.LabelResult, error) {
	args := m.Called(ctx, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.LabelResult), args.Error(1)
}
