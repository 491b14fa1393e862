package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"imglabeler/internal/port"
)

// MockLabelDetector is a mock implementation of port.LabelDetector.
type MockLabelDetector struct {
	mock.Mock
}

func (m *MockLabelDetector) DetectLabels(ctx context.Context, input port.DetectInput) ([]port.Label, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]port.Label), args.Error(1)
}
