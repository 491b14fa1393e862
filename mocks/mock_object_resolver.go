package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"imglabeler/internal/port"
)

// MockObjectResolver is a mock implementation of port.ObjectResolver.
type MockObjectResolver struct {
	mock.Mock
}

func (m *MockObjectResolver) Resolve(ctx context.Context, bucket, key string) (port.ObjectRef, error) {
	args := m.Called(ctx, bucket, key)
	return args.Get(0).(port.ObjectRef), args.Error(1)
}
