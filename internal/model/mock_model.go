package model

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockModel is a mock implementation of Model using testify/mock.
type MockModel struct {
	mock.Mock
}

func (m *MockModel) Embed(ctx context.Context, text string) (Vector, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(Vector), args.Error(1)
}

func (m *MockModel) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockModel) Dimension() int {
	args := m.Called()
	return args.Int(0)
}
