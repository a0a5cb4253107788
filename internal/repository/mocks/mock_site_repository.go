package mocks

import (
	"context"

	"craftly/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockSiteRepository struct {
	mock.Mock
}

func (m *MockSiteRepository) Theme(ctx context.Context) (map[string]any, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

func (m *MockSiteRepository) Colors(ctx context.Context) (map[string]any, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

func (m *MockSiteRepository) Log(ctx context.Context) ([]any, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]any), args.Error(1)
}

func (m *MockSiteRepository) Append(ctx context.Context, entry model.Activity) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// MockActivityLog records appended entries.
type MockActivityLog struct {
	mock.Mock
}

func (m *MockActivityLog) Append(ctx context.Context, entry model.Activity) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
