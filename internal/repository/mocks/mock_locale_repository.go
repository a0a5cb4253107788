package mocks

import (
	"context"
	"time"

	"craftly/internal/model"

	"github.com/stretchr/testify/mock"
)

// MockLocaleProvider mocks a locale repository together with the display
// name and bulk dictionary lookups of the locale provider.
type MockLocaleProvider struct {
	mock.Mock
}

func (m *MockLocaleProvider) Codes(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockLocaleProvider) Data(ctx context.Context, code string) (model.Dictionary, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.Dictionary), args.Error(1)
}

func (m *MockLocaleProvider) ModTime(ctx context.Context, code string) (time.Time, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(time.Time), args.Error(1)
}

func (m *MockLocaleProvider) Create(ctx context.Context, code string) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

func (m *MockLocaleProvider) Update(ctx context.Context, code string, dict model.Dictionary) error {
	args := m.Called(ctx, code, dict)
	return args.Error(0)
}

func (m *MockLocaleProvider) Name(code string) string {
	args := m.Called(code)
	return args.String(0)
}

func (m *MockLocaleProvider) Dictionaries(ctx context.Context) (map[string]model.Dictionary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]model.Dictionary), args.Error(1)
}
