package mocks

import (
	"context"

	"craftly/internal/model"
	"craftly/internal/repository"
	"craftly/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockPageService struct {
	mock.Mock
}

func (m *MockPageService) List(ctx context.Context) ([]model.Page, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Page), args.Error(1)
}

func (m *MockPageService) Get(ctx context.Context, name string) (*model.Page, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Page), args.Error(1)
}

func (m *MockPageService) Create(ctx context.Context, name string, in service.CreatePageInput) (*model.Page, error) {
	args := m.Called(ctx, name, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Page), args.Error(1)
}

func (m *MockPageService) Update(ctx context.Context, name string, patch repository.PagePatch) (*model.Page, error) {
	args := m.Called(ctx, name, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Page), args.Error(1)
}

func (m *MockPageService) Resolve(ctx context.Context, entry model.RouteEntry) (*model.Page, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Page), args.Error(1)
}

type MockLocaleService struct {
	mock.Mock
}

func (m *MockLocaleService) List(ctx context.Context) ([]model.Locale, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Locale), args.Error(1)
}

func (m *MockLocaleService) Languages(ctx context.Context) (map[string]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

func (m *MockLocaleService) Get(ctx context.Context, code string) (*model.LocaleDetail, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LocaleDetail), args.Error(1)
}

func (m *MockLocaleService) Create(ctx context.Context, code string) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

func (m *MockLocaleService) Update(ctx context.Context, code string, dict model.Dictionary) (*model.LocaleDetail, error) {
	args := m.Called(ctx, code, dict)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LocaleDetail), args.Error(1)
}

type MockMediaService struct {
	mock.Mock
}

func (m *MockMediaService) Inventory(ctx context.Context) (*model.MediaInventory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MediaInventory), args.Error(1)
}

type MockSiteService struct {
	mock.Mock
}

func (m *MockSiteService) Snapshot(ctx context.Context) (*model.SiteSnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SiteSnapshot), args.Error(1)
}
