package service

import (
	"context"
	"errors"
	"testing"

	"craftly/internal/model"
	"craftly/internal/repository"
	repoMocks "craftly/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPageService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		page       string
		in         CreatePageInput
		setupMocks func(mRepo *repoMocks.MockPageRepository, mLog *repoMocks.MockActivityLog)
		wantErr    error
	}{
		{
			name: "happy path",
			page: "about",
			in:   CreatePageInput{Title: "About", Route: "about/"},
			setupMocks: func(mRepo *repoMocks.MockPageRepository, mLog *repoMocks.MockActivityLog) {
				mRepo.On("Create", ctx, "about", "About", "/about").
					Return(model.NewPage("about", "About", "/about", "t"), nil)
				mLog.On("Append", ctx, mock.MatchedBy(func(a model.Activity) bool {
					return a.Action == model.ActivityPageCreated && a.Subject == "about" && a.At != ""
				})).Return(nil)
			},
		},
		{
			name: "title defaults to name",
			page: "home",
			in:   CreatePageInput{Route: "/"},
			setupMocks: func(mRepo *repoMocks.MockPageRepository, mLog *repoMocks.MockActivityLog) {
				mRepo.On("Create", ctx, "home", "home", "/").
					Return(model.NewPage("home", "home", "/", "t"), nil)
				mLog.On("Append", ctx, mock.Anything).Return(nil)
			},
		},
		{
			name: "activity failure does not fail create",
			page: "about",
			in:   CreatePageInput{Title: "About", Route: "/about"},
			setupMocks: func(mRepo *repoMocks.MockPageRepository, mLog *repoMocks.MockActivityLog) {
				mRepo.On("Create", ctx, "about", "About", "/about").
					Return(model.NewPage("about", "About", "/about", "t"), nil)
				mLog.On("Append", ctx, mock.Anything).Return(errors.New("disk full"))
			},
		},
		{
			name:       "invalid name",
			page:       "../etc",
			in:         CreatePageInput{Route: "/x"},
			setupMocks: func(*repoMocks.MockPageRepository, *repoMocks.MockActivityLog) {},
			wantErr:    ErrInvalidName,
		},
		{
			name:       "route required",
			page:       "about",
			in:         CreatePageInput{Title: "About", Route: "  "},
			setupMocks: func(*repoMocks.MockPageRepository, *repoMocks.MockActivityLog) {},
			wantErr:    ErrPathRequired,
		},
		{
			name: "conflict",
			page: "about",
			in:   CreatePageInput{Title: "About", Route: "/about"},
			setupMocks: func(mRepo *repoMocks.MockPageRepository, mLog *repoMocks.MockActivityLog) {
				mRepo.On("Create", ctx, "about", "About", "/about").Return(nil, repository.ErrConflict)
			},
			wantErr: ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockPageRepository)
			mLog := new(repoMocks.MockActivityLog)
			tt.setupMocks(mRepo, mLog)
			svc := NewPageService(mRepo, mLog)

			page, err := svc.Create(ctx, tt.page, tt.in)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, page)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, page)
			}
			mRepo.AssertExpectations(t)
			mLog.AssertExpectations(t)
		})
	}
}

func TestPageService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes route", func(t *testing.T) {
		mRepo := new(repoMocks.MockPageRepository)
		svc := NewPageService(mRepo, nil)

		mRepo.On("Update", ctx, "about", mock.MatchedBy(func(p repository.PagePatch) bool {
			return p.Routes != nil && p.Routes.Default == "/about-us"
		})).Return(&model.Page{Name: "about"}, nil)

		page, err := svc.Update(ctx, "about", repository.PagePatch{Routes: &model.PageRoutes{Default: "about-us/"}})
		assert.NoError(t, err)
		assert.Equal(t, "about", page.Name)
		mRepo.AssertExpectations(t)
	})

	t.Run("invalid status", func(t *testing.T) {
		svc := NewPageService(new(repoMocks.MockPageRepository), nil)
		status := model.PageStatus("deleted")
		_, err := svc.Update(ctx, "about", repository.PagePatch{Status: &status})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("empty route", func(t *testing.T) {
		svc := NewPageService(new(repoMocks.MockPageRepository), nil)
		_, err := svc.Update(ctx, "about", repository.PagePatch{Routes: &model.PageRoutes{}})
		assert.ErrorIs(t, err, ErrPathRequired)
	})

	t.Run("not found", func(t *testing.T) {
		mRepo := new(repoMocks.MockPageRepository)
		mRepo.On("Update", ctx, "ghost", mock.Anything).Return(nil, repository.ErrNotFound)
		svc := NewPageService(mRepo, nil)

		_, err := svc.Update(ctx, "ghost", repository.PagePatch{})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestPageService_Get(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockPageRepository)
	svc := NewPageService(mRepo, nil)

	mRepo.On("Get", ctx, "home").Return(&model.Page{Name: "home"}, nil).Once()
	page, err := svc.Get(ctx, "home")
	assert.NoError(t, err)
	assert.Equal(t, "home", page.Name)

	_, err = svc.Get(ctx, "a/b")
	assert.ErrorIs(t, err, ErrInvalidName)
	mRepo.AssertExpectations(t)
}

func TestNormalizeRoute(t *testing.T) {
	assert.Equal(t, "/", normalizeRoute("/"))
	assert.Equal(t, "/", normalizeRoute("///"))
	assert.Equal(t, "/a/b", normalizeRoute(" a/b/ "))
	assert.Equal(t, "", normalizeRoute(""))
}
