package service

import (
	"context"
	"errors"
	"testing"

	"craftly/internal/model"
	repoMocks "craftly/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubScanner struct {
	inv *model.MediaInventory
	err error
}

func (s stubScanner) Scan(context.Context) (*model.MediaInventory, error) { return s.inv, s.err }

func TestSiteService_Snapshot(t *testing.T) {
	ctx := context.Background()

	t.Run("aggregates", func(t *testing.T) {
		mSite := new(repoMocks.MockSiteRepository)
		mPages := new(repoMocks.MockPageRepository)
		mSite.On("Theme", ctx).Return(map[string]any{"font": "Inter"}, nil)
		mSite.On("Colors", ctx).Return(nil, nil)
		mSite.On("Log", ctx).Return([]any{}, nil)
		mPages.On("List", ctx).Return([]model.Page{{Name: "home"}}, nil)

		snap, err := NewSiteService(mSite, mPages).Snapshot(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Inter", snap.Theme["font"])
		assert.Nil(t, snap.Colors)
		assert.Len(t, snap.Pages, 1)
		mSite.AssertExpectations(t)
		mPages.AssertExpectations(t)
	})

	t.Run("malformed theme", func(t *testing.T) {
		mSite := new(repoMocks.MockSiteRepository)
		mSite.On("Theme", ctx).Return(nil, errors.New("malformed"))

		_, err := NewSiteService(mSite, new(repoMocks.MockPageRepository)).Snapshot(ctx)
		assert.Error(t, err)
	})
}

func TestMediaService_Inventory(t *testing.T) {
	inv := &model.MediaInventory{Data: []model.MediaItem{}}
	got, err := NewMediaService(stubScanner{inv: inv}).Inventory(context.Background())
	require.NoError(t, err)
	assert.Same(t, inv, got)
}
