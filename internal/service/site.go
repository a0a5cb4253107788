package service

import (
	"context"

	"craftly/internal/model"
	"craftly/internal/repository"
)

// SiteService assembles the admin dashboard snapshot.
type SiteService interface {
	// Snapshot reads theme, colors, activity log and pages. Each part is read
	// on its own and may reflect a different point in time.
	Snapshot(ctx context.Context) (*model.SiteSnapshot, error)
}

type siteService struct {
	site  repository.SiteRepository
	pages repository.PageRepository
}

func NewSiteService(site repository.SiteRepository, pages repository.PageRepository) SiteService {
	return &siteService{site: site, pages: pages}
}

func (s *siteService) Snapshot(ctx context.Context) (*model.SiteSnapshot, error) {
	theme, err := s.site.Theme(ctx)
	if err != nil {
		return nil, err
	}
	colors, err := s.site.Colors(ctx)
	if err != nil {
		return nil, err
	}
	log, err := s.site.Log(ctx)
	if err != nil {
		return nil, err
	}
	pages, err := s.pages.List(ctx)
	if err != nil {
		return nil, err
	}
	return &model.SiteSnapshot{Log: log, Theme: theme, Pages: pages, Colors: colors}, nil
}
