package service

import (
	"context"
	"strings"
	"time"

	"craftly/internal/model"
	"craftly/internal/repository"
)

// CreatePageInput is the body of a page create request.
type CreatePageInput struct {
	Title string `json:"title"`
	Route string `json:"route"`
}

// PageService defines the page use cases of the admin API and the public renderer.
type PageService interface {
	// List returns every non-archived page sorted by name.
	List(ctx context.Context) ([]model.Page, error)

	// Get returns one page by name.
	Get(ctx context.Context, name string) (*model.Page, error)

	// Create stores a draft page and registers its route.
	Create(ctx context.Context, name string, in CreatePageInput) (*model.Page, error)

	// Update patches a page and keeps its route entry in sync.
	Update(ctx context.Context, name string, patch repository.PagePatch) (*model.Page, error)

	// Resolve loads the page backing a registry entry.
	Resolve(ctx context.Context, entry model.RouteEntry) (*model.Page, error)
}

type pageService struct {
	repo repository.PageRepository
	rec  recorder
}

// NewPageService constructs a PageService. activity may be nil.
func NewPageService(repo repository.PageRepository, activity repository.ActivityLog) PageService {
	return &pageService{repo: repo, rec: recorder{log: activity, now: time.Now}}
}

func (s *pageService) List(ctx context.Context) ([]model.Page, error) {
	return s.repo.List(ctx)
}

func (s *pageService) Get(ctx context.Context, name string) (*model.Page, error) {
	if !ValidPageName(name) {
		return nil, ErrInvalidName
	}
	return s.repo.Get(ctx, name)
}

func (s *pageService) Create(ctx context.Context, name string, in CreatePageInput) (*model.Page, error) {
	if !ValidPageName(name) {
		return nil, ErrInvalidName
	}
	route := normalizeRoute(in.Route)
	if route == "" {
		return nil, ErrPathRequired
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		title = name
	}

	page, err := s.repo.Create(ctx, name, title, route)
	if err != nil {
		return nil, err
	}
	s.rec.record(ctx, model.ActivityPageCreated, name, route)
	return page, nil
}

func (s *pageService) Update(ctx context.Context, name string, patch repository.PagePatch) (*model.Page, error) {
	if !ValidPageName(name) {
		return nil, ErrInvalidName
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, ErrInvalidStatus
	}
	if patch.Routes != nil {
		patch.Routes.Default = normalizeRoute(patch.Routes.Default)
		if patch.Routes.Default == "" {
			return nil, ErrPathRequired
		}
	}

	page, err := s.repo.Update(ctx, name, patch)
	if err != nil {
		return nil, err
	}
	s.rec.record(ctx, model.ActivityPageUpdated, name, "")
	return page, nil
}

func (s *pageService) Resolve(ctx context.Context, entry model.RouteEntry) (*model.Page, error) {
	return s.repo.GetByRouteEntry(ctx, entry)
}

// normalizeRoute trims whitespace and ensures a single leading slash.
func normalizeRoute(route string) string {
	route = strings.TrimSpace(route)
	if route == "" {
		return ""
	}
	route = "/" + strings.TrimLeft(route, "/")
	if len(route) > 1 {
		route = strings.TrimRight(route, "/")
	}
	return route
}
