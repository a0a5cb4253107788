package repository

import (
	"context"

	"craftly/internal/model"
)

// PageRepository persists pages together with their route registry rows.
// Writes that touch both files are committed together.
type PageRepository interface {
	// Create stores a new draft page and appends its route entry.
	// It fails with ErrConflict when the page file exists or the path is in use.
	Create(ctx context.Context, name, title, route string) (*model.Page, error)

	// Get returns the page stored as <name>.yml or ErrNotFound.
	Get(ctx context.Context, name string) (*model.Page, error)

	// GetByRouteEntry resolves a page through the entry's src file.
	GetByRouteEntry(ctx context.Context, entry model.RouteEntry) (*model.Page, error)

	// List returns every non-archived page sorted by name.
	List(ctx context.Context) ([]model.Page, error)

	// Update applies patch and rewrites the page's route entry in the same commit.
	Update(ctx context.Context, name string, patch PagePatch) (*model.Page, error)
}

// RouteRepository reads the route registry.
type RouteRepository interface {
	// Load returns the non-archived entries in registry order. A missing
	// registry yields no entries; an unparsable one yields ErrMalformed.
	Load(ctx context.Context) ([]model.RouteEntry, error)
}

// PagePatch holds the fields of a page update. Nil fields are left unchanged.
type PagePatch struct {
	Title     *string             `json:"title"`
	Status    *model.PageStatus   `json:"status"`
	SEO       *model.SEO          `json:"seo"`
	Head      *[]any              `json:"head"`
	Variables *map[string]any     `json:"variables"`
	Blocks    *[]any              `json:"blocks"`
	Routes    *model.PageRoutes   `json:"routes"`
	Langs     *model.LocalePrefix `json:"routeLangs"`
}
