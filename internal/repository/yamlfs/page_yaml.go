package yamlfs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"sort"
	"strings"
	"time"

	"craftly/internal/logger"
	"craftly/internal/model"
	"craftly/internal/repository"
	"craftly/internal/store"
)

// PageYAML is a file-backed implementation of repository.PageRepository.
type PageYAML struct {
	st  *store.Store
	now func() time.Time
}

// NewPageYAML creates a page repository over the content store.
func NewPageYAML(st *store.Store) *PageYAML {
	return &PageYAML{st: st, now: time.Now}
}

var _ repository.PageRepository = (*PageYAML)(nil)

var errBlankPage = fmt.Errorf("blank page document: %w", repository.ErrNotFound)

func (r *PageYAML) timestamp() string {
	return r.now().UTC().Format(time.RFC3339)
}

// Create writes pages/<name>.yml and appends a draft registry row in one commit.
func (r *PageYAML) Create(ctx context.Context, name, title, route string) (*model.Page, error) {
	if !plainName(name) {
		return nil, fmt.Errorf("invalid page name %q", name)
	}

	var created *model.Page
	err := r.st.Update(ctx, func(tx *store.Tx) error {
		file := pageFile(name)
		if tx.Exists(file) {
			return fmt.Errorf("page %q: %w", name, repository.ErrConflict)
		}

		entries, err := readRegistry(tx)
		if err != nil {
			return err
		}
		for _, e := range entries {
			if e.Status != model.StatusArchived && e.Path == route {
				return fmt.Errorf("path %q is used by page %q: %w", route, e.Page, repository.ErrConflict)
			}
		}

		page := model.NewPage(name, title, route, r.timestamp())
		entries = append(entries, model.RouteEntry{
			Page:   name,
			Path:   route,
			Status: model.StatusDraft,
			Src:    pageSrc(name),
		})

		if err := tx.Put(file, page); err != nil {
			return err
		}
		if err := tx.Put(RegistryFile, entries); err != nil {
			return err
		}
		created = page
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *PageYAML) Get(ctx context.Context, name string) (*model.Page, error) {
	if !plainName(name) {
		return nil, fmt.Errorf("page %q: %w", name, repository.ErrNotFound)
	}
	return r.read(ctx, r.st, pageFile(name))
}

func (r *PageYAML) GetByRouteEntry(ctx context.Context, entry model.RouteEntry) (*model.Page, error) {
	if !plainName(entry.Src) {
		return nil, fmt.Errorf("route %q src %q: %w", entry.Path, entry.Src, repository.ErrNotFound)
	}
	return r.read(ctx, r.st, path.Join(PagesDir, entry.Src))
}

// read decodes a page file. The page name always comes from the file name;
// a document without content reads as errBlankPage.
func (r *PageYAML) read(ctx context.Context, src docReader, file string) (*model.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var p *model.Page
	if err := src.Read(file, &p); err != nil {
		if isNotExist(err) {
			return nil, fmt.Errorf("page file %s: %w", file, repository.ErrNotFound)
		}
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("page file %s: %w", file, errBlankPage)
	}
	p.Name = strings.TrimSuffix(path.Base(file), ext)
	p.Normalize()
	return p, nil
}

// List parses every pages/*.yml, drops archived pages and sorts by name.
func (r *PageYAML) List(ctx context.Context) ([]model.Page, error) {
	files, err := r.st.Glob(PagesDir + "/*" + ext)
	if err != nil {
		return nil, err
	}

	pages := make([]model.Page, 0, len(files))
	for _, file := range files {
		p, err := r.read(ctx, r.st, file)
		if errors.Is(err, errBlankPage) {
			continue
		}
		if err != nil {
			return nil, err
		}
		if p.Status == model.StatusArchived {
			continue
		}
		pages = append(pages, *p)
	}

	sort.SliceStable(pages, func(i, j int) bool { return pages[i].Name < pages[j].Name })
	return pages, nil
}

// Update applies patch to the page and rewrites its registry row (path,
// status, locale prefixes) in the same commit. A missing row is recreated.
func (r *PageYAML) Update(ctx context.Context, name string, patch repository.PagePatch) (*model.Page, error) {
	if !plainName(name) {
		return nil, fmt.Errorf("page %q: %w", name, repository.ErrNotFound)
	}

	var updated *model.Page
	err := r.st.Update(ctx, func(tx *store.Tx) error {
		file := pageFile(name)
		page, err := r.read(ctx, tx, file)
		if err != nil {
			return err
		}
		applyPatch(page, patch)
		page.ModifiedAt = r.timestamp()

		entries, err := readRegistry(tx)
		if err != nil {
			return err
		}

		idx := -1
		for i, e := range entries {
			if e.Page == name || e.Src == pageSrc(name) {
				idx = i
				break
			}
		}
		if idx < 0 {
			logger.ForComponent("pages").Warn("registry row missing, recreating", slog.String("page", name))
			entries = append(entries, model.RouteEntry{Page: name, Src: pageSrc(name)})
			idx = len(entries) - 1
		}

		entry := &entries[idx]
		entry.Path = page.Routes.Default
		entry.Status = page.Status
		if patch.Routes != nil {
			switch {
			case len(patch.Routes.Langs) > 0:
				entry.Langs = model.OnlyLocales(patch.Routes.Langs...)
			case entry.Langs.Mode == model.PrefixOnly:
				entry.Langs = model.LocalePrefix{}
			}
		}
		if patch.Langs != nil {
			entry.Langs = *patch.Langs
		}

		if entry.Status != model.StatusArchived {
			for i, e := range entries {
				if i != idx && e.Status != model.StatusArchived && e.Path == entry.Path {
					return fmt.Errorf("path %q is used by page %q: %w", entry.Path, e.Page, repository.ErrConflict)
				}
			}
		}

		if err := tx.Put(file, page); err != nil {
			return err
		}
		if err := tx.Put(RegistryFile, entries); err != nil {
			return err
		}
		updated = page
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func applyPatch(p *model.Page, patch repository.PagePatch) {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.SEO != nil {
		p.SEO = *patch.SEO
	}
	if patch.Head != nil {
		p.Head = *patch.Head
	}
	if patch.Variables != nil {
		p.Variables = *patch.Variables
	}
	if patch.Blocks != nil {
		p.Blocks = *patch.Blocks
	}
	if patch.Routes != nil {
		p.Routes = *patch.Routes
	}
	p.Normalize()
}
