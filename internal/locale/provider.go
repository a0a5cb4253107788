package locale

import (
	"context"
	"fmt"
	"maps"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"craftly/internal/model"
	"craftly/internal/repository"
)

// Provider serves locale dictionaries through an LRU cache in front of a
// LocaleRepository. Writes through the provider drop the cached entry.
type Provider struct {
	repo          repository.LocaleRepository
	cache         *lru.Cache[string, model.Dictionary]
	defaultLocale string
}

var _ repository.LocaleRepository = (*Provider)(nil)

// NewProvider caches up to size dictionaries.
func NewProvider(repo repository.LocaleRepository, size int, defaultLocale string) (*Provider, error) {
	if size <= 0 {
		size = 64
	}
	cache, err := lru.New[string, model.Dictionary](size)
	if err != nil {
		return nil, fmt.Errorf("locale cache: %w", err)
	}
	return &Provider{repo: repo, cache: cache, defaultLocale: defaultLocale}, nil
}

func (p *Provider) Default() string { return p.defaultLocale }

func (p *Provider) Codes(ctx context.Context) ([]string, error) {
	return p.repo.Codes(ctx)
}

// Name returns the native display name of code ("français" for "fr"),
// or the code itself when it is not a known language tag.
func (p *Provider) Name(code string) string {
	return DisplayName(code)
}

func DisplayName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	if name := display.Self.Name(tag); name != "" {
		return name
	}
	return code
}

// Data returns a copy of the dictionary for code.
func (p *Provider) Data(ctx context.Context, code string) (model.Dictionary, error) {
	if d, ok := p.cache.Get(code); ok {
		return maps.Clone(d), nil
	}
	d, err := p.repo.Data(ctx, code)
	if err != nil {
		return nil, err
	}
	p.cache.Add(code, d)
	return maps.Clone(d), nil
}

// Dictionaries loads the dictionary of every available locale.
func (p *Provider) Dictionaries(ctx context.Context) (map[string]model.Dictionary, error) {
	codes, err := p.Codes(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]model.Dictionary, len(codes))
	for _, code := range codes {
		d, err := p.Data(ctx, code)
		if err != nil {
			return nil, err
		}
		out[code] = d
	}
	return out, nil
}

func (p *Provider) ModTime(ctx context.Context, code string) (time.Time, error) {
	return p.repo.ModTime(ctx, code)
}

func (p *Provider) Create(ctx context.Context, code string) error {
	defer p.Invalidate(code)
	return p.repo.Create(ctx, code)
}

func (p *Provider) Update(ctx context.Context, code string, dict model.Dictionary) error {
	defer p.Invalidate(code)
	return p.repo.Update(ctx, code, dict)
}

// Invalidate drops the cached dictionary of code.
func (p *Provider) Invalidate(code string) {
	p.cache.Remove(code)
}

// Purge drops every cached dictionary.
func (p *Provider) Purge() {
	p.cache.Purge()
}
