package main

import (
	"fmt"

	"craftly/internal/config"
	"craftly/internal/locale"
	"craftly/internal/media"
	"craftly/internal/repository/yamlfs"
	"craftly/internal/service"
	"craftly/internal/storage"
	"craftly/internal/store"
)

// components holds the wired repositories and services shared by every command.
type components struct {
	cfg      *config.AppConfig
	content  *store.Store
	pages    *yamlfs.PageYAML
	registry *yamlfs.RouteRegistryYAML
	site     *yamlfs.SiteYAML
	locales  *locale.Provider
	localeFS *yamlfs.LocaleYAML
}

func newComponents(cfg *config.AppConfig) (*components, error) {
	content := store.New(cfg.Content.Root)

	localeFS := yamlfs.NewLocaleYAML(store.New(cfg.Content.LocalesPath))

	provider, err := locale.NewProvider(localeFS, cfg.Content.LocaleCacheSize, cfg.Content.DefaultLocale)
	if err != nil {
		return nil, fmt.Errorf("locale cache: %w", err)
	}

	return &components{
		cfg:      cfg,
		content:  content,
		pages:    yamlfs.NewPageYAML(content),
		registry: yamlfs.NewRouteRegistryYAML(content),
		site:     yamlfs.NewSiteYAML(content),
		locales:  provider,
		localeFS: localeFS,
	}, nil
}

func (a *components) mediaStorage() (storage.Storage, error) {
	switch a.cfg.Media.Backend {
	case config.MediaBackendMinIO:
		return storage.NewMinIO(a.cfg.MinIO, a.cfg.Media.Root)
	case config.MediaBackendLocal, "":
		return storage.NewLocal(a.cfg.Media.Root), nil
	default:
		return nil, fmt.Errorf("unknown media backend %q", a.cfg.Media.Backend)
	}
}

func (a *components) services() (service.PageService, service.LocaleService, service.MediaService, service.SiteService, error) {
	src, err := a.mediaStorage()
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("media storage: %w", err)
	}

	pages := service.NewPageService(a.pages, a.site)
	locales := service.NewLocaleService(a.locales, a.site)
	mediaSvc := service.NewMediaService(media.NewScanner(src, a.cfg.Media.URLPrefix))
	site := service.NewSiteService(a.site, a.pages)
	return pages, locales, mediaSvc, site, nil
}
