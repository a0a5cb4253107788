package yamlfs

import (
	"context"
	"log/slog"
	"path"

	"craftly/internal/logger"
	"craftly/internal/model"
	"craftly/internal/repository"
	"craftly/internal/store"
)

// RouteRegistryYAML reads routes.yml.
type RouteRegistryYAML struct {
	st *store.Store
}

func NewRouteRegistryYAML(st *store.Store) *RouteRegistryYAML {
	return &RouteRegistryYAML{st: st}
}

var _ repository.RouteRepository = (*RouteRegistryYAML)(nil)

// Load returns non-archived entries in file order. Entries whose src file is
// missing are skipped so a half-written create never produces a dead route.
func (r *RouteRegistryYAML) Load(ctx context.Context) ([]model.RouteEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := readRegistry(r.st)
	if err != nil {
		return nil, err
	}

	log := logger.ForComponent("routes")
	out := make([]model.RouteEntry, 0, len(entries))
	for _, e := range entries {
		if e.Status == model.StatusArchived {
			continue
		}
		if !plainName(e.Src) || !r.st.Exists(path.Join(PagesDir, e.Src)) {
			log.Warn("skipping route with missing page file",
				slog.String("path", e.Path),
				slog.String("src", e.Src),
			)
			continue
		}
		out = append(out, e)
	}
	return out, nil
}
