package yamlfs

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"craftly/internal/model"
	"craftly/internal/repository"
	"craftly/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
}

func readFile(t *testing.T, root, rel string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	require.NoError(t, err)
	return string(b)
}

func newPageRepo(t *testing.T) (*PageYAML, *store.Store, string) {
	t.Helper()
	root := t.TempDir()
	st := store.New(root)
	repo := NewPageYAML(st)
	repo.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return repo, st, root
}

func TestPageYAML_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("writes page and draft registry entry", func(t *testing.T) {
		repo, st, _ := newPageRepo(t)

		page, err := repo.Create(ctx, "about", "About us", "/about")
		require.NoError(t, err)
		assert.Equal(t, "about", page.Name)
		assert.Equal(t, model.StatusDraft, page.Status)
		assert.Equal(t, "2026-03-01T12:00:00Z", page.CreatedAt)

		var entries []model.RouteEntry
		require.NoError(t, st.Read(RegistryFile, &entries))
		require.Len(t, entries, 1)
		assert.Equal(t, "about.yml", entries[0].Src)
		assert.Equal(t, "/about", entries[0].Path)
		assert.Equal(t, model.StatusDraft, entries[0].Status)

		got, err := repo.GetByRouteEntry(ctx, entries[0])
		require.NoError(t, err)
		assert.Equal(t, "about", got.Name)
		assert.Equal(t, "About us", got.Title)
	})

	t.Run("existing page leaves registry unchanged", func(t *testing.T) {
		repo, _, root := newPageRepo(t)
		writeFile(t, root, "pages/home.yml", "name: home\ntitle: Home\n")
		registry := "- page: home\n  path: /\n  status: published\n  src: home.yml\n"
		writeFile(t, root, RegistryFile, registry)

		_, err := repo.Create(ctx, "home", "Again", "/again")
		assert.ErrorIs(t, err, repository.ErrConflict)
		assert.Equal(t, registry, readFile(t, root, RegistryFile))
		assert.Equal(t, "name: home\ntitle: Home\n", readFile(t, root, "pages/home.yml"))
	})

	t.Run("path taken by another page", func(t *testing.T) {
		repo, st, root := newPageRepo(t)
		writeFile(t, root, "pages/home.yml", "name: home\n")
		writeFile(t, root, RegistryFile, "- page: home\n  path: /\n  status: published\n  src: home.yml\n")

		_, err := repo.Create(ctx, "landing", "Landing", "/")
		assert.ErrorIs(t, err, repository.ErrConflict)
		assert.False(t, st.Exists("pages/landing.yml"))
	})

	t.Run("archived path can be reused", func(t *testing.T) {
		repo, _, root := newPageRepo(t)
		writeFile(t, root, "pages/old.yml", "name: old\nstatus: archived\n")
		writeFile(t, root, RegistryFile, "- page: old\n  path: /promo\n  status: archived\n  src: old.yml\n")

		_, err := repo.Create(ctx, "promo", "Promo", "/promo")
		assert.NoError(t, err)
	})

	t.Run("rejects path separators", func(t *testing.T) {
		repo, _, _ := newPageRepo(t)
		_, err := repo.Create(ctx, "../evil", "x", "/x")
		assert.Error(t, err)
	})
}

func TestPageYAML_List(t *testing.T) {
	repo, _, root := newPageRepo(t)
	writeFile(t, root, "pages/zeta.yml", "name: zeta\nstatus: published\n")
	writeFile(t, root, "pages/alpha.yml", "title: Alpha\nstatus: draft\n")
	writeFile(t, root, "pages/gone.yml", "name: gone\nstatus: archived\n")

	pages, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, pages, 2)
	assert.Equal(t, "alpha", pages[0].Name)
	assert.Equal(t, "zeta", pages[1].Name)
	for _, p := range pages {
		assert.NotEqual(t, model.StatusArchived, p.Status)
	}
}

func TestPageYAML_NameFromFile(t *testing.T) {
	repo, _, root := newPageRepo(t)
	writeFile(t, root, "pages/foo.yml", "name: bar\ntitle: Foo\nstatus: published\n")
	writeFile(t, root, "pages/empty.yml", "")
	writeFile(t, root, "pages/null.yml", "~\n")

	page, err := repo.Get(context.Background(), "foo")
	require.NoError(t, err)
	assert.Equal(t, "foo", page.Name)

	page, err = repo.GetByRouteEntry(context.Background(), model.RouteEntry{Page: "bar", Src: "foo.yml"})
	require.NoError(t, err)
	assert.Equal(t, "foo", page.Name)

	pages, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Equal(t, "foo", pages[0].Name)

	_, err = repo.Get(context.Background(), "empty")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPageYAML_ListEmpty(t *testing.T) {
	repo := NewPageYAML(store.New(filepath.Join(t.TempDir(), "missing")))
	pages, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, pages)
}

func TestPageYAML_Get(t *testing.T) {
	repo, _, root := newPageRepo(t)
	writeFile(t, root, "pages/home.yml", "name: home\ntitle: Home\nvariables:\n  hero:\n    size: 2\n")
	writeFile(t, root, "pages/broken.yml", "name: [\n")

	page, err := repo.Get(context.Background(), "home")
	require.NoError(t, err)
	assert.Equal(t, "Home", page.Title)
	assert.Equal(t, map[string]any{"size": 2}, page.Variables["hero"])

	_, err = repo.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = repo.Get(context.Background(), "broken")
	assert.ErrorIs(t, err, repository.ErrMalformed)
}

func TestPageYAML_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("syncs registry", func(t *testing.T) {
		repo, st, _ := newPageRepo(t)
		_, err := repo.Create(ctx, "about", "About", "/about")
		require.NoError(t, err)

		title := "About Craftly"
		status := model.StatusPublished
		langs := model.NoLocalePrefix()
		page, err := repo.Update(ctx, "about", repository.PagePatch{
			Title:  &title,
			Status: &status,
			Routes: &model.PageRoutes{Default: "/about-us"},
			Langs:  &langs,
		})
		require.NoError(t, err)
		assert.Equal(t, "About Craftly", page.Title)
		assert.Equal(t, "2026-03-01T12:00:00Z", page.ModifiedAt)

		var entries []model.RouteEntry
		require.NoError(t, st.Read(RegistryFile, &entries))
		require.Len(t, entries, 1)
		assert.Equal(t, "/about-us", entries[0].Path)
		assert.Equal(t, model.StatusPublished, entries[0].Status)
		assert.Equal(t, model.PrefixNone, entries[0].Langs.Mode)
	})

	t.Run("clearing route langs restores default prefixing", func(t *testing.T) {
		repo, st, _ := newPageRepo(t)
		_, err := repo.Create(ctx, "about", "About", "/about")
		require.NoError(t, err)

		_, err = repo.Update(ctx, "about", repository.PagePatch{
			Routes: &model.PageRoutes{Default: "/about", Langs: []string{"en"}},
		})
		require.NoError(t, err)

		var entries []model.RouteEntry
		require.NoError(t, st.Read(RegistryFile, &entries))
		assert.Equal(t, model.OnlyLocales("en"), entries[0].Langs)

		page, err := repo.Update(ctx, "about", repository.PagePatch{
			Routes: &model.PageRoutes{Default: "/about", Langs: []string{}},
		})
		require.NoError(t, err)
		assert.Empty(t, page.Routes.Langs)

		entries = nil
		require.NoError(t, st.Read(RegistryFile, &entries))
		assert.Equal(t, model.LocalePrefix{}, entries[0].Langs)
	})

	t.Run("route change keeps disabled prefixes", func(t *testing.T) {
		repo, st, root := newPageRepo(t)
		writeFile(t, root, "pages/about.yml", "name: about\nroutes:\n  default: /about\n")
		writeFile(t, root, RegistryFile, "- page: about\n  path: /about\n  status: draft\n  src: about.yml\n  langs: false\n")

		_, err := repo.Update(ctx, "about", repository.PagePatch{Routes: &model.PageRoutes{Default: "/about-us"}})
		require.NoError(t, err)

		var entries []model.RouteEntry
		require.NoError(t, st.Read(RegistryFile, &entries))
		assert.Equal(t, "/about-us", entries[0].Path)
		assert.Equal(t, model.PrefixNone, entries[0].Langs.Mode)
	})

	t.Run("path clash", func(t *testing.T) {
		repo, st, _ := newPageRepo(t)
		_, err := repo.Create(ctx, "home", "Home", "/")
		require.NoError(t, err)
		_, err = repo.Create(ctx, "about", "About", "/about")
		require.NoError(t, err)

		_, err = repo.Update(ctx, "about", repository.PagePatch{Routes: &model.PageRoutes{Default: "/"}})
		assert.ErrorIs(t, err, repository.ErrConflict)

		got, err := repo.Get(ctx, "about")
		require.NoError(t, err)
		assert.Equal(t, "/about", got.Routes.Default)
		var entries []model.RouteEntry
		require.NoError(t, st.Read(RegistryFile, &entries))
		assert.Equal(t, "/about", entries[1].Path)
	})

	t.Run("recreates missing registry row", func(t *testing.T) {
		repo, st, root := newPageRepo(t)
		writeFile(t, root, "pages/lost.yml", "name: lost\nroutes:\n  default: /lost\n")

		_, err := repo.Update(ctx, "lost", repository.PagePatch{})
		require.NoError(t, err)

		var entries []model.RouteEntry
		require.NoError(t, st.Read(RegistryFile, &entries))
		require.Len(t, entries, 1)
		assert.Equal(t, "lost.yml", entries[0].Src)
		assert.Equal(t, "/lost", entries[0].Path)
	})

	t.Run("missing page", func(t *testing.T) {
		repo, _, _ := newPageRepo(t)
		_, err := repo.Update(ctx, "ghost", repository.PagePatch{})
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestRouteRegistryYAML_Load(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "pages/home.yml", "name: home\n")
	writeFile(t, root, "pages/about.yml", "name: about\n")
	writeFile(t, root, RegistryFile, `- page: home
  path: /
  status: published
  src: home.yml
- page: about
  path: /about
  status: draft
  src: about.yml
  langs: false
- page: old
  path: /old
  status: archived
  src: old.yml
- page: orphan
  path: /orphan
  status: published
  src: orphan.yml
`)

	entries, err := NewRouteRegistryYAML(store.New(root)).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "/", entries[0].Path)
	assert.Equal(t, "/about", entries[1].Path)
	assert.Equal(t, model.PrefixNone, entries[1].Langs.Mode)
}

func TestRouteRegistryYAML_LoadMissing(t *testing.T) {
	entries, err := NewRouteRegistryYAML(store.New(t.TempDir())).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLocaleYAML(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	writeFile(t, root, "en.yml", "hello: Hello\nbye: Bye\n")
	repo := NewLocaleYAML(store.New(root))

	codes, err := repo.Codes(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"en"}, codes)

	dict, err := repo.Data(ctx, "en")
	require.NoError(t, err)
	assert.Equal(t, model.Dictionary{"hello": "Hello", "bye": "Bye"}, dict)

	_, err = repo.Data(ctx, "fr")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, repo.Create(ctx, "fr"))
	assert.ErrorIs(t, repo.Create(ctx, "fr"), repository.ErrConflict)

	dict, err = repo.Data(ctx, "fr")
	require.NoError(t, err)
	assert.Empty(t, dict)

	require.NoError(t, repo.Update(ctx, "fr", model.Dictionary{"hello": "Bonjour"}))
	dict, err = repo.Data(ctx, "fr")
	require.NoError(t, err)
	assert.Equal(t, "Bonjour", dict["hello"])

	assert.ErrorIs(t, repo.Update(ctx, "de", model.Dictionary{}), repository.ErrNotFound)

	_, err = repo.ModTime(ctx, "en")
	assert.NoError(t, err)

	codes, err = repo.Codes(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"en", "fr"}, codes)
}

func TestSiteYAML(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	repo := NewSiteYAML(store.New(root))

	theme, err := repo.Theme(ctx)
	require.NoError(t, err)
	assert.Nil(t, theme)

	log, err := repo.Log(ctx)
	require.NoError(t, err)
	assert.Equal(t, []any{}, log)

	writeFile(t, root, ThemeFile, "font: Inter\n")
	theme, err = repo.Theme(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Inter", theme["font"])

	for i := 0; i < MaxLogEntries+5; i++ {
		require.NoError(t, repo.Append(ctx, model.Activity{Action: model.ActivityPageCreated, Subject: "p"}))
	}
	log, err = repo.Log(ctx)
	require.NoError(t, err)
	assert.Len(t, log, MaxLogEntries)
}
