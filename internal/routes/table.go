// Package routes turns the route registry into an explicit table of public
// page routes and mounts it on a Fiber router.
package routes

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"

	"craftly/internal/model"
)

// Route is one public page route. Locale is the locale the page is rendered in.
type Route struct {
	Method string
	Path   string
	Locale string
	Entry  model.RouteEntry
}

var placeholder = regexp.MustCompile(`\{(\w+)(\?)?\}`)

// RouterPath converts `{name}` placeholders into router params (`:name`,
// `:name?` for optional ones).
func RouterPath(p string) string {
	if p == "" || p[0] != '/' {
		p = "/" + p
	}
	return placeholder.ReplaceAllString(p, ":$1$2")
}

// Prefixed returns p under a locale prefix. The root path maps to "/<code>".
func Prefixed(code, p string) string {
	if p == "/" {
		return "/" + code
	}
	return "/" + code + p
}

// BuildTable expands registry entries into routes. Every entry gets its bare
// path in the default locale. Entries with `langs: false` get nothing more,
// entries with a list get a prefix for each listed code, and the rest get a
// prefix for every available locale.
func BuildTable(entries []model.RouteEntry, locales []string, defaultLocale string) []Route {
	table := make([]Route, 0, len(entries)*(len(locales)+1))
	seen := make(map[string]struct{})

	add := func(path, locale string, e model.RouteEntry) {
		if _, dup := seen[path]; dup {
			return
		}
		seen[path] = struct{}{}
		table = append(table, Route{Method: fiber.MethodGet, Path: path, Locale: locale, Entry: e})
	}

	for _, e := range entries {
		base := RouterPath(e.Path)
		add(base, defaultLocale, e)

		var codes []string
		switch e.Langs.Mode {
		case model.PrefixNone:
			continue
		case model.PrefixOnly:
			codes = e.Langs.Codes
		default:
			codes = locales
		}
		for _, code := range codes {
			code = strings.Trim(code, "/ ")
			if code == "" {
				continue
			}
			add(Prefixed(code, base), code, e)
		}
	}
	return table
}
