// Package yamlfs implements the repository interfaces on top of YAML files
// kept in a content directory:
//
//	pages/<name>.yml   one page per file
//	routes.yml         route registry
//	ui/theme.yml       theme settings
//	ui/colors.yml      color palette
//	ui/log.yml         activity log
//
// Locale dictionaries live in their own directory as <code>.yml.
package yamlfs

import (
	"errors"
	"io/fs"
	"path"
	"strings"

	"craftly/internal/model"
)

const (
	PagesDir     = "pages"
	RegistryFile = "routes.yml"
	ThemeFile    = "ui/theme.yml"
	ColorsFile   = "ui/colors.yml"
	LogFile      = "ui/log.yml"

	ext = ".yml"
)

// docReader is satisfied by both *store.Store and *store.Tx.
type docReader interface {
	Read(rel string, out any) error
}

func pageFile(name string) string { return path.Join(PagesDir, name+ext) }

func pageSrc(name string) string { return name + ext }

// plainName reports whether s can be used as a single file name component.
func plainName(s string) bool {
	return s != "" && s != "." && s != ".." && !strings.ContainsAny(s, `/\`)
}

func isNotExist(err error) bool { return errors.Is(err, fs.ErrNotExist) }

// readRegistry returns every registry entry, archived ones included.
// A missing registry file yields no entries.
func readRegistry(r docReader) ([]model.RouteEntry, error) {
	var entries []model.RouteEntry
	if err := r.Read(RegistryFile, &entries); err != nil {
		if isNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return entries, nil
}
