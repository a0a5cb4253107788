package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// localStorage walks a directory on the local filesystem.
type localStorage struct {
	root string
}

// NewLocal returns a Storage over the directory root. The directory does not
// have to exist yet.
func NewLocal(root string) Storage {
	return &localStorage{root: filepath.Clean(root)}
}

func (l *localStorage) List(ctx context.Context) ([]ObjectInfo, error) {
	info, err := os.Stat(l.root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrRootNotFound
		}
		return nil, fmt.Errorf("stat media root: %w", err)
	}
	if !info.IsDir() {
		return nil, ErrRootNotFound
	}

	var out []ObjectInfo
	err = doublestar.GlobWalk(os.DirFS(l.root), "**", func(p string, d fs.DirEntry) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		fi, err := d.Info()
		if err != nil {
			return nil
		}
		out = append(out, ObjectInfo{Key: p, Size: fi.Size(), LastModified: fi.ModTime()})
		return nil
	}, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("walk media root: %w", err)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

func (l *localStorage) Capacity(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return diskCapacity(l.root)
}
