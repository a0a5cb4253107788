package yamlfs

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"craftly/internal/model"
	"craftly/internal/repository"
	"craftly/internal/store"
)

// LocaleYAML stores one <code>.yml dictionary per locale in its own directory.
type LocaleYAML struct {
	st *store.Store
}

func NewLocaleYAML(st *store.Store) *LocaleYAML {
	return &LocaleYAML{st: st}
}

var _ repository.LocaleRepository = (*LocaleYAML)(nil)

// Dir returns the directory holding the dictionaries.
func (r *LocaleYAML) Dir() string { return r.st.Root() }

func (r *LocaleYAML) Codes(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	files, err := r.st.Glob("*" + ext)
	if err != nil {
		return nil, err
	}
	codes := make([]string, 0, len(files))
	for _, f := range files {
		codes = append(codes, strings.TrimSuffix(f, ext))
	}
	return codes, nil
}

func (r *LocaleYAML) Data(ctx context.Context, code string) (model.Dictionary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !plainName(code) {
		return nil, fmt.Errorf("locale %q: %w", code, repository.ErrNotFound)
	}
	var dict model.Dictionary
	if err := r.st.Read(code+ext, &dict); err != nil {
		if isNotExist(err) {
			return nil, fmt.Errorf("locale %q: %w", code, repository.ErrNotFound)
		}
		return nil, err
	}
	if dict == nil {
		dict = model.Dictionary{}
	}
	return dict, nil
}

func (r *LocaleYAML) ModTime(ctx context.Context, code string) (time.Time, error) {
	if !plainName(code) {
		return time.Time{}, fmt.Errorf("locale %q: %w", code, repository.ErrNotFound)
	}
	t, err := r.st.ModTime(code + ext)
	if err != nil {
		if isNotExist(err) {
			return time.Time{}, fmt.Errorf("locale %q: %w", code, repository.ErrNotFound)
		}
		return time.Time{}, err
	}
	return t, nil
}

func (r *LocaleYAML) Create(ctx context.Context, code string) error {
	if !plainName(code) {
		return fmt.Errorf("invalid locale code %q", code)
	}
	if err := r.st.Create(ctx, code+ext, model.Dictionary{}); err != nil {
		if errors.Is(err, store.ErrExists) {
			return fmt.Errorf("locale %q: %w", code, repository.ErrConflict)
		}
		return err
	}
	return nil
}

func (r *LocaleYAML) Update(ctx context.Context, code string, dict model.Dictionary) error {
	if !plainName(code) {
		return fmt.Errorf("locale %q: %w", code, repository.ErrNotFound)
	}
	if dict == nil {
		dict = model.Dictionary{}
	}
	return r.st.Update(ctx, func(tx *store.Tx) error {
		if !tx.Exists(code + ext) {
			return fmt.Errorf("locale %q: %w", code, repository.ErrNotFound)
		}
		return tx.Put(code+ext, dict)
	})
}
