package yamlfs

import (
	"context"

	"craftly/internal/model"
	"craftly/internal/repository"
	"craftly/internal/store"
)

// MaxLogEntries bounds ui/log.yml; older entries are dropped on append.
const MaxLogEntries = 100

// SiteYAML reads the ui/ files of the content directory.
type SiteYAML struct {
	st *store.Store
}

func NewSiteYAML(st *store.Store) *SiteYAML {
	return &SiteYAML{st: st}
}

var _ repository.SiteRepository = (*SiteYAML)(nil)

// Theme returns nil when ui/theme.yml is absent.
func (r *SiteYAML) Theme(ctx context.Context) (map[string]any, error) {
	return r.readMap(ctx, ThemeFile)
}

// Colors returns nil when ui/colors.yml is absent.
func (r *SiteYAML) Colors(ctx context.Context) (map[string]any, error) {
	return r.readMap(ctx, ColorsFile)
}

func (r *SiteYAML) readMap(ctx context.Context, file string) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var m map[string]any
	if err := r.st.Read(file, &m); err != nil {
		if isNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return model.NormalizeMap(m), nil
}

// Log returns the activity log, empty when ui/log.yml is absent.
func (r *SiteYAML) Log(ctx context.Context) ([]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := readLog(r.st)
	if err != nil {
		return nil, err
	}
	return model.NormalizeSlice(entries), nil
}

// Append adds entry to the end of the activity log, keeping the newest MaxLogEntries.
func (r *SiteYAML) Append(ctx context.Context, entry model.Activity) error {
	return r.st.Update(ctx, func(tx *store.Tx) error {
		entries, err := readLog(tx)
		if err != nil {
			return err
		}
		entries = append(entries, entry)
		if n := len(entries); n > MaxLogEntries {
			entries = entries[n-MaxLogEntries:]
		}
		return tx.Put(LogFile, entries)
	})
}

func readLog(r docReader) ([]any, error) {
	var entries []any
	if err := r.Read(LogFile, &entries); err != nil {
		if isNotExist(err) {
			return []any{}, nil
		}
		return nil, err
	}
	if entries == nil {
		entries = []any{}
	}
	return entries, nil
}
