package repository

import (
	"context"
	"time"

	"craftly/internal/model"
)

// LocaleRepository persists one translation dictionary per locale code.
type LocaleRepository interface {
	// Codes returns the available locale codes, sorted.
	Codes(ctx context.Context) ([]string, error)
	// Data returns the dictionary for code or ErrNotFound.
	Data(ctx context.Context, code string) (model.Dictionary, error)
	// ModTime returns the last modification time of the dictionary file.
	ModTime(ctx context.Context, code string) (time.Time, error)
	// Create writes an empty dictionary; ErrConflict if one exists.
	Create(ctx context.Context, code string) error
	// Update overwrites the dictionary wholesale; ErrNotFound if absent.
	Update(ctx context.Context, code string, dict model.Dictionary) error
}

// SiteRepository reads the site UI files and appends to the activity log.
type SiteRepository interface {
	Theme(ctx context.Context) (map[string]any, error)
	Colors(ctx context.Context) (map[string]any, error)
	Log(ctx context.Context) ([]any, error)
	ActivityLog
}

// ActivityLog records site mutations in ui/log.yml.
type ActivityLog interface {
	Append(ctx context.Context, entry model.Activity) error
}
