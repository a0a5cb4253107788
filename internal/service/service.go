package service

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"time"

	"craftly/internal/logger"
	"craftly/internal/model"
	"craftly/internal/repository"
)

var (
	ErrNotFound      = repository.ErrNotFound
	ErrConflict      = repository.ErrConflict
	ErrInvalidName   = errors.New("invalid name")
	ErrInvalidLocale = errors.New("invalid locale code")
	ErrInvalidStatus = errors.New("invalid page status")
	ErrPathRequired  = errors.New("route path is required")
)

var (
	pageNamePattern   = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)
	localeCodePattern = regexp.MustCompile(`^[A-Za-z]{2,3}([_-][A-Za-z0-9]{2,8})*$`)
)

// ValidPageName reports whether name can be used as a page name.
func ValidPageName(name string) bool { return pageNamePattern.MatchString(name) }

// ValidLocaleCode reports whether code looks like a locale code (en, pt-BR, zh_Hant).
func ValidLocaleCode(code string) bool { return localeCodePattern.MatchString(code) }

// recorder appends activity entries. Failures are logged and swallowed so a
// successful mutation is never reported as failed.
type recorder struct {
	log repository.ActivityLog
	now func() time.Time
}

func (r recorder) record(ctx context.Context, action, subject, detail string) {
	if r.log == nil {
		return
	}
	entry := model.Activity{
		Action:  action,
		Subject: subject,
		Detail:  detail,
		At:      r.now().UTC().Format(time.RFC3339),
	}
	if err := r.log.Append(ctx, entry); err != nil {
		logger.ForComponent("activity").Warn("failed to append activity",
			slog.String("action", action),
			slog.String("subject", subject),
			slog.Any("error", err),
		)
	}
}
