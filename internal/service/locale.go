package service

import (
	"context"
	"errors"
	"time"

	"craftly/internal/locale"
	"craftly/internal/model"
	"craftly/internal/repository"
)

// LocaleProvider is the locale source used by LocaleService.
type LocaleProvider interface {
	repository.LocaleRepository
	Name(code string) string
	Dictionaries(ctx context.Context) (map[string]model.Dictionary, error)
}

// LocaleService defines the locale editor use cases.
type LocaleService interface {
	// List returns every locale with its dictionary and last modification time.
	List(ctx context.Context) ([]model.Locale, error)

	// Languages maps each available code to its display name.
	Languages(ctx context.Context) (map[string]string, error)

	// Get returns the locale with its comparison against all other locales.
	// An unknown code yields an empty dictionary.
	Get(ctx context.Context, code string) (*model.LocaleDetail, error)

	// Create writes an empty dictionary for code.
	Create(ctx context.Context, code string) error

	// Update replaces the dictionary of code and returns the refreshed detail.
	Update(ctx context.Context, code string, dict model.Dictionary) (*model.LocaleDetail, error)
}

// LocaleTimeLayout is the format of Locale.UpdatedAt.
const LocaleTimeLayout = "2006-01-02 15:04:05"

type localeService struct {
	locales LocaleProvider
	rec     recorder
}

// NewLocaleService constructs a LocaleService. activity may be nil.
func NewLocaleService(locales LocaleProvider, activity repository.ActivityLog) LocaleService {
	return &localeService{locales: locales, rec: recorder{log: activity, now: time.Now}}
}

func (s *localeService) List(ctx context.Context) ([]model.Locale, error) {
	codes, err := s.locales.Codes(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Locale, 0, len(codes))
	for _, code := range codes {
		data, err := s.locales.Data(ctx, code)
		if err != nil {
			return nil, err
		}
		mod, err := s.locales.ModTime(ctx, code)
		if err != nil {
			return nil, err
		}
		out = append(out, model.Locale{
			Code:      code,
			Name:      s.locales.Name(code),
			Data:      data,
			UpdatedAt: mod.Format(LocaleTimeLayout),
		})
	}
	return out, nil
}

func (s *localeService) Languages(ctx context.Context) (map[string]string, error) {
	codes, err := s.locales.Codes(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(codes))
	for _, code := range codes {
		out[code] = s.locales.Name(code)
	}
	return out, nil
}

func (s *localeService) Get(ctx context.Context, code string) (*model.LocaleDetail, error) {
	if !ValidLocaleCode(code) {
		return nil, ErrInvalidLocale
	}
	dicts, err := s.locales.Dictionaries(ctx)
	if err != nil {
		return nil, err
	}
	data := dicts[code]
	if data == nil {
		data = model.Dictionary{}
	}
	return &model.LocaleDetail{
		Code:    code,
		Name:    s.locales.Name(code),
		Data:    data,
		Compare: locale.Compare(code, dicts),
	}, nil
}

func (s *localeService) Create(ctx context.Context, code string) error {
	if !ValidLocaleCode(code) {
		return ErrInvalidLocale
	}
	if err := s.locales.Create(ctx, code); err != nil {
		return err
	}
	s.rec.record(ctx, model.ActivityLocaleCreated, code, "")
	return nil
}

func (s *localeService) Update(ctx context.Context, code string, dict model.Dictionary) (*model.LocaleDetail, error) {
	if !ValidLocaleCode(code) {
		return nil, ErrNotFound
	}
	if err := s.locales.Update(ctx, code, dict); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	s.rec.record(ctx, model.ActivityLocaleUpdated, code, "")
	return s.Get(ctx, code)
}
