package model

// Dictionary is a flat translation table for one locale.
type Dictionary map[string]string

// Locale is a locale summary as listed by the admin API.
type Locale struct {
	Code      string     `json:"code"`
	Name      string     `json:"name"`
	Data      Dictionary `json:"data"`
	UpdatedAt string     `json:"updated_at"`
}

// Comparison holds key-set diagnostics of one locale against all others.
type Comparison struct {
	MissingTranslationsCount int                 `json:"missingTranslationsCount"`
	MissingTranslations      []string            `json:"missingTranslations"`
	ExtraKeysCount           int                 `json:"extraKeysCount"`
	ExtraKeys                map[string][]string `json:"extraKeys"`
	TotalKeys                int                 `json:"totalKeys"`
	Completeness             float64             `json:"completeness"`
}

type LocaleDetail struct {
	Code    string     `json:"code"`
	Name    string     `json:"name"`
	Data    Dictionary `json:"data"`
	Compare Comparison `json:"compare"`
}

func init() {
	RegisterDescriptor(Descriptor{
		Name:   "craftly/model.Locale",
		Label:  "Locale",
		Fields: []string{"code", "name", "data"},
		Table:  "locales",
	})
}
