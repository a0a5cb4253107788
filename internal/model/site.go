package model

// Activity is one entry of the site activity log (ui/log.yml).
type Activity struct {
	Action  string `yaml:"action" json:"action"`
	Subject string `yaml:"subject" json:"subject"`
	Detail  string `yaml:"detail,omitempty" json:"detail,omitempty"`
	At      string `yaml:"at" json:"at"`
}

const (
	ActivityPageCreated   = "page.created"
	ActivityPageUpdated   = "page.updated"
	ActivityLocaleCreated = "locale.created"
	ActivityLocaleUpdated = "locale.updated"
)

// SiteSnapshot aggregates independently read site files. The parts may
// reflect different points in time.
type SiteSnapshot struct {
	Log    []any          `json:"log"`
	Theme  map[string]any `json:"theme"`
	Pages  []Page         `json:"pages"`
	Colors map[string]any `json:"colors"`
}
