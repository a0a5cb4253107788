package model

// PageStatus is the publication state of a page.
type PageStatus string

const (
	StatusDraft     PageStatus = "draft"
	StatusPublished PageStatus = "published"
	StatusArchived  PageStatus = "archived"
)

// Valid reports whether s is one of the known statuses.
func (s PageStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}

// SEOCard is the share-card metadata used for Open Graph and Twitter.
type SEOCard struct {
	Image       *string `yaml:"image" json:"image"`
	Title       string  `yaml:"title" json:"title"`
	Description string  `yaml:"description" json:"description"`
}

type SEO struct {
	Image       *string `yaml:"image" json:"image"`
	Title       string  `yaml:"title" json:"title"`
	Description string  `yaml:"description" json:"description"`
	OG          SEOCard `yaml:"og" json:"og"`
	Twitter     SEOCard `yaml:"twitter" json:"twitter"`
}

// PageRoutes records the page's public path and the locales it was authored for.
type PageRoutes struct {
	Default string   `yaml:"default" json:"default"`
	Langs   []string `yaml:"langs" json:"langs"`
}

// Page is one stored page document. Name is unique and matches the file name.
type Page struct {
	Name       string         `yaml:"name" json:"name"`
	Title      string         `yaml:"title" json:"title"`
	Status     PageStatus     `yaml:"status" json:"status"`
	SEO        SEO            `yaml:"seo" json:"seo"`
	Head       []any          `yaml:"head" json:"head"`
	Variables  map[string]any `yaml:"variables" json:"variables"`
	Blocks     []any          `yaml:"blocks" json:"blocks"`
	Routes     PageRoutes     `yaml:"routes" json:"routes"`
	CreatedAt  string         `yaml:"createdAt" json:"createdAt"`
	ModifiedAt string         `yaml:"modifiedAt" json:"modifiedAt"`
}

// NewPage builds a draft page with empty SEO, head, variables and blocks.
func NewPage(name, title, route, now string) *Page {
	return &Page{
		Name:   name,
		Title:  title,
		Status: StatusDraft,
		SEO: SEO{
			Title:   title,
			OG:      SEOCard{Title: title},
			Twitter: SEOCard{Title: title},
		},
		Head:      []any{},
		Variables: map[string]any{},
		Blocks:    []any{},
		Routes: PageRoutes{
			Default: route,
			Langs:   []string{},
		},
		CreatedAt:  now,
		ModifiedAt: now,
	}
}

// Normalize converts free-form YAML values into JSON-encodable ones.
func (p *Page) Normalize() {
	p.Head = NormalizeSlice(p.Head)
	p.Blocks = NormalizeSlice(p.Blocks)
	p.Variables = NormalizeMap(p.Variables)
	if p.Head == nil {
		p.Head = []any{}
	}
	if p.Blocks == nil {
		p.Blocks = []any{}
	}
	if p.Variables == nil {
		p.Variables = map[string]any{}
	}
	if p.Routes.Langs == nil {
		p.Routes.Langs = []string{}
	}
}

func init() {
	RegisterDescriptor(Descriptor{
		Name:   "craftly/model.Page",
		Label:  "Page",
		Fields: []string{"name", "title", "status", "seo", "head", "variables", "blocks", "routes", "createdAt", "modifiedAt"},
		Table:  "pages",
	})
}
