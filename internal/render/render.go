// Package render turns a stored page into HTML.
package render

import (
	"fmt"
	"html/template"
	"io"
	"maps"

	"craftly/internal/model"
)

// View is everything a page template receives.
type View struct {
	Page    *model.Page
	Locale  string
	Params  map[string]string
	Preview bool
}

// Renderer writes the HTML of a page view.
type Renderer interface {
	Render(w io.Writer, v View) error
}

// DataKey is the template data key holding the full page document.
const DataKey = "__craftly"

// Data builds the template data for v: the page variables at the top level
// plus the page document, route params, locale and preview flag under DataKey.
func Data(v View) map[string]any {
	data := make(map[string]any, len(v.Page.Variables)+1)
	maps.Copy(data, v.Page.Variables)

	params := v.Params
	if params == nil {
		params = map[string]string{}
	}
	data[DataKey] = map[string]any{
		"name":        v.Page.Name,
		"title":       v.Page.Title,
		"status":      v.Page.Status,
		"seo":         v.Page.SEO,
		"head":        v.Page.Head,
		"variables":   v.Page.Variables,
		"blocks":      v.Page.Blocks,
		"routes":      v.Page.Routes,
		"createdAt":   v.Page.CreatedAt,
		"modifiedAt":  v.Page.ModifiedAt,
		"locale":      v.Locale,
		"routeParams": params,
		"preview":     v.Preview,
	}
	return data
}

// TemplateRenderer renders pages with html/template.
type TemplateRenderer struct {
	tmpl *template.Template
}

// NewTemplateRenderer parses the template file at path, or the built-in page
// template when path is empty.
func NewTemplateRenderer(path string) (*TemplateRenderer, error) {
	var (
		t   *template.Template
		err error
	)
	if path == "" {
		t, err = template.New("page").Parse(defaultTemplate)
	} else {
		t, err = template.ParseFiles(path)
	}
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}
	return &TemplateRenderer{tmpl: t}, nil
}

func (r *TemplateRenderer) Render(w io.Writer, v View) error {
	if v.Page == nil {
		return fmt.Errorf("render: nil page")
	}
	return r.tmpl.Execute(w, Data(v))
}

const defaultTemplate = `<!DOCTYPE html>
{{- $p := index . "__craftly" }}
<html lang="{{ $p.locale }}">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>{{ if $p.seo.Title }}{{ $p.seo.Title }}{{ else }}{{ $p.title }}{{ end }}</title>
  {{- with $p.seo.Description }}
  <meta name="description" content="{{ . }}" />
  {{- end }}
  {{- with $p.seo.OG.Title }}
  <meta property="og:title" content="{{ . }}" />
  {{- end }}
  {{- with $p.seo.Twitter.Title }}
  <meta name="twitter:title" content="{{ . }}" />
  {{- end }}
  {{- if $p.preview }}
  <meta name="robots" content="noindex" />
  {{- end }}
</head>
<body>
  <div id="app"></div>
  <script id="__craftly" type="application/json">{{ $p }}</script>
</body>
</html>
`
