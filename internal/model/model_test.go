package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLocalePrefix_UnmarshalYAML(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want LocalePrefix
	}{
		{name: "absent", doc: "page: home\npath: /\n", want: LocalePrefix{}},
		{name: "false", doc: "page: home\nlangs: false\n", want: NoLocalePrefix()},
		{name: "true", doc: "page: home\nlangs: true\n", want: LocalePrefix{}},
		{name: "list", doc: "page: home\nlangs: [en, fr]\n", want: OnlyLocales("en", "fr")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var entry RouteEntry
			require.NoError(t, yaml.Unmarshal([]byte(tt.doc), &entry))
			assert.Equal(t, tt.want, entry.Langs)
		})
	}

	t.Run("invalid", func(t *testing.T) {
		var entry RouteEntry
		err := yaml.Unmarshal([]byte("langs: {en: true}\n"), &entry)
		assert.Error(t, err)
	})
}

func TestLocalePrefix_MarshalYAML(t *testing.T) {
	out, err := yaml.Marshal(RouteEntry{Page: "home", Path: "/", Status: StatusDraft, Src: "home.yml"})
	require.NoError(t, err)
	assert.NotContains(t, string(out), "langs")

	out, err = yaml.Marshal(RouteEntry{Page: "home", Langs: NoLocalePrefix()})
	require.NoError(t, err)
	assert.Contains(t, string(out), "langs: false")

	var back RouteEntry
	out, err = yaml.Marshal(RouteEntry{Page: "home", Langs: OnlyLocales("de")})
	require.NoError(t, err)
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, OnlyLocales("de"), back.Langs)
}

func TestLocalePrefix_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(RouteEntry{Page: "a", Langs: NoLocalePrefix()})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"langs":false`)

	b, err = json.Marshal(RouteEntry{Page: "a", Langs: OnlyLocales("en")})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"langs":["en"]`)

	b, err = json.Marshal(RouteEntry{Page: "a"})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"langs":null`)
}

func TestNewPage(t *testing.T) {
	p := NewPage("about", "About us", "/about", "2024-05-01T10:00:00Z")

	assert.Equal(t, StatusDraft, p.Status)
	assert.Equal(t, "About us", p.SEO.Title)
	assert.Equal(t, "About us", p.SEO.OG.Title)
	assert.Equal(t, "About us", p.SEO.Twitter.Title)
	assert.Nil(t, p.SEO.Image)
	assert.Equal(t, "/about", p.Routes.Default)
	assert.NotNil(t, p.Head)
	assert.NotNil(t, p.Blocks)
	assert.NotNil(t, p.Variables)
	assert.Equal(t, p.CreatedAt, p.ModifiedAt)
}

func TestPageStatusValid(t *testing.T) {
	assert.True(t, StatusDraft.Valid())
	assert.True(t, StatusArchived.Valid())
	assert.False(t, PageStatus("deleted").Valid())
}

func TestNormalizeValue(t *testing.T) {
	in := map[string]any{
		"nested": map[any]any{1: "one", "two": []any{map[any]any{true: "yes"}}},
	}

	out := NormalizeMap(in)

	nested := out["nested"].(map[string]any)
	assert.Equal(t, "one", nested["1"])
	list := nested["two"].([]any)
	assert.Equal(t, map[string]any{"true": "yes"}, list[0])

	_, err := json.Marshal(out)
	assert.NoError(t, err)
}

func TestDescriptors(t *testing.T) {
	ds := Descriptors()
	require.NotEmpty(t, ds)

	labels := make([]string, 0, len(ds))
	for _, d := range ds {
		labels = append(labels, d.Label)
		n := len(d.Fields)
		require.GreaterOrEqual(t, n, 2)
		assert.Equal(t, []string{"created_at", "updated_at"}, d.Fields[n-2:])
	}
	assert.IsNonDecreasing(t, labels)
	assert.Contains(t, labels, "Page")
	assert.Contains(t, labels, "Locale")
}
