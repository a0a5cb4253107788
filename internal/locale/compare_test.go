package locale

import (
	"fmt"
	"reflect"
	"testing"

	"craftly/internal/model"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func dict(keys ...string) model.Dictionary {
	d := model.Dictionary{}
	for _, k := range keys {
		d[k] = k
	}
	return d
}

func TestCompare(t *testing.T) {
	dicts := map[string]model.Dictionary{
		"en": dict("a", "b"),
		"fr": dict("a"),
	}

	t.Run("missing keys", func(t *testing.T) {
		c := Compare("fr", dicts)
		assert.Equal(t, []string{"b"}, c.MissingTranslations)
		assert.Equal(t, 1, c.MissingTranslationsCount)
		assert.Equal(t, 50.0, c.Completeness)
		assert.Equal(t, 2, c.TotalKeys)
		assert.Empty(t, c.ExtraKeys)
		assert.Equal(t, 0, c.ExtraKeysCount)
	})

	t.Run("extra keys", func(t *testing.T) {
		c := Compare("en", dicts)
		assert.Equal(t, map[string][]string{"fr": {"b"}}, c.ExtraKeys)
		assert.Equal(t, 1, c.ExtraKeysCount)
		assert.Equal(t, 100.0, c.Completeness)
		assert.Equal(t, 0, c.MissingTranslationsCount)
		assert.Equal(t, []string{}, c.MissingTranslations)
	})

	t.Run("empty universe", func(t *testing.T) {
		c := Compare("en", map[string]model.Dictionary{"en": {}, "fr": {}})
		assert.Equal(t, 100.0, c.Completeness)
		assert.Equal(t, 0, c.TotalKeys)
	})

	t.Run("unknown code", func(t *testing.T) {
		c := Compare("de", dicts)
		assert.Equal(t, []string{"a", "b"}, c.MissingTranslations)
		assert.Equal(t, 0.0, c.Completeness)
	})

	t.Run("rounds to two decimals", func(t *testing.T) {
		c := Compare("fr", map[string]model.Dictionary{
			"en": dict("a", "b", "c"),
			"fr": dict("a"),
		})
		assert.Equal(t, 33.33, c.Completeness)
	})
}

func TestCompareProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	keys := gen.SliceOf(gen.RegexMatch(`^[a-f]$`))

	build := func(target []string, others [][]string, reverse bool) map[string]model.Dictionary {
		dicts := map[string]model.Dictionary{"xx": dict(target...)}
		for i := range others {
			j := i
			if reverse {
				j = len(others) - 1 - i
			}
			dicts[fmt.Sprintf("l%d", i)] = dict(others[j]...)
		}
		return dicts
	}

	properties.Property("permuting other locales keeps missing keys and total", prop.ForAll(
		func(target []string, others [][]string) bool {
			a := Compare("xx", build(target, others, false))
			b := Compare("xx", build(target, others, true))
			return reflect.DeepEqual(a.MissingTranslations, b.MissingTranslations) &&
				a.TotalKeys == b.TotalKeys &&
				a.Completeness == b.Completeness
		},
		keys,
		gen.SliceOfN(4, keys),
	))

	properties.Property("union dictionary is complete", prop.ForAll(
		func(others [][]string) bool {
			var union []string
			for _, o := range others {
				union = append(union, o...)
			}
			c := Compare("xx", build(union, others, false))
			return c.Completeness == 100 && c.MissingTranslationsCount == 0
		},
		gen.SliceOfN(3, keys),
	))

	properties.Property("completeness stays within bounds", prop.ForAll(
		func(target []string, others [][]string) bool {
			c := Compare("xx", build(target, others, false))
			return c.Completeness >= 0 && c.Completeness <= 100 &&
				c.MissingTranslationsCount == len(c.MissingTranslations)
		},
		keys,
		gen.SliceOfN(3, keys),
	))

	properties.TestingRun(t)
}
