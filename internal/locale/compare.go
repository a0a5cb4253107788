// Package locale provides cached access to translation dictionaries and the
// key-set diagnostics shown by the locale editor.
package locale

import (
	"math"
	"sort"

	"craftly/internal/model"
)

// Compare reports how the dictionary of code relates to every other
// dictionary in dicts. An unknown code compares as an empty dictionary.
func Compare(code string, dicts map[string]model.Dictionary) model.Comparison {
	all := make(map[string]struct{})
	for _, d := range dicts {
		for k := range d {
			all[k] = struct{}{}
		}
	}
	current := dicts[code]

	missing := make([]string, 0)
	for k := range all {
		if _, ok := current[k]; !ok {
			missing = append(missing, k)
		}
	}
	sort.Strings(missing)

	extra := make(map[string][]string)
	extraCount := 0
	for other, d := range dicts {
		if other == code {
			continue
		}
		var diff []string
		for k := range current {
			if _, ok := d[k]; !ok {
				diff = append(diff, k)
			}
		}
		if len(diff) == 0 {
			continue
		}
		sort.Strings(diff)
		extra[other] = diff
		extraCount += len(diff)
	}

	return model.Comparison{
		MissingTranslationsCount: len(missing),
		MissingTranslations:      missing,
		ExtraKeysCount:           extraCount,
		ExtraKeys:                extra,
		TotalKeys:                len(all),
		Completeness:             completeness(len(current), len(all)),
	}
}

func completeness(have, total int) float64 {
	if total == 0 {
		return 100
	}
	return round2(float64(have) / float64(total) * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
