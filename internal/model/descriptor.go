package model

import (
	"slices"
	"sort"
	"sync"
)

// Descriptor describes a data model exposed through the admin API.
type Descriptor struct {
	Name   string   `json:"name"`
	Label  string   `json:"label"`
	Fields []string `json:"fields"`
	Table  string   `json:"table"`
}

var (
	descriptorsMu sync.RWMutex
	descriptors   = map[string]Descriptor{}
)

// RegisterDescriptor adds d to the registry, replacing any descriptor with
// the same name. Fields always end with created_at and updated_at.
func RegisterDescriptor(d Descriptor) {
	fields := slices.Clone(d.Fields)
	for _, f := range []string{"created_at", "updated_at"} {
		if !slices.Contains(fields, f) {
			fields = append(fields, f)
		}
	}
	d.Fields = fields

	descriptorsMu.Lock()
	defer descriptorsMu.Unlock()
	descriptors[d.Name] = d
}

// Descriptors returns every registered descriptor sorted by label.
func Descriptors() []Descriptor {
	descriptorsMu.RLock()
	defer descriptorsMu.RUnlock()

	out := make([]Descriptor, 0, len(descriptors))
	for _, d := range descriptors {
		d.Fields = slices.Clone(d.Fields)
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}
