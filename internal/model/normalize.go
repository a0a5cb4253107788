package model

import "fmt"

// NormalizeValue rewrites map[any]any produced by the YAML decoder into
// map[string]any, recursively, so the value can be encoded as JSON.
func NormalizeValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return NormalizeMap(v)
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, inner := range v {
			out[fmt.Sprint(key)] = NormalizeValue(inner)
		}
		return out
	case []any:
		return NormalizeSlice(v)
	default:
		return v
	}
}

func NormalizeMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = NormalizeValue(v)
	}
	return out
}

func NormalizeSlice(s []any) []any {
	if s == nil {
		return nil
	}
	out := make([]any, len(s))
	for i := range s {
		out[i] = NormalizeValue(s[i])
	}
	return out
}
