package model

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// PrefixMode selects how locale prefixes are attached to a page route.
type PrefixMode int

const (
	// PrefixDefault attaches every available locale.
	PrefixDefault PrefixMode = iota
	// PrefixNone registers the bare path only.
	PrefixNone
	// PrefixOnly attaches the listed locale codes only.
	PrefixOnly
)

// LocalePrefix is the `langs` field of a route entry. In YAML it is either
// absent, `false`, or a list of locale codes.
type LocalePrefix struct {
	Mode  PrefixMode
	Codes []string
}

func NoLocalePrefix() LocalePrefix { return LocalePrefix{Mode: PrefixNone} }

func OnlyLocales(codes ...string) LocalePrefix {
	return LocalePrefix{Mode: PrefixOnly, Codes: codes}
}

// IsZero lets `omitempty` drop the default policy when encoding.
func (p LocalePrefix) IsZero() bool { return p.Mode == PrefixDefault }

func (p *LocalePrefix) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			*p = LocalePrefix{}
			return nil
		}
		var enabled bool
		if err := node.Decode(&enabled); err != nil {
			return fmt.Errorf("langs must be false or a list of locale codes: %w", err)
		}
		if enabled {
			*p = LocalePrefix{}
		} else {
			*p = NoLocalePrefix()
		}
		return nil
	case yaml.SequenceNode:
		var codes []string
		if err := node.Decode(&codes); err != nil {
			return fmt.Errorf("langs must be false or a list of locale codes: %w", err)
		}
		*p = OnlyLocales(codes...)
		return nil
	default:
		return fmt.Errorf("langs must be false or a list of locale codes (line %d)", node.Line)
	}
}

func (p LocalePrefix) MarshalYAML() (any, error) {
	switch p.Mode {
	case PrefixNone:
		return false, nil
	case PrefixOnly:
		if p.Codes == nil {
			return []string{}, nil
		}
		return p.Codes, nil
	default:
		return nil, nil
	}
}

func (p LocalePrefix) MarshalJSON() ([]byte, error) {
	v, _ := p.MarshalYAML()
	return json.Marshal(v)
}

func (p *LocalePrefix) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		*p = LocalePrefix{}
	case bool:
		if v {
			*p = LocalePrefix{}
		} else {
			*p = NoLocalePrefix()
		}
	case []any:
		codes := make([]string, 0, len(v))
		for _, c := range v {
			s, ok := c.(string)
			if !ok {
				return fmt.Errorf("langs must be false or a list of locale codes")
			}
			codes = append(codes, s)
		}
		*p = OnlyLocales(codes...)
	default:
		return fmt.Errorf("langs must be false or a list of locale codes")
	}
	return nil
}

// RouteEntry is one row of the route registry, binding a URL path to a page file.
type RouteEntry struct {
	Page   string       `yaml:"page" json:"page"`
	Path   string       `yaml:"path" json:"path"`
	Status PageStatus   `yaml:"status" json:"status"`
	Src    string       `yaml:"src" json:"src"`
	Langs  LocalePrefix `yaml:"langs,omitempty" json:"langs"`
}

func init() {
	RegisterDescriptor(Descriptor{
		Name:   "craftly/model.RouteEntry",
		Label:  "Route",
		Fields: []string{"page", "path", "status", "src", "langs"},
		Table:  "routes",
	})
}
