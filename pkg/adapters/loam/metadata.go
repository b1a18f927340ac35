package loam

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// ModelMetadata is the frontmatter header of a model document. It uses
// "mapstructure" tags to match the YAML keys Loam hands over.
type ModelMetadata struct {
	Name    string   `json:"name" mapstructure:"name"`
	Species []string `json:"species" mapstructure:"species"`
	Sites   int      `json:"sites" mapstructure:"sites"`

	Processes []ProcessSpec `json:"processes" mapstructure:"processes"`
}

// ProcessSpec is one elementary process in frontmatter form. Rules stay
// untyped because a rule can be written two ways; parseRule resolves
// each entry.
type ProcessSpec struct {
	Rate  string `json:"rate" mapstructure:"rate"`
	Rules []any  `json:"rules" mapstructure:"rules"`
}

// RuleSpec is one local rewrite in frontmatter form.
type RuleSpec struct {
	From []string `json:"from" mapstructure:"from"`
	To   []string `json:"to" mapstructure:"to"`
}

// parseRule resolves one frontmatter rule entry. Accepted forms:
//
//	rules:
//	  - "CO,E -> E,CO"          # Arrow Shorthand
//	  - from: [CO, E]           # Inline Definition
//	    to: [E, CO]
func parseRule(v any) (RuleSpec, error) {
	switch r := v.(type) {
	case string:
		parts := strings.SplitN(r, "->", 2)
		if len(parts) != 2 {
			return RuleSpec{}, fmt.Errorf("rule shorthand %q needs exactly one '->'", r)
		}
		return RuleSpec{
			From: splitPattern(parts[0]),
			To:   splitPattern(parts[1]),
		}, nil

	case map[string]any, map[any]any:
		// Inline Definition
		var rule RuleSpec
		if err := mapstructure.Decode(r, &rule); err != nil {
			return RuleSpec{}, fmt.Errorf("failed to decode inline rule: %w", err)
		}
		return rule, nil

	default:
		return RuleSpec{}, fmt.Errorf("invalid rule definition type: %T", v)
	}
}

func splitPattern(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
