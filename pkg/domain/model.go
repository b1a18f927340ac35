package domain

import (
	"fmt"
	"strings"

	"github.com/aretw0/espalier/pkg/schema"
)

// Rule is one local rewrite of an elementary process: the species pattern
// it consumes on a run of adjacent sites and the pattern it leaves behind.
// Both patterns have the same width.
type Rule struct {
	From []string `json:"from" yaml:"from"`
	To   []string `json:"to" yaml:"to"`
}

// Width returns the number of adjacent sites the rule spans.
func (r Rule) Width() int { return len(r.From) }

// Process is an elementary kinetic step: a rate constant plus the local
// rules it fires through. A process with several rules (e.g. diffusion in
// both directions) still carries a single rate.
type Process struct {
	Rate  string `json:"rate" yaml:"rate"`
	Rules []Rule `json:"rules" yaml:"rules"`
}

// Model is a kinetic model on a one-dimensional lattice: the species that
// can occupy a site, the number of sites, and the elementary processes.
type Model struct {
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Species     []string  `json:"species" yaml:"species"`
	Sites       int       `json:"sites" yaml:"sites"`
	Processes   []Process `json:"processes" yaml:"processes"`
}

// Validate checks the model's internal consistency: named, at least one
// site, a unique non-empty species list, and processes whose rules only
// mention known species with matching pattern widths.
func (m Model) Validate() error {
	var errs []error

	if err := schema.NonEmpty("name", m.Name); err != nil {
		errs = append(errs, err)
	}
	if err := schema.Positive("sites", m.Sites); err != nil {
		errs = append(errs, err)
	}
	if len(m.Species) == 0 {
		errs = append(errs, schema.Invalid("species", "requires at least one entry", nil))
	}

	known := make(map[string]bool, len(m.Species))
	for i, sp := range m.Species {
		if strings.TrimSpace(sp) == "" {
			errs = append(errs, schema.Invalid("species", fmt.Sprintf("entry %d is blank", i), nil))
			continue
		}
		if known[sp] {
			errs = append(errs, schema.Invalid("species", fmt.Sprintf("duplicate entry %q", sp), nil))
		}
		known[sp] = true
	}

	if len(m.Processes) == 0 {
		errs = append(errs, schema.Invalid("processes", "requires at least one entry", nil))
	}
	for i, p := range m.Processes {
		key := fmt.Sprintf("processes[%d]", i)
		if err := schema.NonEmpty(key+".rate", p.Rate); err != nil {
			errs = append(errs, err)
		}
		if len(p.Rules) == 0 {
			errs = append(errs, schema.Invalid(key+".rules", "requires at least one rule", nil))
		}
		for j, rule := range p.Rules {
			ruleKey := fmt.Sprintf("%s.rules[%d]", key, j)
			if rule.Width() == 0 {
				errs = append(errs, schema.Invalid(ruleKey, "pattern must span at least one site", nil))
				continue
			}
			if len(rule.From) != len(rule.To) {
				errs = append(errs, schema.Invalid(ruleKey, "from and to patterns must have the same width", nil))
			}
			for _, sp := range rule.From {
				if !known[sp] {
					errs = append(errs, schema.Invalid(ruleKey+".from", fmt.Sprintf("unknown species %q", sp), nil))
				}
			}
			for _, sp := range rule.To {
				if !known[sp] {
					errs = append(errs, schema.Invalid(ruleKey+".to", fmt.Sprintf("unknown species %q", sp), nil))
				}
			}
		}
	}

	return schema.Aggregate(errs)
}

// Rates returns the model's rate tokens in process order.
func (m Model) Rates() []Rate {
	rates := make([]Rate, len(m.Processes))
	for i, p := range m.Processes {
		rates[i] = Rate(p.Rate)
	}
	return rates
}
