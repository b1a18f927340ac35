package mathematica

import (
	"strings"

	"github.com/aretw0/espalier/pkg/domain"
)

// RenderRate produces the rate-constant symbol, e.g. "KCOADS".
func RenderRate(rate domain.Rate) string {
	return rate.Symbol()
}

// RenderRateValue produces a rate declaration, e.g. "KCOADS = 0.0". An
// empty value falls back to "0".
func RenderRateValue(rv domain.RateValue) string {
	value := rv.Value
	if value == "" {
		value = "0"
	}
	return rv.Rate.Symbol() + " = " + value
}

// RenderInitialCondition produces the fixed-time condition, e.g.
// "Pa0b1[0] == 0". Empty time and value tokens fall back to "0".
func RenderInitialCondition(ic domain.InitialCondition) string {
	time := ic.Time
	if time == "" {
		time = "0"
	}
	value := ic.Value
	if value == "" {
		value = "0"
	}
	return RenderRawState(ic.State) + "[" + time + "] == " + value
}

// RenderConstraint produces a delayed definition tying a short state to
// the sum of its extensions, e.g. "Pa0[t_] := Pa0b1[t] + Pa0c1[t]".
func RenderConstraint(c domain.Constraint) string {
	members := c.Members()
	terms := make([]string, len(members))
	for i, m := range members {
		terms[i] = Exact(m)
	}
	return RenderRawState(c.Target()) + "[t_] := " + strings.Join(terms, " + ")
}
