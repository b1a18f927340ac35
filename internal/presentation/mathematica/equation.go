package mathematica

import (
	"strconv"
	"strings"

	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/schema"
)

// RenderEquation produces one differential equation line: the time
// derivative of the target's exact symbol equated to the signed rate
// clauses. Weighted states on the right-hand side render at the given
// mean-field order; the target itself always renders exactly.
func RenderEquation(eq domain.Equation, order int) (string, error) {
	if err := schema.NonNegative("order", order); err != nil {
		return "", err
	}

	var b strings.Builder
	for _, rate := range eq.Rates() {
		created, _ := eq.Creation().Get(rate)
		decayed, _ := eq.Decay().Get(rate)
		b.WriteString(renderClause(rate, created, decayed, order))
	}

	rhs := normalize(b.String())
	if rhs == "" {
		rhs = "0"
	}
	return "D[" + Exact(eq.Target()) + ", t] == " + rhs, nil
}

// renderClause emits one rate's contribution in compact form; normalize
// spaces the signs afterwards. Which side carries terms decides the
// shape: both sides share a parenthesized difference, a single-sided
// single term pulls its multiplicity in front of the rate symbol, and a
// single-sided sum keeps multiplicities glued inside the parentheses.
func renderClause(rate domain.Rate, created, decayed []domain.WeightedState, order int) string {
	creates := renderTerms(created, order)
	decays := renderTerms(decayed, order)
	symbol := rate.Symbol()

	switch {
	case len(creates) > 0 && len(decays) > 0:
		return "+" + symbol + " (" + strings.Join(creates, "+") + "-" + strings.Join(decays, "-") + ")"
	case len(creates) > 0:
		return signedClause("+", symbol, creates)
	case len(decays) > 0:
		return signedClause("-", symbol, decays)
	default:
		return ""
	}
}

func signedClause(sign, symbol string, terms []string) string {
	if len(terms) == 1 {
		prefactor, state := splitPrefactor(terms[0])
		return sign + prefactor + " " + symbol + " " + state
	}
	return sign + symbol + " (" + strings.Join(terms, "+") + ")"
}

func renderTerms(states []domain.WeightedState, order int) []string {
	terms := make([]string, 0, len(states))
	for _, ws := range states {
		rendered, _ := RenderState(ws.State(), order)
		if ws.Count() > 1 {
			rendered = strconv.Itoa(ws.Count()) + rendered
		}
		terms = append(terms, rendered)
	}
	return terms
}

// splitPrefactor peels a leading digit run off a rendered term so the
// multiplicity can sit in front of the rate symbol.
func splitPrefactor(term string) (string, string) {
	i := 0
	for i < len(term) && term[i] >= '0' && term[i] <= '9' {
		i++
	}
	if i == 0 || i == len(term) {
		return "", term
	}
	return term[:i], term[i:]
}

// normalize surrounds every sign with single spaces and collapses any
// whitespace runs, so "+2 K1 Pa0[t]-K2 Pb1[t]" becomes
// "+ 2 K1 Pa0[t] - K2 Pb1[t]".
func normalize(s string) string {
	s = strings.ReplaceAll(s, "+", " + ")
	s = strings.ReplaceAll(s, "-", " - ")
	return strings.Join(strings.Fields(s), " ")
}
