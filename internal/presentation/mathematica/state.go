package mathematica

import (
	"strings"

	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/schema"
)

// RenderState produces the Mathematica form of a state probability.
//
// Order zero, or any order covering the whole state, yields the exact
// symbol, e.g. "Pa0b1[t]". An order strictly between zero and the state
// length yields the mean-field expansion: the product of all sliding
// windows of that length, divided by the product of the pairwise window
// overlaps.
func RenderState(state domain.State, order int) (string, error) {
	if err := schema.NonNegative("order", order); err != nil {
		return "", err
	}
	if order == 0 || order >= state.Len() {
		return Exact(state), nil
	}
	return meanField(state, order), nil
}

// Exact renders the unexpanded probability symbol, "P" followed by every
// site token and the time argument.
func Exact(state domain.State) string {
	return headOf(state.Sites()) + "[t]"
}

// RenderRawState renders the bare symbol without the time argument, the
// form used for variable declarations.
func RenderRawState(state domain.State) string {
	return headOf(state.Sites())
}

func meanField(state domain.State, order int) string {
	count := state.Len() - order + 1
	windows := make([]domain.State, count)
	numerators := make([]string, count)
	for i := 0; i < count; i++ {
		windows[i] = state.Window(i, order)
		numerators[i] = Exact(windows[i])
	}

	// Every window pair that shares sites contributes one divisor. Pairs
	// are visited left to right and repeated overlaps are kept; the
	// algebra needs each shared factor once per pair.
	var denominators []string
	for i := 0; i < count; i++ {
		for j := i + 1; j < count; j++ {
			shared := windows[i].Intersect(windows[j])
			if len(shared) == 0 {
				continue
			}
			denominators = append(denominators, headOf(shared)+"[t]")
		}
	}

	out := strings.Join(numerators, " ")
	if len(denominators) > 0 {
		out += "/(" + strings.Join(denominators, " ") + ")"
	}
	return out
}

func headOf(sites []domain.Site) string {
	var b strings.Builder
	b.WriteString("P")
	for _, site := range sites {
		b.WriteString(site.Token())
	}
	return b.String()
}
