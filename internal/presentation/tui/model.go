package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/espalier/pkg/domain"
)

// ModelMarkdown lays out a model as a markdown document for terminal
// display.
func ModelMarkdown(m domain.Model) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", m.Name)
	if m.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", m.Description)
	}
	fmt.Fprintf(&b, "- Species: %s\n", strings.Join(m.Species, ", "))
	fmt.Fprintf(&b, "- Sites: %d\n\n", m.Sites)

	b.WriteString("| Rate | Rules |\n")
	b.WriteString("|------|-------|\n")
	for _, p := range m.Processes {
		rules := make([]string, 0, len(p.Rules))
		for _, r := range p.Rules {
			rules = append(rules, strings.Join(r.From, ",")+" -> "+strings.Join(r.To, ","))
		}
		fmt.Fprintf(&b, "| %s | %s |\n", p.Rate, strings.Join(rules, "; "))
	}

	return b.String()
}
