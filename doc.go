/*
Package espalier renders lattice Master Equation systems into symbolic-math
syntax, ready to paste into an analysis notebook.

It takes the states, equation records, constraints, and rate constants of a
one-dimensional kinetic model and produces the text a tool like Mathematica
expects: probability symbols, differential equations, delayed definitions,
and declaration blocks, with an optional mean-field truncation of higher
orders.

# Concept

Espalier separates the analytic content (states, records, rates) from its
presentation (the target syntax). Domain values are validated at
construction, so rendering never guesses: a record that reaches a renderer
is well formed, and the renderer's output is deterministic down to the
ordering of every clause and divisor. Renderers hang off a registry behind
a narrow port, so alternative syntaxes can slot in without touching the
core. This Hexagonal Architecture allows espalier to be embedded in any
interface: CLI, HTTP server, or agent infrastructure.

# Key Features

  - Deterministic Output: Identical inputs produce byte-identical notebooks.
  - Mean-Field Expansion: State probabilities factor into sliding-window
    products with pairwise overlap divisors at any truncation order.
  - Strict Contracts: Records with mismatched creation/decay rate keys,
    malformed states, or negative orders are rejected before any text is
    produced.
  - Model Generation: Exact full-lattice systems can be generated straight
    from a kinetic model (species, sites, elementary processes).

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/espalier"
		"github.com/aretw0/espalier/pkg/domain"
		"github.com/aretw0/espalier/pkg/dsl"
	)

	func main() {
		fmtr, err := espalier.New()
		if err != nil {
			log.Fatal(err)
		}

		pair := domain.MustState(domain.SiteAt("a", 0), domain.SiteAt("b", 1))

		record, err := dsl.Equation(pair).
			Create("k1", domain.Weighted(pair, 2)).
			Build()
		if err != nil {
			log.Fatal(err)
		}

		line, err := fmtr.Equation(record, 0)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(line)
		// D[Pa0b1[t], t] == + 2 K1 Pa0b1[t]
	}
*/
package espalier
