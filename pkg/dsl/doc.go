/*
Package dsl provides a Go DSL for assembling Master Equation records and
notebooks programmatically.

It allows callers to build equation records and the final notebook using
type-safe, fluent builders instead of wiring rate maps and bucket maps by
hand. This is particularly useful for hand-written models, unit testing,
and leveraging IDE autocompletion/type-checking.

Example usage:

	package main

	import (
		"github.com/aretw0/espalier/pkg/domain"
		"github.com/aretw0/espalier/pkg/dsl"
	)

	func main() {
		pair := domain.MustState(domain.SiteAt("a", 0), domain.SiteAt("b", 1))

		record, err := dsl.Equation(pair).
			Create("k1", domain.Weighted(pair, 2)).
			Decay("k2", domain.Once(pair)).
			Build()
		if err != nil {
			// handle validation failure
		}
		_ = record

		notebook := dsl.NewNotebook().
			AddEquation("D[Pa0b1[t], t] == + 2 K1 Pa0b1[t]").
			AddRateValue("K1 = 0.0").
			Finalize()
		_ = notebook
	}

The EquationBuilder keeps the creation and decay key sets aligned as rates
are added. The Notebook joins its five buckets into one declaration text;
see Finalize for the exact layout.
*/
package dsl
