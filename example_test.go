package espalier_test

import (
	"fmt"
	"log"

	"github.com/aretw0/espalier"
	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/dsl"
)

// ExampleNew demonstrates rendering a single equation record without any
// model catalog or file system access.
func ExampleNew() {
	fmtr, err := espalier.New()
	if err != nil {
		log.Fatal(err)
	}

	// A two-site state, ("a", 0) next to ("b", 1).
	pair := domain.MustState(domain.SiteAt("a", 0), domain.SiteAt("b", 1))

	// Created twice under k1, lost once under k2.
	record, err := dsl.Equation(pair).
		Create("k1", domain.Weighted(pair, 2)).
		Decay("k2", domain.Once(pair)).
		Build()
	if err != nil {
		log.Fatal(err)
	}

	line, err := fmtr.Equation(record, 0)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(line)
	// Output:
	// D[Pa0b1[t], t] == + 2 K1 Pa0b1[t] - K2 Pa0b1[t]
}

// ExampleFormatter_State demonstrates the mean-field expansion of a
// three-site state at pair order.
func ExampleFormatter_State() {
	fmtr, err := espalier.New()
	if err != nil {
		log.Fatal(err)
	}

	chain := domain.MustState(
		domain.SiteAt("a", 1),
		domain.SiteAt("b", 2),
		domain.SiteAt("c", 3),
	)

	exact, err := fmtr.State(chain, 0)
	if err != nil {
		log.Fatal(err)
	}
	pairs, err := fmtr.State(chain, 2)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(exact)
	fmt.Println(pairs)
	// Output:
	// Pa1b2c3[t]
	// Pa1b2[t] Pb2c3[t]/(Pb2[t])
}
