// Package lattice turns kinetic models into Master Equation systems.
package lattice

import (
	"fmt"

	"github.com/aretw0/espalier/pkg/domain"
)

// Generate builds the exact Master Equation system for a model on its
// full lattice: one equation per complete site assignment, an initial
// condition and raw state per target, one declaration per rate, and the
// marginalization identity for every shorter site window.
//
// Everything comes out in a fixed order, so two runs of the same model
// produce byte-identical systems. Sites are numbered 1..N. Full states
// follow the species odometer with the leftmost site turning slowest,
// clause terms follow that same enumeration, and constraint windows list
// every species combination before moving to the next placement.
func Generate(model domain.Model) (domain.System, error) {
	if err := model.Validate(); err != nil {
		return domain.System{}, fmt.Errorf("invalid model: %w", err)
	}

	targets := enumerate(model.Species, model.Sites)

	var sys domain.System
	for _, target := range targets {
		eq, err := buildEquation(model, targets, target)
		if err != nil {
			return domain.System{}, err
		}
		sys.Equations = append(sys.Equations, eq)
		sys.InitialConditions = append(sys.InitialConditions, domain.InitialCondition{
			State: target, Time: "0", Value: "0",
		})
		sys.States = append(sys.States, target)
	}

	for _, rate := range model.Rates() {
		sys.RateValues = append(sys.RateValues, domain.RateValue{Rate: rate, Value: "0.0"})
	}

	constraints, err := buildConstraints(model)
	if err != nil {
		return domain.System{}, err
	}
	sys.Constraints = constraints

	return sys, nil
}

// buildEquation collects the contributions of every process on one
// target. A source state creates the target once per rule application
// that rewrites it into the target; the target decays once per
// application that fires on it. Each process registers its rate on both
// sides up front, so the record's key sets match even when nothing fires.
func buildEquation(model domain.Model, sources []domain.State, target domain.State) (domain.Equation, error) {
	creation := domain.NewRateMap()
	decay := domain.NewRateMap()

	for _, proc := range model.Processes {
		creates := newAccumulator()
		decays := newAccumulator()

		for _, source := range sources {
			for _, rule := range proc.Rules {
				if patternsEqual(rule.From, rule.To) {
					// A rule that rewrites a window to itself moves no
					// probability.
					continue
				}
				for pos := 0; pos+rule.Width() <= source.Len(); pos++ {
					if !matches(source, pos, rule.From) {
						continue
					}
					if source.Equal(target) {
						decays.add(target)
					} else if rewrite(source, pos, rule.To).Equal(target) {
						creates.add(source)
					}
				}
			}
		}

		rate := domain.Rate(proc.Rate)
		creation.Set(rate, creates.weighted())
		decay.Set(rate, decays.weighted())
	}

	return domain.NewEquation(target, creation, decay)
}

// buildConstraints emits the marginalization identity for every window
// shorter than the lattice. A window extends at the site after its last
// index when one exists, otherwise at the site before its first, with
// one member per species in model order.
func buildConstraints(model domain.Model) ([]domain.Constraint, error) {
	var constraints []domain.Constraint

	for length := 1; length < model.Sites; length++ {
		for _, combo := range combos(model.Species, length) {
			for first := 1; first+length-1 <= model.Sites; first++ {
				window := place(combo, first)
				last := first + length - 1

				members := make([]domain.State, 0, len(model.Species))
				for _, sp := range model.Species {
					if last < model.Sites {
						extended := append(window.Sites(), domain.SiteAt(sp, last+1))
						members = append(members, domain.MustState(extended...))
					} else {
						extended := append([]domain.Site{domain.SiteAt(sp, first-1)}, window.Sites()...)
						members = append(members, domain.MustState(extended...))
					}
				}

				c, err := domain.NewConstraint(window, members...)
				if err != nil {
					return nil, err
				}
				constraints = append(constraints, c)
			}
		}
	}

	return constraints, nil
}

// combos lists every species assignment of the given length, an odometer
// with the rightmost slot turning fastest.
func combos(species []string, length int) [][]string {
	total := 1
	for i := 0; i < length; i++ {
		total *= len(species)
	}

	out := make([][]string, 0, total)
	assignment := make([]int, length)
	for {
		combo := make([]string, length)
		for i, choice := range assignment {
			combo[i] = species[choice]
		}
		out = append(out, combo)

		i := length - 1
		for i >= 0 {
			assignment[i]++
			if assignment[i] < len(species) {
				break
			}
			assignment[i] = 0
			i--
		}
		if i < 0 {
			break
		}
	}
	return out
}

// place numbers a species combination onto consecutive sites starting at
// firstIndex.
func place(combo []string, firstIndex int) domain.State {
	sites := make([]domain.Site, len(combo))
	for i, label := range combo {
		sites[i] = domain.SiteAt(label, firstIndex+i)
	}
	return domain.MustState(sites...)
}

// enumerate lists every complete assignment of species to sites 1..length.
func enumerate(species []string, length int) []domain.State {
	cs := combos(species, length)
	states := make([]domain.State, 0, len(cs))
	for _, combo := range cs {
		states = append(states, place(combo, 1))
	}
	return states
}

func matches(state domain.State, pos int, pattern []string) bool {
	for i, label := range pattern {
		if state.At(pos+i).Label != label {
			return false
		}
	}
	return true
}

// rewrite replaces the labels under the window at pos with the given
// pattern, keeping every site's index.
func rewrite(state domain.State, pos int, pattern []string) domain.State {
	sites := state.Sites()
	for i, label := range pattern {
		sites[pos+i] = domain.Site{Label: label, Index: sites[pos+i].Index}
	}
	return domain.MustState(sites...)
}

func patternsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// accumulator merges repeated state contributions into weighted states,
// preserving first-appearance order.
type accumulator struct {
	order  []string
	counts map[string]int
	states map[string]domain.State
}

func newAccumulator() *accumulator {
	return &accumulator{
		counts: make(map[string]int),
		states: make(map[string]domain.State),
	}
}

func (a *accumulator) add(state domain.State) {
	key := state.Key()
	if _, seen := a.counts[key]; !seen {
		a.order = append(a.order, key)
		a.states[key] = state
	}
	a.counts[key]++
}

func (a *accumulator) weighted() []domain.WeightedState {
	out := make([]domain.WeightedState, 0, len(a.order))
	for _, key := range a.order {
		ws, _ := domain.NewWeightedState(a.states[key], a.counts[key])
		out = append(out, ws)
	}
	return out
}
