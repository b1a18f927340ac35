// Package dto holds the wire-level equation record shared by the HTTP
// and MCP adapters.
package dto

import "github.com/aretw0/espalier/pkg/domain"

// Site is one lattice site of a state.
type Site struct {
	Label string `json:"label"`
	Index string `json:"index"`
}

// State is a state as an ordered list of sites.
type State []Site

// WeightedState pairs a state with a multiplicity. A zero count means
// one.
type WeightedState struct {
	State State `json:"state"`
	Count int   `json:"count,omitempty"`
}

// Contribution is one rate's slice of an equation side. Sides travel as
// arrays rather than JSON objects because clause order follows the order
// the rates are listed in.
type Contribution struct {
	Rate   string          `json:"rate"`
	States []WeightedState `json:"states,omitempty"`
}

// Equation is a wire-level Master Equation record. Creation and decay
// must list the same rates; a rate with no states on one side is sent as
// an entry with an empty states array.
type Equation struct {
	Target   State          `json:"target"`
	Creation []Contribution `json:"creation"`
	Decay    []Contribution `json:"decay"`
}

// ToDomain validates the wire state and converts it.
func (s State) ToDomain() (domain.State, error) {
	sites := make([]domain.Site, len(s))
	for i, site := range s {
		sites[i] = domain.Site{Label: site.Label, Index: site.Index}
	}
	return domain.NewState(sites...)
}

// ToDomain validates the wire record and converts it.
func (e Equation) ToDomain() (domain.Equation, error) {
	target, err := e.Target.ToDomain()
	if err != nil {
		return domain.Equation{}, err
	}
	creation, err := sideToDomain(e.Creation)
	if err != nil {
		return domain.Equation{}, err
	}
	decay, err := sideToDomain(e.Decay)
	if err != nil {
		return domain.Equation{}, err
	}
	return domain.NewEquation(target, creation, decay)
}

func sideToDomain(contributions []Contribution) (*domain.RateMap, error) {
	side := domain.NewRateMap()
	for _, c := range contributions {
		states := make([]domain.WeightedState, 0, len(c.States))
		for _, ws := range c.States {
			state, err := ws.State.ToDomain()
			if err != nil {
				return nil, err
			}
			count := ws.Count
			if count == 0 {
				count = 1
			}
			weighted, err := domain.NewWeightedState(state, count)
			if err != nil {
				return nil, err
			}
			states = append(states, weighted)
		}
		side.Add(domain.Rate(c.Rate), states...)
	}
	return side, nil
}
