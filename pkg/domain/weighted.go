package domain

import "github.com/aretw0/espalier/pkg/schema"

// WeightedState pairs a state with an aggregated multiplicity. A
// multiplicity of one renders as the bare state; anything higher renders
// as a numeric prefix.
type WeightedState struct {
	state State
	count int
}

// NewWeightedState validates the multiplicity and pairs it with the state.
func NewWeightedState(state State, count int) (WeightedState, error) {
	if err := schema.Positive("multiplicity", count); err != nil {
		return WeightedState{}, err
	}
	return WeightedState{state: state, count: count}, nil
}

// Weighted is NewWeightedState for literals; it panics on invalid input.
func Weighted(state State, count int) WeightedState {
	ws, err := NewWeightedState(state, count)
	if err != nil {
		panic(err)
	}
	return ws
}

// Once wraps a state with multiplicity one.
func Once(state State) WeightedState {
	return WeightedState{state: state, count: 1}
}

// State returns the underlying state.
func (w WeightedState) State() State { return w.state }

// Count returns the multiplicity.
func (w WeightedState) Count() int { return w.count }
