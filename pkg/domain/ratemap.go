package domain

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// RateMap maps rate tokens to weighted states while remembering insertion
// order. Clause emission iterates rates in the order the builder of the
// record chose, so equations come out the same on every run.
type RateMap struct {
	entries *orderedmap.OrderedMap[Rate, []WeightedState]
}

// NewRateMap returns an empty rate map.
func NewRateMap() *RateMap {
	return &RateMap{entries: orderedmap.New[Rate, []WeightedState]()}
}

// Set replaces the weighted states stored under rate, keeping the rate's
// original position when it was already present.
func (m *RateMap) Set(rate Rate, states []WeightedState) *RateMap {
	m.entries.Set(rate, states)
	return m
}

// Add appends weighted states under rate, registering the rate at the end
// of the order when it is new. Passing no states still registers the rate
// with an empty contribution, which is how a record keeps its key set
// aligned across creation and decay.
func (m *RateMap) Add(rate Rate, states ...WeightedState) *RateMap {
	existing, _ := m.entries.Get(rate)
	m.entries.Set(rate, append(existing, states...))
	return m
}

// Get returns the weighted states under rate.
func (m *RateMap) Get(rate Rate) ([]WeightedState, bool) {
	return m.entries.Get(rate)
}

// Keys returns the rates in insertion order.
func (m *RateMap) Keys() []Rate {
	keys := make([]Rate, 0, m.entries.Len())
	for pair := m.entries.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Len returns the number of rates.
func (m *RateMap) Len() int {
	return m.entries.Len()
}
