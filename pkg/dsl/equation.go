package dsl

import (
	"github.com/aretw0/espalier/pkg/domain"
)

// EquationBuilder assembles a Master Equation record fluently. Every rate
// named on either side is registered on both, so records leaving the
// builder always satisfy the key-set contract; hand-built rate maps go
// through domain.NewEquation, which enforces it instead.
type EquationBuilder struct {
	target   domain.State
	creation *domain.RateMap
	decay    *domain.RateMap
}

// Equation starts a record for the given target state.
func Equation(target domain.State) *EquationBuilder {
	return &EquationBuilder{
		target:   target,
		creation: domain.NewRateMap(),
		decay:    domain.NewRateMap(),
	}
}

// Create adds states produced into the target under rate. Calling it with
// no states registers the rate with an empty contribution.
func (b *EquationBuilder) Create(rate string, states ...domain.WeightedState) *EquationBuilder {
	b.creation.Add(domain.Rate(rate), states...)
	b.decay.Add(domain.Rate(rate))
	return b
}

// Decay adds states the target is lost through under rate. Calling it
// with no states registers the rate with an empty contribution.
func (b *EquationBuilder) Decay(rate string, states ...domain.WeightedState) *EquationBuilder {
	b.decay.Add(domain.Rate(rate), states...)
	b.creation.Add(domain.Rate(rate))
	return b
}

// Build validates and returns the record.
func (b *EquationBuilder) Build() (domain.Equation, error) {
	return domain.NewEquation(b.target, b.creation, b.decay)
}
