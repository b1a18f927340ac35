package domain

import (
	"fmt"

	"github.com/aretw0/espalier/pkg/schema"
)

// Equation is one Master Equation record: the target state whose
// probability is differentiated, the states created into it, and the
// states it decays from, both grouped per rate. Creation and decay must
// agree on their rate key set even when a rate contributes nothing on one
// side; an empty contribution is information, a missing key is a bug in
// the producer.
type Equation struct {
	target   State
	creation *RateMap
	decay    *RateMap
}

// KeySetError reports a creation/decay key-set mismatch, listing both
// sides so the producer can see which rate went missing.
type KeySetError struct {
	Creation []Rate
	Decay    []Rate
}

func (e *KeySetError) Error() string {
	return fmt.Sprintf("creation and decay rate keys must match: creation %v, decay %v", e.Creation, e.Decay)
}

// NewEquation validates and builds a record. The target must be a valid
// state and both maps must be present with identical key sets.
func NewEquation(target State, creation, decay *RateMap) (Equation, error) {
	if target.Len() == 0 {
		return Equation{}, schema.Invalid("target", "requires at least one site", nil)
	}
	if creation == nil {
		return Equation{}, schema.Invalid("creation", "required", nil)
	}
	if decay == nil {
		return Equation{}, schema.Invalid("decay", "required", nil)
	}
	if !sameKeySet(creation, decay) {
		return Equation{}, &KeySetError{Creation: creation.Keys(), Decay: decay.Keys()}
	}
	return Equation{target: target, creation: creation, decay: decay}, nil
}

// Target returns the differentiated state.
func (e Equation) Target() State { return e.target }

// Creation returns the per-rate created states.
func (e Equation) Creation() *RateMap { return e.creation }

// Decay returns the per-rate decayed states.
func (e Equation) Decay() *RateMap { return e.decay }

// Rates returns the record's rates in creation-map order, the order the
// rendered clauses appear in.
func (e Equation) Rates() []Rate { return e.creation.Keys() }

func sameKeySet(a, b *RateMap) bool {
	if a.Len() != b.Len() {
		return false
	}
	for _, rate := range a.Keys() {
		if _, ok := b.Get(rate); !ok {
			return false
		}
	}
	return true
}
