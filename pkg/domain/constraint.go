package domain

import (
	"strconv"

	"github.com/aretw0/espalier/pkg/schema"
)

// Constraint is a marginalization identity: the probability of a short
// state defined as the sum over its one-site extensions. The target is
// rendered as a delayed definition, the members as the summed terms.
type Constraint struct {
	target  State
	members []State
}

// NewConstraint validates and builds a constraint. At least one member is
// required; an empty sum would define the target as nothing.
func NewConstraint(target State, members ...State) (Constraint, error) {
	if target.Len() == 0 {
		return Constraint{}, schema.Invalid("target", "requires at least one site", nil)
	}
	if len(members) == 0 {
		return Constraint{}, schema.Invalid("members", "requires at least one state", nil)
	}
	for i, m := range members {
		if m.Len() == 0 {
			return Constraint{}, schema.Invalid("members", "member "+strconv.Itoa(i)+" is empty", nil)
		}
	}
	copied := make([]State, len(members))
	copy(copied, members)
	return Constraint{target: target, members: copied}, nil
}

// Target returns the defined state.
func (c Constraint) Target() State { return c.target }

// Members returns the summed states in order.
func (c Constraint) Members() []State {
	out := make([]State, len(c.members))
	copy(out, c.members)
	return out
}
