package ports

import "github.com/aretw0/espalier/pkg/domain"

// SystemRenderer defines the contract every target syntax implements.
// Rendering is pure string assembly: inputs are valid by construction and
// the only runtime failure left is a negative expansion order.
type SystemRenderer interface {
	// State renders a state probability at the given mean-field order.
	State(state domain.State, order int) (string, error)

	// RawState renders the bare probability symbol without a time argument.
	RawState(state domain.State) string

	// Rate renders the rate-constant symbol.
	Rate(rate domain.Rate) string

	// RateValue renders a rate declaration.
	RateValue(rv domain.RateValue) string

	// InitialCondition renders a fixed-time condition.
	InitialCondition(ic domain.InitialCondition) string

	// Constraint renders a marginalization identity.
	Constraint(c domain.Constraint) string

	// Equation renders one differential equation line.
	Equation(eq domain.Equation, order int) (string, error)

	// System renders the five buckets and joins them into one notebook.
	System(sys domain.System, order int) (string, error)
}
