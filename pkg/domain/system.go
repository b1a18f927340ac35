package domain

// InitialCondition fixes a state's probability at a point in time. Time
// and Value are opaque tokens printed verbatim; empty tokens render as the
// conventional "0".
type InitialCondition struct {
	State State
	Time  string
	Value string
}

// System bundles everything a renderer needs to emit a complete analytic
// notebook: the five buckets of the classic Master Equation hand-off.
// Slices may be empty; elements are valid by construction.
type System struct {
	Constraints       []Constraint
	Equations         []Equation
	InitialConditions []InitialCondition
	RateValues        []RateValue
	States            []State
}
