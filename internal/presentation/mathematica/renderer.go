package mathematica

import (
	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/dsl"
	"github.com/aretw0/espalier/pkg/schema"
)

// Renderer exposes the package functions behind the SystemRenderer port so
// the registry can hand them out by format name.
type Renderer struct{}

// New returns a Mathematica renderer.
func New() *Renderer { return &Renderer{} }

func (Renderer) State(state domain.State, order int) (string, error) {
	return RenderState(state, order)
}

func (Renderer) RawState(state domain.State) string {
	return RenderRawState(state)
}

func (Renderer) Rate(rate domain.Rate) string {
	return RenderRate(rate)
}

func (Renderer) RateValue(rv domain.RateValue) string {
	return RenderRateValue(rv)
}

func (Renderer) InitialCondition(ic domain.InitialCondition) string {
	return RenderInitialCondition(ic)
}

func (Renderer) Constraint(c domain.Constraint) string {
	return RenderConstraint(c)
}

func (Renderer) Equation(eq domain.Equation, order int) (string, error) {
	return RenderEquation(eq, order)
}

// System renders every bucket of the system and joins them into one
// notebook. The order applies to equation right-hand sides only; targets,
// constraints, and declarations always use exact symbols.
func (Renderer) System(sys domain.System, order int) (string, error) {
	if err := schema.NonNegative("order", order); err != nil {
		return "", err
	}

	nb := dsl.NewNotebook()
	for _, c := range sys.Constraints {
		nb.AddConstraint(RenderConstraint(c))
	}
	for _, eq := range sys.Equations {
		line, err := RenderEquation(eq, order)
		if err != nil {
			return "", err
		}
		nb.AddEquation(line)
	}
	for _, ic := range sys.InitialConditions {
		nb.AddInitialCondition(RenderInitialCondition(ic))
	}
	for _, rv := range sys.RateValues {
		nb.AddRateValue(RenderRateValue(rv))
	}
	for _, st := range sys.States {
		nb.AddRawState(RenderRawState(st))
	}
	return nb.Finalize(), nil
}
