package lattice

import (
	"strconv"
	"strings"
	"testing"

	"github.com/aretw0/espalier/pkg/domain"
)

func adsorptionModel() domain.Model {
	return domain.Model{
		Name:    "adsorption",
		Species: []string{"A", "E"},
		Sites:   1,
		Processes: []domain.Process{
			{Rate: "k.ads", Rules: []domain.Rule{{From: []string{"E"}, To: []string{"A"}}}},
			{Rate: "k.des", Rules: []domain.Rule{{From: []string{"A"}, To: []string{"E"}}}},
		},
	}
}

func dimerModel() domain.Model {
	return domain.Model{
		Name:    "adsorption-diffusion",
		Species: []string{"A", "E"},
		Sites:   2,
		Processes: []domain.Process{
			{Rate: "k.ads", Rules: []domain.Rule{{From: []string{"E"}, To: []string{"A"}}}},
			{Rate: "k.dif", Rules: []domain.Rule{
				{From: []string{"A", "E"}, To: []string{"E", "A"}},
				{From: []string{"E", "A"}, To: []string{"A", "E"}},
			}},
		},
	}
}

func text(s domain.State) string {
	var b strings.Builder
	for _, site := range s.Sites() {
		b.WriteString(site.Token())
	}
	return b.String()
}

func texts(states []domain.State) []string {
	out := make([]string, 0, len(states))
	for _, s := range states {
		out = append(out, text(s))
	}
	return out
}

// sides flattens one rate's creation and decay lists into space-joined
// tokens, multiplicities rendered as "n*".
func sides(eq domain.Equation, rate string) (string, string) {
	flatten := func(list []domain.WeightedState) string {
		parts := make([]string, 0, len(list))
		for _, ws := range list {
			part := text(ws.State())
			if ws.Count() > 1 {
				part = strconv.Itoa(ws.Count()) + "*" + part
			}
			parts = append(parts, part)
		}
		return strings.Join(parts, " ")
	}

	created, _ := eq.Creation().Get(domain.Rate(rate))
	decayed, _ := eq.Decay().Get(domain.Rate(rate))
	return flatten(created), flatten(decayed)
}

func findEquation(t *testing.T, sys domain.System, target string) domain.Equation {
	t.Helper()
	for _, eq := range sys.Equations {
		if text(eq.Target()) == target {
			return eq
		}
	}
	t.Fatalf("no equation with target %s", target)
	return domain.Equation{}
}

func TestGenerateAdsorption(t *testing.T) {
	sys, err := Generate(adsorptionModel())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if got := texts(sys.States); !equalStrings(got, []string{"A1", "E1"}) {
		t.Errorf("States = %v, want [A1 E1]", got)
	}
	if len(sys.Equations) != 2 {
		t.Fatalf("len(Equations) = %d, want 2", len(sys.Equations))
	}
	if len(sys.Constraints) != 0 {
		t.Errorf("len(Constraints) = %d, want 0 for a single site", len(sys.Constraints))
	}

	for i, ic := range sys.InitialConditions {
		if ic.Time != "0" || ic.Value != "0" {
			t.Errorf("InitialConditions[%d] = {%s %s}, want {0 0}", i, ic.Time, ic.Value)
		}
	}
	for i, want := range []string{"k.ads", "k.des"} {
		if got := string(sys.RateValues[i].Rate); got != want {
			t.Errorf("RateValues[%d].Rate = %s, want %s", i, got, want)
		}
		if sys.RateValues[i].Value != "0.0" {
			t.Errorf("RateValues[%d].Value = %s, want 0.0", i, sys.RateValues[i].Value)
		}
	}

	occupied := findEquation(t, sys, "A1")
	if creates, decays := sides(occupied, "k.ads"); creates != "E1" || decays != "" {
		t.Errorf("A1 k.ads = (%q, %q), want (E1, empty)", creates, decays)
	}
	if creates, decays := sides(occupied, "k.des"); creates != "" || decays != "A1" {
		t.Errorf("A1 k.des = (%q, %q), want (empty, A1)", creates, decays)
	}

	empty := findEquation(t, sys, "E1")
	if creates, decays := sides(empty, "k.ads"); creates != "" || decays != "E1" {
		t.Errorf("E1 k.ads = (%q, %q), want (empty, E1)", creates, decays)
	}
	if creates, decays := sides(empty, "k.des"); creates != "A1" || decays != "" {
		t.Errorf("E1 k.des = (%q, %q), want (A1, empty)", creates, decays)
	}
}

func TestGenerateDimer(t *testing.T) {
	sys, err := Generate(dimerModel())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if got := texts(sys.States); !equalStrings(got, []string{"A1A2", "A1E2", "E1A2", "E1E2"}) {
		t.Fatalf("States = %v, want the species odometer order", got)
	}

	tests := []struct {
		target  string
		rate    string
		creates string
		decays  string
	}{
		{"A1A2", "k.ads", "A1E2 E1A2", ""},
		{"A1A2", "k.dif", "", ""},
		{"A1E2", "k.ads", "E1E2", "A1E2"},
		{"A1E2", "k.dif", "E1A2", "A1E2"},
		{"E1A2", "k.ads", "E1E2", "E1A2"},
		{"E1A2", "k.dif", "A1E2", "E1A2"},
		{"E1E2", "k.ads", "", "2*E1E2"},
		{"E1E2", "k.dif", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.target+"/"+tt.rate, func(t *testing.T) {
			eq := findEquation(t, sys, tt.target)
			creates, decays := sides(eq, tt.rate)
			if creates != tt.creates {
				t.Errorf("creation = %q, want %q", creates, tt.creates)
			}
			if decays != tt.decays {
				t.Errorf("decay = %q, want %q", decays, tt.decays)
			}
		})
	}
}

func TestGenerateDimerConstraints(t *testing.T) {
	sys, err := Generate(dimerModel())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	tests := []struct {
		target  string
		members string
	}{
		{"A1", "A1A2 A1E2"},
		{"A2", "A1A2 E1A2"},
		{"E1", "E1A2 E1E2"},
		{"E2", "A1E2 E1E2"},
	}
	if len(sys.Constraints) != len(tests) {
		t.Fatalf("len(Constraints) = %d, want %d", len(sys.Constraints), len(tests))
	}
	for i, tt := range tests {
		c := sys.Constraints[i]
		if got := text(c.Target()); got != tt.target {
			t.Errorf("Constraints[%d].Target = %s, want %s", i, got, tt.target)
		}
		if got := strings.Join(texts(c.Members()), " "); got != tt.members {
			t.Errorf("Constraints[%d].Members = %q, want %q", i, got, tt.members)
		}
	}
}

func TestGenerateInvalidModel(t *testing.T) {
	_, err := Generate(domain.Model{})
	if err == nil {
		t.Fatal("Generate() expected an error for an empty model")
	}
	if !strings.Contains(err.Error(), "invalid model") {
		t.Errorf("error = %v, want mention of the invalid model", err)
	}
}

func equalStrings(a, b []string) bool {
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
