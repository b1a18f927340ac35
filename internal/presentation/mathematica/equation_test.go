package mathematica_test

import (
	"testing"

	"github.com/aretw0/espalier/internal/presentation/mathematica"
	"github.com/aretw0/espalier/pkg/domain"
)

func mustEquation(t *testing.T, target domain.State, creation, decay *domain.RateMap) domain.Equation {
	t.Helper()
	eq, err := domain.NewEquation(target, creation, decay)
	if err != nil {
		t.Fatalf("NewEquation() error = %v", err)
	}
	return eq
}

func TestRenderEquation(t *testing.T) {
	ab := domain.MustState(domain.SiteAt("a", 0), domain.SiteAt("b", 1))
	a := domain.MustState(domain.SiteAt("a", 0))

	tests := []struct {
		name     string
		target   domain.State
		creation *domain.RateMap
		decay    *domain.RateMap
		order    int
		want     string
	}{
		{
			name:     "single creation with multiplicity two",
			target:   ab,
			creation: domain.NewRateMap().Add("k1", domain.Weighted(ab, 2)),
			decay:    domain.NewRateMap().Add("k1"),
			want:     "D[Pa0b1[t], t] == + 2 K1 Pa0b1[t]",
		},
		{
			name:     "single decay",
			target:   ab,
			creation: domain.NewRateMap().Add("k1"),
			decay:    domain.NewRateMap().Add("k1", domain.Once(ab)),
			want:     "D[Pa0b1[t], t] == - K1 Pa0b1[t]",
		},
		{
			name:     "single decay with multiplicity pulls the prefactor out",
			target:   ab,
			creation: domain.NewRateMap().Add("k1"),
			decay:    domain.NewRateMap().Add("k1", domain.Weighted(ab, 3)),
			want:     "D[Pa0b1[t], t] == - 3 K1 Pa0b1[t]",
		},
		{
			name:   "multiple terms keep multiplicities glued inside parentheses",
			target: a,
			creation: domain.NewRateMap().Add("k1"),
			decay: domain.NewRateMap().Add("k1",
				domain.Once(domain.MustState(domain.SiteAt("a", 0))),
				domain.Weighted(domain.MustState(domain.SiteAt("b", 1)), 2),
			),
			want: "D[Pa0[t], t] == - K1 (Pa0[t] + 2Pb1[t])",
		},
		{
			name:   "creation and decay share one parenthesized difference",
			target: a,
			creation: domain.NewRateMap().Add("k1",
				domain.Once(domain.MustState(domain.SiteAt("c", 0))),
				domain.Once(domain.MustState(domain.SiteAt("c", 1))),
			),
			decay: domain.NewRateMap().Add("k1",
				domain.Once(domain.MustState(domain.SiteAt("d", 0))),
				domain.Weighted(domain.MustState(domain.SiteAt("d", 1)), 2),
			),
			want: "D[Pa0[t], t] == + K1 (Pc0[t] + Pc1[t] - Pd0[t] - 2Pd1[t])",
		},
		{
			name:   "clauses follow creation key order",
			target: a,
			creation: domain.NewRateMap().
				Add("k.a", domain.Once(domain.MustState(domain.SiteAt("x", 0)))).
				Add("k.b"),
			decay: domain.NewRateMap().
				Add("k.a").
				Add("k.b", domain.Once(domain.MustState(domain.SiteAt("y", 1)))),
			want: "D[Pa0[t], t] == + KA Px0[t] - KB Py1[t]",
		},
		{
			name:     "empty contributions render zero",
			target:   a,
			creation: domain.NewRateMap().Add("k1").Add("k2"),
			decay:    domain.NewRateMap().Add("k1").Add("k2"),
			want:     "D[Pa0[t], t] == 0",
		},
		{
			name:     "no rates render zero",
			target:   a,
			creation: domain.NewRateMap(),
			decay:    domain.NewRateMap(),
			want:     "D[Pa0[t], t] == 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eq := mustEquation(t, tt.target, tt.creation, tt.decay)
			got, err := mathematica.RenderEquation(eq, tt.order)
			if err != nil {
				t.Fatalf("RenderEquation() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("RenderEquation() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderEquationMeanField(t *testing.T) {
	full := domain.MustState(
		domain.SiteAt("a", 1), domain.SiteAt("b", 2), domain.SiteAt("c", 3),
	)

	t.Run("right-hand side expands, target stays exact", func(t *testing.T) {
		eq := mustEquation(t, full,
			domain.NewRateMap().Add("k1"),
			domain.NewRateMap().Add("k1", domain.Once(full)),
		)
		got, err := mathematica.RenderEquation(eq, 2)
		if err != nil {
			t.Fatalf("RenderEquation() error = %v", err)
		}
		want := "D[Pa1b2c3[t], t] == - K1 Pa1b2[t] Pb2c3[t]/(Pb2[t])"
		if got != want {
			t.Errorf("RenderEquation() = %q, want %q", got, want)
		}
	})

	t.Run("multiplicity prefactor survives the expansion", func(t *testing.T) {
		eq := mustEquation(t, full,
			domain.NewRateMap().Add("k1"),
			domain.NewRateMap().Add("k1", domain.Weighted(full, 2)),
		)
		got, err := mathematica.RenderEquation(eq, 2)
		if err != nil {
			t.Fatalf("RenderEquation() error = %v", err)
		}
		want := "D[Pa1b2c3[t], t] == - 2 K1 Pa1b2[t] Pb2c3[t]/(Pb2[t])"
		if got != want {
			t.Errorf("RenderEquation() = %q, want %q", got, want)
		}
	})
}

func TestRenderEquationNegativeOrder(t *testing.T) {
	a := domain.MustState(domain.SiteAt("a", 0))
	eq := mustEquation(t, a, domain.NewRateMap(), domain.NewRateMap())
	if _, err := mathematica.RenderEquation(eq, -2); err == nil {
		t.Fatal("expected error for negative order")
	}
}
