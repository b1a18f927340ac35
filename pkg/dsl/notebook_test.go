package dsl

import (
	"strings"
	"testing"
)

func TestNotebook_Finalize(t *testing.T) {
	nb := NewNotebook().
		AddConstraint("Pa1[t_] := Pa1b2[t]").
		AddEquation("D[Pa0[t], t] == 0", "D[Pb1[t], t] == 0").
		AddInitialCondition("Pa0[0] == 0").
		AddRateValue("K1 = 0.0").
		AddRawState("Pa0", "Pb1")

	want := "constraints = {\n\tPa1[t_] := Pa1b2[t]\n}\n\n" +
		"equations = {\n\tD[Pa0[t], t] == 0,\n\tD[Pb1[t], t] == 0\n}\n\n" +
		"initialConditions = {\n\tPa0[0] == 0\n}\n\n" +
		"rateValues = {\n\tK1 = 0.0\n}\n\n" +
		"states = {\n\tPa0,\n\tPb1\n}"

	got := nb.Finalize()
	if got != want {
		t.Errorf("Finalize() =\n%s\nwant:\n%s", got, want)
	}
}

func TestNotebook_NoTrailingSeparator(t *testing.T) {
	got := NewNotebook().
		AddEquation("D[Pa0[t], t] == 0", "D[Pb1[t], t] == 0").
		Finalize()

	if strings.Contains(got, ",\n}") {
		t.Errorf("Finalize() left a separator before the closing brace:\n%s", got)
	}
	if !strings.HasSuffix(got, "D[Pb1[t], t] == 0\n}") {
		t.Errorf("Finalize() should close right after the last entry:\n%s", got)
	}
}

func TestNotebook_EmptyBucketsOmitted(t *testing.T) {
	got := NewNotebook().
		AddEquation("D[Pa0[t], t] == 0").
		Finalize()

	want := "equations = {\n\tD[Pa0[t], t] == 0\n}"
	if got != want {
		t.Errorf("Finalize() = %q, want %q", got, want)
	}

	if out := NewNotebook().Finalize(); out != "" {
		t.Errorf("empty notebook should finalize to an empty string, got %q", out)
	}
}

func TestNotebook_Len(t *testing.T) {
	nb := NewNotebook().
		AddEquation("e1", "e2").
		AddRawState("Pa0")
	if nb.Len() != 3 {
		t.Errorf("Len() = %d, want 3", nb.Len())
	}
}

func TestFromBuckets(t *testing.T) {
	t.Run("exact key set accepted", func(t *testing.T) {
		nb, err := FromBuckets(map[string][]string{
			"constraints":        {},
			"equations":          {"D[Pa0[t], t] == 0"},
			"initial conditions": {},
			"rate values":        {"K1 = 0.0"},
			"raw states":         {"Pa0"},
		})
		if err != nil {
			t.Fatalf("FromBuckets() error = %v", err)
		}
		got := nb.Finalize()
		if !strings.Contains(got, "equations = {") || !strings.Contains(got, "rateValues = {") {
			t.Errorf("Finalize() missing expected blocks:\n%s", got)
		}
	})

	t.Run("missing bucket rejected", func(t *testing.T) {
		_, err := FromBuckets(map[string][]string{
			"constraints":        {},
			"equations":          {},
			"initial conditions": {},
			"rate values":        {},
		})
		if err == nil {
			t.Fatal("expected error for missing bucket")
		}
		if !strings.Contains(err.Error(), `"raw states"`) {
			t.Errorf("error %q should name the missing bucket", err.Error())
		}
	})

	t.Run("unknown bucket rejected", func(t *testing.T) {
		_, err := FromBuckets(map[string][]string{
			"constraints":        {},
			"equations":          {},
			"initial conditions": {},
			"rate values":        {},
			"raw states":         {},
			"solutions":          {},
		})
		if err == nil {
			t.Fatal("expected error for unknown bucket")
		}
		if !strings.Contains(err.Error(), `"solutions"`) {
			t.Errorf("error %q should name the unknown bucket", err.Error())
		}
	})
}
