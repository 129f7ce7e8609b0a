package gas

import (
	"errors"
	"math"
	"testing"

	"github.com/Tycho887/FYSLAB/internal/thermo"
)

func testParams() thermo.Params {
	return thermo.Params{Steps: 201, AllowedError: 1e-4, ExactTol: 1e-10}
}

func nitrogen(t *testing.T) *Gas {
	t.Helper()
	g, err := New(thermo.Unknown, 0.01, 300, 1, "N2", nil, testParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return g
}

func TestNewCompletesState(t *testing.T) {
	g := nitrogen(t)

	expected := 1 * 8.314 * 300 / 0.01
	if math.Abs(g.Pressure[0]-expected) > 1e-6 {
		t.Errorf("expected back-filled pressure %f, got %f", expected, g.Pressure[0])
	}
	if g.Defaulted {
		t.Error("N2 is a known gas, expected Defaulted=false")
	}
	if g.Substance.Name != "Nitrogen" {
		t.Errorf("expected Nitrogen, got %s", g.Substance.Name)
	}
}

func TestNewUnknownGasFallsBackToAir(t *testing.T) {
	g, err := New(thermo.Unknown, 0.01, 300, 1, "phlogiston", nil, testParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !g.Defaulted {
		t.Error("expected Defaulted=true for an unknown gas")
	}
	if g.Substance.Name != "Air" {
		t.Errorf("expected Air, got %s", g.Substance.Name)
	}
}

func TestNewAcceptsSmallResidual(t *testing.T) {
	p := 1*8.314*300/0.01 + 1e-4 // residual 1e-6, within AllowedError
	g, err := New(p, 0.01, 300, 1, "N2", nil, testParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Pressure[0] != p {
		t.Errorf("expected pressure passed through unchanged, got %g", g.Pressure[0])
	}
}

func TestNewRejectsUnderspecified(t *testing.T) {
	_, err := New(thermo.Unknown, thermo.Unknown, 300, 1, "N2", nil, testParams())
	if !errors.Is(err, thermo.ErrUnderspecifiedState) {
		t.Errorf("expected ErrUnderspecifiedState, got %v", err)
	}
}

func TestTapeGrowth(t *testing.T) {
	g := nitrogen(t)

	if err := g.Isothermal(thermo.Unknown, 0.02); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(g.Volume) != 1+201 {
		t.Errorf("expected tape length %d, got %d", 1+201, len(g.Volume))
	}
	if cur := g.Current(); math.Abs(cur.V-0.02) > 1e-12 {
		t.Errorf("expected current volume 0.02, got %g", cur.V)
	}

	if err := g.Isochoric(thermo.Unknown, 600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(g.Volume) != 1+2*201 {
		t.Errorf("expected tape length %d, got %d", 1+2*201, len(g.Volume))
	}
	if len(g.Processes()) != 2 {
		t.Errorf("expected 2 logged processes, got %d", len(g.Processes()))
	}
}

func TestTransitionsChain(t *testing.T) {
	g := nitrogen(t)

	steps := []func() error{
		func() error { return g.Isothermal(thermo.Unknown, 0.02) },
		func() error { return g.Isobaric(thermo.Unknown, 600) },
		func() error { return g.Adiabatic(thermo.Unknown, thermo.Unknown, 400) },
		func() error { return g.Isochoric(thermo.Unknown, 300) },
	}
	for i, step := range steps {
		if err := step(); err != nil {
			t.Fatalf("step %d: unexpected error: %v", i, err)
		}
	}

	// each process starts where the previous one ended
	log := g.Processes()
	for i := 1; i < len(log); i++ {
		prev := log[i-1].Traj.End()
		cur := log[i].Traj.Start()
		if math.Abs(prev.V-cur.V) > 1e-9 {
			t.Errorf("process %d volume discontinuity: %g vs %g", i, cur.V, prev.V)
		}
		if math.Abs(prev.P-cur.P) > 1e-6*prev.P {
			t.Errorf("process %d pressure discontinuity: %g vs %g", i, cur.P, prev.P)
		}
	}

	if cur := g.Current(); math.Abs(cur.T-300) > 1e-9 {
		t.Errorf("expected final temperature 300, got %g", cur.T)
	}
}

func TestTargetValidation(t *testing.T) {
	g := nitrogen(t)

	if err := g.Isothermal(thermo.Unknown, thermo.Unknown); !errors.Is(err, ErrTarget) {
		t.Errorf("expected ErrTarget with no targets, got %v", err)
	}
	if err := g.Isothermal(101325, 0.02); !errors.Is(err, ErrTarget) {
		t.Errorf("expected ErrTarget with two targets, got %v", err)
	}
	if err := g.Adiabatic(101325, 0.02, thermo.Unknown); !errors.Is(err, ErrTarget) {
		t.Errorf("expected ErrTarget with two targets, got %v", err)
	}

	// a failed transition must not grow the tape
	if len(g.Volume) != 1 {
		t.Errorf("expected untouched tape, got length %d", len(g.Volume))
	}
}
