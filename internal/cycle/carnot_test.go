package cycle

import (
	"errors"
	"math"
	"testing"

	"github.com/Tycho887/FYSLAB/internal/thermo"
)

func carnotConfig() Config {
	return Config{
		CompressionRatio: 2,
		THot:             500,
		TCold:            300,
		N:                1,
		P1:               thermo.Unknown,
		V1:               0.01,
		Monatomic:        true,
		Params:           thermo.Params{Steps: 501, AllowedError: 1e-4, ExactTol: 1e-10},
	}
}

func TestCarnotEfficiency(t *testing.T) {
	c, err := NewCarnot(carnotConfig(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := 1 - 300.0/500.0
	if math.Abs(c.TheoreticalEfficiency-expected) > 1e-9 {
		t.Errorf("expected carnot bound %f, got %f", expected, c.TheoreticalEfficiency)
	}
	if math.Abs(c.Efficiency-expected) > 1e-6 {
		t.Errorf("expected efficiency %f, got %f", expected, c.Efficiency)
	}
}

func TestCarnotCloses(t *testing.T) {
	c, err := NewCarnot(carnotConfig(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.Phase() != PhaseClosed {
		t.Errorf("expected phase %s, got %s", PhaseClosed, c.Phase())
	}
	if len(c.Processes) != 4 {
		t.Fatalf("expected 4 processes, got %d", len(c.Processes))
	}

	first := c.Processes[0].Traj.Start()
	last := c.Processes[3].Traj.End()
	if math.Abs(last.V-first.V) > 1e-6 {
		t.Errorf("cycle did not close in volume: %g vs %g", last.V, first.V)
	}
	if math.Abs(last.T-first.T) > 1e-6 {
		t.Errorf("cycle did not close in temperature: %g vs %g", last.T, first.T)
	}

	if !c.FirstLawSatisfied {
		t.Error("expected the first law to hold on every stage")
	}
	if !c.IdealGas {
		t.Error("expected the ideal-gas invariant to hold on every stage")
	}
}

func TestCarnotStageKinds(t *testing.T) {
	c, err := NewCarnot(carnotConfig(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []thermo.Kind{
		thermo.KindIsothermal,
		thermo.KindAdiabatic,
		thermo.KindIsothermal,
		thermo.KindAdiabatic,
	}
	for i, pr := range c.Processes {
		if pr.Kind != expected[i] {
			t.Errorf("stage %d: expected %s, got %s", i, expected[i], pr.Kind)
		}
	}

	// the isothermal stages sit on the reservoirs
	if got := c.Processes[0].T1; math.Abs(got-500) > 1e-9 {
		t.Errorf("expected hot isothermal at 500 K, got %g", got)
	}
	if got := c.Processes[2].T1; math.Abs(got-300) > 1e-9 {
		t.Errorf("expected cold isothermal at 300 K, got %g", got)
	}
}

func TestCycleAcceptsSmallResidual(t *testing.T) {
	cfg := carnotConfig()
	cfg.P1 = 1*thermo.R*cfg.THot/cfg.V1 + 1e-4 // residual 1e-6, within AllowedError
	if _, err := NewCarnot(cfg, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCarnotRejectsZeroRatio(t *testing.T) {
	cfg := carnotConfig()
	cfg.CompressionRatio = 0
	_, err := NewCarnot(cfg, nil)
	if !errors.Is(err, ErrInvalidCompressionRatio) {
		t.Errorf("expected ErrInvalidCompressionRatio, got %v", err)
	}
}

func TestCarnotRejectsInvertedReservoirs(t *testing.T) {
	cfg := carnotConfig()
	cfg.THot, cfg.TCold = 300, 500
	_, err := NewCarnot(cfg, nil)
	if !errors.Is(err, ErrInvalidCompressionRatio) {
		t.Errorf("expected ErrInvalidCompressionRatio, got %v", err)
	}
}

func TestCycleRunsOnce(t *testing.T) {
	c, err := NewCarnot(carnotConfig(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.Run(); !errors.Is(err, ErrAlreadyRun) {
		t.Errorf("expected ErrAlreadyRun, got %v", err)
	}
}
