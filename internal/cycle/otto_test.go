package cycle

import (
	"errors"
	"math"
	"testing"

	"github.com/Tycho887/FYSLAB/internal/thermo"
)

func ottoConfig() Config {
	return Config{
		CompressionRatio: 8,
		THot:             1500,
		TCold:            300,
		N:                1,
		P1:               thermo.Unknown,
		V1:               0.01,
		Diatomic:         true,
		Params:           thermo.Params{Steps: 501, AllowedError: 1e-4, ExactTol: 1e-10},
	}
}

func TestOttoEfficiency(t *testing.T) {
	c, err := NewOtto(ottoConfig(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := OttoEfficiency(8, 7.0/5.0)
	if math.Abs(c.Efficiency-expected) > 1e-6 {
		t.Errorf("expected efficiency %f, got %f", expected, c.Efficiency)
	}
	if c.Efficiency >= c.TheoreticalEfficiency {
		t.Errorf("otto efficiency %f must stay below the carnot bound %f", c.Efficiency, c.TheoreticalEfficiency)
	}
}

func TestOttoCloses(t *testing.T) {
	c, err := NewOtto(ottoConfig(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.Phase() != PhaseClosed {
		t.Errorf("expected phase %s, got %s", PhaseClosed, c.Phase())
	}

	expected := []thermo.Kind{
		thermo.KindAdiabatic,
		thermo.KindIsochoric,
		thermo.KindAdiabatic,
		thermo.KindIsochoric,
	}
	for i, pr := range c.Processes {
		if pr.Kind != expected[i] {
			t.Errorf("stage %d: expected %s, got %s", i, expected[i], pr.Kind)
		}
	}

	// compression stroke ends at V1 / ratio
	end := c.Processes[0].Traj.End()
	if math.Abs(end.V-0.01/8) > 1e-9 {
		t.Errorf("expected compressed volume %g, got %g", 0.01/8, end.V)
	}

	if !c.FirstLawSatisfied {
		t.Error("expected the first law to hold on every stage")
	}
	if !c.IdealGas {
		t.Error("expected the ideal-gas invariant to hold on every stage")
	}
}

func TestOttoStageChaining(t *testing.T) {
	c, err := NewOtto(ottoConfig(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 1; i < len(c.Processes); i++ {
		prev := c.Processes[i-1].Traj.End()
		cur := c.Processes[i].Traj.Start()
		if math.Abs(prev.V-cur.V) > 1e-9 || math.Abs(prev.T-cur.T) > 1e-6 {
			t.Errorf("stage %d does not start where stage %d ends: %+v vs %+v", i, i-1, cur, prev)
		}
	}
}

func TestOttoRejectsUnityRatio(t *testing.T) {
	cfg := ottoConfig()
	cfg.CompressionRatio = 1
	_, err := NewOtto(cfg, nil)
	if !errors.Is(err, ErrInvalidCompressionRatio) {
		t.Errorf("expected ErrInvalidCompressionRatio, got %v", err)
	}
}

func TestUnimplementedCycles(t *testing.T) {
	builders := map[string]func(Config) (*Cycle, error){
		"brayton":  func(cfg Config) (*Cycle, error) { return NewBrayton(cfg, nil) },
		"stirling": func(cfg Config) (*Cycle, error) { return NewStirling(cfg, nil) },
		"ericsson": func(cfg Config) (*Cycle, error) { return NewEricsson(cfg, nil) },
		"rankine":  func(cfg Config) (*Cycle, error) { return NewRankine(cfg, nil) },
		"kalina":   func(cfg Config) (*Cycle, error) { return NewKalina(cfg, nil) },
	}

	for name, build := range builders {
		t.Run(name, func(t *testing.T) {
			c, err := build(ottoConfig())
			if err != nil {
				t.Fatalf("construction should succeed, got %v", err)
			}
			if err := c.Run(); !errors.Is(err, ErrNotImplemented) {
				t.Errorf("expected ErrNotImplemented, got %v", err)
			}
			if c.Phase() != PhaseFailed {
				t.Errorf("expected phase %s, got %s", PhaseFailed, c.Phase())
			}
		})
	}
}

func TestOttoEfficiencyFormula(t *testing.T) {
	got := OttoEfficiency(8, 1.4)
	expected := 1 - math.Pow(8, -0.4)
	if math.Abs(got-expected) > 1e-12 {
		t.Errorf("expected %f, got %f", expected, got)
	}
}
