package storage

import (
	"math"
	"testing"

	"github.com/Tycho887/FYSLAB/internal/thermo"
)

func generatedProcess(t *testing.T) *thermo.Process {
	t.Helper()
	pr, err := thermo.NewIsothermal(thermo.Conditions{
		N:         1,
		P1:        thermo.Unknown,
		V1:        0.01,
		T1:        300,
		Monatomic: true,
	}, nil, thermo.Params{Steps: 50, AllowedError: 1e-4, ExactTol: 1e-10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := pr.GenerateFromVolume(0.02); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return pr
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pr := generatedProcess(t)
	runID, err := st.Save(RunMetadata{
		Mode:         "process",
		Kind:         "isothermal",
		Gas:          "monatomic",
		Moles:        1,
		WorkDoneBy:   pr.Derived.WorkDoneBy,
		HeatAbsorbed: pr.Derived.HeatAbsorbed,
		IdealGas:     true,
	}, ProcessSeries(pr))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if runID == "" {
		t.Fatal("expected a run ID")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meta.ID != runID {
		t.Errorf("expected ID %s, got %s", runID, meta.ID)
	}
	if meta.Kind != "isothermal" {
		t.Errorf("expected kind isothermal, got %s", meta.Kind)
	}
	if meta.Steps != 50 {
		t.Errorf("expected 50 stored samples, got %d", meta.Steps)
	}
	if math.Abs(meta.WorkDoneBy-pr.Derived.WorkDoneBy) > 1e-9 {
		t.Errorf("expected work %g, got %g", pr.Derived.WorkDoneBy, meta.WorkDoneBy)
	}
}

func TestLoadSeriesRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pr := generatedProcess(t)
	runID, err := st.Save(RunMetadata{Mode: "process", Kind: "isothermal"}, ProcessSeries(pr))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	series, err := st.LoadSeries(runID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series.Volume) != pr.Traj.Len() {
		t.Fatalf("expected %d samples, got %d", pr.Traj.Len(), len(series.Volume))
	}
	for i := 0; i < len(series.Volume); i += 10 {
		if series.Volume[i] != pr.Traj.Volume[i] {
			t.Errorf("volume mismatch at %d: %g vs %g", i, series.Volume[i], pr.Traj.Volume[i])
		}
		if series.Entropy[i] != pr.Derived.Entropy[i] {
			t.Errorf("entropy mismatch at %d: %g vs %g", i, series.Entropy[i], pr.Derived.Entropy[i])
		}
	}
}

func TestList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected an empty store, got %d runs", len(runs))
	}

	pr := generatedProcess(t)
	if _, err := st.Save(RunMetadata{Mode: "process", Kind: "isothermal"}, ProcessSeries(pr)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if runs[0].Mode != "process" {
		t.Errorf("expected mode process, got %s", runs[0].Mode)
	}
}

func TestListMissingDir(t *testing.T) {
	st := New(t.TempDir() + "/nope")
	runs, err := st.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestLoadMissingRun(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("nope_0"); err == nil {
		t.Error("expected an error for a missing run")
	}
}
