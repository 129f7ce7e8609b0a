package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/Tycho887/FYSLAB/internal/thermo"
)

func TestFromProcess(t *testing.T) {
	pr, err := thermo.NewIsothermal(thermo.Conditions{
		N: 1, P1: thermo.Unknown, V1: 0.01, T1: 300, Gas: "N2",
	}, nil, thermo.Params{Steps: 50, AllowedError: 1e-4, ExactTol: 1e-10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := pr.GenerateFromVolume(0.02); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data := FromProcess(pr)
	if data.Kind != "isothermal" {
		t.Errorf("expected kind isothermal, got %s", data.Kind)
	}
	if data.Label != "isothermal expansion" {
		t.Errorf("expected label isothermal expansion, got %s", data.Label)
	}
	if data.Gas != "Nitrogen" {
		t.Errorf("expected Nitrogen, got %s", data.Gas)
	}
	if len(data.Volume) != 50 {
		t.Errorf("expected 50 samples, got %d", len(data.Volume))
	}
	if !data.IdealGas || !data.FirstLawSatisfied {
		t.Error("expected both consistency flags to hold")
	}
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	if err := WriteJSON(path, map[string]int{"a": 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var decoded map[string]int
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("invalid JSON written: %v", err)
	}
	if decoded["a"] != 1 {
		t.Errorf("expected a=1, got %d", decoded["a"])
	}
}
