package substance

import (
	"math"
	"sort"
	"testing"
)

func TestLookupByName(t *testing.T) {
	tbl := Default()

	s, ok := tbl.Lookup("Nitrogen")
	if !ok {
		t.Fatal("expected to find Nitrogen")
	}
	if s.Formula != "N2" {
		t.Errorf("expected formula N2, got %s", s.Formula)
	}
}

func TestLookupByFormula(t *testing.T) {
	tbl := Default()

	s, ok := tbl.Lookup("CO2")
	if !ok {
		t.Fatal("expected to find CO2")
	}
	if s.Name != "Carbon dioxide" {
		t.Errorf("expected Carbon dioxide, got %s", s.Name)
	}
}

func TestLookupCaseInsensitive(t *testing.T) {
	tbl := Default()

	for _, id := range []string{"helium", "HELIUM", "He", "he"} {
		s, ok := tbl.Lookup(id)
		if !ok {
			t.Errorf("expected to find %q", id)
			continue
		}
		if s.Name != "Helium" {
			t.Errorf("lookup %q: expected Helium, got %s", id, s.Name)
		}
	}
}

func TestLookupMissFallsBackToAir(t *testing.T) {
	tbl := Default()

	s, ok := tbl.Lookup("unobtainium")
	if ok {
		t.Error("expected ok=false for an unknown substance")
	}
	if s.Name != DefaultName {
		t.Errorf("expected fallback to %s, got %s", DefaultName, s.Name)
	}
}

func TestCapacitiesConsistent(t *testing.T) {
	tbl := Default()

	for _, name := range tbl.Names() {
		s, _ := tbl.Lookup(name)
		if s.MolarMass <= 0 {
			t.Errorf("%s: molar mass must be positive, got %g", name, s.MolarMass)
		}
		// Mayer's relation for an ideal gas
		if diff := s.Cp - s.Cv; math.Abs(diff-8.314) > 1e-9 {
			t.Errorf("%s: Cp - Cv = %g, expected R", name, diff)
		}
		if math.Abs(s.Gamma-s.Cp/s.Cv) > 5e-3 {
			t.Errorf("%s: gamma %g inconsistent with Cp/Cv = %g", name, s.Gamma, s.Cp/s.Cv)
		}
	}
}

func TestNamesSorted(t *testing.T) {
	tbl := Default()

	names := tbl.Names()
	if len(names) == 0 {
		t.Fatal("expected a non-empty table")
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("expected sorted names, got %v", names)
	}
}

func TestAir(t *testing.T) {
	tbl := Default()

	air := tbl.Air()
	if air.Name != "Air" {
		t.Errorf("expected Air, got %s", air.Name)
	}
	if math.Abs(air.Gamma-1.4) > 1e-2 {
		t.Errorf("expected air gamma near 1.4, got %g", air.Gamma)
	}
}
