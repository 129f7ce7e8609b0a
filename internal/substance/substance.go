// Package substance provides the static gas property table.
//
// The table is embedded in the binary and decoded once; lookups match the
// gas name or chemical formula, case-insensitively. An unrecognized
// identifier is not an error: Lookup returns the Air record and ok=false so
// the caller can surface a warning.
package substance

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
)

//go:embed substances.json
var raw []byte

// Substance is one gas record. MolarMass is in kg/mol; Cv and Cp are molar
// heat capacities in J/(mol K); Gamma is the adiabatic index Cp/Cv.
type Substance struct {
	Name      string  `json:"name"`
	Formula   string  `json:"formula"`
	MolarMass float64 `json:"molar_mass"`
	Cv        float64 `json:"cv"`
	Cp        float64 `json:"cp"`
	Gamma     float64 `json:"gamma"`
}

// DefaultName is the substance substituted for unrecognized identifiers.
const DefaultName = "Air"

// Table is an immutable substance lookup table.
type Table struct {
	byName    map[string]Substance
	byFormula map[string]Substance
	names     []string
}

// NewTable builds a table from records. Later duplicates win, matching a
// JSON object decode.
func NewTable(records []Substance) *Table {
	t := &Table{
		byName:    make(map[string]Substance, len(records)),
		byFormula: make(map[string]Substance, len(records)),
	}
	for _, s := range records {
		key := strings.ToLower(s.Name)
		if _, seen := t.byName[key]; !seen {
			t.names = append(t.names, s.Name)
		}
		t.byName[key] = s
		t.byFormula[strings.ToLower(s.Formula)] = s
	}
	sort.Strings(t.names)
	return t
}

var (
	defaultTable *Table
	defaultOnce  sync.Once
)

// Default returns the table decoded from the embedded data.
func Default() *Table {
	defaultOnce.Do(func() {
		var records []Substance
		if err := json.Unmarshal(raw, &records); err != nil {
			panic(fmt.Sprintf("substance: embedded table corrupt: %v", err))
		}
		defaultTable = NewTable(records)
	})
	return defaultTable
}

// Lookup resolves id as a name first, then as a formula. On a miss it
// returns the Air record and false; the miss is recoverable, never fatal.
func (t *Table) Lookup(id string) (Substance, bool) {
	key := strings.ToLower(strings.TrimSpace(id))
	if s, ok := t.byName[key]; ok {
		return s, true
	}
	if s, ok := t.byFormula[key]; ok {
		return s, true
	}
	return t.byName[strings.ToLower(DefaultName)], false
}

// Air returns the default substance record.
func (t *Table) Air() Substance {
	s, _ := t.Lookup(DefaultName)
	return s
}

// Names lists the table's substance names, sorted.
func (t *Table) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}
