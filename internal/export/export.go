// Package export flattens processes and cycles into plain numeric
// structures and writes them as JSON. This is the boundary a visualization
// layer consumes; the core packages never depend on it.
package export

import (
	"encoding/json"
	"os"

	"github.com/Tycho887/FYSLAB/internal/cycle"
	"github.com/Tycho887/FYSLAB/internal/thermo"
)

// ProcessData is the numeric output contract for a single process.
type ProcessData struct {
	Kind  string  `json:"kind"`
	Label string  `json:"label"`
	Gas   string  `json:"gas,omitempty"`
	Moles float64 `json:"moles"`

	Volume         []float64 `json:"volume"`
	Pressure       []float64 `json:"pressure"`
	Temperature    []float64 `json:"temperature"`
	InternalEnergy []float64 `json:"internal_energy"`
	Entropy        []float64 `json:"entropy"`

	WorkDoneBy   float64 `json:"work_done_by"`
	WorkDoneOn   float64 `json:"work_done_on"`
	HeatAbsorbed float64 `json:"heat_absorbed"`
	HeatReleased float64 `json:"heat_released"`

	FirstLawResidual  float64 `json:"first_law_residual"`
	IdealGas          bool    `json:"ideal_gas"`
	FirstLawSatisfied bool    `json:"first_law_satisfied"`
}

func FromProcess(pr *thermo.Process) ProcessData {
	return ProcessData{
		Kind:              pr.Kind.String(),
		Label:             pr.Label(),
		Gas:               pr.Substance.Name,
		Moles:             pr.N,
		Volume:            pr.Traj.Volume,
		Pressure:          pr.Traj.Pressure,
		Temperature:       pr.Traj.Temperature,
		InternalEnergy:    pr.Derived.InternalEnergy,
		Entropy:           pr.Derived.Entropy,
		WorkDoneBy:        pr.Derived.WorkDoneBy,
		WorkDoneOn:        pr.Derived.WorkDoneOn,
		HeatAbsorbed:      pr.Derived.HeatAbsorbed,
		HeatReleased:      pr.Derived.HeatReleased,
		FirstLawResidual:  pr.Derived.FirstLawResidual,
		IdealGas:          pr.IsIdealGas(),
		FirstLawSatisfied: pr.IsFirstLawSatisfied(),
	}
}

// CycleData is the numeric output contract for a completed cycle.
type CycleData struct {
	Name                  string        `json:"name"`
	Processes             []ProcessData `json:"processes"`
	WorkDoneBy            []float64     `json:"work_done_by"`
	HeatAbsorbed          []float64     `json:"heat_absorbed"`
	Efficiency            float64       `json:"efficiency"`
	TheoreticalEfficiency float64       `json:"theoretical_efficiency"`
	FirstLawSatisfied     bool          `json:"first_law_satisfied"`
	IdealGas              bool          `json:"ideal_gas"`
}

func FromCycle(c *cycle.Cycle) CycleData {
	data := CycleData{
		Name:                  c.Name,
		WorkDoneBy:            c.WorkDoneBy,
		HeatAbsorbed:          c.HeatAbsorbed,
		Efficiency:            c.Efficiency,
		TheoreticalEfficiency: c.TheoreticalEfficiency,
		FirstLawSatisfied:     c.FirstLawSatisfied,
		IdealGas:              c.IdealGas,
	}
	for _, pr := range c.Processes {
		data.Processes = append(data.Processes, FromProcess(pr))
	}
	return data
}

// WriteJSON writes v indented to path.
func WriteJSON(path string, v any) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteJSONStdout writes v indented to stdout.
func WriteJSONStdout(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
