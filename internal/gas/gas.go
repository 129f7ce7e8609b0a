// Package gas provides a stateful ideal-gas container for ad-hoc process
// sequences.
//
// Unlike a cycle, a Gas does not enforce closure: it is an open-ended state
// tape. Each named transition takes the current last state as the new
// process's start, generates the trajectory, and appends it to the running
// pressure/volume/temperature history along with the process record.
package gas

import (
	"errors"
	"fmt"
	"math"

	"github.com/Tycho887/FYSLAB/internal/substance"
	"github.com/Tycho887/FYSLAB/internal/thermo"
)

// ErrTarget indicates a transition was given zero or two targets where
// exactly one is required.
var ErrTarget = errors.New("gas: exactly one target must be set")

// Gas tracks a running (P, V, T) history across successive process calls.
type Gas struct {
	Substance substance.Substance
	// Defaulted is true when the named gas was unknown and Air was
	// substituted.
	Defaulted bool

	N             float64
	Cv, Cp, Gamma float64
	M             float64

	// Running state tape; index 0 is the construction state and each
	// transition appends its full trajectory.
	Pressure    []float64
	Volume      []float64
	Temperature []float64

	params thermo.Params
	table  *substance.Table
	log    []*thermo.Process
}

// New constructs a gas from exactly three of {p, v, t, n} (the fourth set
// to thermo.Unknown) and a substance name or formula.
func New(p, v, t, n float64, gasID string, tbl *substance.Table, params thermo.Params) (*Gas, error) {
	if params == (thermo.Params{}) {
		params = thermo.DefaultParams()
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	st, err := thermo.Complete(thermo.State{P: p, V: v, T: t, N: n}, params.AllowedError)
	if err != nil {
		return nil, err
	}
	if st.N <= 0 {
		return nil, fmt.Errorf("gas: moles must be positive, got %g", st.N)
	}

	if tbl == nil {
		tbl = substance.Default()
	}
	s, ok := tbl.Lookup(gasID)

	return &Gas{
		Substance:   s,
		Defaulted:   !ok,
		N:           st.N,
		Cv:          s.Cv,
		Cp:          s.Cp,
		Gamma:       s.Gamma,
		M:           s.MolarMass,
		Pressure:    []float64{st.P},
		Volume:      []float64{st.V},
		Temperature: []float64{st.T},
		params:      params,
		table:       tbl,
	}, nil
}

// Current returns the last state on the tape.
func (g *Gas) Current() thermo.State {
	i := len(g.Pressure) - 1
	return thermo.State{P: g.Pressure[i], V: g.Volume[i], T: g.Temperature[i], N: g.N}
}

// Processes returns the append-only process log.
func (g *Gas) Processes() []*thermo.Process {
	out := make([]*thermo.Process, len(g.log))
	copy(out, g.log)
	return out
}

// Isothermal runs an isothermal process from the current state to exactly
// one of the target pressure or volume (the other thermo.Unknown).
func (g *Gas) Isothermal(targetP, targetV float64) error {
	pr, err := g.start(thermo.KindIsothermal)
	if err != nil {
		return err
	}
	switch {
	case !math.IsNaN(targetP) && math.IsNaN(targetV):
		err = pr.GenerateFromPressure(targetP)
	case math.IsNaN(targetP) && !math.IsNaN(targetV):
		err = pr.GenerateFromVolume(targetV)
	default:
		return ErrTarget
	}
	if err != nil {
		return err
	}
	g.append(pr)
	return nil
}

// Isobaric runs an isobaric process to exactly one of the target volume or
// temperature.
func (g *Gas) Isobaric(targetV, targetT float64) error {
	pr, err := g.start(thermo.KindIsobaric)
	if err != nil {
		return err
	}
	switch {
	case !math.IsNaN(targetV) && math.IsNaN(targetT):
		err = pr.GenerateFromVolume(targetV)
	case math.IsNaN(targetV) && !math.IsNaN(targetT):
		err = pr.GenerateFromTemperature(targetT)
	default:
		return ErrTarget
	}
	if err != nil {
		return err
	}
	g.append(pr)
	return nil
}

// Isochoric runs an isochoric process to exactly one of the target pressure
// or temperature.
func (g *Gas) Isochoric(targetP, targetT float64) error {
	pr, err := g.start(thermo.KindIsochoric)
	if err != nil {
		return err
	}
	switch {
	case !math.IsNaN(targetP) && math.IsNaN(targetT):
		err = pr.GenerateFromPressure(targetP)
	case math.IsNaN(targetP) && !math.IsNaN(targetT):
		err = pr.GenerateFromTemperature(targetT)
	default:
		return ErrTarget
	}
	if err != nil {
		return err
	}
	g.append(pr)
	return nil
}

// Adiabatic runs an adiabatic process to exactly one of the target
// pressure, volume or temperature.
func (g *Gas) Adiabatic(targetP, targetV, targetT float64) error {
	pr, err := g.start(thermo.KindAdiabatic)
	if err != nil {
		return err
	}
	set := 0
	for _, v := range []float64{targetP, targetV, targetT} {
		if !math.IsNaN(v) {
			set++
		}
	}
	if set != 1 {
		return ErrTarget
	}
	switch {
	case !math.IsNaN(targetP):
		err = pr.GenerateFromPressure(targetP)
	case !math.IsNaN(targetV):
		err = pr.GenerateFromVolume(targetV)
	default:
		err = pr.GenerateFromTemperature(targetT)
	}
	if err != nil {
		return err
	}
	g.append(pr)
	return nil
}

// start builds a process of the given kind at the current tape head.
func (g *Gas) start(kind thermo.Kind) (*thermo.Process, error) {
	cur := g.Current()
	return thermo.New(kind, thermo.Conditions{
		N:   g.N,
		P1:  cur.P,
		V1:  cur.V,
		T1:  thermo.Unknown,
		Gas: g.Substance.Name,
	}, g.table, g.params)
}

func (g *Gas) append(pr *thermo.Process) {
	g.Pressure = append(g.Pressure, pr.Traj.Pressure...)
	g.Volume = append(g.Volume, pr.Traj.Volume...)
	g.Temperature = append(g.Temperature, pr.Traj.Temperature...)
	g.log = append(g.log, pr)
}
