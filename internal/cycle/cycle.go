// Package cycle composes ideal-gas processes into closed thermodynamic
// cycles.
//
// A [Cycle] chains four processes end to end: each process starts at the
// previous process's end state with P, V and T carried forward exactly and
// the amount of substance invariant across the chain. [Cycle.Run] drives
// the whole chain atomically, verifies closure, aggregates work and heat,
// and computes the efficiency two independent ways, cross-checking them.
//
// Carnot and Otto chains are implemented; Brayton, Stirling, Ericsson,
// Rankine and Kalina are declared extension points whose Run fails with
// ErrNotImplemented.
package cycle

import (
	"fmt"
	"math"

	"github.com/Tycho887/FYSLAB/internal/substance"
	"github.com/Tycho887/FYSLAB/internal/thermo"
)

// Phase is the cycle execution state.
type Phase int

const (
	PhaseUnstarted Phase = iota
	PhaseProcess1
	PhaseProcess2
	PhaseProcess3
	PhaseProcess4
	PhaseClosed
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseUnstarted:
		return "unstarted"
	case PhaseProcess1, PhaseProcess2, PhaseProcess3, PhaseProcess4:
		return fmt.Sprintf("process %d", int(p))
	case PhaseClosed:
		return "closed"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Config are the cycle construction parameters. Any two of {P1, V1, N} plus
// the reservoir temperatures determine the start state; the missing one
// must be set to thermo.Unknown and is back-filled from PV = nRT at THot.
type Config struct {
	CompressionRatio float64
	THot             float64 // hot reservoir temperature (K)
	TCold            float64 // cold reservoir temperature (K)

	N  float64 // amount of substance (mol)
	P1 float64 // initial pressure (Pa)
	V1 float64 // initial volume (m^3)

	Monatomic bool
	Diatomic  bool
	Gas       string

	Params thermo.Params
}

// generator builds a variant's process chain. Implementations advance the
// cycle phase as they go; any error aborts the chain.
type generator interface {
	processes(c *Cycle) ([]*thermo.Process, error)
}

// Cycle is a four-process closed cycle. Construct with NewCarnot, NewOtto
// or one of the stub constructors, then call Run once. A cycle is immutable
// after Run returns.
type Cycle struct {
	Name string

	cfg   Config
	table *substance.Table
	gen   generator
	phase Phase

	N, P1, V1     float64
	Cv, Cp, Gamma float64
	Alpha, Beta   float64 // volume-ratio multipliers of the chain

	Processes    []*thermo.Process
	WorkDoneBy   []float64
	WorkDoneOn   []float64
	HeatAbsorbed []float64
	HeatReleased []float64

	Efficiency            float64
	TheoreticalEfficiency float64 // Carnot bound 1 - TCold/THot
	FirstLawSatisfied     bool
	IdealGas              bool
}

// newCycle resolves gas identity and the start state shared by all variants.
func newCycle(name string, cfg Config, tbl *substance.Table, gen generator) (*Cycle, error) {
	if cfg.Params == (thermo.Params{}) {
		cfg.Params = thermo.DefaultParams()
	}
	if err := cfg.Params.Validate(); err != nil {
		return nil, err
	}
	if cfg.THot <= 0 || cfg.TCold <= 0 {
		return nil, fmt.Errorf("cycle: reservoir temperatures must be positive (T_hot=%g T_cold=%g)", cfg.THot, cfg.TCold)
	}

	c := &Cycle{
		Name:  name,
		cfg:   cfg,
		table: tbl,
		gen:   gen,
		phase: PhaseUnstarted,
	}

	c.Cv = 3.0 / 2.0 * thermo.R
	c.Cp = 5.0 / 2.0 * thermo.R
	c.Gamma = 5.0 / 3.0
	if cfg.Diatomic {
		c.Cv = 5.0 / 2.0 * thermo.R
		c.Cp = 7.0 / 2.0 * thermo.R
		c.Gamma = 7.0 / 5.0
	}
	if cfg.Gas != "" {
		if c.table == nil {
			c.table = substance.Default()
		}
		s, _ := c.table.Lookup(cfg.Gas)
		c.Cv, c.Cp, c.Gamma = s.Cv, s.Cp, s.Gamma
	}

	st, err := thermo.Complete(thermo.State{P: cfg.P1, V: cfg.V1, T: cfg.THot, N: cfg.N}, cfg.Params.AllowedError)
	if err != nil {
		return nil, err
	}
	c.N, c.P1, c.V1 = st.N, st.P, st.V

	c.TheoreticalEfficiency = 1 - cfg.TCold/cfg.THot
	return c, nil
}

// Phase reports the execution state.
func (c *Cycle) Phase() Phase { return c.phase }

// Config returns the construction parameters.
func (c *Cycle) Config() Config { return c.cfg }

// Run drives all four processes, verifies closure, aggregates work and
// heat, and computes the efficiency. It is atomic: on any failure the cycle
// ends in the failed phase and exposes no partial chain.
func (c *Cycle) Run() error {
	if c.phase != PhaseUnstarted {
		return fmt.Errorf("%w: %s", ErrAlreadyRun, c.Name)
	}
	if c.gen == nil {
		c.phase = PhaseFailed
		return fmt.Errorf("%w: %s", ErrNotImplemented, c.Name)
	}

	procs, err := c.gen.processes(c)
	if err != nil {
		return c.fail(err)
	}

	if err := checkClosure(procs, c.cfg.Params.AllowedError); err != nil {
		return c.fail(err)
	}

	for _, pr := range procs {
		c.WorkDoneBy = append(c.WorkDoneBy, pr.Derived.WorkDoneBy)
		c.WorkDoneOn = append(c.WorkDoneOn, pr.Derived.WorkDoneOn)
		c.HeatAbsorbed = append(c.HeatAbsorbed, pr.Derived.HeatAbsorbed)
		c.HeatReleased = append(c.HeatReleased, pr.Derived.HeatReleased)
	}

	if err := c.computeEfficiency(); err != nil {
		c.WorkDoneBy, c.WorkDoneOn, c.HeatAbsorbed, c.HeatReleased = nil, nil, nil, nil
		return c.fail(err)
	}

	c.FirstLawSatisfied = true
	c.IdealGas = true
	for _, pr := range procs {
		c.FirstLawSatisfied = c.FirstLawSatisfied && pr.IsFirstLawSatisfied()
		c.IdealGas = c.IdealGas && pr.IsIdealGas()
	}

	c.Processes = procs
	c.phase = PhaseClosed
	return nil
}

func (c *Cycle) fail(err error) error {
	c.phase = PhaseFailed
	c.Processes = nil
	return err
}

// checkClosure verifies the last process ends where the first one starts.
func checkClosure(procs []*thermo.Process, tol float64) error {
	first := procs[0].Traj.Start()
	last := procs[len(procs)-1].Traj.End()

	if math.Abs(last.V-first.V) >= tol {
		return fmt.Errorf("%w: volume %g vs %g", ErrClosureViolation, last.V, first.V)
	}
	if math.Abs(last.T-first.T) >= tol {
		return fmt.Errorf("%w: temperature %g vs %g", ErrClosureViolation, last.T, first.T)
	}
	if math.Abs(last.P-first.P) >= tol {
		return fmt.Errorf("%w: pressure %g vs %g", ErrClosureViolation, last.P, first.P)
	}
	return nil
}

// computeEfficiency derives the thermal efficiency from the heat partition
// and from the net work, and cross-checks the two. For a chain running in
// reverse (a heat pump) the roles of the heat sums are swapped so the
// reported figure is the efficiency of the underlying engine cycle.
func (c *Cycle) computeEfficiency() error {
	var qIn, qOut, work float64
	for i, q := range c.HeatAbsorbed {
		if q > 0 {
			qIn += q
		} else {
			qOut += q
		}
		work += c.WorkDoneBy[i]
	}

	qHigh, qLow := qIn, -qOut
	if qLow > qHigh {
		qHigh, qLow = qLow, qHigh
	}
	if qHigh == 0 {
		return fmt.Errorf("cycle: no heat exchanged, efficiency undefined")
	}

	fromHeat := 1 - qLow/qHigh
	fromWork := math.Abs(work) / qHigh
	if math.Abs(fromHeat-fromWork) >= c.cfg.Params.AllowedError {
		return fmt.Errorf("%w: from heat %.6f, from work %.6f", ErrEfficiencyMismatch, fromHeat, fromWork)
	}

	c.Efficiency = (fromHeat + fromWork) / 2
	return nil
}

// conditions builds the start conditions for a chain process, carrying the
// cycle's gas identity. P is always back-filled.
func (c *Cycle) conditions(v1, t1 float64) thermo.Conditions {
	return thermo.Conditions{
		N:         c.N,
		P1:        thermo.Unknown,
		V1:        v1,
		T1:        t1,
		Monatomic: c.cfg.Monatomic,
		Diatomic:  c.cfg.Diatomic,
		Gas:       c.cfg.Gas,
	}
}

// OttoEfficiency is the theoretical efficiency of an ideal Otto cycle with
// the given compression ratio and adiabatic index.
func OttoEfficiency(ratio, gamma float64) float64 {
	return 1 - math.Pow(ratio, 1-gamma)
}
