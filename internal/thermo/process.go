package thermo

import (
	"fmt"
	"math"

	"github.com/Tycho887/FYSLAB/internal/substance"
)

// Kind tags a process variant. It drives trajectory generation and the
// work/heat formulas; there is no dispatch on concrete types.
type Kind int

const (
	KindGeneric Kind = iota
	KindIsothermal
	KindIsobaric
	KindIsochoric
	KindAdiabatic
)

func (k Kind) String() string {
	switch k {
	case KindIsothermal:
		return "isothermal"
	case KindIsobaric:
		return "isobaric"
	case KindIsochoric:
		return "isochoric"
	case KindAdiabatic:
		return "adiabatic"
	default:
		return "generic"
	}
}

// Conditions are the construction parameters of a process. Any three of
// {N, P1, V1, T1} must be set; the fourth is Unknown and gets back-filled
// from PV = nRT. Gas identity comes from the Monatomic/Diatomic flags or,
// when Gas is non-empty, from the substance table.
type Conditions struct {
	N  float64 // amount of substance (mol)
	P1 float64 // initial pressure (Pa)
	V1 float64 // initial volume (m^3)
	T1 float64 // initial temperature (K)

	Monatomic bool
	Diatomic  bool
	Gas       string // substance name or chemical formula

	Gamma    float64 // adiabatic index override; 0 keeps the gas value
	Diameter float64 // molecular diameter (m); 0 selects DefaultDiameter
}

// Process is a single quasi-static process. Construct it with one of the
// New* constructors, then call a Generate* method to populate Traj and
// Derived. Regenerating replaces both wholesale.
type Process struct {
	Kind   Kind
	Params Params

	N  float64
	P1 float64
	V1 float64
	T1 float64

	Cv    float64 // molar heat capacity at constant volume (J/(mol K))
	Cp    float64 // molar heat capacity at constant pressure (J/(mol K))
	Gamma float64 // adiabatic index Cp/Cv

	M        float64 // molar mass (kg/mol); 0 when the gas is anonymous
	Diameter float64 // molecular diameter (m)

	Substance          substance.Substance
	SubstanceDefaulted bool // the named gas was unknown and Air was substituted

	Traj    Trajectory
	Derived Derived
}

// New constructs a process of the given kind, resolving gas identity and
// back-filling the missing initial-state variable.
func New(kind Kind, c Conditions, tbl *substance.Table, p Params) (*Process, error) {
	if p == (Params{}) {
		p = DefaultParams()
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	pr := &Process{
		Kind:     kind,
		Params:   p,
		Diameter: c.Diameter,
	}
	if pr.Diameter == 0 {
		pr.Diameter = DefaultDiameter
	}

	// monatomic values are the fallback for anonymous gases
	pr.Cv = 3.0 / 2.0 * R
	pr.Cp = 5.0 / 2.0 * R
	pr.Gamma = 5.0 / 3.0
	if c.Diatomic {
		pr.Cv = 5.0 / 2.0 * R
		pr.Cp = 7.0 / 2.0 * R
		pr.Gamma = 7.0 / 5.0
	}
	if c.Gas != "" {
		if tbl == nil {
			tbl = substance.Default()
		}
		s, ok := tbl.Lookup(c.Gas)
		pr.Substance = s
		pr.SubstanceDefaulted = !ok
		pr.M = s.MolarMass
		pr.Cv = s.Cv
		pr.Cp = s.Cp
		pr.Gamma = s.Gamma
	}
	if c.Gamma > 0 {
		pr.Gamma = c.Gamma
	}

	st, err := Complete(State{P: c.P1, V: c.V1, T: c.T1, N: c.N}, p.AllowedError)
	if err != nil {
		return nil, err
	}
	if st.N <= 0 {
		return nil, fmt.Errorf("thermo: moles must be positive, got %g", st.N)
	}
	pr.N, pr.P1, pr.V1, pr.T1 = st.N, st.P, st.V, st.T
	return pr, nil
}

func NewGeneric(c Conditions, tbl *substance.Table, p Params) (*Process, error) {
	return New(KindGeneric, c, tbl, p)
}

func NewIsothermal(c Conditions, tbl *substance.Table, p Params) (*Process, error) {
	return New(KindIsothermal, c, tbl, p)
}

func NewIsobaric(c Conditions, tbl *substance.Table, p Params) (*Process, error) {
	return New(KindIsobaric, c, tbl, p)
}

func NewIsochoric(c Conditions, tbl *substance.Table, p Params) (*Process, error) {
	return New(KindIsochoric, c, tbl, p)
}

func NewAdiabatic(c Conditions, tbl *substance.Table, p Params) (*Process, error) {
	return New(KindAdiabatic, c, tbl, p)
}

func (pr *Process) pressureAt(v, t float64) float64    { return pr.N * R * t / v }
func (pr *Process) volumeAt(p, t float64) float64      { return pr.N * R * t / p }
func (pr *Process) temperatureAt(p, v float64) float64 { return p * v / (pr.N * R) }

// constantTrajectory is the degenerate path: all three variables held at
// the initial state. It is the fallback for targets a variant cannot sweep
// (e.g. a temperature target on an isothermal process).
func (pr *Process) constantTrajectory(n int) Trajectory {
	return Trajectory{
		Volume:      constant(pr.V1, n),
		Pressure:    constant(pr.P1, n),
		Temperature: constant(pr.T1, n),
	}
}

// GenerateFromVolume generates the trajectory toward the target volume.
func (pr *Process) GenerateFromVolume(v2 float64) error {
	if err := pr.Params.Validate(); err != nil {
		return err
	}
	n := pr.Params.Steps

	var tr Trajectory
	switch pr.Kind {
	case KindIsothermal:
		v := linspace(pr.V1, v2, n)
		p := make([]float64, n)
		for i := range v {
			p[i] = pr.pressureAt(v[i], pr.T1)
		}
		tr = Trajectory{Volume: v, Pressure: p, Temperature: constant(pr.T1, n)}
	case KindIsobaric:
		v := linspace(pr.V1, v2, n)
		t := make([]float64, n)
		for i := range v {
			t[i] = pr.temperatureAt(pr.P1, v[i])
		}
		tr = Trajectory{Volume: v, Pressure: constant(pr.P1, n), Temperature: t}
	case KindAdiabatic:
		v := linspace(pr.V1, v2, n)
		p := make([]float64, n)
		t := make([]float64, n)
		for i := range v {
			ratio := pr.V1 / v[i]
			p[i] = pr.P1 * math.Pow(ratio, pr.Gamma)
			t[i] = pr.T1 * math.Pow(ratio, pr.Gamma-1)
		}
		tr = Trajectory{Volume: v, Pressure: p, Temperature: t}
	default:
		// isochoric cannot sweep volume; generic never sweeps
		tr = pr.constantTrajectory(n)
	}

	pr.Traj = tr
	pr.derive()
	return nil
}

// GenerateFromPressure generates the trajectory toward the target pressure.
func (pr *Process) GenerateFromPressure(p2 float64) error {
	if err := pr.Params.Validate(); err != nil {
		return err
	}
	n := pr.Params.Steps

	var tr Trajectory
	switch pr.Kind {
	case KindIsothermal:
		p := linspace(pr.P1, p2, n)
		v := make([]float64, n)
		for i := range p {
			v[i] = pr.volumeAt(p[i], pr.T1)
		}
		tr = Trajectory{Volume: v, Pressure: p, Temperature: constant(pr.T1, n)}
	case KindIsochoric:
		p := linspace(pr.P1, p2, n)
		t := make([]float64, n)
		for i := range p {
			t[i] = pr.temperatureAt(p[i], pr.V1)
		}
		tr = Trajectory{Volume: constant(pr.V1, n), Pressure: p, Temperature: t}
	case KindAdiabatic:
		p := linspace(pr.P1, p2, n)
		v := make([]float64, n)
		t := make([]float64, n)
		for i := range p {
			v[i] = pr.V1 * math.Pow(pr.P1/p[i], 1/pr.Gamma)
			t[i] = pr.T1 * math.Pow(p[i]/pr.P1, (pr.Gamma-1)/pr.Gamma)
		}
		tr = Trajectory{Volume: v, Pressure: p, Temperature: t}
	default:
		tr = pr.constantTrajectory(n)
	}

	pr.Traj = tr
	pr.derive()
	return nil
}

// GenerateFromTemperature generates the trajectory toward the target
// temperature.
func (pr *Process) GenerateFromTemperature(t2 float64) error {
	if err := pr.Params.Validate(); err != nil {
		return err
	}
	n := pr.Params.Steps

	var tr Trajectory
	switch pr.Kind {
	case KindIsobaric:
		t := linspace(pr.T1, t2, n)
		v := make([]float64, n)
		for i := range t {
			v[i] = pr.volumeAt(pr.P1, t[i])
		}
		tr = Trajectory{Volume: v, Pressure: constant(pr.P1, n), Temperature: t}
	case KindIsochoric:
		t := linspace(pr.T1, t2, n)
		p := make([]float64, n)
		for i := range t {
			p[i] = pr.pressureAt(pr.V1, t[i])
		}
		tr = Trajectory{Volume: constant(pr.V1, n), Pressure: p, Temperature: t}
	case KindAdiabatic:
		t := linspace(pr.T1, t2, n)
		v := make([]float64, n)
		p := make([]float64, n)
		for i := range t {
			v[i] = pr.V1 * math.Pow(pr.T1/t[i], 1/(pr.Gamma-1))
			p[i] = pr.P1 * math.Pow(t[i]/pr.T1, pr.Gamma/(pr.Gamma-1))
		}
		tr = Trajectory{Volume: v, Pressure: p, Temperature: t}
	default:
		tr = pr.constantTrajectory(n)
	}

	pr.Traj = tr
	pr.derive()
	return nil
}

// Label names the process for presentation: variant plus expansion or
// compression, decided by comparing the end volume to the start volume.
func (pr *Process) Label() string {
	if pr.Traj.Len() == 0 {
		return pr.Kind.String()
	}
	if pr.Kind == KindIsochoric {
		return "isochoric process"
	}
	last := pr.Traj.Volume[pr.Traj.Len()-1]
	switch {
	case last > pr.Traj.Volume[0]:
		return pr.Kind.String() + " expansion"
	case last < pr.Traj.Volume[0]:
		return pr.Kind.String() + " compression"
	default:
		return pr.Kind.String() + " process"
	}
}
