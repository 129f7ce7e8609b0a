package thermo

import "math"

// Derived holds the quantities computed from a generated trajectory.
// Sign conventions: WorkDoneBy is the work done by the gas on the
// surroundings, HeatAbsorbed is heat flowing into the gas; the On/Released
// counterparts are their negations.
type Derived struct {
	InternalEnergy   []float64 // n*Cv*T per index (J)
	Entropy          []float64 // entropy shape n*ln(V) + Cv*ln(T) per index
	IdealGasResidual []float64 // PV - nRT per index

	WorkDoneBy   float64
	WorkDoneOn   float64
	HeatAbsorbed float64
	HeatReleased float64

	// FirstLawResidual is WorkDoneOn + HeatAbsorbed - (U_end - U_start).
	FirstLawResidual float64

	// Kinetic is nil when the molar mass is unknown.
	Kinetic *Kinetic
}

// derive recomputes Derived from the current trajectory.
func (pr *Process) derive() {
	tr := pr.Traj
	n := tr.Len()

	d := Derived{
		InternalEnergy:   make([]float64, n),
		Entropy:          make([]float64, n),
		IdealGasResidual: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		d.InternalEnergy[i] = pr.Cv * pr.N * tr.Temperature[i]
		d.Entropy[i] = pr.N*math.Log(tr.Volume[i]) + pr.Cv*math.Log(tr.Temperature[i])
		d.IdealGasResidual[i] = tr.Pressure[i]*tr.Volume[i] - pr.N*R*tr.Temperature[i]
	}

	vEnd := tr.Volume[n-1]
	tEnd := tr.Temperature[n-1]

	switch pr.Kind {
	case KindIsothermal:
		d.WorkDoneBy = R * pr.N * pr.T1 * math.Log(vEnd/pr.V1)
		d.WorkDoneOn = -d.WorkDoneBy
		d.HeatAbsorbed = -d.WorkDoneOn // dU = 0
	case KindIsobaric:
		d.WorkDoneBy = pr.P1 * (vEnd - pr.V1)
		d.WorkDoneOn = -d.WorkDoneBy
		d.HeatAbsorbed = pr.N * pr.Cp * (tEnd - pr.T1)
	case KindIsochoric:
		d.WorkDoneBy = 0
		d.WorkDoneOn = 0
		d.HeatAbsorbed = pr.N * pr.Cv * (tEnd - pr.T1)
	case KindAdiabatic:
		d.WorkDoneOn = pr.N * pr.Cv * (tEnd - pr.T1)
		d.WorkDoneBy = -d.WorkDoneOn
		d.HeatAbsorbed = 0
	default:
		// degenerate constant path: both terms vanish
		d.WorkDoneBy = pr.P1 * (vEnd - pr.V1)
		d.WorkDoneOn = -d.WorkDoneBy
		d.HeatAbsorbed = pr.N * (pr.Cv + 1) * (tEnd - pr.T1)
	}
	d.HeatReleased = -d.HeatAbsorbed
	d.FirstLawResidual = d.WorkDoneOn + d.HeatAbsorbed - (d.InternalEnergy[n-1] - d.InternalEnergy[0])

	if pr.M > 0 {
		d.Kinetic = newKinetic(tr, pr.N, pr.M, pr.Diameter)
	}

	pr.Derived = d
}

// IsIdealGas reports whether every trajectory index satisfies PV = nRT
// within the allowed error. It is false before any trajectory is generated.
func (pr *Process) IsIdealGas() bool {
	if pr.Traj.Len() == 0 {
		return false
	}
	for _, r := range pr.Derived.IdealGasResidual {
		if math.Abs(r) >= pr.Params.AllowedError {
			return false
		}
	}
	return true
}

// IsFirstLawSatisfied reports whether the first-law residual is within the
// allowed error. It is false before any trajectory is generated.
func (pr *Process) IsFirstLawSatisfied() bool {
	if pr.Traj.Len() == 0 {
		return false
	}
	return math.Abs(pr.Derived.FirstLawResidual) < pr.Params.AllowedError
}
