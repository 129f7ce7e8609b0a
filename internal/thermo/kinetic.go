package thermo

import "math"

// Kinetic holds kinetic-theory quantities, computed per trajectory index
// when the molar mass is known. These are auxiliary outputs; none of the
// consistency checks apply to them.
type Kinetic struct {
	RMSSpeed      []float64 // sqrt(3RT/M) (m/s)
	NumberDensity []float64 // molecules per m^3
	MeanFreePath  []float64 // m
	MeanFreeTime  []float64 // s
	AtomicMass    float64   // single-molecule mass (kg)
}

func newKinetic(tr Trajectory, moles, molarMass, diameter float64) *Kinetic {
	n := tr.Len()
	k := &Kinetic{
		RMSSpeed:      make([]float64, n),
		NumberDensity: make([]float64, n),
		MeanFreePath:  make([]float64, n),
		MeanFreeTime:  make([]float64, n),
		AtomicMass:    molarMass / Avogadro,
	}
	for i := 0; i < n; i++ {
		k.RMSSpeed[i] = math.Sqrt(3 * tr.Temperature[i] * R / molarMass)
		k.NumberDensity[i] = moles * Avogadro / tr.Volume[i]
		k.MeanFreePath[i] = 1 / (math.Sqrt2 * math.Pi * diameter * diameter * k.NumberDensity[i])
		k.MeanFreeTime[i] = k.MeanFreePath[i] / k.RMSSpeed[i]
	}
	return k
}

// MaxwellBoltzmann samples the speed-density function at temperature t,
// over a window of three standard deviations around the modal speed. When
// t <= 0 the maximum trajectory temperature is used. Both return slices
// are nil when the molar mass is unknown.
func (pr *Process) MaxwellBoltzmann(t float64, samples int) (speeds, density []float64) {
	if pr.M <= 0 {
		return nil, nil
	}
	if t <= 0 {
		for _, ti := range pr.Traj.Temperature {
			if ti > t {
				t = ti
			}
		}
		if t <= 0 {
			t = pr.T1
		}
	}
	if samples < 2 {
		samples = 1000
	}

	m := pr.M / Avogadro
	vMax := math.Sqrt(2 * Boltzmann * t / m)
	sigma := math.Sqrt(Boltzmann * t / m)

	speeds = linspace(vMax-3*sigma, vMax+3*sigma, samples)
	density = make([]float64, samples)
	norm := 4 / math.Sqrt(math.Pi) * math.Pow(m/(Boltzmann*t), 1.5)
	for i, v := range speeds {
		density[i] = norm * v * v * math.Exp(-m*v*v/(2*Boltzmann*t))
	}
	return speeds, density
}
