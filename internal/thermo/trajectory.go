package thermo

// Trajectory holds the generated path through (P, V, T) space. The three
// slices are equal length; index 0 is the start state and the last index is
// the target state.
type Trajectory struct {
	Volume      []float64
	Pressure    []float64
	Temperature []float64
}

func (tr Trajectory) Len() int { return len(tr.Volume) }

// Start returns the first trajectory state. The moles field is not carried
// by the trajectory and is left Unknown.
func (tr Trajectory) Start() State {
	return State{P: tr.Pressure[0], V: tr.Volume[0], T: tr.Temperature[0], N: Unknown}
}

// End returns the last trajectory state.
func (tr Trajectory) End() State {
	i := tr.Len() - 1
	return State{P: tr.Pressure[i], V: tr.Volume[i], T: tr.Temperature[i], N: Unknown}
}

// linspace returns n evenly spaced samples from a to b, endpoints inclusive.
func linspace(a, b float64, n int) []float64 {
	out := make([]float64, n)
	step := (b - a) / float64(n-1)
	for i := range out {
		out[i] = a + float64(i)*step
	}
	// guarantee the exact endpoint regardless of rounding
	out[n-1] = b
	return out
}

// constant returns n copies of v.
func constant(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}
