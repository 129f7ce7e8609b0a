package thermo

import "math"

// Unknown marks a state variable as absent, to be back-filled from PV = nRT.
var Unknown = math.NaN()

// State is a single gas state. A field set to Unknown (NaN) is treated as
// missing.
type State struct {
	P float64 // pressure (Pa)
	V float64 // volume (m^3)
	T float64 // temperature (K)
	N float64 // amount of substance (mol)
}

// Complete back-fills the single missing variable of s from PV = nRT.
//
// Exactly one of {P, V, T, N} may be Unknown. With more than one missing it
// returns ErrUnderspecifiedState; with none missing it verifies
// |PV - nRT| < tol and returns ErrInconsistentState on violation.
func Complete(s State, tol float64) (State, error) {
	missing := 0
	for _, v := range []float64{s.P, s.V, s.T, s.N} {
		if math.IsNaN(v) {
			missing++
		}
	}

	switch {
	case missing > 1:
		return State{}, &StateError{P: s.P, V: s.V, T: s.T, N: s.N, Wrapped: ErrUnderspecifiedState}
	case missing == 0:
		if math.Abs(s.P*s.V-s.N*R*s.T) >= tol {
			return State{}, &StateError{P: s.P, V: s.V, T: s.T, N: s.N, Wrapped: ErrInconsistentState}
		}
		return s, nil
	}

	switch {
	case math.IsNaN(s.P):
		s.P = s.N * R * s.T / s.V
	case math.IsNaN(s.V):
		s.V = s.N * R * s.T / s.P
	case math.IsNaN(s.T):
		s.T = s.P * s.V / (s.N * R)
	default:
		s.N = s.P * s.V / (R * s.T)
	}
	return s, nil
}

// Residual reports PV - nRT for the state.
func (s State) Residual() float64 {
	return s.P*s.V - s.N*R*s.T
}
