package thermo

import (
	"errors"
	"fmt"
)

// Domain errors for state completion and trajectory generation.
var (
	// ErrUnderspecifiedState indicates fewer than three of {P, V, T, n} were given.
	ErrUnderspecifiedState = errors.New("thermo: fewer than three of P, V, T, n are defined")

	// ErrInconsistentState indicates all four of {P, V, T, n} were given but
	// they do not satisfy PV = nRT within tolerance.
	ErrInconsistentState = errors.New("thermo: P, V, T, n do not satisfy PV = nRT")

	// ErrInvalidSteps indicates a step count below 2 or above MaxSteps.
	ErrInvalidSteps = errors.New("thermo: steps out of valid range")
)

// StateError wraps a state-completion failure with the offending values.
type StateError struct {
	P, V, T, N float64
	Wrapped    error
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%v (P=%g V=%g T=%g n=%g)", e.Wrapped, e.P, e.V, e.T, e.N)
}

func (e *StateError) Unwrap() error {
	return e.Wrapped
}
