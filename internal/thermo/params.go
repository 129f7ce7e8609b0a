package thermo

import "fmt"

// Physical constants, SI units.
const (
	// R is the universal gas constant in J/(mol K).
	R = 8.314
	// Boltzmann is the Boltzmann constant in J/K.
	Boltzmann = 1.38064852e-23
	// Avogadro is the Avogadro constant in 1/mol.
	Avogadro = 6.022e23
)

const (
	// DefaultSteps is the default trajectory resolution.
	DefaultSteps = 10000
	// MaxSteps caps trajectory length to bound memory.
	MaxSteps = 10_000_000
	// DefaultDiameter is the default molecular diameter in m (3 angstrom).
	DefaultDiameter = 3e-10
)

// Params carries the resolution and tolerances for trajectory generation
// and consistency validation.
type Params struct {
	// Steps is the number of trajectory samples, endpoints inclusive.
	Steps int
	// AllowedError is the tolerance for the ideal-gas, first-law and
	// cycle-closure residual checks, and for verifying fully specified
	// initial conditions at construction.
	AllowedError float64
	// ExactTol is the stricter tolerance for verifying a free-standing
	// fully specified state passed directly to Complete.
	ExactTol float64
}

func DefaultParams() Params {
	return Params{
		Steps:        DefaultSteps,
		AllowedError: 1e-4,
		ExactTol:     1e-10,
	}
}

func (p Params) Validate() error {
	if p.Steps < 2 || p.Steps > MaxSteps {
		return fmt.Errorf("%w: %d (want 2..%d)", ErrInvalidSteps, p.Steps, MaxSteps)
	}
	if p.AllowedError <= 0 {
		return fmt.Errorf("thermo: allowed error must be positive, got %g", p.AllowedError)
	}
	if p.ExactTol <= 0 {
		return fmt.Errorf("thermo: exact tolerance must be positive, got %g", p.ExactTol)
	}
	return nil
}
