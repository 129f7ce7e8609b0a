package cycle

import "errors"

// Domain errors for cycle construction and execution.
var (
	// ErrInvalidCompressionRatio indicates the Carnot alpha/beta validity
	// constraints are violated for the given ratio and temperatures.
	ErrInvalidCompressionRatio = errors.New("cycle: compression ratio outside valid range")

	// ErrEfficiencyMismatch indicates the heat-based and work-based
	// efficiencies disagree beyond the allowed error.
	ErrEfficiencyMismatch = errors.New("cycle: heat-based and work-based efficiencies disagree")

	// ErrClosureViolation indicates the chain did not return to its initial
	// state within tolerance. This is an internal-consistency failure, not a
	// user input error.
	ErrClosureViolation = errors.New("cycle: final state does not return to the initial state")

	// ErrNotImplemented indicates Run was invoked on a cycle variant with no
	// defined process chain.
	ErrNotImplemented = errors.New("cycle: no process chain defined")

	// ErrAlreadyRun indicates Run was invoked twice on the same cycle.
	ErrAlreadyRun = errors.New("cycle: already run")
)
