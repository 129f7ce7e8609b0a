// Package thermo provides the core ideal-gas process engine.
//
// The package models quasi-static processes of an ideal gas as dense
// parametrized trajectories in (P, V, T) space:
//
//   - [State]: a single gas state, completed from any 3 of {P, V, T, n}
//   - [Process]: a single process (isothermal, isobaric, isochoric, adiabatic)
//   - [Trajectory]: the generated path between the start and target state
//   - [Derived]: work, heat, internal energy, entropy, and consistency residuals
//
// # Example
//
//	pr, _ := thermo.NewIsothermal(thermo.Conditions{
//	    N: 1, V1: 0.01, T1: 400, P1: thermo.Unknown,
//	    Monatomic: true,
//	}, nil, thermo.DefaultParams())
//	_ = pr.GenerateFromVolume(0.02)
//	fmt.Println(pr.Derived.WorkDoneBy)
//
// # Validation
//
// Every generated trajectory satisfies PV = nRT at each index within
// [Params.AllowedError], and every process satisfies the first law of
// thermodynamics: work done on the gas plus heat absorbed equals the change
// in internal energy. Use [Process.IsIdealGas] and
// [Process.IsFirstLawSatisfied] to check the residuals.
//
// # Thread Safety
//
// Process instances are NOT thread-safe; each owns its trajectory buffers
// exclusively. Independent processes may be generated in parallel.
package thermo
