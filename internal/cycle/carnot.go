package cycle

import (
	"fmt"
	"math"

	"github.com/Tycho887/FYSLAB/internal/substance"
	"github.com/Tycho887/FYSLAB/internal/thermo"
)

// NewCarnot builds a Carnot cycle: isothermal expansion at THot, adiabatic
// expansion to TCold, isothermal compression at TCold, adiabatic
// compression back to THot. The isothermal volume multipliers alpha and
// beta follow from the compression ratio and the reservoir temperatures;
// their validity constraints are checked here so an invalid ratio fails at
// construction, not mid-run.
func NewCarnot(cfg Config, tbl *substance.Table) (*Cycle, error) {
	c, err := newCycle("carnot", cfg, tbl, carnot{})
	if err != nil {
		return nil, err
	}

	r := cfg.CompressionRatio
	hotRatio := math.Pow(cfg.THot/cfg.TCold, 1/(c.Gamma-1))

	c.Alpha = r * math.Pow(cfg.TCold/cfg.THot, 1/(c.Gamma-1))
	if !(c.Alpha > 0) {
		return nil, fmt.Errorf("%w: ratio %g is too low, minimum valid ratio %.2f", ErrInvalidCompressionRatio, r, hotRatio)
	}
	c.Beta = 1 / r * hotRatio
	if !(c.Beta*r > 1) {
		return nil, fmt.Errorf("%w: ratio %g is too high, beta*ratio = %.4f must exceed 1", ErrInvalidCompressionRatio, r, c.Beta*r)
	}
	return c, nil
}

type carnot struct{}

func (carnot) processes(c *Cycle) ([]*thermo.Process, error) {
	cfg := c.cfg
	procs := make([]*thermo.Process, 0, 4)

	c.phase = PhaseProcess1
	hotIsothermal, err := thermo.NewIsothermal(c.conditions(c.V1, cfg.THot), c.table, cfg.Params)
	if err != nil {
		return nil, err
	}
	if err := hotIsothermal.GenerateFromVolume(c.Alpha * c.V1); err != nil {
		return nil, err
	}
	procs = append(procs, hotIsothermal)

	c.phase = PhaseProcess2
	end := hotIsothermal.Traj.End()
	expansion, err := thermo.NewAdiabatic(c.conditions(end.V, end.T), c.table, cfg.Params)
	if err != nil {
		return nil, err
	}
	if err := expansion.GenerateFromTemperature(cfg.TCold); err != nil {
		return nil, err
	}
	procs = append(procs, expansion)

	// by definition of the compression ratio, the adiabatic expansion must
	// land on V1 * ratio
	v3 := expansion.Traj.End().V
	if math.Abs(v3-c.V1*cfg.CompressionRatio) >= cfg.Params.AllowedError {
		return nil, fmt.Errorf("%w: mid-cycle volume %g, expected %g", ErrClosureViolation, v3, c.V1*cfg.CompressionRatio)
	}

	c.phase = PhaseProcess3
	coldIsothermal, err := thermo.NewIsothermal(c.conditions(v3, cfg.TCold), c.table, cfg.Params)
	if err != nil {
		return nil, err
	}
	if err := coldIsothermal.GenerateFromVolume(c.Beta * v3); err != nil {
		return nil, err
	}
	procs = append(procs, coldIsothermal)

	c.phase = PhaseProcess4
	end = coldIsothermal.Traj.End()
	compression, err := thermo.NewAdiabatic(c.conditions(end.V, end.T), c.table, cfg.Params)
	if err != nil {
		return nil, err
	}
	if err := compression.GenerateFromTemperature(cfg.THot); err != nil {
		return nil, err
	}
	procs = append(procs, compression)

	return procs, nil
}
