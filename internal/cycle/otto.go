package cycle

import (
	"fmt"

	"github.com/Tycho887/FYSLAB/internal/substance"
	"github.com/Tycho887/FYSLAB/internal/thermo"
)

// NewOtto builds an Otto cycle: adiabatic compression from TCold, isochoric
// heat addition to THot, adiabatic expansion, isochoric heat rejection back
// to TCold. Alpha and Beta are 1/ratio and ratio.
func NewOtto(cfg Config, tbl *substance.Table) (*Cycle, error) {
	if cfg.CompressionRatio <= 1 {
		return nil, fmt.Errorf("%w: ratio %g, minimum valid ratio 1", ErrInvalidCompressionRatio, cfg.CompressionRatio)
	}
	c, err := newCycle("otto", cfg, tbl, otto{})
	if err != nil {
		return nil, err
	}
	c.Alpha = 1 / cfg.CompressionRatio
	c.Beta = cfg.CompressionRatio
	return c, nil
}

type otto struct{}

func (otto) processes(c *Cycle) ([]*thermo.Process, error) {
	cfg := c.cfg
	procs := make([]*thermo.Process, 0, 4)

	c.phase = PhaseProcess1
	compression, err := thermo.NewAdiabatic(c.conditions(c.V1, cfg.TCold), c.table, cfg.Params)
	if err != nil {
		return nil, err
	}
	if err := compression.GenerateFromVolume(c.Alpha * c.V1); err != nil {
		return nil, err
	}
	procs = append(procs, compression)

	c.phase = PhaseProcess2
	end := compression.Traj.End()
	heatAddition, err := thermo.NewIsochoric(c.conditions(end.V, end.T), c.table, cfg.Params)
	if err != nil {
		return nil, err
	}
	if err := heatAddition.GenerateFromTemperature(cfg.THot); err != nil {
		return nil, err
	}
	procs = append(procs, heatAddition)

	c.phase = PhaseProcess3
	end = heatAddition.Traj.End()
	expansion, err := thermo.NewAdiabatic(c.conditions(end.V, end.T), c.table, cfg.Params)
	if err != nil {
		return nil, err
	}
	if err := expansion.GenerateFromVolume(c.Beta * end.V); err != nil {
		return nil, err
	}
	procs = append(procs, expansion)

	c.phase = PhaseProcess4
	end = expansion.Traj.End()
	heatRejection, err := thermo.NewIsochoric(c.conditions(end.V, end.T), c.table, cfg.Params)
	if err != nil {
		return nil, err
	}
	if err := heatRejection.GenerateFromTemperature(cfg.TCold); err != nil {
		return nil, err
	}
	procs = append(procs, heatRejection)

	return procs, nil
}
