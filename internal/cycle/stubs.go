package cycle

import "github.com/Tycho887/FYSLAB/internal/substance"

// The remaining classical cycles are declared extension points. They are
// constructible so callers can enumerate them, but no process chain is
// defined yet: Run fails with ErrNotImplemented instead of producing an
// empty cycle.

func NewBrayton(cfg Config, tbl *substance.Table) (*Cycle, error) {
	return newCycle("brayton", cfg, tbl, nil)
}

func NewStirling(cfg Config, tbl *substance.Table) (*Cycle, error) {
	return newCycle("stirling", cfg, tbl, nil)
}

func NewEricsson(cfg Config, tbl *substance.Table) (*Cycle, error) {
	return newCycle("ericsson", cfg, tbl, nil)
}

func NewRankine(cfg Config, tbl *substance.Table) (*Cycle, error) {
	return newCycle("rankine", cfg, tbl, nil)
}

func NewKalina(cfg Config, tbl *substance.Table) (*Cycle, error) {
	return newCycle("kalina", cfg, tbl, nil)
}
