package seismo

import (
	"fmt"
	"math"

	"github.com/san-kum/seisrate/internal/field"
)

// roundCells converts a stress value to a whole number of grid cells,
// rounding half to even.
func roundCells(v, deltaS float64) int {
	return int(math.RoundToEven(v / deltaS))
}

// transport evolves the state field under the loading series. Each step the
// field is translated by the stress increment, the overlap with the failure
// mask is the raw rate, and the failed fraction is removed. The sub-cell
// residual of each increment is carried into the next one so the field does
// not drift from the loading. With decay set the mask drains a window below
// the failure threshold (TDSM); otherwise failure is instantaneous (LCM).
func (r *run) transport(decay bool) ([]float64, []float64, error) {
	cfg := r.cfg
	if decay {
		if err := r.decayWindow(); err != nil {
			return nil, nil, err
		}
	}

	state := r.initialState()
	nt := r.time.Count
	rate := make([]float64, nt)
	resid := 0.0
	for i := 1; i < nt; i++ {
		dcf := r.cf[i] - (r.cf[i-1] - resid)
		n := roundCells(dcf, cfg.DeltaS)
		resid = dcf - float64(n)*cfg.DeltaS

		state.Shift(n)
		rate[i] = state.Overlap(r.mask) * cfg.DeltaS
		state.Cut(r.mask)
	}

	scale(rate, cfg.Chi0/cfg.DeltaT)
	return rate, state.Clone(), nil
}

// decayWindow replaces the empty region just below the failure threshold
// with exp(-j/depth), j cells below zero, over precision*depth cells.
func (r *run) decayWindow() error {
	cfg := r.cfg
	depth := roundCells(cfg.DepthS, cfg.DeltaS)
	if depth < 0 {
		depth = -depth
	}
	width := cfg.Precision * depth
	if width == 0 {
		return nil
	}
	if cfg.DepthS >= 0 {
		return fmt.Errorf("%w: depth_s must be negative, got %g", ErrInvalidRange, cfg.DepthS)
	}
	r.mask.DecayWindow(field.ZeroIndex(r.stress), depth, width)
	return nil
}
