package seismo

import (
	"fmt"
	"math"
)

// timeToFailure is the mean time until material at distance z below failure
// fails: t0*exp(z/dsig). It shrinks exponentially once z turns negative.
func timeToFailure(z, t0, dsig float64) float64 {
	return t0 * math.Exp(z/dsig)
}

// continuum tracks the remaining amount X over the stress-distance field
// Z = -sigma. Each step shifts Z by the stress increment and depletes
// X*dt/tf(Z), capped at the amount left.
func (r *run) continuum() ([]float64, []float64, error) {
	cfg := r.cfg
	dsig := -cfg.DepthS
	if dsig <= 0 {
		return nil, nil, fmt.Errorf("%w: depth_s must be negative, got %g", ErrInvalidRange, cfg.DepthS)
	}
	if cfg.T0 <= 0 {
		return nil, nil, fmt.Errorf("%w: t0 must be positive, got %g", ErrInvalidRange, cfg.T0)
	}

	x := r.initialState()
	z := make([]float64, len(x))
	for j, s := range r.stress.Values {
		z[j] = -s
	}

	t := r.time.Values
	nt := r.time.Count
	rate := make([]float64, nt)
	for i := 1; i < nt; i++ {
		dt := t[i] - t[i-1]
		dS := r.cf[i] - r.cf[i-1]

		depleted := 0.0
		for j := range z {
			z[j] -= dS
			if x[j] == 0 {
				continue
			}
			dx := x[j] * dt / timeToFailure(z[j], cfg.T0, dsig)
			if dx > x[j] {
				dx = x[j]
			}
			x[j] -= dx
			depleted += dx
		}
		rate[i] = cfg.Chi0 * depleted * cfg.DeltaS / dt
	}
	return rate, x.Clone(), nil
}
