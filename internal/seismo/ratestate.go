package seismo

import (
	"fmt"
	"math"
)

// minStressIncrement is the smallest stress increment the rate-and-state
// recursions divide by.
const minStressIncrement = 1e-15

// rateState applies the Dieterich (1994, Eq. 17) recursion for the state
// variable gamma under piecewise-linear stress; the rate is rinfty/gamma with
// rinfty = chi0*strend. With alt set the exponent carries Asig*ln(strend),
// which needs a positive stress rate.
func (r *run) rateState(alt bool) ([]float64, []float64, error) {
	cfg := r.cfg
	asig := -cfg.DepthS
	if asig <= 0 {
		return nil, nil, fmt.Errorf("%w: depth_s must be negative, got %g", ErrInvalidRange, cfg.DepthS)
	}

	strend := r.src.StressRate()
	if strend == 0 || math.IsNaN(strend) || math.IsInf(strend, 0) {
		return nil, nil, &StepError{Step: 0, Time: r.time.Values[0], Wrapped: fmt.Errorf("%w: stress rate %g", ErrDegenerateStep, strend)}
	}
	if alt && strend < 0 {
		return nil, nil, &StepError{Step: 0, Time: r.time.Values[0], Wrapped: fmt.Errorf("%w: log of stress rate %g", ErrDegenerateStep, strend)}
	}

	nt := r.time.Count
	cf := r.cf
	dt := cfg.DeltaT
	rinfty := cfg.Chi0 * strend

	rate := make([]float64, nt)
	shadow := make([]float64, nt)
	shadow[0] = cf[0] - cfg.Sshadow
	rate[0] = 1

	gamma := 1.0
	for i := 1; i < nt; i++ {
		dS := cf[i] - cf[i-1]
		if math.Abs(dS) < minStressIncrement {
			return nil, nil, &StepError{Step: i, Time: r.time.Values[i], Wrapped: fmt.Errorf("%w: %g", ErrDegenerateStep, dS)}
		}

		if alt {
			gamma = (gamma/strend-dt/dS)*math.Exp((-dS+asig*math.Log(strend))/asig) + strend*dt/dS
		} else {
			gamma = ((gamma/strend-dt/dS)*math.Exp(-dS/asig) + dt/dS) * strend
		}
		if gamma == 0 || math.IsNaN(gamma) || math.IsInf(gamma, 0) {
			return nil, nil, &StepError{Step: i, Time: r.time.Values[i], Wrapped: fmt.Errorf("%w: state variable %g", ErrDegenerateStep, gamma)}
		}

		rate[i] = 1 / gamma
		shadow[i] = -cfg.Sshadow
	}

	scale(rate, rinfty)
	return rate, shadow, nil
}
