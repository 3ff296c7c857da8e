package seismo

import (
	"math"

	"github.com/san-kum/seisrate/internal/config"
)

// Result is the output of one completed run. Every slice is allocated for
// this run alone; nothing aliases the evaluator, the seed or the loading
// source.
type Result struct {
	Model  Variant
	Config config.Config
	// Times is the time axis.
	Times []float64
	// State is the final state field (LCM, TDSM, TDSR) or the shadow stress
	// series (Traditional, CFM, RSM, RSD).
	State []float64
	// Stress is the applied loading series.
	Stress []float64
	// Rate is the earthquake rate per time sample.
	Rate []float64
	// Count is the running trapezoidal integral of Rate; len(Times)-1 samples.
	Count []float64
}

// Valid reports whether every rate and count sample is finite.
func (r *Result) Valid() bool {
	for _, s := range [][]float64{r.Rate, r.Count} {
		for _, v := range s {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}
	return true
}

// cumulative returns count[i] = trapz(rate[0..i]) for 1 <= i <= nt-3; index 0
// and the final index stay zero.
func cumulative(rate []float64) []float64 {
	nt := len(rate)
	if nt < 1 {
		return nil
	}
	count := make([]float64, nt-1)
	running := 0.0
	for i := 1; i <= nt-3; i++ {
		running += 0.5 * (rate[i-1] + rate[i])
		count[i] = running
	}
	return count
}

func scale(s []float64, f float64) {
	for i := range s {
		s[i] *= f
	}
}
