package metrics

import (
	"github.com/san-kum/seisrate/internal/seismo"
)

// Metric accumulates one summary value over a rate series, sample by sample.
type Metric interface {
	Name() string
	Observe(t, stress, rate float64)
	Value() float64
	Reset()
}

// Defaults returns the metrics reported for every stored run. quiet is the
// rate below which a sample counts as quiescent.
func Defaults(quiet float64) []Metric {
	return []Metric{
		NewPeakRate(),
		NewMeanRate(),
		NewEventCount(),
		NewQuietFraction(quiet),
	}
}

// Collect resets each metric, feeds it every sample of res and returns the
// values by metric name.
func Collect(res *seismo.Result, ms ...Metric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	if res == nil {
		return out
	}
	for _, m := range ms {
		m.Reset()
		for i, r := range res.Rate {
			s := 0.0
			if i < len(res.Stress) {
				s = res.Stress[i]
			}
			m.Observe(res.Times[i], s, r)
		}
		out[m.Name()] = m.Value()
	}
	return out
}
