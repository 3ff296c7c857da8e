package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/seisrate/internal/seismo"
)

func sample() *seismo.Result {
	return &seismo.Result{
		Times:  []float64{0, 10, 20, 30},
		Stress: []float64{0, 0.1, 0.2, 0.3},
		Rate:   []float64{0, 2, 4, 0},
	}
}

func TestCollect(t *testing.T) {
	got := Collect(sample(), Defaults(0.5)...)

	want := map[string]float64{
		"peak_rate":      4,
		"mean_rate":      1.5,
		"event_count":    60,
		"quiet_fraction": 0.5,
	}
	for name, w := range want {
		if math.Abs(got[name]-w) > 1e-12 {
			t.Errorf("%s = %v, want %v", name, got[name], w)
		}
	}
}

func TestCollectResets(t *testing.T) {
	m := NewMeanRate()
	Collect(sample(), m)
	got := Collect(sample(), m)
	if got["mean_rate"] != 1.5 {
		t.Errorf("expected reset between collections, got %v", got["mean_rate"])
	}
}

func TestPeakRateTime(t *testing.T) {
	p := NewPeakRate()
	Collect(sample(), p)
	if p.Time() != 20 {
		t.Errorf("expected peak at t=20, got %v", p.Time())
	}

	p.Reset()
	p.Observe(0, 0, -3)
	if p.Value() != -3 {
		t.Errorf("expected first sample to set the peak, got %v", p.Value())
	}
}

func TestEmpty(t *testing.T) {
	for _, m := range Defaults(1) {
		if m.Value() != 0 {
			t.Errorf("%s: expected zero before any sample, got %v", m.Name(), m.Value())
		}
	}
	if len(Collect(nil, NewMeanRate())) != 0 {
		t.Error("expected no values for nil result")
	}
}
