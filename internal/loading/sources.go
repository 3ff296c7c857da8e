package loading

import "math"

// Background is a constant stress rate.
type Background struct {
	Window
	Trend float64
}

func (b *Background) Values(length int) ([]float64, error) {
	if err := checkLength(length); err != nil {
		return nil, err
	}
	return trend(b.Window, b.Trend, length), nil
}

func (b *Background) StressRate() float64 { return b.Trend }

// Step adds an instantaneous stress change of size Step at TStep on top of
// the background trend.
type Step struct {
	Window
	Trend float64
	Step  float64
	TStep float64
}

func (s *Step) Values(length int) ([]float64, error) {
	if err := checkLength(length); err != nil {
		return nil, err
	}
	cf := trend(s.Window, s.Trend, length)
	for i, t := range s.times(length) {
		if t >= s.TStep-s.eps() {
			cf[i] += s.Step
		}
	}
	return cf, nil
}

func (s *Step) StressRate() float64 { return s.Trend }

// TrendChange switches from Trend to Trend2 at TChange.
type TrendChange struct {
	Window
	Trend   float64
	Trend2  float64
	TChange float64
}

func (c *TrendChange) Values(length int) ([]float64, error) {
	if err := checkLength(length); err != nil {
		return nil, err
	}
	cf := make([]float64, length)
	for i, t := range c.times(length) {
		el := t - c.TStart
		if t <= c.TChange {
			cf[i] = el * c.Trend
			continue
		}
		before := (c.TChange - c.TStart) * c.Trend
		cf[i] = before + (t-c.TChange)*c.Trend2
	}
	return cf, nil
}

func (c *TrendChange) StressRate() float64 { return c.Trend }

// Cyclic superposes Amplitude*(1-cos(2*pi*t/Period)) on the background trend.
type Cyclic struct {
	Window
	Trend     float64
	Amplitude float64
	Period    float64
}

func (c *Cyclic) Values(length int) ([]float64, error) {
	if err := checkLength(length); err != nil {
		return nil, err
	}
	cf := trend(c.Window, c.Trend, length)
	if c.Period == 0 {
		return cf, nil
	}
	for i, t := range c.times(length) {
		cf[i] += c.Amplitude * (1 - math.Cos(2*math.Pi*t/c.Period))
	}
	return cf, nil
}

func (c *Cyclic) StressRate() float64 { return c.Trend }

// Ramp raises stress by Step linearly over [TStep, TStep+Duration] on top of
// the background trend. A zero Duration degenerates to Step.
type Ramp struct {
	Window
	Trend    float64
	Step     float64
	TStep    float64
	Duration float64
}

func (r *Ramp) Values(length int) ([]float64, error) {
	if err := checkLength(length); err != nil {
		return nil, err
	}
	cf := trend(r.Window, r.Trend, length)
	for i, t := range r.times(length) {
		switch {
		case t < r.TStep-r.eps():
		case r.Duration <= 0 || t >= r.TStep+r.Duration:
			cf[i] += r.Step
		default:
			cf[i] += r.Step * (t - r.TStep) / r.Duration
		}
	}
	return cf, nil
}

func (r *Ramp) StressRate() float64 { return r.Trend }

// Point is one (time, stress) vertex.
type Point struct {
	T float64 `yaml:"t"`
	S float64 `yaml:"s"`
}

// FourPoint interpolates linearly through four vertices ordered by time.
type FourPoint struct {
	Window
	Points [4]Point
}

func (f *FourPoint) Values(length int) ([]float64, error) {
	if err := checkLength(length); err != nil {
		return nil, err
	}
	xs := make([]float64, 4)
	ys := make([]float64, 4)
	for i, p := range f.Points {
		xs[i], ys[i] = p.T, p.S
	}
	cf := make([]float64, length)
	for i, t := range f.times(length) {
		cf[i] = interp(xs, ys, t)
	}
	return cf, nil
}

// StressRate is the mean rate between the first and last vertex.
func (f *FourPoint) StressRate() float64 {
	dt := f.Points[3].T - f.Points[0].T
	if dt == 0 {
		return 0
	}
	return (f.Points[3].S - f.Points[0].S) / dt
}
