package metrics

import "math"

type PeakRate struct {
	name string
	peak float64
	at   float64
	seen bool
}

func NewPeakRate() *PeakRate {
	return &PeakRate{name: "peak_rate"}
}

func (p *PeakRate) Name() string { return p.name }

func (p *PeakRate) Observe(t, stress, rate float64) {
	if !p.seen || rate > p.peak {
		p.peak = rate
		p.at = t
		p.seen = true
	}
}

func (p *PeakRate) Value() float64 { return p.peak }

// Time returns when the peak occurred.
func (p *PeakRate) Time() float64 { return p.at }

func (p *PeakRate) Reset() {
	p.peak, p.at, p.seen = 0, 0, false
}

type MeanRate struct {
	name    string
	sum     float64
	samples int
}

func NewMeanRate() *MeanRate {
	return &MeanRate{name: "mean_rate"}
}

func (m *MeanRate) Name() string { return m.name }

func (m *MeanRate) Observe(t, stress, rate float64) {
	m.sum += rate
	m.samples++
}

func (m *MeanRate) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *MeanRate) Reset() {
	m.sum = 0
	m.samples = 0
}

// EventCount integrates the rate over time with the trapezoidal rule, giving
// the expected number of events in the observed span.
type EventCount struct {
	name     string
	total    float64
	lastT    float64
	lastRate float64
	samples  int
}

func NewEventCount() *EventCount {
	return &EventCount{name: "event_count"}
}

func (e *EventCount) Name() string { return e.name }

func (e *EventCount) Observe(t, stress, rate float64) {
	if e.samples > 0 {
		e.total += 0.5 * (e.lastRate + rate) * (t - e.lastT)
	}
	e.lastT, e.lastRate = t, rate
	e.samples++
}

func (e *EventCount) Value() float64 { return e.total }

func (e *EventCount) Reset() {
	e.total, e.lastT, e.lastRate = 0, 0, 0
	e.samples = 0
}

// QuietFraction is the share of samples whose rate stays below threshold,
// e.g. inside a stress shadow.
type QuietFraction struct {
	name      string
	threshold float64
	quiet     int
	samples   int
}

func NewQuietFraction(threshold float64) *QuietFraction {
	return &QuietFraction{
		name:      "quiet_fraction",
		threshold: threshold,
	}
}

func (q *QuietFraction) Name() string { return q.name }

func (q *QuietFraction) Observe(t, stress, rate float64) {
	q.samples++
	if math.Abs(rate) < q.threshold {
		q.quiet++
	}
}

func (q *QuietFraction) Value() float64 {
	if q.samples == 0 {
		return 0
	}
	return float64(q.quiet) / float64(q.samples)
}

func (q *QuietFraction) Reset() {
	q.quiet = 0
	q.samples = 0
}
