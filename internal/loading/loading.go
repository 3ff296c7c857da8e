package loading

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrUnknownKind indicates a Spec whose Kind names no generator.
	ErrUnknownKind = errors.New("loading: unknown kind")

	// ErrInvalidLength indicates a request for fewer than one sample.
	ErrInvalidLength = errors.New("loading: invalid sample count")

	// ErrBadFile indicates an unreadable or malformed stress file.
	ErrBadFile = errors.New("loading: bad stress file")
)

// Source produces the applied Coulomb stress at each time sample.
type Source interface {
	// Values returns exactly length samples spanning the source's window.
	Values(length int) ([]float64, error)
	// StressRate is the background stress rate in stress units per second.
	StressRate() float64
}

// Window is the time span a source covers.
type Window struct {
	TStart float64
	TEnd   float64
	DeltaT float64
}

func (w Window) times(n int) []float64 {
	return linspace(w.TStart, w.TEnd, n)
}

func (w Window) duration() float64 {
	return w.TEnd - w.TStart
}

// eps is the fraction of a time step tolerated when comparing event times.
func (w Window) eps() float64 {
	if w.DeltaT > 0 {
		return 1e-9 * w.DeltaT
	}
	return 1e-9 * math.Abs(w.duration())
}

func checkLength(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	return nil
}

func linspace(a, b float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = a
		return out
	}
	step := (b - a) / float64(n-1)
	for i := range out {
		out[i] = a + float64(i)*step
	}
	out[n-1] = b
	return out
}

// trend returns the linear background 0 .. duration*rate over n samples.
func trend(w Window, rate float64, n int) []float64 {
	return linspace(0, w.duration()*rate, n)
}

// interp evaluates the piecewise-linear curve (xs, ys) at x, holding the end
// values outside the sampled range. xs must be ascending.
func interp(xs, ys []float64, x float64) float64 {
	n := len(xs)
	if x <= xs[0] {
		return ys[0]
	}
	if x >= xs[n-1] {
		return ys[n-1]
	}
	lo, hi := 0, n-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if xs[mid] <= x {
			lo = mid
		} else {
			hi = mid
		}
	}
	span := xs[hi] - xs[lo]
	if span == 0 {
		return ys[hi]
	}
	f := (x - xs[lo]) / span
	return ys[lo] + f*(ys[hi]-ys[lo])
}
