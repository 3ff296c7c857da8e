// Package grid builds closed, evenly spaced 1-D axes. The same builder
// discretizes the Coulomb stress axis and the time axis.
package grid

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidRange indicates a non-positive step, an inverted range or a
// non-finite bound.
var ErrInvalidRange = errors.New("grid: invalid range")

// MaxCount bounds the number of samples an axis may hold.
const MaxCount = 1 << 26

// quotient guard for (max-min)/step landing a hair below an integer
const countEps = 1e-9

// Axis is an evenly spaced discretization of [Min, Max].
type Axis struct {
	Min    float64
	Max    float64
	Step   float64
	Count  int
	Values []float64
}

// Build returns the axis min, min+step, ... up to max. The sample count is
// floor((max-min)/step)+1 and the last sample snaps to max when it lies
// within rounding distance of it.
func Build(min, max, step float64) (Axis, error) {
	for _, v := range []float64{min, max, step} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Axis{}, fmt.Errorf("%w: non-finite bound", ErrInvalidRange)
		}
	}
	if step <= 0 {
		return Axis{}, fmt.Errorf("%w: step must be positive, got %g", ErrInvalidRange, step)
	}
	if max < min {
		return Axis{}, fmt.Errorf("%w: max %g below min %g", ErrInvalidRange, max, min)
	}

	q := math.Floor((max-min)/step + countEps)
	if math.IsInf(q, 0) || math.IsNaN(q) || q >= MaxCount {
		return Axis{}, fmt.Errorf("%w: %g..%g by %g exceeds %d samples", ErrInvalidRange, min, max, step, MaxCount)
	}
	n := int(q) + 1
	values := make([]float64, n)
	for i := range values {
		values[i] = min + float64(i)*step
	}
	if n > 1 && math.Abs(values[n-1]-max) < countEps*step {
		values[n-1] = max
	}

	return Axis{Min: min, Max: max, Step: step, Count: n, Values: values}, nil
}

// Index returns the index of the sample nearest to v, clamped to the axis.
func (a Axis) Index(v float64) int {
	if a.Count == 0 {
		return 0
	}
	i := int(math.Round((v - a.Min) / a.Step))
	if i < 0 {
		return 0
	}
	if i >= a.Count {
		return a.Count - 1
	}
	return i
}

// Clone returns a copy whose Values do not alias a.
func (a Axis) Clone() Axis {
	c := a
	c.Values = make([]float64, len(a.Values))
	copy(c.Values, a.Values)
	return c
}
