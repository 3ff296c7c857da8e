// Package field holds the discretized state density over the stress axis and
// the operators the evaluators apply to it every time step.
//
// A [State] is the density of not-yet-failed material as a function of the
// Coulomb stress offset; a [Mask] marks the offsets that are failed or
// draining. Both are aligned one-to-one with a [grid.Axis].
package field

import (
	"math"

	"github.com/san-kum/seisrate/internal/grid"
)

type State []float64

type Mask []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Sum returns the total mass of the field in sample units.
func (s State) Sum() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v
	}
	return sum
}

// zeroTol is the fraction of a cell treated as "at zero stress".
const zeroTol = 0.5

// Unloaded returns the initial state: full density below the failure
// threshold, empty at and above it.
func Unloaded(ax grid.Axis) State {
	s := make(State, ax.Count)
	for i, v := range ax.Values {
		if v < -zeroTol*ax.Step {
			s[i] = 1
		}
	}
	return s
}

// Heaviside returns the instantaneous failure mask: 1 for offsets >= 0.
func Heaviside(ax grid.Axis) Mask {
	m := make(Mask, ax.Count)
	for i, v := range ax.Values {
		if v >= -zeroTol*ax.Step {
			m[i] = 1
		}
	}
	return m
}

// ZeroIndex returns the first index of the failed region.
func ZeroIndex(ax grid.Axis) int {
	for i, v := range ax.Values {
		if v >= -zeroTol*ax.Step {
			return i
		}
	}
	return ax.Count
}

// DecayWindow fills the width cells below zero with exp(-j/depth), where j
// counts cells below the threshold. depth is in cells and must be positive
// whenever width is non-zero.
func (m Mask) DecayWindow(zero, depth, width int) {
	for j := 1; j <= width; j++ {
		idx := zero - j
		if idx < 0 {
			break
		}
		m[idx] = math.Exp(-float64(j) / float64(depth))
	}
}

// Shift translates s in place by n cells toward higher stress (n > 0) or
// lower stress (n < 0). Vacated cells replicate the edge sample that was
// there before the shift, so the deep reservoir stays filled.
func (s State) Shift(n int) {
	size := len(s)
	if n == 0 || size == 0 {
		return
	}
	if n >= size || -n >= size {
		if n > 0 {
			fill(s, s[0])
		} else {
			fill(s, s[size-1])
		}
		return
	}
	if n > 0 {
		edge := s[0]
		copy(s[n:], s[:size-n])
		fill(s[:n], edge)
		return
	}
	k := -n
	edge := s[size-1]
	copy(s[:size-k], s[k:])
	fill(s[size-k:], edge)
}

func fill(s []float64, v float64) {
	for i := range s {
		s[i] = v
	}
}

// Overlap returns the trapezoidal integral of s*m with unit sample spacing.
func (s State) Overlap(m Mask) float64 {
	n := len(s)
	if n < 2 {
		return 0
	}
	sum := 0.0
	prev := s[0] * m[0]
	for i := 1; i < n; i++ {
		cur := s[i] * m[i]
		sum += 0.5 * (prev + cur)
		prev = cur
	}
	return sum
}

// Cut removes the failed fraction: s *= (1 - m).
func (s State) Cut(m Mask) {
	for i := range s {
		s[i] *= 1 - m[i]
	}
}

// Trapz integrates y with unit sample spacing.
func Trapz(y []float64) float64 {
	sum := 0.0
	for i := 1; i < len(y); i++ {
		sum += 0.5 * (y[i-1] + y[i])
	}
	return sum
}
