package field

import (
	"math"
	"testing"

	"github.com/san-kum/seisrate/internal/grid"
)

func axis(t *testing.T) grid.Axis {
	t.Helper()
	ax, err := grid.Build(-1, 1, 0.25)
	if err != nil {
		t.Fatalf("build axis: %v", err)
	}
	return ax
}

func TestUnloadedAndHeaviside(t *testing.T) {
	ax := axis(t)
	s := Unloaded(ax)
	m := Heaviside(ax)

	if ZeroIndex(ax) != 4 {
		t.Fatalf("expected zero index 4, got %d", ZeroIndex(ax))
	}
	for i := range s {
		if s[i]+m[i] != 1 {
			t.Errorf("state and mask not complementary at %d: %v + %v", i, s[i], m[i])
		}
	}
	if s[3] != 1 || s[4] != 0 || m[4] != 1 {
		t.Errorf("unexpected threshold: state %v mask %v", s, m)
	}
}

func TestShift(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want State
	}{
		{"none", 0, State{1, 2, 3, 4, 5}},
		{"right", 2, State{1, 1, 1, 2, 3}},
		{"left", -2, State{3, 4, 5, 5, 5}},
		{"past right edge", 9, State{1, 1, 1, 1, 1}},
		{"past left edge", -9, State{5, 5, 5, 5, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := State{1, 2, 3, 4, 5}
			s.Shift(tt.n)
			for i := range s {
				if s[i] != tt.want[i] {
					t.Fatalf("Shift(%d) = %v, want %v", tt.n, s, tt.want)
				}
			}
		})
	}
}

func TestOverlapAndCut(t *testing.T) {
	ax := axis(t)
	s := Unloaded(ax)
	m := Heaviside(ax)

	if got := s.Overlap(m); got != 0 {
		t.Errorf("expected no overlap before loading, got %v", got)
	}

	s.Shift(1)
	if got := s.Overlap(m); got != 1 {
		t.Errorf("expected unit overlap after one-cell shift, got %v", got)
	}

	s.Cut(m)
	if got := s.Overlap(m); got != 0 {
		t.Errorf("expected no overlap after cut, got %v", got)
	}
}

func TestDecayWindow(t *testing.T) {
	ax := axis(t)
	m := Heaviside(ax)
	zero := ZeroIndex(ax)

	m.DecayWindow(zero, 2, 3)

	for j := 1; j <= 3; j++ {
		want := math.Exp(-float64(j) / 2)
		if math.Abs(m[zero-j]-want) > 1e-12 {
			t.Errorf("mask[%d] = %v, want %v", zero-j, m[zero-j], want)
		}
	}
	if m[0] != 0 {
		t.Errorf("mask beyond window should stay zero, got %v", m[0])
	}

	m.DecayWindow(zero, 1, 100)
	if m[0] == 0 {
		t.Error("window clipped at axis start should still fill index 0")
	}
}

func TestTrapz(t *testing.T) {
	tests := []struct {
		y    []float64
		want float64
	}{
		{nil, 0},
		{[]float64{5}, 0},
		{[]float64{1, 1}, 1},
		{[]float64{0, 1, 2, 3}, 4.5},
	}
	for _, tt := range tests {
		if got := Trapz(tt.y); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Trapz(%v) = %v, want %v", tt.y, got, tt.want)
		}
	}
}

func TestStateClone(t *testing.T) {
	s := State{1, 2}
	c := s.Clone()
	c[0] = 7
	if s[0] == 7 {
		t.Error("Clone did not copy")
	}
	if !s.IsValid() || (State{math.NaN()}).IsValid() {
		t.Error("IsValid mismatch")
	}
	if s.Sum() != 3 {
		t.Errorf("Sum = %v, want 3", s.Sum())
	}
}
