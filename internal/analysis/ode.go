package analysis

import (
	"errors"
	"fmt"
	"math"
)

// ErrBadSeries indicates mismatched or too short time and stress series.
var ErrBadSeries = errors.New("analysis: time and stress series must match and hold at least two samples")

// System is a scalar ODE dx/dt = f(x, t).
type System interface {
	Derive(x, t float64) float64
}

// rk4 is the classic fourth-order Runge-Kutta step.
type rk4 struct{}

func (rk4) Step(sys System, x, t, dt float64) float64 {
	k1 := sys.Derive(x, t)
	k2 := sys.Derive(x+0.5*dt*k1, t+0.5*dt)
	k3 := sys.Derive(x+0.5*dt*k2, t+0.5*dt)
	k4 := sys.Derive(x+dt*k3, t+dt)
	return x + dt/6*(k1+2*k2+2*k3+k4)
}

// stateVariable is Dieterich's seismicity state gamma under a constant
// stressing rate: dgamma/dt = (1 - gamma*rate)/asig.
type stateVariable struct {
	rate float64
	asig float64
}

func (s stateVariable) Derive(g, _ float64) float64 {
	return (1 - g*s.rate) / s.asig
}

// maxStiffStep bounds dt*|rate|/asig per sub-step.
const maxStiffStep = 0.05

// DieterichODE integrates the rate-and-state state variable through a
// sampled stress history and returns the rate chi0/gamma at every sample.
// The stressing rate is piecewise constant between samples, so a stress
// step arrives as one steep interval. gamma starts in equilibrium with the
// first interval's rate, which must then be positive.
func DieterichODE(times, stress []float64, chi0, asig float64) ([]float64, error) {
	n := len(times)
	if n < 2 || len(stress) != n {
		return nil, ErrBadSeries
	}
	if asig <= 0 {
		return nil, fmt.Errorf("analysis: asig must be positive, got %g", asig)
	}

	rate0 := (stress[1] - stress[0]) / (times[1] - times[0])
	if rate0 <= 0 {
		return nil, fmt.Errorf("analysis: initial stressing rate must be positive, got %g", rate0)
	}

	var stepper rk4
	out := make([]float64, n)
	g := 1 / rate0
	out[0] = chi0 / g

	for i := 1; i < n; i++ {
		dt := times[i] - times[i-1]
		if dt <= 0 {
			return nil, fmt.Errorf("%w: time not increasing at %d", ErrBadSeries, i)
		}
		sys := stateVariable{rate: (stress[i] - stress[i-1]) / dt, asig: asig}

		sub := int(math.Ceil(dt * math.Abs(sys.rate) / asig / maxStiffStep))
		if sub < 1 {
			sub = 1
		}
		h := dt / float64(sub)
		t := times[i-1]
		for k := 0; k < sub; k++ {
			g = stepper.Step(sys, g, t, h)
			t += h
		}
		out[i] = chi0 / g
	}
	return out, nil
}
