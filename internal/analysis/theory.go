package analysis

import "math"

// StepParams describes a background stress rate with a single stress step.
type StepParams struct {
	Chi0       float64
	Asig       float64
	StressRate float64
	Step       float64
	TStep      float64
}

// Background is the steady rate chi0*StressRate.
func (p StepParams) Background() float64 {
	return p.Chi0 * p.StressRate
}

// RelaxationTime is Ta = Asig/StressRate.
func (p StepParams) RelaxationTime() float64 {
	return p.Asig / p.StressRate
}

// DieterichStep is the Dieterich (1994) rate after a stress step:
//
//	r(t) = r_inf / (1 + (exp(-step/Asig) - 1) * exp(-(t-tstep)/Ta))
//
// and r_inf before the step.
func DieterichStep(t float64, p StepParams) float64 {
	rinf := p.Background()
	if t < p.TStep {
		return rinf
	}
	decay := math.Exp(-(t - p.TStep) / p.RelaxationTime())
	return rinf / (1 + (math.Exp(-p.Step/p.Asig)-1)*decay)
}

// TDSMStep approximates the TDSM rate after a stress step (Dahm and Hainzl
// 2022) as an Omori-type decay on top of the background rate:
//
//	r(t) = r_inf + chi0*Asig*exp(-(t-tstep)/Ta) / (Ta*exp(-step/Asig) + (t-tstep))
func TDSMStep(t float64, p StepParams) float64 {
	rinf := p.Background()
	if t < p.TStep {
		return rinf
	}
	el := t - p.TStep
	ta := p.RelaxationTime()
	return rinf + p.Chi0*p.Asig*math.Exp(-el/ta)/(ta*math.Exp(-p.Step/p.Asig)+el)
}

// Curve samples fn at each time.
func Curve(times []float64, p StepParams, fn func(float64, StepParams) float64) []float64 {
	out := make([]float64, len(times))
	for i, t := range times {
		out[i] = fn(t, p)
	}
	return out
}
