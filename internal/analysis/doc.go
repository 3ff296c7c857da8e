// Package analysis provides closed-form reference curves for checking model
// runs against theory.
//
//   - [DieterichStep]: rate-and-state response to a stress step
//   - [TDSMStep]: Omori-type approximation of the TDSM response to a step
//   - [Curve]: samples either onto a time axis
//
// # Comparing with a run
//
//	p := analysis.StepParams{Chi0: 1e4, Asig: 0.3, StressRate: 1e-8, Step: 0.6, TStep: 18000}
//	theory := analysis.Curve(res.Times, p, analysis.DieterichStep)
package analysis
