// Package loading produces Coulomb stress histories aligned to a time axis.
//
// Every generator implements [Source]:
//
//   - [Background]: constant tectonic stress rate
//   - [Step]: background trend plus an instantaneous stress step
//   - [TrendChange]: stress rate switching at a given time
//   - [Cyclic]: background trend plus a (1-cos) oscillation
//   - [Ramp]: background trend plus a stress step spread over a duration
//   - [FourPoint]: piecewise-linear curve through four points
//   - [File]: (time, stress) samples read from a CSV file
//
// A [Spec] describes one of these in a config or scenario file and builds it
// for a [Window].
package loading
