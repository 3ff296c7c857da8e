// Package viz renders stored runs in the terminal.
//
// The viewer is a Bubble Tea program showing one run at a time:
//
//   - an asciigraph chart of the rate, stress or cumulative count series
//   - a Braille [Canvas] profile of the final state field
//   - the stored summary metrics
//
// # Key Bindings
//
//	Tab   - Cycle rate / stress / count
//	+/-   - Zoom the time window
//	h/l   - Pan the time window
//	T     - Cycle color themes
//	Q     - Quit
package viz
