package seismo

import (
	"errors"
	"fmt"

	"github.com/san-kum/seisrate/internal/grid"
)

// Domain errors for model runs.
var (
	// ErrInvalidRange indicates bad axis or model parameters.
	ErrInvalidRange = grid.ErrInvalidRange

	// ErrMissingLoading indicates a run started without a loading source.
	ErrMissingLoading = errors.New("seismo: missing loading source")

	// ErrLoadingLength indicates a loading source that returned the wrong
	// number of samples for the time axis.
	ErrLoadingLength = errors.New("seismo: loading sample count does not match time axis")

	// ErrDegenerateStep indicates a zero or near-zero stress increment (or
	// stress rate) feeding a division.
	ErrDegenerateStep = errors.New("seismo: degenerate stress increment")

	// ErrUnimplementedModel indicates a model name with no implementation.
	ErrUnimplementedModel = errors.New("seismo: unimplemented model")

	// ErrMissingSeed indicates an equilibrium run requested without a seed
	// state field.
	ErrMissingSeed = errors.New("seismo: equilibrium requested without seed state")

	// ErrSeedMismatch indicates a seed whose length differs from the stress axis.
	ErrSeedMismatch = errors.New("seismo: seed length does not match stress axis")

	// ErrNoStateField indicates an equilibrium warm-up for a model that
	// carries no state field.
	ErrNoStateField = errors.New("seismo: model has no state field")
)

// StepError wraps an error with the time step it occurred at.
type StepError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
