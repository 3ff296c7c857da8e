package optim

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/seisrate/internal/experiment"
)

// ErrNoCandidate indicates that every grid point failed to run.
var ErrNoCandidate = errors.New("optim: no candidate could be evaluated")

// GridSearch tries every combination of the named parameter values and keeps
// the one whose rate series best matches a reference.
type GridSearch struct {
	paramNames []string
	ranges     [][]float64
}

func NewGridSearch(params []string, ranges [][]float64) *GridSearch {
	return &GridSearch{paramNames: params, ranges: ranges}
}

// Misfit is the root-mean-square difference between the overlapping parts of
// two rate series.
func Misfit(rate, reference []float64) float64 {
	n := min(len(rate), len(reference))
	if n == 0 {
		return math.Inf(1)
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		d := rate[i] - reference[i]
		sum += d * d
	}
	return math.Sqrt(sum / float64(n))
}

// Search returns the best parameters and their misfit. Grid points whose
// experiment fails to build or run are skipped; if none succeeds the error
// wraps ErrNoCandidate and the last failure.
func (g *GridSearch) Search(
	ctx context.Context,
	buildExperiment func(params map[string]float64) (*experiment.Experiment, error),
	reference []float64,
) (map[string]float64, float64, error) {
	if len(g.paramNames) != len(g.ranges) {
		return nil, 0, fmt.Errorf("optim: %d parameters but %d ranges", len(g.paramNames), len(g.ranges))
	}

	s := &search{
		grid:      g,
		build:     buildExperiment,
		reference: reference,
		best:      math.Inf(1),
	}
	if err := s.recurse(ctx, 0, make(map[string]float64)); err != nil {
		return nil, 0, err
	}
	if s.bestParams == nil {
		if s.lastErr != nil {
			return nil, 0, fmt.Errorf("%w: %w", ErrNoCandidate, s.lastErr)
		}
		return nil, 0, ErrNoCandidate
	}
	return s.bestParams, s.best, nil
}

// search is the state of one Search call.
type search struct {
	grid      *GridSearch
	build     func(map[string]float64) (*experiment.Experiment, error)
	reference []float64

	best       float64
	bestParams map[string]float64
	lastErr    error
}

func (s *search) recurse(ctx context.Context, depth int, current map[string]float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if depth == len(s.grid.paramNames) {
		exp, err := s.build(current)
		if err != nil {
			s.lastErr = err
			return nil
		}

		result, err := exp.Run(ctx)
		if err != nil {
			s.lastErr = err
			return nil
		}

		val := Misfit(result.Rate, s.reference)
		if val < s.best {
			s.best = val
			s.bestParams = make(map[string]float64, len(current))
			for k, v := range current {
				s.bestParams[k] = v
			}
		}
		return nil
	}

	paramName := s.grid.paramNames[depth]
	for _, val := range s.grid.ranges[depth] {
		newParams := make(map[string]float64, len(current)+1)
		for k, v := range current {
			newParams[k] = v
		}
		newParams[paramName] = val

		if err := s.recurse(ctx, depth+1, newParams); err != nil {
			return err
		}
	}
	return nil
}
