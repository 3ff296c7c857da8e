package seismo

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// SweepFunc runs one independent evaluation for the i-th sweep value.
type SweepFunc func(ctx context.Context, i int, v float64) (*Result, error)

// Sweep runs fn for every value concurrently, at most limit at a time (no
// limit when limit <= 0). Results keep the order of values. The first error
// cancels the remaining runs and no results are returned.
func Sweep(ctx context.Context, values []float64, limit int, fn SweepFunc) ([]*Result, error) {
	results := make([]*Result, len(values))

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, v := range values {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := fn(ctx, i, v)
			if err != nil {
				return fmt.Errorf("sweep value %g: %w", v, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
