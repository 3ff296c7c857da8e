package seismo

import (
	"fmt"
	"log/slog"

	"github.com/san-kum/seisrate/internal/config"
	"github.com/san-kum/seisrate/internal/field"
	"github.com/san-kum/seisrate/internal/grid"
	"github.com/san-kum/seisrate/internal/loading"
)

// Evaluator runs one model variant against loading histories.
type Evaluator struct {
	variant Variant
	base    *config.Config
	log     *slog.Logger
}

type Option func(*Evaluator)

// WithLogger routes run diagnostics to l. The default discards them.
func WithLogger(l *slog.Logger) Option {
	return func(e *Evaluator) {
		if l != nil {
			e.log = l
		}
	}
}

// New returns an evaluator for v. A nil base uses config.DefaultConfig. The
// base is copied, so later changes by the caller do not leak into runs.
func New(v Variant, base *config.Config, opts ...Option) *Evaluator {
	if base == nil {
		base = config.DefaultConfig()
	}
	e := &Evaluator{
		variant: v,
		base:    base.Clone(),
		log:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Evaluator) Variant() Variant { return e.variant }

// Config returns a copy of the base configuration.
func (e *Evaluator) Config() *config.Config { return e.base.Clone() }

// Run merges o onto the base configuration and runs the model from its
// default initial state. Requesting equilibrium here fails with
// ErrMissingSeed; use RunScenario to start from a converged state.
func (e *Evaluator) Run(src loading.Source, o config.Overrides) (*Result, error) {
	return e.run(e.base.Merge(o), src, nil)
}

// RunToEquilibrium runs a warm-up and returns a copy of the final state
// field, ready to seed RunScenario.
func (e *Evaluator) RunToEquilibrium(src loading.Source, o config.Overrides) (field.State, error) {
	if !e.variant.HasStateField() {
		return nil, fmt.Errorf("%w: %s", ErrNoStateField, e.variant)
	}
	cfg := e.base.Merge(o)
	cfg.Equilibrium = false
	res, err := e.run(cfg, src, nil)
	if err != nil {
		return nil, err
	}
	return field.State(res.State).Clone(), nil
}

// RunScenario runs the model starting from a copy of seed instead of the
// default initial state.
func (e *Evaluator) RunScenario(src loading.Source, o config.Overrides, seed field.State) (*Result, error) {
	if seed == nil {
		return nil, ErrMissingSeed
	}
	cfg := e.base.Merge(o)
	cfg.Equilibrium = true
	return e.run(cfg, src, seed)
}

// run holds the per-call state of one evaluation.
type run struct {
	cfg    *config.Config
	src    loading.Source
	stress grid.Axis
	time   grid.Axis
	state  field.State
	mask   field.Mask
	cf     []float64
	seeded bool
}

func (e *Evaluator) run(cfg *config.Config, src loading.Source, seed field.State) (*Result, error) {
	r, err := prepare(cfg, src, seed)
	if err != nil {
		return nil, err
	}
	e.log.Debug("prepared run",
		"model", e.variant.String(),
		"nt", r.time.Count,
		"nsigma", r.stress.Count,
		"seeded", r.seeded,
	)

	var rate, state []float64
	switch e.variant {
	case LCM:
		rate, state, err = r.transport(false)
	case TDSM:
		rate, state, err = r.transport(true)
	case TDSR:
		rate, state, err = r.continuum()
	case Traditional, CFM:
		rate, state, err = r.coulomb()
	case RSM:
		rate, state, err = r.rateState(false)
	case RSD:
		rate, state, err = r.rateState(true)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnimplementedModel, e.variant)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", e.variant, err)
	}

	res := &Result{
		Model:  e.variant,
		Config: *cfg,
		Times:  append([]float64(nil), r.time.Values...),
		State:  state,
		Stress: r.cf,
		Rate:   rate,
		Count:  cumulative(rate),
	}
	e.log.Debug("run complete", "model", e.variant.String(), "samples", len(rate))
	return res, nil
}

// prepare builds the axes, the initial state field and the failure mask,
// and fetches the loading series.
func prepare(cfg *config.Config, src loading.Source, seed field.State) (*run, error) {
	if src == nil {
		return nil, ErrMissingLoading
	}
	if cfg.Precision < 0 {
		return nil, fmt.Errorf("%w: precision must not be negative, got %d", ErrInvalidRange, cfg.Precision)
	}

	stress, err := grid.Build(-cfg.SigmaMax, cfg.SigmaMax, cfg.DeltaS)
	if err != nil {
		return nil, fmt.Errorf("stress axis: %w", err)
	}
	times, err := grid.Build(cfg.TStart, cfg.TEnd, cfg.DeltaT)
	if err != nil {
		return nil, fmt.Errorf("time axis: %w", err)
	}

	r := &run{
		cfg:    cfg,
		src:    src,
		stress: stress,
		time:   times,
		state:  make(field.State, stress.Count),
		mask:   field.Heaviside(stress),
	}

	switch {
	case seed != nil:
		if len(seed) != stress.Count {
			return nil, fmt.Errorf("%w: got %d, want %d", ErrSeedMismatch, len(seed), stress.Count)
		}
		r.state = seed.Clone()
		r.seeded = true
	case cfg.Equilibrium:
		return nil, ErrMissingSeed
	}

	cf, err := src.Values(times.Count)
	if err != nil {
		return nil, fmt.Errorf("loading: %w", err)
	}
	if len(cf) != times.Count {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrLoadingLength, len(cf), times.Count)
	}
	r.cf = append([]float64(nil), cf...)
	return r, nil
}

// initialState returns the seed, or the unloaded field otherwise, shifted by
// the initial stress shadow.
func (r *run) initialState() field.State {
	if !r.seeded {
		r.state = field.Unloaded(r.stress)
	}
	r.state.Shift(roundCells(r.cfg.Sshadow, r.cfg.DeltaS))
	return r.state
}
