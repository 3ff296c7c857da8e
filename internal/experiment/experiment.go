package experiment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/san-kum/seisrate/internal/config"
	"github.com/san-kum/seisrate/internal/field"
	"github.com/san-kum/seisrate/internal/loading"
	"github.com/san-kum/seisrate/internal/seismo"
)

// Config names a model and the configuration it runs with. Config.Loading
// describes the scenario loading; Warmup, when set, describes the background
// loading used to converge the state field first.
type Config struct {
	Model     string
	Base      *config.Config
	Overrides config.Overrides
	Warmup    *loading.Spec
}

type Experiment struct {
	cfg       Config
	evaluator *seismo.Evaluator
	log       *slog.Logger
}

func New(cfg Config) *Experiment {
	if cfg.Base == nil {
		cfg.Base = config.DefaultConfig()
	}
	return &Experiment{
		cfg: cfg,
		log: slog.New(slog.DiscardHandler),
	}
}

func (e *Experiment) Setup(reg *Registry, log *slog.Logger) error {
	if log != nil {
		e.log = log
	}
	ev, err := reg.GetModel(e.cfg.Model, e.cfg.Base, e.log)
	if err != nil {
		return err
	}
	e.evaluator = ev
	return nil
}

// Run evaluates the model, first converging the state field under the
// warm-up loading when one is configured.
func (e *Experiment) Run(ctx context.Context) (*seismo.Result, error) {
	if e.evaluator == nil {
		return nil, fmt.Errorf("experiment not setup")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resolved := e.cfg.Base.Merge(e.cfg.Overrides)
	src, err := resolved.Source()
	if err != nil {
		return nil, err
	}

	if e.cfg.Warmup == nil {
		return e.evaluator.Run(src, e.cfg.Overrides)
	}

	seed, err := e.Warmup(ctx)
	if err != nil {
		return nil, fmt.Errorf("warm-up: %w", err)
	}
	return e.evaluator.RunScenario(src, e.cfg.Overrides, seed)
}

// Warmup runs the configured warm-up loading and returns the converged state
// field.
func (e *Experiment) Warmup(ctx context.Context) (field.State, error) {
	if e.evaluator == nil {
		return nil, fmt.Errorf("experiment not setup")
	}
	if e.cfg.Warmup == nil {
		return nil, fmt.Errorf("no warm-up loading configured")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resolved := e.cfg.Base.Merge(e.cfg.Overrides)
	src, err := e.cfg.Warmup.Build(resolved.Window())
	if err != nil {
		return nil, err
	}
	e.log.Debug("warm-up", "model", e.cfg.Model, "loading", e.cfg.Warmup.Kind)
	return e.evaluator.RunToEquilibrium(src, e.cfg.Overrides)
}

// RunSeeded evaluates the configured loading from seed.
func (e *Experiment) RunSeeded(ctx context.Context, seed field.State) (*seismo.Result, error) {
	if e.evaluator == nil {
		return nil, fmt.Errorf("experiment not setup")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	src, err := e.cfg.Base.Merge(e.cfg.Overrides).Source()
	if err != nil {
		return nil, err
	}
	return e.evaluator.RunScenario(src, e.cfg.Overrides, seed)
}

func (e *Experiment) Evaluator() *seismo.Evaluator {
	return e.evaluator
}
