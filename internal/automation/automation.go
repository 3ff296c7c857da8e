package automation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/seisrate/internal/config"
	"github.com/san-kum/seisrate/internal/experiment"
	"github.com/san-kum/seisrate/internal/field"
	"github.com/san-kum/seisrate/internal/loading"
	"github.com/san-kum/seisrate/internal/metrics"
	"github.com/san-kum/seisrate/internal/seismo"
)

// Scenario defines an ordered sequence of model runs. A step may start from
// the final state field of an earlier step, which is how a background
// warm-up seeds a later stress-step scenario.
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Base        string         `yaml:"base"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is a single step in a scenario
type ScenarioStep struct {
	Name     string             `yaml:"name"`
	Model    string             `yaml:"model"`
	Loading  loading.Spec       `yaml:"loading"`
	Params   map[string]float64 `yaml:"params"`
	SeedFrom string             `yaml:"seed_from"`
}

// StepResult is the outcome of one scenario step.
type StepResult struct {
	Name   string
	Result *seismo.Result
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}

	return &scenario, nil
}

// ErrUnknownPreset indicates a scenario base naming no preset.
var ErrUnknownPreset = errors.New("automation: unknown preset")

// BaseConfig resolves the scenario's base configuration: the named preset,
// or the defaults when no base is given.
func (s *Scenario) BaseConfig() (*config.Config, error) {
	if s.Base == "" {
		return config.DefaultConfig(), nil
	}
	cfg := config.GetPreset(s.Base)
	if cfg == nil {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownPreset, s.Base, config.ListPresets())
	}
	return cfg, nil
}

// RunScenario executes all steps in order, writing progress to out.
func RunScenario(ctx context.Context, scenario *Scenario, registry *experiment.Registry, out io.Writer) ([]StepResult, error) {
	results := make([]StepResult, 0, len(scenario.Steps))
	states := make(map[string]field.State)
	base, err := scenario.BaseConfig()
	if err != nil {
		return nil, err
	}

	for i, step := range scenario.Steps {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		name := step.Name
		if name == "" {
			name = fmt.Sprintf("step%d", i+1)
		}
		fmt.Fprintf(out, "Running step %d/%d: %s (%s)\n", i+1, len(scenario.Steps), name, step.Model)

		cfg := base.Clone()
		if step.Loading.Kind != "" {
			cfg.Loading = step.Loading.Clone()
		}
		for k, v := range step.Params {
			if err := cfg.SetParam(k, v); err != nil {
				return results, fmt.Errorf("step %d: %w", i+1, err)
			}
		}

		exp := experiment.New(experiment.Config{Model: step.Model, Base: cfg})
		if err := exp.Setup(registry, nil); err != nil {
			return results, fmt.Errorf("step %d setup: %w", i+1, err)
		}

		var res *seismo.Result
		var err error
		if step.SeedFrom != "" {
			seed, ok := states[step.SeedFrom]
			if !ok {
				return results, fmt.Errorf("step %d: %w: no state field from %q", i+1, seismo.ErrMissingSeed, step.SeedFrom)
			}
			res, err = exp.RunSeeded(ctx, seed)
		} else {
			res, err = exp.Run(ctx)
		}
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}

		if res.Model.HasStateField() {
			states[name] = field.State(res.State).Clone()
		}
		results = append(results, StepResult{Name: name, Result: res})
	}

	return results, nil
}

// ParameterSweep runs one model across evenly spaced values of a single
// named parameter, e.g. the loading step size.
type ParameterSweep struct {
	Model    string
	Base     *config.Config
	Param    string
	ParamMin float64
	ParamMax float64
	NumSteps int
	// Limit bounds concurrent runs; zero means no limit.
	Limit int
}

// SweepResult holds results from a parameter sweep
type SweepResult struct {
	ParamValue float64
	Result     *seismo.Result
	Metrics    map[string]float64
}

// Values returns the swept parameter values.
func (p *ParameterSweep) Values() []float64 {
	if p.NumSteps <= 1 {
		return []float64{p.ParamMin}
	}
	step := (p.ParamMax - p.ParamMin) / float64(p.NumSteps-1)
	vals := make([]float64, p.NumSteps)
	for i := range vals {
		vals[i] = p.ParamMin + float64(i)*step
	}
	return vals
}

// RunSweep executes a parameter sweep, running the values concurrently.
func RunSweep(ctx context.Context, sweep *ParameterSweep, registry *experiment.Registry, out io.Writer) ([]SweepResult, error) {
	base := sweep.Base
	if base == nil {
		base = config.DefaultConfig()
	}
	if _, err := registry.Lookup(sweep.Model); err != nil {
		return nil, err
	}
	if err := base.Clone().SetParam(sweep.Param, 0); err != nil {
		return nil, err
	}

	values := sweep.Values()
	runs, err := seismo.Sweep(ctx, values, sweep.Limit, func(ctx context.Context, i int, v float64) (*seismo.Result, error) {
		cfg := base.Clone()
		if err := cfg.SetParam(sweep.Param, v); err != nil {
			return nil, err
		}
		exp := experiment.New(experiment.Config{Model: sweep.Model, Base: cfg})
		if err := exp.Setup(registry, nil); err != nil {
			return nil, err
		}
		return exp.Run(ctx)
	})
	if err != nil {
		return nil, err
	}

	results := make([]SweepResult, len(runs))
	for i, res := range runs {
		results[i] = SweepResult{
			ParamValue: values[i],
			Result:     res,
			Metrics:    metrics.Collect(res, registry.DefaultMetrics(&res.Config)...),
		}
		fmt.Fprintf(out, "Sweep %d/%d: %s=%.4g\n", i+1, len(runs), sweep.Param, values[i])
	}
	return results, nil
}
