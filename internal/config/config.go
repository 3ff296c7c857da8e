package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/seisrate/internal/loading"
)

const (
	DefaultChi0      = 1.0e4
	DefaultDepthS    = -0.3
	DefaultDeltaS    = 0.3 / 500
	DefaultSigmaMax  = 10000 * DefaultDeltaS
	DefaultDeltaT    = 720.0
	DefaultTEnd      = 86400.0
	DefaultPrecision = 18
	DefaultT0        = 0.1 * DefaultDeltaT
	DefaultTrend     = 1.0e-5

	// EnvPrefix prefixes every environment override, e.g. SEISRATE_CHI0.
	EnvPrefix = "SEISRATE_"
)

// ErrInvalid indicates a configuration that no model can run.
var ErrInvalid = errors.New("config: invalid configuration")

// Config holds the named parameters of one model run. Stress values are in
// MPa, times in seconds.
type Config struct {
	Chi0        float64      `yaml:"chi0"`
	DepthS      float64      `yaml:"depth_s"`
	Sshadow     float64      `yaml:"sshadow"`
	DeltaS      float64      `yaml:"delta_s"`
	SigmaMax    float64      `yaml:"sigma_max"`
	DeltaT      float64      `yaml:"deltat"`
	TStart      float64      `yaml:"tstart"`
	TEnd        float64      `yaml:"tend"`
	Precision   int          `yaml:"precision"`
	Equilibrium bool         `yaml:"equilibrium"`
	T0          float64      `yaml:"t0"`
	Loading     loading.Spec `yaml:"loading"`
}

func DefaultConfig() *Config {
	return &Config{
		Chi0:      DefaultChi0,
		DepthS:    DefaultDepthS,
		DeltaS:    DefaultDeltaS,
		SigmaMax:  DefaultSigmaMax,
		DeltaT:    DefaultDeltaT,
		TEnd:      DefaultTEnd,
		Precision: DefaultPrecision,
		T0:        DefaultT0,
		Loading:   loading.Spec{Kind: "background", Trend: DefaultTrend},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// envView is the subset of Config that may be overridden from the
// environment.
type envView struct {
	Chi0         float64 `env:"CHI0"`
	DepthS       float64 `env:"DEPTH_S"`
	Sshadow      float64 `env:"SSHADOW"`
	DeltaS       float64 `env:"DELTA_S"`
	SigmaMax     float64 `env:"SIGMA_MAX"`
	DeltaT       float64 `env:"DELTAT"`
	TStart       float64 `env:"TSTART"`
	TEnd         float64 `env:"TEND"`
	Precision    int     `env:"PRECISION"`
	T0           float64 `env:"T0"`
	LoadingKind  string  `env:"LOADING_KIND"`
	LoadingTrend float64 `env:"LOADING_TREND"`
}

// ApplyEnv overwrites cfg with any SEISRATE_* variables that are set.
func ApplyEnv(cfg *Config) error {
	v := envView{
		Chi0: cfg.Chi0, DepthS: cfg.DepthS, Sshadow: cfg.Sshadow, DeltaS: cfg.DeltaS,
		SigmaMax: cfg.SigmaMax, DeltaT: cfg.DeltaT, TStart: cfg.TStart, TEnd: cfg.TEnd,
		Precision: cfg.Precision, T0: cfg.T0,
		LoadingKind: cfg.Loading.Kind, LoadingTrend: cfg.Loading.Trend,
	}
	if err := env.ParseWithOptions(&v, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("config: environment: %w", err)
	}
	cfg.Chi0, cfg.DepthS, cfg.Sshadow, cfg.DeltaS = v.Chi0, v.DepthS, v.Sshadow, v.DeltaS
	cfg.SigmaMax, cfg.DeltaT, cfg.TStart, cfg.TEnd = v.SigmaMax, v.DeltaT, v.TStart, v.TEnd
	cfg.Precision, cfg.T0 = v.Precision, v.T0
	cfg.Loading.Kind, cfg.Loading.Trend = v.LoadingKind, v.LoadingTrend
	return nil
}

// Overrides carries optional per-call values. A nil field leaves the base
// configuration untouched.
type Overrides struct {
	Chi0        *float64
	DepthS      *float64
	Sshadow     *float64
	DeltaS      *float64
	SigmaMax    *float64
	DeltaT      *float64
	TStart      *float64
	TEnd        *float64
	Precision   *int
	Equilibrium *bool
	T0          *float64
}

// Float and Int return pointers for building Overrides literals.
func Float(v float64) *float64 { return &v }
func Int(v int) *int           { return &v }
func Bool(v bool) *bool        { return &v }

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	cp := *c
	cp.Loading = c.Loading.Clone()
	return &cp
}

// Merge returns a deep copy of c with the non-nil overrides applied.
func (c *Config) Merge(o Overrides) *Config {
	m := c.Clone()
	setF := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	setF(&m.Chi0, o.Chi0)
	setF(&m.DepthS, o.DepthS)
	setF(&m.Sshadow, o.Sshadow)
	setF(&m.DeltaS, o.DeltaS)
	setF(&m.SigmaMax, o.SigmaMax)
	setF(&m.DeltaT, o.DeltaT)
	setF(&m.TStart, o.TStart)
	setF(&m.TEnd, o.TEnd)
	setF(&m.T0, o.T0)
	if o.Precision != nil {
		m.Precision = *o.Precision
	}
	if o.Equilibrium != nil {
		m.Equilibrium = *o.Equilibrium
	}
	return m
}

// Validate checks the parameters shared by every model.
func (c *Config) Validate() error {
	switch {
	case c.DeltaT <= 0:
		return fmt.Errorf("%w: deltat must be positive, got %g", ErrInvalid, c.DeltaT)
	case c.DeltaS <= 0:
		return fmt.Errorf("%w: delta_s must be positive, got %g", ErrInvalid, c.DeltaS)
	case c.SigmaMax < 0:
		return fmt.Errorf("%w: sigma_max must not be negative, got %g", ErrInvalid, c.SigmaMax)
	case c.TEnd < c.TStart:
		return fmt.Errorf("%w: tend %g before tstart %g", ErrInvalid, c.TEnd, c.TStart)
	case c.Precision < 0:
		return fmt.Errorf("%w: precision must not be negative, got %d", ErrInvalid, c.Precision)
	}
	return nil
}

// Window is the time span covered by the configuration.
func (c *Config) Window() loading.Window {
	return loading.Window{TStart: c.TStart, TEnd: c.TEnd, DeltaT: c.DeltaT}
}

// Source builds the configured loading history.
func (c *Config) Source() (loading.Source, error) {
	return c.Loading.Build(c.Window())
}

// Params exposes the numeric parameters by name, for storage and sweeps.
func (c *Config) Params() map[string]float64 {
	return map[string]float64{
		"chi0":      c.Chi0,
		"depth_s":   c.DepthS,
		"sshadow":   c.Sshadow,
		"delta_s":   c.DeltaS,
		"sigma_max": c.SigmaMax,
		"deltat":    c.DeltaT,
		"tstart":    c.TStart,
		"tend":      c.TEnd,
		"precision": float64(c.Precision),
		"t0":        c.T0,
	}
}

// SetParam assigns one numeric parameter by name.
func (c *Config) SetParam(name string, v float64) error {
	switch name {
	case "chi0":
		c.Chi0 = v
	case "depth_s":
		c.DepthS = v
	case "sshadow":
		c.Sshadow = v
	case "delta_s":
		c.DeltaS = v
	case "sigma_max":
		c.SigmaMax = v
	case "deltat":
		c.DeltaT = v
	case "tstart":
		c.TStart = v
	case "tend":
		c.TEnd = v
	case "precision":
		c.Precision = int(v)
	case "t0":
		c.T0 = v
	case "trend":
		c.Loading.Trend = v
	case "step":
		c.Loading.Step = v
	default:
		return fmt.Errorf("config: unknown parameter %q", name)
	}
	return nil
}
