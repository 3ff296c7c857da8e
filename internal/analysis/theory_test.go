package analysis_test

import (
	"math"
	"testing"

	"github.com/san-kum/seisrate/internal/analysis"
	"github.com/san-kum/seisrate/internal/config"
	"github.com/san-kum/seisrate/internal/loading"
	"github.com/san-kum/seisrate/internal/seismo"
)

var params = analysis.StepParams{
	Chi0:       1e4,
	Asig:       0.3,
	StressRate: 1e-6,
	Step:       0.1,
	TStep:      3600,
}

func TestDieterichStepLimits(t *testing.T) {
	rinf := params.Background()

	if got := analysis.DieterichStep(0, params); got != rinf {
		t.Errorf("before step: got %v, want %v", got, rinf)
	}

	want := rinf * math.Exp(params.Step/params.Asig)
	if got := analysis.DieterichStep(params.TStep, params); math.Abs(got-want) > 1e-9*want {
		t.Errorf("at step: got %v, want %v", got, want)
	}

	late := params.TStep + 50*params.RelaxationTime()
	if got := analysis.DieterichStep(late, params); math.Abs(got/rinf-1) > 1e-9 {
		t.Errorf("long after step: got %v, want %v", got, rinf)
	}
}

func TestTDSMStepDecays(t *testing.T) {
	rinf := params.Background()
	if got := analysis.TDSMStep(params.TStep-1, params); got != rinf {
		t.Errorf("before step: got %v, want %v", got, rinf)
	}

	prev := math.Inf(1)
	for _, dt := range []float64{0, 1e3, 1e4, 1e5, 1e6} {
		r := analysis.TDSMStep(params.TStep+dt, params)
		if r >= prev || r < rinf {
			t.Fatalf("expected monotonic decay toward %v, got %v after %v", rinf, r, prev)
		}
		prev = r
	}
}

func TestDieterichMatchesRSM(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.DeltaT = 3600
	cfg.TEnd = 3600 * 500
	cfg.Chi0 = params.Chi0
	cfg.DepthS = -params.Asig
	src := &loading.Step{Window: cfg.Window(), Trend: params.StressRate, Step: params.Step, TStep: params.TStep}

	res, err := seismo.New(seismo.RSM, cfg).Run(src, config.Overrides{})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	theory := analysis.Curve(res.Times, params, analysis.DieterichStep)
	for i := 1; i < len(res.Rate); i++ {
		if math.Abs(res.Rate[i]/theory[i]-1) > 0.02 {
			t.Fatalf("t=%v: rsm %v, theory %v", res.Times[i], res.Rate[i], theory[i])
		}
	}
}

func TestCurve(t *testing.T) {
	got := analysis.Curve([]float64{1, 2}, params, func(t float64, p analysis.StepParams) float64 { return 2 * t })
	if len(got) != 2 || got[0] != 2 || got[1] != 4 {
		t.Errorf("unexpected curve %v", got)
	}
}
