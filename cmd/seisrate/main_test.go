package main

import (
	"math"
	"testing"

	"github.com/spf13/cobra"

	"github.com/san-kum/seisrate/internal/analysis"
	"github.com/san-kum/seisrate/internal/config"
	"github.com/san-kum/seisrate/internal/storage"
)

func TestParseParamSpec(t *testing.T) {
	name, vals, err := parseParamSpec("chi0=1000, 2000,3e3")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if name != "chi0" || len(vals) != 3 || vals[2] != 3000 {
		t.Errorf("got %s %v", name, vals)
	}

	for _, bad := range []string{"chi0", "=1,2", "chi0=1,x"} {
		if _, _, err := parseParamSpec(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestResolveConfigFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	addModelFlags(cmd)
	if err := cmd.ParseFlags([]string{"--chi0", "500", "--loading", "step", "--step", "0.4", "--preset", "step"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	t.Cleanup(func() { preset = "" })

	cfg, err := resolveConfig(cmd)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.Chi0 != 500 {
		t.Errorf("chi0 = %v, want 500", cfg.Chi0)
	}
	if cfg.Loading.Kind != "step" || cfg.Loading.Step != 0.4 {
		t.Errorf("loading = %+v", cfg.Loading)
	}
}

func TestResolveConfigUnknownPreset(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	addModelFlags(cmd)
	if err := cmd.ParseFlags([]string{"--preset", "nope"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	t.Cleanup(func() { preset = "" })

	if _, err := resolveConfig(cmd); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestReferenceCurve(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Loading.Kind = "step"
	cfg.Loading.Trend = 1e-6
	cfg.Loading.Step = 0.1
	cfg.Loading.TStep = 3600

	series := storage.Series{
		Times:  []float64{0, 1800, 3600, 7200},
		Stress: []float64{0, 0.0018, 0.1036, 0.1072},
	}
	p := analysis.StepParams{Chi0: cfg.Chi0, Asig: 0.3, StressRate: 1e-6, Step: 0.1, TStep: 3600}

	tests := []struct {
		theory string
		fn     func(float64, analysis.StepParams) float64
	}{
		{"dieterich", analysis.DieterichStep},
		{"TDSM", analysis.TDSMStep},
	}
	for _, tt := range tests {
		t.Run(tt.theory, func(t *testing.T) {
			ref, _, err := referenceCurve(tt.theory, cfg, series)
			if err != nil {
				t.Fatalf("reference: %v", err)
			}
			for i, tm := range series.Times {
				want := tt.fn(tm, p)
				if math.Abs(ref[i]-want) > 1e-9*want {
					t.Errorf("t=%v: got %v, want %v", tm, ref[i], want)
				}
			}
		})
	}

	ref, _, err := referenceCurve("ode", cfg, series)
	if err != nil {
		t.Fatalf("ode reference: %v", err)
	}
	if math.Abs(ref[0]/p.Background()-1) > 1e-9 {
		t.Errorf("ode starts at %v, want background %v", ref[0], p.Background())
	}
}

func TestReferenceCurveErrors(t *testing.T) {
	series := storage.Series{Times: []float64{0, 1}, Stress: []float64{0, 1}}

	bg := config.DefaultConfig()
	if _, _, err := referenceCurve("dieterich", bg, series); err == nil {
		t.Error("expected error for closed form on background loading")
	}
	if _, _, err := referenceCurve("omori", bg, series); err == nil {
		t.Error("expected error for unknown theory")
	}
}
