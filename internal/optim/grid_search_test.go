package optim

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/san-kum/seisrate/internal/config"
	"github.com/san-kum/seisrate/internal/experiment"
)

func TestMisfit(t *testing.T) {
	if got := Misfit([]float64{1, 2, 3}, []float64{1, 2, 3}); got != 0 {
		t.Errorf("identical series: got %v", got)
	}
	if got := Misfit([]float64{0, 0}, []float64{3, 4, 100}); math.Abs(got-math.Sqrt(12.5)) > 1e-12 {
		t.Errorf("got %v, want %v", got, math.Sqrt(12.5))
	}
	if !math.IsInf(Misfit(nil, []float64{1}), 1) {
		t.Error("expected +Inf for empty series")
	}
}

func build(reg *experiment.Registry) func(map[string]float64) (*experiment.Experiment, error) {
	return func(params map[string]float64) (*experiment.Experiment, error) {
		cfg := config.DefaultConfig()
		cfg.TEnd = 72000
		cfg.DeltaT = 18000
		for k, v := range params {
			if err := cfg.SetParam(k, v); err != nil {
				return nil, err
			}
		}
		exp := experiment.New(experiment.Config{Model: "traditional", Base: cfg})
		if err := exp.Setup(reg, nil); err != nil {
			return nil, err
		}
		return exp, nil
	}
}

func TestSearchRecoversChi0(t *testing.T) {
	reg := experiment.NewRegistry()

	truth, err := build(reg)(map[string]float64{"chi0": 3e3})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	ref, err := truth.Run(context.Background())
	if err != nil {
		t.Fatalf("reference run: %v", err)
	}

	g := NewGridSearch([]string{"chi0", "sshadow"}, [][]float64{{1e3, 3e3, 1e4}, {0, -1}})
	params, misfit, err := g.Search(context.Background(), build(reg), ref.Rate)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if params["chi0"] != 3e3 || params["sshadow"] != 0 {
		t.Errorf("expected chi0=3000 sshadow=0, got %v", params)
	}
	if misfit > 1e-12 {
		t.Errorf("expected zero misfit, got %v", misfit)
	}
}

func TestSearchNoCandidate(t *testing.T) {
	g := NewGridSearch([]string{"gravity"}, [][]float64{{1, 2}})
	_, _, err := g.Search(context.Background(), build(experiment.NewRegistry()), []float64{0})
	if !errors.Is(err, ErrNoCandidate) {
		t.Errorf("expected ErrNoCandidate, got %v", err)
	}
	if err == nil || !strings.Contains(err.Error(), `unknown parameter "gravity"`) {
		t.Errorf("expected the candidate failure in the error, got %v", err)
	}
}

func TestSearchEmptyRange(t *testing.T) {
	g := NewGridSearch([]string{"chi0"}, [][]float64{{}})
	_, _, err := g.Search(context.Background(), build(experiment.NewRegistry()), []float64{0})
	if err != ErrNoCandidate {
		t.Errorf("expected bare ErrNoCandidate, got %v", err)
	}
}

func TestSearchMismatchedRanges(t *testing.T) {
	g := NewGridSearch([]string{"chi0", "t0"}, [][]float64{{1}})
	if _, _, err := g.Search(context.Background(), build(experiment.NewRegistry()), nil); err == nil {
		t.Error("expected error for mismatched ranges")
	}
}

func TestSearchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := NewGridSearch([]string{"chi0"}, [][]float64{{1e3}})
	if _, _, err := g.Search(ctx, build(experiment.NewRegistry()), []float64{0}); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
