package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/seisrate/internal/config"
	"github.com/san-kum/seisrate/internal/loading"
	"github.com/san-kum/seisrate/internal/seismo"
)

func testResult(t *testing.T) *seismo.Result {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.TEnd = 72000
	cfg.DeltaT = 18000
	cfg.Chi0 = 2500
	cfg.Loading = loading.Spec{Kind: "step", Trend: 1e-5, Step: 0.2, TStep: 36000}

	src, err := cfg.Source()
	if err != nil {
		t.Fatalf("source: %v", err)
	}
	res, err := seismo.New(seismo.LCM, cfg).Run(src, config.Overrides{})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	return res
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	res := testResult(t)
	runID, err := st.Save(res, map[string]float64{"peak_rate": 1.5}, "")
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Error("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Model != "lcm" {
		t.Errorf("expected model 'lcm', got '%s'", meta.Model)
	}
	if meta.Metrics["peak_rate"] != 1.5 {
		t.Errorf("expected peak_rate 1.5, got %f", meta.Metrics["peak_rate"])
	}
	if meta.Samples != 5 || meta.StateSize != len(res.State) {
		t.Errorf("unexpected sizes: samples %d, state %d", meta.Samples, meta.StateSize)
	}

	cfg, err := meta.Config()
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	if cfg.Chi0 != 2500 || cfg.TEnd != 72000 || cfg.Loading.Kind != "step" || cfg.Loading.Step != 0.2 {
		t.Errorf("config did not round-trip: %+v", cfg)
	}
}

func TestStoreSeriesRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	res := testResult(t)
	runID, err := st.Save(res, nil, "")
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	series, err := st.LoadSeries(runID)
	if err != nil {
		t.Fatalf("load series: %v", err)
	}
	check := func(name string, got, want []float64) {
		if len(got) != len(want) {
			t.Fatalf("%s: got %d samples, want %d", name, len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("%s[%d] = %v, want %v", name, i, got[i], want[i])
			}
		}
	}
	check("times", series.Times, res.Times)
	check("stress", series.Stress, res.Stress)
	check("rate", series.Rate, res.Rate)
	check("count", series.Count, res.Count)

	state, err := st.LoadState(runID)
	if err != nil {
		t.Fatalf("load state: %v", err)
	}
	check("state", state, res.State)
}

func TestStoredStateSeedsRun(t *testing.T) {
	st := New(t.TempDir())
	res := testResult(t)
	runID, err := st.Save(res, nil, "")
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	seed, err := st.LoadState(runID)
	if err != nil {
		t.Fatalf("load state: %v", err)
	}
	cfg := res.Config
	src, _ := cfg.Source()
	next, err := seismo.New(seismo.LCM, &cfg).RunScenario(src, config.Overrides{}, seed)
	if err != nil {
		t.Fatalf("seeded run: %v", err)
	}

	nextID, err := st.Save(next, nil, runID)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	meta, _ := st.Load(nextID)
	if meta.SeededFrom != runID || !meta.Equilibrium {
		t.Errorf("expected seeded metadata, got %+v", meta)
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	res := testResult(t)
	first, _ := st.Save(res, nil, "")
	second, _ := st.Save(res, nil, "")

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if first == second {
		t.Error("expected distinct run ids")
	}
}

func TestStoreMissing(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "absent"))
	runs, err := st.List()
	if err != nil || len(runs) != 0 {
		t.Errorf("expected empty list for missing dir, got %v, %v", runs, err)
	}
	if _, err := st.Load("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := st.LoadSeries("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStoreFileStructure(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)
	runID, err := st.Save(testResult(t), nil, "")
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	for _, name := range []string{"metadata.json", "series.csv", "state.csv"} {
		if _, err := os.Stat(filepath.Join(tmpDir, runID, name)); os.IsNotExist(err) {
			t.Errorf("%s not created", name)
		}
	}
}

func TestExport(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)
	res := testResult(t)
	runID, _ := st.Save(res, map[string]float64{"mean_rate": 2}, "")
	meta, _ := st.Load(runID)
	series, _ := st.LoadSeries(runID)

	var buf bytes.Buffer
	if err := ExportJSONTo(&buf, meta, series); err != nil {
		t.Fatalf("export json: %v", err)
	}
	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if data.Model != "lcm" || data.Steps != 5 || len(data.Count) != 4 || data.Metrics["mean_rate"] != 2 {
		t.Errorf("unexpected export: %+v", data)
	}

	out := filepath.Join(tmpDir, "out.csv")
	if err := st.ExportCSV(runID, out); err != nil {
		t.Fatalf("export csv: %v", err)
	}
	got, _ := os.ReadFile(out)
	want, _ := os.ReadFile(st.SeriesPath(runID))
	if !bytes.Equal(got, want) {
		t.Error("exported csv differs from stored series")
	}
}
