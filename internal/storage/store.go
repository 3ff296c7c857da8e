package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/seisrate/internal/config"
	"github.com/san-kum/seisrate/internal/field"
	"github.com/san-kum/seisrate/internal/loading"
	"github.com/san-kum/seisrate/internal/seismo"
)

// ErrNotFound indicates a run id with no stored run.
var ErrNotFound = errors.New("storage: run not found")

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID          string             `json:"id"`
	Model       string             `json:"model"`
	Timestamp   time.Time          `json:"timestamp"`
	Params      map[string]float64 `json:"params"`
	Loading     loading.Spec       `json:"loading"`
	Equilibrium bool               `json:"equilibrium"`
	SeededFrom  string             `json:"seeded_from,omitempty"`
	Samples     int                `json:"samples"`
	StateSize   int                `json:"state_size"`
	Metrics     map[string]float64 `json:"metrics"`
}

// Config rebuilds the configuration the run used.
func (m *RunMetadata) Config() (*config.Config, error) {
	cfg := config.DefaultConfig()
	for k, v := range m.Params {
		if err := cfg.SetParam(k, v); err != nil {
			return nil, err
		}
	}
	cfg.Loading = m.Loading.Clone()
	cfg.Equilibrium = m.Equilibrium
	return cfg, nil
}

// Series is the per-sample output of a stored run. Count has one sample
// fewer than Times.
type Series struct {
	Times  []float64
	Stress []float64
	Rate   []float64
	Count  []float64
}

// SeriesOf extracts the series from a run result.
func SeriesOf(res *seismo.Result) Series {
	return Series{Times: res.Times, Stress: res.Stress, Rate: res.Rate, Count: res.Count}
}

// Save writes res under a fresh run id. seededFrom names the run whose state
// field seeded this one, if any.
func (s *Store) Save(res *seismo.Result, metrics map[string]float64, seededFrom string) (string, error) {
	model := res.Model.String()
	runID := fmt.Sprintf("%s_%s", model, uuid.NewString())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:          runID,
		Model:       model,
		Timestamp:   time.Now(),
		Params:      res.Config.Params(),
		Loading:     res.Config.Loading.Clone(),
		Equilibrium: res.Config.Equilibrium,
		SeededFrom:  seededFrom,
		Samples:     len(res.Times),
		StateSize:   len(res.State),
		Metrics:     metrics,
	}

	if err := writeJSON(filepath.Join(runDir, "metadata.json"), meta); err != nil {
		return "", err
	}
	if err := writeSeries(filepath.Join(runDir, "series.csv"), SeriesOf(res)); err != nil {
		return "", err
	}
	if err := writeState(filepath.Join(runDir, "state.csv"), res.State); err != nil {
		return "", err
	}
	return runID, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func writeSeries(path string, series Series) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"time", "stress", "rate", "count"}); err != nil {
		return err
	}
	for i, t := range series.Times {
		row := []string{formatFloat(t), "", "", ""}
		if i < len(series.Stress) {
			row[1] = formatFloat(series.Stress[i])
		}
		if i < len(series.Rate) {
			row[2] = formatFloat(series.Rate[i])
		}
		if i < len(series.Count) {
			row[3] = formatFloat(series.Count[i])
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func writeState(path string, state []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"index", "value"}); err != nil {
		return err
	}
	for i, v := range state {
		if err := w.Write([]string{strconv.Itoa(i), formatFloat(v)}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns every stored run, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.SliceStable(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(s.path(runID, "metadata.json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadSeries(runID string) (Series, error) {
	records, err := s.readCSV(runID, "series.csv")
	if err != nil {
		return Series{}, err
	}

	var series Series
	for i, record := range records {
		if i == 0 || len(record) < 4 {
			continue
		}
		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		series.Times = append(series.Times, t)
		if v, err := strconv.ParseFloat(record[1], 64); err == nil {
			series.Stress = append(series.Stress, v)
		}
		if v, err := strconv.ParseFloat(record[2], 64); err == nil {
			series.Rate = append(series.Rate, v)
		}
		if v, err := strconv.ParseFloat(record[3], 64); err == nil {
			series.Count = append(series.Count, v)
		}
	}
	return series, nil
}

// LoadState returns the final state field of a run, ready to seed another.
func (s *Store) LoadState(runID string) (field.State, error) {
	records, err := s.readCSV(runID, "state.csv")
	if err != nil {
		return nil, err
	}

	state := make(field.State, 0, len(records))
	for i, record := range records {
		if i == 0 || len(record) < 2 {
			continue
		}
		v, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, fmt.Errorf("storage: state.csv line %d: %w", i+1, err)
		}
		state = append(state, v)
	}
	return state, nil
}

func (s *Store) path(runID, name string) string {
	return filepath.Join(s.baseDir, runID, name)
}

func (s *Store) readCSV(runID, name string) ([][]string, error) {
	file, err := os.Open(s.path(runID, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, runID)
		}
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	return r.ReadAll()
}

// SeriesPath is the location of a run's series.csv.
func (s *Store) SeriesPath(runID string) string {
	return s.path(runID, "series.csv")
}
