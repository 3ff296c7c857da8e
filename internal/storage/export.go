package storage

import (
	"encoding/json"
	"io"
	"os"
)

type ExportData struct {
	ID      string             `json:"id"`
	Model   string             `json:"model"`
	Params  map[string]float64 `json:"params"`
	Steps   int                `json:"steps"`
	Times   []float64          `json:"times"`
	Stress  []float64          `json:"stress"`
	Rate    []float64          `json:"rate"`
	Count   []float64          `json:"count"`
	Metrics map[string]float64 `json:"metrics"`
}

func exportData(meta *RunMetadata, series Series) ExportData {
	return ExportData{
		ID:      meta.ID,
		Model:   meta.Model,
		Params:  meta.Params,
		Steps:   len(series.Times),
		Times:   series.Times,
		Stress:  series.Stress,
		Rate:    series.Rate,
		Count:   series.Count,
		Metrics: meta.Metrics,
	}
}

func ExportJSON(path string, meta *RunMetadata, series Series) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return ExportJSONTo(file, meta, series)
}

func ExportJSONTo(w io.Writer, meta *RunMetadata, series Series) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(exportData(meta, series))
}

// ExportCSV copies a run's series.csv to path.
func (s *Store) ExportCSV(runID, path string) error {
	src, err := os.Open(s.SeriesPath(runID))
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return err
	}
	return dst.Close()
}
