package loading

import (
	"fmt"
	"strings"
)

// Spec describes a Source in a yaml config or scenario file. Only the fields
// relevant to Kind are read.
type Spec struct {
	Kind      string  `yaml:"kind"`
	Trend     float64 `yaml:"trend"`
	Trend2    float64 `yaml:"trend2,omitempty"`
	Step      float64 `yaml:"step,omitempty"`
	TStep     float64 `yaml:"tstep,omitempty"`
	TChange   float64 `yaml:"tchange,omitempty"`
	Amplitude float64 `yaml:"amplitude,omitempty"`
	Period    float64 `yaml:"period,omitempty"`
	Duration  float64 `yaml:"duration,omitempty"`
	Points    []Point `yaml:"points,omitempty"`
	Path      string  `yaml:"path,omitempty"`
}

// Kinds lists the generator names a Spec accepts.
func Kinds() []string {
	return []string{"background", "step", "trendchange", "cyclic", "ramp", "fourpoint", "file"}
}

// Build returns the Source described by s over w.
func (s Spec) Build(w Window) (Source, error) {
	switch strings.ToLower(s.Kind) {
	case "", "background":
		return &Background{Window: w, Trend: s.Trend}, nil
	case "step":
		return &Step{Window: w, Trend: s.Trend, Step: s.Step, TStep: s.TStep}, nil
	case "trendchange":
		return &TrendChange{Window: w, Trend: s.Trend, Trend2: s.Trend2, TChange: s.TChange}, nil
	case "cyclic":
		return &Cyclic{Window: w, Trend: s.Trend, Amplitude: s.Amplitude, Period: s.Period}, nil
	case "ramp":
		return &Ramp{Window: w, Trend: s.Trend, Step: s.Step, TStep: s.TStep, Duration: s.Duration}, nil
	case "fourpoint":
		if len(s.Points) != 4 {
			return nil, fmt.Errorf("loading: fourpoint needs 4 points, got %d", len(s.Points))
		}
		fp := &FourPoint{Window: w}
		copy(fp.Points[:], s.Points)
		return fp, nil
	case "file":
		if s.Path == "" {
			return nil, fmt.Errorf("%w: missing path", ErrBadFile)
		}
		return &File{Window: w, Path: s.Path, Rate: s.Trend}, nil
	default:
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownKind, s.Kind, Kinds())
	}
}

// Clone returns a copy that shares no slices with s.
func (s Spec) Clone() Spec {
	c := s
	if s.Points != nil {
		c.Points = append([]Point(nil), s.Points...)
	}
	return c
}
