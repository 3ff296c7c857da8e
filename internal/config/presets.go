package config

import (
	"sort"

	"github.com/san-kum/seisrate/internal/loading"
)

const hours = 3600.0

// Presets reproduce the published figure setups: a stress step on top of a
// tectonic trend, the matching background warm-up, and tidal cycling.
var Presets = map[string]*Config{
	"step": {
		Chi0: 1.0e4, DepthS: -0.3, DeltaS: DefaultDeltaS, SigmaMax: DefaultSigmaMax,
		DeltaT: 18000, TEnd: 20000 * hours, Precision: 18, T0: 1800,
		Loading: loading.Spec{Kind: "step", Trend: 1.0e-8, Step: 0.9, TStep: 5 * hours},
	},
	"background": {
		Chi0: 1.0e4, DepthS: -0.3, DeltaS: DefaultDeltaS, SigmaMax: DefaultSigmaMax,
		DeltaT: 18000, TEnd: 20000 * hours, Precision: 18, T0: 1800,
		Loading: loading.Spec{Kind: "background", Trend: 1.0e-8},
	},
	"cyclic": {
		Chi0: 1.0e4, DepthS: -0.3, DeltaS: DefaultDeltaS, SigmaMax: DefaultSigmaMax,
		DeltaT: DefaultDeltaT, TEnd: DefaultTEnd, Precision: 18, T0: DefaultT0,
		Loading: loading.Spec{Kind: "cyclic", Trend: 7.0e-5, Amplitude: 0.2, Period: 43200},
	},
	"ramp": {
		Chi0: 1.0e4, DepthS: -0.3, DeltaS: DefaultDeltaS, SigmaMax: DefaultSigmaMax,
		DeltaT: 3600, TEnd: 2000 * hours, Precision: 18, T0: 360,
		Loading: loading.Spec{Kind: "ramp", Trend: 1.0e-7, Step: 0.6, TStep: 200 * hours, Duration: 100 * hours},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
