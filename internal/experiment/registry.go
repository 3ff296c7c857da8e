package experiment

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/san-kum/seisrate/internal/config"
	"github.com/san-kum/seisrate/internal/metrics"
	"github.com/san-kum/seisrate/internal/seismo"
)

// ModelInfo describes one registered model.
type ModelInfo struct {
	Name        string
	Variant     seismo.Variant
	Description string
}

type Registry struct {
	models  map[string]ModelInfo
	aliases map[string]string
}

func NewRegistry() *Registry {
	r := &Registry{
		models:  make(map[string]ModelInfo),
		aliases: make(map[string]string),
	}

	r.add(seismo.LCM, "linear Coulomb failure on a discretized state field")
	r.add(seismo.TDSM, "time-dependent stress memory, LCM with an exponential decay window")
	r.add(seismo.TDSR, "time-dependent stress response, continuum time-to-failure")
	r.add(seismo.Traditional, "instantaneous Coulomb failure with stress shadow")
	r.add(seismo.CFM, "Coulomb failure model, same rule as traditional")
	r.add(seismo.RSM, "Dieterich rate-and-state recursion")
	r.add(seismo.RSD, "rate-and-state recursion with log stress-rate exponent")

	r.aliases["coulomb"] = "cfm"
	r.aliases["ratestate"] = "rsm"
	r.aliases["dieterich"] = "rsd"

	return r
}

func (r *Registry) add(v seismo.Variant, desc string) {
	r.models[v.String()] = ModelInfo{Name: v.String(), Variant: v, Description: desc}
}

// Lookup resolves a model name or alias.
func (r *Registry) Lookup(name string) (ModelInfo, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := r.aliases[n]; ok {
		n = alias
	}
	info, ok := r.models[n]
	if !ok {
		return ModelInfo{}, fmt.Errorf("%w: %q", seismo.ErrUnimplementedModel, name)
	}
	return info, nil
}

// GetModel returns an evaluator for the named model over base.
func (r *Registry) GetModel(name string, base *config.Config, log *slog.Logger) (*seismo.Evaluator, error) {
	info, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	return seismo.New(info.Variant, base, seismo.WithLogger(log)), nil
}

func (r *Registry) ListModels() []ModelInfo {
	out := make([]ModelInfo, 0, len(r.models))
	for _, info := range r.models {
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Variant < out[j].Variant })
	return out
}

// DefaultMetrics returns the summary metrics for a run of base. A sample
// counts as quiet below one percent of the background rate.
func (r *Registry) DefaultMetrics(base *config.Config) []metrics.Metric {
	quiet := 0.01 * base.Chi0 * base.Loading.Trend
	if quiet < 0 {
		quiet = -quiet
	}
	return metrics.Defaults(quiet)
}
