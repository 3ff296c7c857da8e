package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/san-kum/seisrate/internal/analysis"
	"github.com/san-kum/seisrate/internal/automation"
	"github.com/san-kum/seisrate/internal/config"
	"github.com/san-kum/seisrate/internal/experiment"
	"github.com/san-kum/seisrate/internal/export"
	"github.com/san-kum/seisrate/internal/field"
	"github.com/san-kum/seisrate/internal/loading"
	"github.com/san-kum/seisrate/internal/metrics"
	"github.com/san-kum/seisrate/internal/optim"
	"github.com/san-kum/seisrate/internal/seismo"
	"github.com/san-kum/seisrate/internal/storage"
	"github.com/san-kum/seisrate/internal/viz"
)

var (
	dataDir    string
	verbose    bool
	configFile string
	preset     string

	// model parameters
	chi0      float64
	depthS    float64
	sshadow   float64
	deltaS    float64
	sigmaMax  float64
	deltat    float64
	tstart    float64
	tend      float64
	precision int
	t0        float64

	// loading
	loadKind  string
	trend     float64
	trend2    float64
	sstep     float64
	tstep     float64
	tchange   float64
	amplitude float64
	period    float64
	rampDur   float64
	loadFile  string

	// equilibrium seeding
	warmup          bool
	equilibriumFrom string

	// sweep
	sweepParam string
	sweepMin   float64
	sweepMax   float64
	sweepSteps int
	jobs       int
	saveRuns   bool

	// calibrate
	calibParams []string

	// compare
	theory string

	// output
	outPath   string
	plotWidth int
)

var logger = slog.New(slog.DiscardHandler)

var printer = message.NewPrinter(language.English)

func main() {
	rootCmd := &cobra.Command{
		Use:          "seisrate",
		Short:        "time-dependent seismicity rates from Coulomb stress loading",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("load .env: %w", err)
			}
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".seisrate", "data directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	runCmd := &cobra.Command{
		Use:   "run [model]",
		Short: "run a model and store the result",
		Args:  cobra.ExactArgs(1),
		RunE:  runModel,
	}
	addModelFlags(runCmd)
	runCmd.Flags().BoolVar(&warmup, "warmup", false, "converge the state field under background loading first")
	runCmd.Flags().StringVar(&equilibriumFrom, "equilibrium-from", "", "seed the state field from a stored run")

	sweepCmd := &cobra.Command{
		Use:   "sweep [model]",
		Short: "run a model over a range of one parameter",
		Args:  cobra.ExactArgs(1),
		RunE:  sweepModel,
	}
	addModelFlags(sweepCmd)
	sweepCmd.Flags().StringVar(&sweepParam, "param", "step", "parameter to sweep")
	sweepCmd.Flags().Float64Var(&sweepMin, "min", 0.3, "first value")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", 1.8, "last value")
	sweepCmd.Flags().IntVar(&sweepSteps, "n", 6, "number of values")
	sweepCmd.Flags().IntVar(&jobs, "jobs", 0, "concurrent runs (0 = unlimited)")
	sweepCmd.Flags().BoolVar(&saveRuns, "save", false, "store every run")

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a yaml scenario",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenarioFile,
	}

	calibrateCmd := &cobra.Command{
		Use:   "calibrate [model] [run_id]",
		Short: "grid-search parameters against a stored rate series",
		Args:  cobra.ExactArgs(2),
		RunE:  calibrate,
	}
	calibrateCmd.Flags().StringArrayVar(&calibParams, "param", nil, "name=v1,v2,... (repeatable)")

	compareCmd := &cobra.Command{
		Use:   "compare [run_id]",
		Short: "compare a stored run with a reference rate",
		Args:  cobra.ExactArgs(1),
		RunE:  compareRun,
	}
	compareCmd.Flags().IntVar(&plotWidth, "width", 80, "plot width")
	compareCmd.Flags().StringVar(&theory, "theory", "ode", "reference: ode, dieterich or tdsm (step loading only)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run results",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&plotWidth, "width", 80, "plot width")

	viewCmd := &cobra.Command{
		Use:   "view [run_id]",
		Short: "interactive viewer",
		Args:  cobra.ExactArgs(1),
		RunE:  viewRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run series as csv",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export rate and stress as svg",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file")

	modelsCmd := &cobra.Command{
		Use:   "models",
		Short: "list models",
		RunE:  listModels,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets",
		RunE:  listPresets,
	}

	rootCmd.AddCommand(runCmd, sweepCmd, scenarioCmd, calibrateCmd, compareCmd, listCmd, plotCmd, viewCmd,
		exportJSONCmd, exportCSVCmd, exportSVGCmd, modelsCmd, presetsCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func addModelFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&configFile, "config", "", "config file path (yaml)")
	f.StringVar(&preset, "preset", "", "use preset configuration")

	f.Float64Var(&chi0, "chi0", config.DefaultChi0, "susceptibility, events per unit stress")
	f.Float64Var(&depthS, "depth-s", config.DefaultDepthS, "skin depth in MPa (negative)")
	f.Float64Var(&sshadow, "sshadow", 0, "initial stress shadow in MPa")
	f.Float64Var(&deltaS, "delta-s", config.DefaultDeltaS, "stress axis step in MPa")
	f.Float64Var(&sigmaMax, "sigma-max", config.DefaultSigmaMax, "stress axis half width in MPa")
	f.Float64Var(&deltat, "deltat", config.DefaultDeltaT, "time step in seconds")
	f.Float64Var(&tstart, "tstart", 0, "start time in seconds")
	f.Float64Var(&tend, "tend", config.DefaultTEnd, "end time in seconds")
	f.IntVar(&precision, "precision", config.DefaultPrecision, "decay window length in skin depths")
	f.Float64Var(&t0, "t0", config.DefaultT0, "tdsr time-to-failure scale in seconds")

	f.StringVar(&loadKind, "loading", "", fmt.Sprintf("loading kind %v", loading.Kinds()))
	f.Float64Var(&trend, "trend", config.DefaultTrend, "background stress rate in MPa/s")
	f.Float64Var(&trend2, "trend2", 0, "stress rate after tchange")
	f.Float64Var(&sstep, "step", 0, "stress step in MPa")
	f.Float64Var(&tstep, "tstep", 0, "time of the stress step")
	f.Float64Var(&tchange, "tchange", 0, "time of the trend change")
	f.Float64Var(&amplitude, "amplitude", 0, "cyclic amplitude in MPa")
	f.Float64Var(&period, "period", 0, "cyclic period in seconds")
	f.Float64Var(&rampDur, "ramp", 0, "ramp duration in seconds")
	f.StringVar(&loadFile, "file", "", "two-column stress file for --loading file")
}

// resolveConfig layers preset, config file, environment and explicit flags,
// in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if err := config.ApplyEnv(cfg); err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	floats := []struct {
		flag string
		dst  *float64
		val  float64
	}{
		{"chi0", &cfg.Chi0, chi0},
		{"depth-s", &cfg.DepthS, depthS},
		{"sshadow", &cfg.Sshadow, sshadow},
		{"delta-s", &cfg.DeltaS, deltaS},
		{"sigma-max", &cfg.SigmaMax, sigmaMax},
		{"deltat", &cfg.DeltaT, deltat},
		{"tstart", &cfg.TStart, tstart},
		{"tend", &cfg.TEnd, tend},
		{"t0", &cfg.T0, t0},
		{"trend", &cfg.Loading.Trend, trend},
		{"trend2", &cfg.Loading.Trend2, trend2},
		{"step", &cfg.Loading.Step, sstep},
		{"tstep", &cfg.Loading.TStep, tstep},
		{"tchange", &cfg.Loading.TChange, tchange},
		{"amplitude", &cfg.Loading.Amplitude, amplitude},
		{"period", &cfg.Loading.Period, period},
		{"ramp", &cfg.Loading.Duration, rampDur},
	}
	for _, f := range floats {
		if changed(f.flag) {
			*f.dst = f.val
		}
	}
	if changed("precision") {
		cfg.Precision = precision
	}
	if changed("loading") {
		cfg.Loading.Kind = loadKind
	}
	if changed("file") {
		cfg.Loading.Path = loadFile
		if !changed("loading") {
			cfg.Loading.Kind = "file"
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger.Debug("resolved config", "params", cfg.Params(), "loading", cfg.Loading.Kind)
	return cfg, nil
}

func runModel(cmd *cobra.Command, args []string) error {
	if warmup && equilibriumFrom != "" {
		return fmt.Errorf("--warmup and --equilibrium-from are mutually exclusive")
	}
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	registry := experiment.NewRegistry()
	ev, err := registry.GetModel(args[0], cfg, logger)
	if err != nil {
		return err
	}
	src, err := cfg.Source()
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("running %s...\n", ev.Variant())
	start := time.Now()

	var res *seismo.Result
	switch {
	case warmup:
		bg := &loading.Background{Window: cfg.Window(), Trend: src.StressRate()}
		var seed field.State
		seed, err = ev.RunToEquilibrium(bg, config.Overrides{})
		if err == nil {
			res, err = ev.RunScenario(src, config.Overrides{}, seed)
		}
	case equilibriumFrom != "":
		var seed field.State
		seed, err = st.LoadState(equilibriumFrom)
		if err == nil {
			res, err = ev.RunScenario(src, config.Overrides{}, seed)
		}
	default:
		res, err = ev.Run(src, config.Overrides{})
	}
	if err != nil {
		return err
	}

	elapsed := time.Since(start)
	vals := metrics.Collect(res, registry.DefaultMetrics(cfg)...)
	runID, err := st.Save(res, vals, equilibriumFrom)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("samples: %d\n", len(res.Times))
	printMetrics(vals)
	return nil
}

func printMetrics(vals map[string]float64) {
	fmt.Println("\nmetrics:")
	for _, name := range []string{"peak_rate", "mean_rate", "event_count", "quiet_fraction"} {
		if v, ok := vals[name]; ok {
			printer.Printf("  %s: %.4f\n", name, v)
		}
	}
}

func sweepModel(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if sweepParam == "step" && cfg.Loading.Kind != "step" && cfg.Loading.Kind != "ramp" {
		cfg.Loading.Kind = "step"
	}

	registry := experiment.NewRegistry()
	sweep := &automation.ParameterSweep{
		Model:    args[0],
		Base:     cfg,
		Param:    sweepParam,
		ParamMin: sweepMin,
		ParamMax: sweepMax,
		NumSteps: sweepSteps,
		Limit:    jobs,
	}
	results, err := automation.RunSweep(cmd.Context(), sweep, registry, os.Stdout)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "\n%s\tPEAK\tMEAN\tEVENTS\tRUN\n", strings.ToUpper(sweepParam))
	for _, r := range results {
		runID := "-"
		if saveRuns {
			if runID, err = st.Save(r.Result, r.Metrics, ""); err != nil {
				return err
			}
		}
		printer.Fprintf(w, "%.4g\t%.4f\t%.4f\t%.1f\t%s\n",
			r.ParamValue, r.Metrics["peak_rate"], r.Metrics["mean_rate"], r.Metrics["event_count"], runID)
	}
	return w.Flush()
}

func runScenarioFile(cmd *cobra.Command, args []string) error {
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}
	if sc.Name != "" {
		fmt.Printf("scenario: %s\n", sc.Name)
	}

	registry := experiment.NewRegistry()
	results, err := automation.RunScenario(cmd.Context(), sc, registry, os.Stdout)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	ids := make(map[string]string, len(results))
	for i, r := range results {
		vals := metrics.Collect(r.Result, registry.DefaultMetrics(&r.Result.Config)...)
		runID, err := st.Save(r.Result, vals, ids[sc.Steps[i].SeedFrom])
		if err != nil {
			return err
		}
		ids[r.Name] = runID
		fmt.Printf("  %s -> %s\n", r.Name, runID)
	}
	return nil
}

// parseParamSpec splits "name=v1,v2,..." into a name and its values.
func parseParamSpec(spec string) (string, []float64, error) {
	name, list, ok := strings.Cut(spec, "=")
	if !ok || name == "" {
		return "", nil, fmt.Errorf("bad --param %q, want name=v1,v2", spec)
	}
	var vals []float64
	for _, s := range strings.Split(list, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return "", nil, fmt.Errorf("bad --param %q: %w", spec, err)
		}
		vals = append(vals, v)
	}
	return name, vals, nil
}

func calibrate(cmd *cobra.Command, args []string) error {
	model, runID := args[0], args[1]
	if len(calibParams) == 0 {
		return fmt.Errorf("at least one --param is required")
	}

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	ref, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}
	base, err := meta.Config()
	if err != nil {
		return err
	}
	base.Equilibrium = false

	names := make([]string, 0, len(calibParams))
	ranges := make([][]float64, 0, len(calibParams))
	for _, spec := range calibParams {
		name, vals, err := parseParamSpec(spec)
		if err != nil {
			return err
		}
		names = append(names, name)
		ranges = append(ranges, vals)
	}

	registry := experiment.NewRegistry()
	if _, err := registry.Lookup(model); err != nil {
		return err
	}
	build := func(params map[string]float64) (*experiment.Experiment, error) {
		cfg := base.Clone()
		for k, v := range params {
			if err := cfg.SetParam(k, v); err != nil {
				return nil, err
			}
		}
		exp := experiment.New(experiment.Config{Model: model, Base: cfg})
		if err := exp.Setup(registry, logger); err != nil {
			return nil, err
		}
		return exp, nil
	}

	fmt.Printf("calibrating %s against %s...\n", model, runID)
	best, misfit, err := optim.NewGridSearch(names, ranges).Search(cmd.Context(), build, ref.Rate)
	if err != nil {
		return err
	}

	fmt.Println("best parameters:")
	for _, name := range names {
		printer.Printf("  %s: %g\n", name, best[name])
	}
	printer.Printf("rms misfit: %.6g\n", misfit)
	return nil
}

func compareRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	series, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	cfg, err := meta.Config()
	if err != nil {
		return err
	}

	ref, label, err := referenceCurve(theory, cfg, series)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s (%s)\n", meta.ID, meta.Model)
	printer.Printf("rms misfit against %s: %.6g\n\n", label, optim.Misfit(series.Rate, ref))
	fmt.Println(asciigraph.PlotMany([][]float64{series.Rate, ref},
		asciigraph.Height(10),
		asciigraph.Width(plotWidth),
		asciigraph.SeriesColors(asciigraph.Green, asciigraph.Blue),
		asciigraph.Caption("model rate (green) vs "+label+" (blue)"),
	))
	return nil
}

// referenceCurve evaluates the named reference rate on a stored run's time
// axis. The closed-form step solutions need step loading.
func referenceCurve(name string, cfg *config.Config, series storage.Series) ([]float64, string, error) {
	switch strings.ToLower(name) {
	case "", "ode":
		ref, err := analysis.DieterichODE(series.Times, series.Stress, cfg.Chi0, -cfg.DepthS)
		return ref, "rate-and-state ODE", err
	case "dieterich", "tdsm":
	default:
		return nil, "", fmt.Errorf("unknown theory %q (available: ode, dieterich, tdsm)", name)
	}

	if !strings.EqualFold(cfg.Loading.Kind, "step") {
		return nil, "", fmt.Errorf("theory %s needs step loading, run has %q", name, cfg.Loading.Kind)
	}
	p := analysis.StepParams{
		Chi0:       cfg.Chi0,
		Asig:       -cfg.DepthS,
		StressRate: cfg.Loading.Trend,
		Step:       cfg.Loading.Step,
		TStep:      cfg.Loading.TStep,
	}
	if p.Asig <= 0 || p.StressRate <= 0 {
		return nil, "", fmt.Errorf("theory %s needs positive asig and stress rate", name)
	}
	if strings.EqualFold(name, "tdsm") {
		return analysis.Curve(series.Times, p, analysis.TDSMStep), "tdsm step approximation", nil
	}
	return analysis.Curve(series.Times, p, analysis.DieterichStep), "dieterich step solution", nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMODEL\tTIME\tLOADING\tSAMPLES\tPEAK\tSEEDED")

	for _, run := range runs {
		seeded := ""
		if run.Equilibrium {
			seeded = "yes"
			if run.SeededFrom != "" {
				seeded = run.SeededFrom
			}
		}
		printer.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%.3f\t%s\n",
			run.ID,
			run.Model,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Loading.Kind,
			run.Samples,
			run.Metrics["peak_rate"],
			seeded,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	series, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}
	if len(series.Rate) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("model: %s\n", meta.Model)
	fmt.Printf("samples: %d\n\n", len(series.Times))

	plots := []struct {
		caption string
		data    []float64
	}{
		{"rate (events per time step)", series.Rate},
		{"coulomb stress (MPa)", series.Stress},
		{"cumulative count", series.Count},
	}
	for _, p := range plots {
		if len(p.data) == 0 {
			continue
		}
		graph := asciigraph.Plot(p.data,
			asciigraph.Height(10),
			asciigraph.Width(plotWidth),
			asciigraph.Caption(p.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func viewRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	series, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	state, err := st.LoadState(args[0])
	if err != nil {
		return err
	}
	return viz.RunViewer(meta, series, state)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	series, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	if outPath == "" {
		return storage.ExportJSONTo(os.Stdout, meta, series)
	}
	if err := storage.ExportJSON(outPath, meta, series); err != nil {
		return err
	}
	fmt.Printf("exported to %s\n", outPath)
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	if outPath == "" {
		outPath = args[0] + ".csv"
	}
	st := storage.New(dataDir)
	if err := st.ExportCSV(args[0], outPath); err != nil {
		return err
	}
	fmt.Printf("exported to %s\n", outPath)
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	if outPath == "" {
		outPath = args[0] + ".svg"
	}
	st := storage.New(dataDir)
	series, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}

	svg := export.PanelsToSVG(series.Times, []export.Panel{
		{Label: "rate", Values: series.Rate, Stroke: "#00ff88"},
		{Label: "stress", Values: series.Stress, Stroke: "#00ccff"},
	}, 900, 500)
	if svg == "" {
		return fmt.Errorf("not enough samples to draw")
	}
	if err := os.WriteFile(outPath, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("exported to %s\n", outPath)
	return nil
}

func listModels(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MODEL\tSTATE FIELD\tDESCRIPTION")
	for _, m := range experiment.NewRegistry().ListModels() {
		state := "no"
		if m.Variant.HasStateField() {
			state = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", m.Name, state, m.Description)
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tLOADING\tDELTAT\tTEND")
	for _, name := range config.ListPresets() {
		cfg := config.GetPreset(name)
		printer.Fprintf(w, "%s\t%s\t%.0f\t%.0f\n", name, cfg.Loading.Kind, cfg.DeltaT, cfg.TEnd)
	}
	return w.Flush()
}
