// Package seismo evaluates time-dependent seismicity for a Coulomb stress
// loading history.
//
// The model family shares one discretization and loading abstraction:
//
//   - [LCM]: linear Coulomb failure on a discretized state field
//   - [TDSM]: LCM with an exponential decay window, giving delayed failure
//   - [TDSR]: continuum variant with an exponential time-to-failure
//   - [Traditional] / [CFM]: instantaneous failure with stress-shadow memory
//   - [RSM] / [RSD]: closed-form rate-and-state recursions
//
// # Example
//
//	cfg := config.DefaultConfig()
//	ev := seismo.New(seismo.TDSM, cfg)
//	src, _ := cfg.Source()
//	res, err := ev.Run(src, config.Overrides{})
//
// # Equilibrium seeding
//
// A long warm-up under background loading converges the state field; a
// later scenario started from that field avoids start-up transients:
//
//	seed, _ := ev.RunToEquilibrium(background, config.Overrides{})
//	res, _ := ev.RunScenario(step, config.Overrides{}, seed)
//
// # Thread Safety
//
// An [Evaluator] only reads its base configuration; every call owns its own
// state field and mask, so one evaluator may serve concurrent calls. Use
// [Sweep] to run independent calls in parallel.
package seismo
