// Package sim runs planet populations over time.
//
// The package wraps the physics step in a run loop with sampling,
// cancellation and bookkeeping:
//
//   - [Config]: time step, duration, sampling and physics options
//   - [Metric]: scalar summary observed at every step
//   - [Observer]: per-step hook for streaming consumers
//   - [Simulator]: orchestrates a single run
//   - [Ensemble]: independent seeded runs in parallel
//
// # Example
//
//	s := sim.New()
//	s.AddMetric(metrics.NewKineticEnergy())
//	result, err := s.Run(ctx, pop, sim.DefaultConfig())
//
// # Thread Safety
//
// A Simulator must not be shared between goroutines. Ensemble gives every
// run its own Simulator and population.
package sim
