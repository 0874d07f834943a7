// Package analysis extracts frequency content and paths from recorded runs.
//
//   - [FFT]: radix-2 discrete Fourier transform
//   - [PowerSpectrum]: magnitude of the positive-frequency bins
//   - [DominantFrequency]: strongest non-zero frequency of a Hann-windowed series
//   - [CenterOfMassPath]: centre of mass of every recorded frame
//
// # Example
//
//	ke := sim.Series(result.Frames, physics.KineticEnergy)
//	f, power := analysis.DominantFrequency(ke, cfg.Dt*float64(cfg.SampleEvery))
package analysis
