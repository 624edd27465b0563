// Package analysis inspects recorded runs.
//
//   - [PowerSpectrum] and [DominantFrequency]: frequency content of a
//     metric series, e.g. kinetic energy of a bouncing scene
//   - [PositionTrace] and [PhaseTrace]: per-body paths from snapshots
//   - [TraceToASCII]: terminal plot of a trace
//
// A bouncing body shows up as a peak at its bounce rate:
//
//	freq, power := analysis.DominantFrequency(result.Series("kinetic_energy"), dt)
package analysis
