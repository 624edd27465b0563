package analysis

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum returns the magnitudes of the first half of the DFT of
// data, after removing its mean. Any length is accepted.
func PowerSpectrum(data []float64) []float64 {
	if len(data) == 0 {
		return []float64{}
	}

	mean := 0.0
	for _, v := range data {
		mean += v
	}
	mean /= float64(len(data))

	centred := make([]float64, len(data))
	for i, v := range data {
		centred[i] = v - mean
	}

	spectrum := fft.FFTReal(centred)
	ps := make([]float64, len(spectrum)/2+1)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps
}

// DominantFrequency returns the frequency in Hz of the strongest
// non-DC bin of data sampled every dt seconds, with its magnitude.
func DominantFrequency(data []float64, dt float64) (freq, power float64) {
	if len(data) < 2 || dt <= 0 || math.IsNaN(dt) {
		return 0, 0
	}

	ps := PowerSpectrum(data)
	best := 0
	for i := 1; i < len(ps); i++ {
		if ps[i] > power {
			power = ps[i]
			best = i
		}
	}
	if best == 0 {
		return 0, 0
	}
	return float64(best) / (float64(len(data)) * dt), power
}
