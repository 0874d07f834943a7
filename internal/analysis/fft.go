package analysis

import (
	"math"
	"math/bits"
	"math/cmplx"

	dspfft "github.com/mjibson/go-dsp/fft"
	"github.com/mjibson/go-dsp/window"
)

// FFT panics unless len(data) is a power of two. Use PadPow2 first, or
// DominantFrequency for arbitrary lengths.
func FFT(data []float64) []complex128 {
	n := len(data)
	if n <= 1 {
		result := make([]complex128, n)
		for i := range data {
			result[i] = complex(data[i], 0)
		}
		return result
	}

	if n%2 != 0 {
		panic("fft requires power of 2 length")
	}

	even := make([]float64, n/2)
	odd := make([]float64, n/2)

	for i := 0; i < n/2; i++ {
		even[i] = data[2*i]
		odd[i] = data[2*i+1]
	}

	feven := FFT(even)
	fodd := FFT(odd)

	result := make([]complex128, n)
	for k := 0; k < n/2; k++ {
		w := cmplx.Exp(complex(0, -2*math.Pi*float64(k)/float64(n)))
		result[k] = feven[k] + w*fodd[k]
		result[k+n/2] = feven[k] - w*fodd[k]
	}

	return result
}

func PowerSpectrum(data []float64) []float64 {
	fft := FFT(data)
	ps := make([]float64, len(fft)/2)

	for i := range ps {
		ps[i] = cmplx.Abs(fft[i])
	}

	return ps
}

// PadPow2 returns data zero-padded to the next power of two.
func PadPow2(data []float64) []float64 {
	n := len(data)
	size := 1
	if n > 1 {
		size = 1 << bits.Len(uint(n-1))
	}
	out := make([]float64, size)
	copy(out, data)
	return out
}

// DominantFrequency removes the mean of series, applies a Hann window and
// returns the frequency and magnitude of the strongest non-DC bin. sampleDt
// is the time between samples. Any length is accepted. Series shorter than
// two samples report zero.
func DominantFrequency(series []float64, sampleDt float64) (freq, power float64) {
	if len(series) < 2 || sampleDt <= 0 {
		return 0, 0
	}

	mean := 0.0
	for _, v := range series {
		mean += v
	}
	mean /= float64(len(series))

	centred := make([]float64, len(series))
	for i, v := range series {
		centred[i] = v - mean
	}
	window.Apply(centred, window.Hann)

	spectrum := dspfft.FFTReal(centred)

	best := 0
	for k := 1; k <= len(spectrum)/2; k++ {
		if mag := cmplx.Abs(spectrum[k]); mag > power {
			best, power = k, mag
		}
	}
	if best == 0 {
		return 0, 0
	}
	return float64(best) / (float64(len(series)) * sampleDt), power
}
