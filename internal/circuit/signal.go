package circuit

import "math"

// Period returns T = 1/f.
func Period(f float64) float64 {
	return 1 / f
}

// AngularFreq returns ω = 2πf.
func AngularFreq(f float64) float64 {
	return 2 * math.Pi * f
}

// Sample is one discrete point of a sampled signal.
type Sample struct {
	N int     // sample index
	T float64 // sample time in seconds
	X float64 // amplitude
}

// SineSamples samples x(t) = A·sin(2πft) at sampling frequency fs, returning
// n samples starting at t = 0.
func SineSamples(f, amp, fs float64, n int) []Sample {
	samples := make([]Sample, n)
	for i := 0; i < n; i++ {
		t := float64(i) / fs
		samples[i] = Sample{N: i, T: t, X: amp * math.Sin(2*math.Pi*f*t)}
	}
	return samples
}
