package testutil

import "math/rand"

// DeterministicMatrix returns rows*cols values in [-amplitude, amplitude)
// drawn from a fixed seed, laid out row-major.
func DeterministicMatrix(seed int64, amplitude float32, rows, cols int) []float32 {
	out := make([]float32, rows*cols)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float32()*2 - 1) * amplitude
	}
	return out
}

// Ramp returns n values start, start+step, start+2*step, ...
func Ramp(n int, start, step float32) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = start + float32(i)*step
	}
	return out
}

// Fill returns n copies of v.
func Fill(n int, v float32) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = v
	}
	return out
}
