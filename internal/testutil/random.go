package testutil

import "math/rand"

// DeterministicCoeffs returns length values uniform in [-amplitude, amplitude]
// from a fixed seed.
func DeterministicCoeffs(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DeterministicFactors returns rows coordinate rows of cols values each,
// the shape consumed by blade construction.
func DeterministicFactors(seed int64, rows, cols int) [][]float64 {
	out := make([][]float64, rows)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = make([]float64, cols)
		for j := range out[i] {
			out[i][j] = rng.Float64()*2 - 1
		}
	}
	return out
}

// UnitRow returns a row of length n with a single 1 at pos.
func UnitRow(n, pos int) []float64 {
	out := make([]float64, n)
	if pos >= 0 && pos < n {
		out[pos] = 1
	}
	return out
}
