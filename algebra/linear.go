package algebra

import "gonum.org/v1/gonum/mat"

// LinearMap returns the Dim()×Dim() matrix of f restricted to grade-1
// multivectors: column j holds the vector coefficients of f(e_j). Components
// of f(e_j) outside grade 1 are dropped.
func (a *Algebra) LinearMap(f func(Multivector) Multivector) *mat.Dense {
	n := a.Dim()
	out := mat.NewDense(n, n, nil)
	for j := 0; j < n; j++ {
		img := f(a.BasisBlade(Blade(1) << j))
		for i := 0; i < n; i++ {
			out.Set(i, j, img.Coeff(Blade(1)<<i))
		}
	}
	return out
}

// VectorCoeffs returns the grade-1 coefficients of m in basis order.
func (m Multivector) VectorCoeffs() []float64 {
	n := m.alg.Dim()
	out := make([]float64, n)
	for i := range out {
		out[i] = m.c[1<<i]
	}
	return out
}
