package gabm

import (
	"github.com/laffernandes/ga-benchmark/algebra"
	"github.com/laffernandes/ga-benchmark/model"
)

// Real is the scalar type of every coefficient.
type Real = float64

// FactorsList is an ordered list of coordinate rows, one per vector factor.
type FactorsList [][]Real

// MakeBlade returns scalar * (v0 ^ ... ^ v[grade-1]) in model m, where v_i
// takes the first m.N() coordinates of factors[i]. Grade 0 yields the scalar
// itself.
func MakeBlade(m *model.Model, scalar Real, factors FactorsList, grade int) (algebra.Multivector, error) {
	return makeBlade(m.Algebra(), m.N(), scalar, factors, grade)
}

func makeBlade(alg *algebra.Algebra, n int, scalar Real, factors FactorsList, grade int) (algebra.Multivector, error) {
	if grade < 0 {
		return algebra.Multivector{}, &IndexRangeError{What: "grade", Index: grade, Len: len(factors) + 1}
	}
	if grade > len(factors) {
		return algebra.Multivector{}, &IndexRangeError{What: "factor", Index: len(factors), Len: len(factors)}
	}

	blade := alg.Scalar(scalar)
	for i := 0; i < grade; i++ {
		row := factors[i]
		if len(row) < n {
			return algebra.Multivector{}, &IndexRangeError{What: "coordinate", Index: len(row), Len: len(row)}
		}
		v, err := alg.Vector(row[:n]...)
		if err != nil {
			return algebra.Multivector{}, err
		}
		blade = blade.Wedge(v)
	}
	return blade, nil
}

// SquaredReverseNorm returns the scalar part of arg * ~arg. The grade of arg
// is accepted for symmetry with the other benchmark operations and does not
// affect the result.
func SquaredReverseNorm(arg algebra.Multivector, grade int) Real {
	return arg.Mul(arg.Reverse()).ScalarPart()
}

// ApplyRotor returns rotor * arg * ~rotor. The rotor is not checked to be a
// unit versor.
func ApplyRotor(rotor, arg algebra.Multivector) algebra.Multivector {
	return rotor.Mul(arg).Mul(rotor.Reverse())
}

// EuclideanVector forwards to m.EuclideanVector.
func EuclideanVector(m *model.Model, coords ...Real) (algebra.Multivector, error) {
	return m.EuclideanVector(coords...)
}

// Point forwards to m.Point. Only the conformal model defines points.
func Point(m *model.Model, coords ...Real) (algebra.Multivector, error) {
	return m.Point(coords...)
}
