package gabm

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"

	"github.com/laffernandes/ga-benchmark/algebra"
	"github.com/laffernandes/ga-benchmark/model"
)

const simpleTolerance = 1e-12

// Rotor returns cos(angle/2) - sin(angle/2)*B, where B is plane scaled to
// unit magnitude. Applied with ApplyRotor it rotates by angle within plane,
// turning the first factor of plane towards the second. plane must be a
// simple bivector with a negative square, otherwise ErrNotRotationPlane is
// returned.
func Rotor(angle Real, plane algebra.Multivector) (algebra.Multivector, error) {
	if g := plane.Grades(); len(g) != 1 || g[0] != 2 {
		return algebra.Multivector{}, fmt.Errorf("%w: grades %v", ErrNotRotationPlane, g)
	}

	square := plane.Mul(plane)
	sq := square.ScalarPart()
	if !(sq < 0) {
		return algebra.Multivector{}, fmt.Errorf("%w: square %v", ErrNotRotationPlane, sq)
	}

	// A non-simple bivector squares to a scalar plus a grade-4 part and
	// does not yield a unit rotor.
	if !square.Sub(square.Grade(0)).IsZero(simpleTolerance * -sq) {
		return algebra.Multivector{}, fmt.Errorf("%w: %v is not a simple bivector", ErrNotRotationPlane, plane)
	}

	unit := plane.Scale(1 / math.Sqrt(-sq))
	s, c := math.Sincos(angle / 2)
	return plane.Algebra().Scalar(c).Sub(unit.Scale(s)), nil
}

// RotorMatrix returns the matrix of v -> rotor*v*~rotor on grade-1
// multivectors, in basis order.
func RotorMatrix(rotor algebra.Multivector) *mat.Dense {
	return rotor.Algebra().LinearMap(func(v algebra.Multivector) algebra.Multivector {
		return ApplyRotor(rotor, v)
	})
}

// Blades of e3ga used by the quaternion mapping R = w - x e23 - y e31 - z e12.
const (
	bladeE12 algebra.Blade = 0b011
	bladeE13 algebra.Blade = 0b101
	bladeE23 algebra.Blade = 0b110
)

func requireE3(alg *algebra.Algebra) error {
	if alg.Dim() != 3 {
		return fmt.Errorf("%w: %v", ErrNotQuaternionAlgebra, alg)
	}
	for _, s := range alg.Signature() {
		if s != 1 {
			return fmt.Errorf("%w: %v", ErrNotQuaternionAlgebra, alg)
		}
	}
	return nil
}

// RotorFromQuat converts a quaternion into the equivalent rotor of the 3D
// Euclidean model m. Unit quaternions map to unit rotors and rotate vectors
// the same way.
func RotorFromQuat(m *model.Model, q quat.Number) (algebra.Multivector, error) {
	if m.Kind() != model.KindEuclidean {
		return algebra.Multivector{}, fmt.Errorf("%w: %s", ErrNotQuaternionAlgebra, m.Name())
	}
	alg := m.Algebra()
	if err := requireE3(alg); err != nil {
		return algebra.Multivector{}, err
	}

	c := make([]float64, alg.Size())
	c[algebra.ScalarBlade] = q.Real
	c[bladeE23] = -q.Imag
	c[bladeE13] = q.Jmag // e31 = -e13
	c[bladeE12] = -q.Kmag
	return alg.FromCoeffs(c)
}

// QuatFromRotor is the inverse of RotorFromQuat. Components of r outside
// the even subalgebra are ignored.
func QuatFromRotor(r algebra.Multivector) (quat.Number, error) {
	if err := requireE3(r.Algebra()); err != nil {
		return quat.Number{}, err
	}
	return quat.Number{
		Real: r.ScalarPart(),
		Imag: -r.Coeff(bladeE23),
		Jmag: r.Coeff(bladeE13),
		Kmag: -r.Coeff(bladeE12),
	}, nil
}
