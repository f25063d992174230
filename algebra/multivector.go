package algebra

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// Multivector is an immutable element of an Algebra. The zero value is not
// usable; construct multivectors through the Algebra.
type Multivector struct {
	alg *Algebra
	c   []float64
}

// scratchBuf holds pooled scratch memory for product kernels.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) ([]float64, *scratchBuf) {
	buf := scratchPool.Get().(*scratchBuf)
	if cap(buf.data) < n {
		buf.data = make([]float64, n)
	}
	return buf.data[:n], buf
}

func (a *Algebra) wrap(c []float64) Multivector {
	return Multivector{alg: a, c: c}
}

// Zero returns the zero multivector.
func (a *Algebra) Zero() Multivector {
	return a.wrap(make([]float64, a.size))
}

// Scalar returns the grade-0 multivector s.
func (a *Algebra) Scalar(s float64) Multivector {
	c := make([]float64, a.size)
	c[ScalarBlade] = s
	return a.wrap(c)
}

// BasisVector returns the i-th basis vector (0-based).
func (a *Algebra) BasisVector(i int) (Multivector, error) {
	if i < 0 || i >= a.Dim() {
		return Multivector{}, fmt.Errorf("%w: %d (dimension %d)", ErrBasisIndex, i, a.Dim())
	}
	return a.BasisBlade(Blade(1) << i), nil
}

// BasisBlade returns the unit basis blade b. Panics if b is outside the algebra.
func (a *Algebra) BasisBlade(b Blade) Multivector {
	if int(b) >= a.size {
		panic(fmt.Sprintf("algebra: blade %b outside %s", b, a.name))
	}
	c := make([]float64, a.size)
	c[b] = 1
	return a.wrap(c)
}

// Vector returns the grade-1 multivector with the given coordinates on the
// basis vectors. Missing trailing coordinates are zero.
func (a *Algebra) Vector(coords ...float64) (Multivector, error) {
	if len(coords) > a.Dim() {
		return Multivector{}, fmt.Errorf("%w: %d coordinates (dimension %d)", ErrBasisIndex, len(coords), a.Dim())
	}
	c := make([]float64, a.size)
	for i, x := range coords {
		c[1<<i] = x
	}
	return a.wrap(c), nil
}

// Pseudoscalar returns the unit blade of highest grade.
func (a *Algebra) Pseudoscalar() Multivector {
	return a.BasisBlade(Blade(a.size - 1))
}

// FromCoeffs returns a multivector with a copy of coeffs, which must have
// Size() entries.
func (a *Algebra) FromCoeffs(coeffs []float64) (Multivector, error) {
	if len(coeffs) != a.size {
		return Multivector{}, fmt.Errorf("algebra: %d coefficients for %s (want %d)", len(coeffs), a.name, a.size)
	}
	return a.wrap(append([]float64(nil), coeffs...)), nil
}

// Algebra returns the algebra m belongs to.
func (m Multivector) Algebra() *Algebra { return m.alg }

// Coeff returns the coefficient of basis blade b.
func (m Multivector) Coeff(b Blade) float64 {
	if int(b) >= len(m.c) {
		return 0
	}
	return m.c[b]
}

// Coeffs returns a copy of all coefficients indexed by blade.
func (m Multivector) Coeffs() []float64 {
	return append([]float64(nil), m.c...)
}

// With returns a copy of m with the coefficient of b replaced by v. Panics
// if b is outside the algebra.
func (m Multivector) With(b Blade, v float64) Multivector {
	if int(b) >= len(m.c) {
		panic(fmt.Sprintf("algebra: blade %b outside %s", b, m.alg.name))
	}
	c := m.Coeffs()
	c[b] = v
	return m.alg.wrap(c)
}

// ScalarPart returns the grade-0 coefficient.
func (m Multivector) ScalarPart() float64 {
	return m.c[ScalarBlade]
}

func (m Multivector) mustMatch(o Multivector) {
	if m.alg != o.alg {
		panic(fmt.Sprintf("algebra: operands from different algebras (%v, %v)", m.alg, o.alg))
	}
}

// Add returns m + o.
func (m Multivector) Add(o Multivector) Multivector {
	m.mustMatch(o)
	return m.alg.wrap(floats.AddTo(make([]float64, len(m.c)), m.c, o.c))
}

// Sub returns m - o.
func (m Multivector) Sub(o Multivector) Multivector {
	m.mustMatch(o)
	return m.alg.wrap(floats.SubTo(make([]float64, len(m.c)), m.c, o.c))
}

// Scale returns s*m.
func (m Multivector) Scale(s float64) Multivector {
	return m.alg.wrap(floats.ScaleTo(make([]float64, len(m.c)), s, m.c))
}

// Neg returns -m.
func (m Multivector) Neg() Multivector {
	return m.Scale(-1)
}

// Mul returns the geometric product m*o.
func (m Multivector) Mul(o Multivector) Multivector {
	m.mustMatch(o)
	return m.alg.wrap(product(m.alg.getTables().geometric, m.c, o.c))
}

// Wedge returns the outer product m^o.
func (m Multivector) Wedge(o Multivector) Multivector {
	m.mustMatch(o)
	return m.alg.wrap(product(m.alg.getTables().outer, m.c, o.c))
}

// LeftContraction returns m⌋o.
func (m Multivector) LeftContraction(o Multivector) Multivector {
	m.mustMatch(o)
	return m.alg.wrap(product(m.alg.getTables().leftCon, m.c, o.c))
}

// ScalarProduct returns the scalar part of m*o.
func (m Multivector) ScalarProduct(o Multivector) float64 {
	m.mustMatch(o)
	return product(m.alg.getTables().scalar, m.c, o.c)[ScalarBlade]
}

// product accumulates x[i]*y[j]*signs[i][j] into blade i^j.
func product(signs [][]float64, x, y []float64) []float64 {
	out := make([]float64, len(x))
	tmp, buf := getScratch(len(y))
	defer scratchPool.Put(buf)

	for i, xi := range x {
		if xi == 0 {
			continue
		}
		vecmath.MulBlock(tmp, y, signs[i])
		for j, v := range tmp {
			if v != 0 {
				out[i^j] += xi * v
			}
		}
	}
	return out
}

func (m Multivector) unary(signs []float64) Multivector {
	c := m.Coeffs()
	vecmath.MulBlockInPlace(c, signs)
	return m.alg.wrap(c)
}

// Reverse returns the reversion of m (factor order reversed in each blade).
func (m Multivector) Reverse() Multivector {
	return m.unary(m.alg.getTables().reverse)
}

// Involute returns the grade involution of m.
func (m Multivector) Involute() Multivector {
	return m.unary(m.alg.getTables().involute)
}

// Conjugate returns the Clifford conjugate of m.
func (m Multivector) Conjugate() Multivector {
	return m.unary(m.alg.getTables().conjugate)
}

// Grade returns the grade-k part of m.
func (m Multivector) Grade(k int) Multivector {
	grades := m.alg.getTables().grade
	c := make([]float64, len(m.c))
	for b, v := range m.c {
		if grades[b] == k {
			c[b] = v
		}
	}
	return m.alg.wrap(c)
}

// Grades returns the grades with a non-zero coefficient, ascending.
func (m Multivector) Grades() []int {
	grades := m.alg.getTables().grade
	present := make([]bool, m.alg.Dim()+1)
	for b, v := range m.c {
		if v != 0 {
			present[grades[b]] = true
		}
	}
	var out []int
	for k, ok := range present {
		if ok {
			out = append(out, k)
		}
	}
	return out
}

// Norm2 returns the reverse norm, the scalar part of m*Reverse(m). Its sign
// depends on the metric.
func (m Multivector) Norm2() float64 {
	return m.ScalarProduct(m.Reverse())
}

// Inverse returns the versor inverse Reverse(m)/Norm2(m). The result is only
// a true inverse when m is a versor.
func (m Multivector) Inverse() (Multivector, error) {
	n := m.Norm2()
	if n == 0 || math.IsNaN(n) {
		return Multivector{}, ErrNotInvertible
	}
	return m.Reverse().Scale(1 / n), nil
}

// IsZero reports whether every coefficient is within eps of zero.
func (m Multivector) IsZero(eps float64) bool {
	for _, v := range m.c {
		if math.Abs(v) > eps {
			return false
		}
	}
	return true
}

// ApproxEqual reports whether m and o agree coefficient-wise within eps
// (absolute or relative).
func (m Multivector) ApproxEqual(o Multivector, eps float64) bool {
	if m.alg != o.alg {
		return false
	}
	return floats.EqualApprox(m.c, o.c, eps)
}

// String renders m as a sum of weighted basis blades.
func (m Multivector) String() string {
	if m.alg == nil {
		return "<nil>"
	}
	var sb strings.Builder
	for b, v := range m.c {
		if v == 0 {
			continue
		}
		if sb.Len() > 0 {
			if v < 0 {
				sb.WriteString(" - ")
				v = -v
			} else {
				sb.WriteString(" + ")
			}
		}
		sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		if b != int(ScalarBlade) {
			sb.WriteString("*")
			sb.WriteString(m.alg.BladeName(Blade(b)))
		}
	}
	if sb.Len() == 0 {
		return "0"
	}
	return sb.String()
}
