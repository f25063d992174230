package algebra

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// MaxDimensions is the largest number of basis vectors supported.
const MaxDimensions = 6

// Signature lists the square of each basis vector (+1, -1 or 0).
type Signature []float64

// Euclidean returns the all-positive signature of n basis vectors.
func Euclidean(n int) Signature {
	sig := make(Signature, n)
	for i := range sig {
		sig[i] = 1
	}
	return sig
}

// Algebra is an immutable geometric algebra description plus its lazily
// built product tables. It is safe for concurrent use.
type Algebra struct {
	name  string
	sig   Signature
	names []string
	size  int

	tablesOnce sync.Once
	tables     *tables
}

// tables holds sign rows per product kind. For operands with blades a and b
// the result blade is always a^b; a zero sign means the term vanishes.
type tables struct {
	geometric [][]float64
	outer     [][]float64
	leftCon   [][]float64
	scalar    [][]float64

	reverse   []float64
	involute  []float64
	conjugate []float64
	grade     []int
}

// New returns an algebra with the given signature. names optionally labels
// the basis vectors; nil selects e1, e2, ...
func New(name string, sig Signature, names []string) (*Algebra, error) {
	if err := validateSignature(sig); err != nil {
		return nil, err
	}
	if err := validateNames(names, len(sig)); err != nil {
		return nil, err
	}

	if names == nil {
		names = make([]string, len(sig))
		for i := range names {
			names[i] = "e" + strconv.Itoa(i+1)
		}
	}

	return &Algebra{
		name:  name,
		sig:   append(Signature(nil), sig...),
		names: append([]string(nil), names...),
		size:  1 << len(sig),
	}, nil
}

// MustNew is like New but panics on error.
func MustNew(name string, sig Signature, names []string) *Algebra {
	a, err := New(name, sig, names)
	if err != nil {
		panic(err)
	}
	return a
}

// Name returns the algebra label.
func (a *Algebra) Name() string { return a.name }

// Dim returns the number of basis vectors.
func (a *Algebra) Dim() int { return len(a.sig) }

// Size returns the number of basis blades, 2^Dim().
func (a *Algebra) Size() int { return a.size }

// Signature returns a copy of the metric signature.
func (a *Algebra) Signature() Signature {
	return append(Signature(nil), a.sig...)
}

// BasisNames returns a copy of the basis vector names.
func (a *Algebra) BasisNames() []string {
	return append([]string(nil), a.names...)
}

// BasisIndex returns the index of the basis vector with the given name.
func (a *Algebra) BasisIndex(name string) (int, bool) {
	for i, n := range a.names {
		if n == name {
			return i, true
		}
	}
	return 0, false
}

// BladeName renders b as its wedge of basis names, "1" for the scalar blade.
func (a *Algebra) BladeName(b Blade) string {
	if b == ScalarBlade {
		return "1"
	}
	parts := make([]string, 0, b.Grade())
	for i := range a.names {
		if b&(1<<i) != 0 {
			parts = append(parts, a.names[i])
		}
	}
	return strings.Join(parts, "^")
}

// String implements fmt.Stringer.
func (a *Algebra) String() string {
	return fmt.Sprintf("%s(%s)", a.name, strings.Join(a.names, ","))
}

func (a *Algebra) getTables() *tables {
	a.tablesOnce.Do(func() {
		a.tables = buildTables(a.sig)
	})
	return a.tables
}

func buildTables(sig Signature) *tables {
	size := 1 << len(sig)
	t := &tables{
		geometric: make([][]float64, size),
		outer:     make([][]float64, size),
		leftCon:   make([][]float64, size),
		scalar:    make([][]float64, size),
		reverse:   make([]float64, size),
		involute:  make([]float64, size),
		conjugate: make([]float64, size),
		grade:     make([]int, size),
	}

	for i := 0; i < size; i++ {
		bi := Blade(i)
		t.geometric[i] = make([]float64, size)
		t.outer[i] = make([]float64, size)
		t.leftCon[i] = make([]float64, size)
		t.scalar[i] = make([]float64, size)

		for j := 0; j < size; j++ {
			bj := Blade(j)
			s := reorderingSign(bi, bj)
			common := bi & bj
			for k := range sig {
				if common&(1<<k) != 0 {
					s *= sig[k]
				}
			}

			t.geometric[i][j] = s
			if common == 0 {
				t.outer[i][j] = reorderingSign(bi, bj)
			}
			if bj.Contains(bi) {
				t.leftCon[i][j] = s
			}
			if i == j {
				t.scalar[i][j] = s
			}
		}

		k := bi.Grade()
		t.grade[i] = k
		t.reverse[i] = reverseSign(k)
		t.involute[i] = involutionSign(k)
		t.conjugate[i] = reverseSign(k) * involutionSign(k)
	}

	return t
}
