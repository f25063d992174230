// Package model provides the geometric algebra models exercised by the
// benchmark suite: conformal, Euclidean, homogeneous and Minkowski algebras
// of small Euclidean dimension.
//
// Each supported kind/dimension pair is registered once in the [Global]
// registry under its library name (c2ga, e3ga, h4ga, ...). Models are built
// on first lookup and then shared, so basis elements behave like
// process-wide constants of the selected configuration.
package model

import (
	"fmt"
	"strconv"

	"github.com/laffernandes/ga-benchmark/algebra"
)

// Model is one geometric algebra model of a Euclidean space R^D.
type Model struct {
	name string
	kind Kind
	d    int
	alg  *algebra.Algebra
}

func newModel(kind Kind, d int) (*Model, error) {
	if !kind.Supports(d) {
		return nil, unsupported(kind, d)
	}

	names := make([]string, d, d+2)
	for i := range names {
		names[i] = "e" + strconv.Itoa(i+1)
	}
	sig := algebra.Euclidean(d)

	switch kind {
	case KindHomogeneous:
		names = append(names, "e0")
		sig = append(sig, 1)
	case KindMinkowski, KindConformal:
		names = append(names, "ep", "em")
		sig = append(sig, 1, -1)
	}

	name := LibraryName(kind, d)
	alg, err := algebra.New(name, sig, names)
	if err != nil {
		return nil, fmt.Errorf("model: building %s: %w", name, err)
	}

	return &Model{name: name, kind: kind, d: d, alg: alg}, nil
}

// LibraryName returns the name of the model library, e.g. "c3ga".
func LibraryName(kind Kind, d int) string {
	return kind.prefix() + strconv.Itoa(d) + "ga"
}

// Name returns the library name of the model.
func (m *Model) Name() string { return m.name }

// Kind returns the model family.
func (m *Model) Kind() Kind { return m.kind }

// D returns the dimension of the modeled Euclidean space.
func (m *Model) D() int { return m.d }

// N returns the number of basis vectors of the underlying algebra.
func (m *Model) N() int { return m.alg.Dim() }

// Algebra returns the underlying algebra.
func (m *Model) Algebra() *algebra.Algebra { return m.alg }

// BasisNames returns the names accepted by Basis and Component.
func (m *Model) BasisNames() []string {
	names := m.alg.BasisNames()
	if m.kind == KindConformal {
		names = append(names, "eo", "ei")
	}
	return names
}

// E returns the i-th Euclidean basis vector, 1-based as in e1, e2, ...
func (m *Model) E(i int) (algebra.Multivector, error) {
	if i < 1 || i > m.d {
		return algebra.Multivector{}, fmt.Errorf("%w: e%d in %s", ErrUnknownBasis, i, m.name)
	}
	return m.alg.BasisVector(i - 1)
}

// Basis returns the named grade-1 basis element. The conformal model also
// accepts the null vectors "eo" (origin) and "ei" (infinity).
func (m *Model) Basis(name string) (algebra.Multivector, error) {
	if i, ok := m.alg.BasisIndex(name); ok {
		return m.alg.BasisVector(i)
	}

	if m.kind == KindConformal {
		ep := m.alg.BasisBlade(m.bladeOf("ep"))
		em := m.alg.BasisBlade(m.bladeOf("em"))
		switch name {
		case "eo":
			return em.Sub(ep).Scale(0.5), nil
		case "ei":
			return em.Add(ep), nil
		}
	}

	return algebra.Multivector{}, fmt.Errorf("%w: %q in %s", ErrUnknownBasis, name, m.name)
}

// Component returns the grade-1 coefficient of v along the named basis
// element. For "eo" and "ei" the coefficient is taken in the null basis
// {e1..eD, eo, ei}.
func (m *Model) Component(v algebra.Multivector, name string) (float64, error) {
	if _, ok := m.alg.BasisIndex(name); ok {
		return v.Coeff(m.bladeOf(name)), nil
	}

	if m.kind == KindConformal {
		p := v.Coeff(m.bladeOf("ep"))
		n := v.Coeff(m.bladeOf("em"))
		switch name {
		case "eo":
			return n - p, nil
		case "ei":
			return 0.5 * (n + p), nil
		}
	}

	return 0, fmt.Errorf("%w: %q in %s", ErrUnknownBasis, name, m.name)
}

func (m *Model) bladeOf(name string) algebra.Blade {
	i, ok := m.alg.BasisIndex(name)
	if !ok {
		panic("model: missing basis " + name + " in " + m.name)
	}
	return algebra.Blade(1) << i
}

// EuclideanVector returns the grade-1 multivector x1*e1 + ... + xD*eD.
func (m *Model) EuclideanVector(coords ...float64) (algebra.Multivector, error) {
	if err := validateCoords(m, coords); err != nil {
		return algebra.Multivector{}, err
	}
	return m.alg.Vector(coords...)
}

// Point returns the conformal embedding of a Euclidean point:
// x + ½|x|² ei + eo. It is only defined for the conformal model.
func (m *Model) Point(coords ...float64) (algebra.Multivector, error) {
	if m.kind != KindConformal {
		return algebra.Multivector{}, fmt.Errorf("%w: %s", ErrPointUnsupported, m.name)
	}

	x, err := m.EuclideanVector(coords...)
	if err != nil {
		return algebra.Multivector{}, err
	}

	ei, _ := m.Basis("ei")
	eo, _ := m.Basis("eo")

	return x.Add(ei.Scale(0.5 * x.Norm2())).Add(eo), nil
}

// String implements fmt.Stringer.
func (m *Model) String() string {
	return fmt.Sprintf("%s (%v, D=%d, N=%d)", m.name, m.kind, m.d, m.N())
}
