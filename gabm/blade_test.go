package gabm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/laffernandes/ga-benchmark/algebra"
	"github.com/laffernandes/ga-benchmark/internal/testutil"
	"github.com/laffernandes/ga-benchmark/model"
)

const eps = 1e-12

func allModels(t testing.TB) []*model.Model {
	t.Helper()
	var out []*model.Model
	for _, e := range model.Global.ListEntries() {
		m, err := model.Lookup(e.Kind, e.D)
		if err != nil {
			t.Fatalf("Lookup(%s): %v", e.Name, err)
		}
		out = append(out, m)
	}
	return out
}

func mustBlade(t *testing.T, m *model.Model, scalar Real, factors FactorsList, grade int) algebra.Multivector {
	t.Helper()
	b, err := MakeBlade(m, scalar, factors, grade)
	if err != nil {
		t.Fatalf("MakeBlade(%s, grade %d): %v", m.Name(), grade, err)
	}
	return b
}

func swapRows(f FactorsList, i, j int) FactorsList {
	out := make(FactorsList, len(f))
	copy(out, f)
	out[i], out[j] = out[j], out[i]
	return out
}

func TestMakeBladeScalarIdentity(t *testing.T) {
	for _, m := range allModels(t) {
		for _, s := range []Real{0, 1, -2.5, 1e10} {
			b := mustBlade(t, m, s, nil, 0)
			if !b.ApproxEqual(m.Algebra().Scalar(s), 0) {
				t.Fatalf("%s: MakeBlade(%v, nil, 0) = %v", m.Name(), s, b)
			}
		}
	}
}

func TestMakeBladeGradeAndAntisymmetry(t *testing.T) {
	for _, m := range allModels(t) {
		n := m.N()
		factors := FactorsList(testutil.DeterministicFactors(int64(n), n, n))

		for g := 1; g <= n; g++ {
			t.Run(fmt.Sprintf("%s/Grade=%d", m.Name(), g), func(t *testing.T) {
				b := mustBlade(t, m, 1, factors, g)
				if grades := b.Grades(); len(grades) != 1 || grades[0] != g {
					t.Fatalf("grades = %v, want [%d]", grades, g)
				}

				for i := 0; i < g; i++ {
					for j := i + 1; j < g; j++ {
						swapped := mustBlade(t, m, 1, swapRows(factors, i, j), g)
						if !swapped.ApproxEqual(b.Neg(), 1e-9) {
							t.Fatalf("swap(%d,%d): %v, want %v", i, j, swapped, b.Neg())
						}

						repeated := swapRows(factors, i, j)
						repeated[j] = repeated[i]
						if z := mustBlade(t, m, 1, repeated, g); !z.IsZero(1e-12) {
							t.Fatalf("repeated row %d: %v, want 0", i, z)
						}
					}
				}
			})
		}
	}
}

func TestMakeBladeScalesLinearly(t *testing.T) {
	m, _ := model.Lookup(model.KindEuclidean, 4)
	factors := FactorsList(testutil.DeterministicFactors(3, 4, 4))

	unit := mustBlade(t, m, 1, factors, 3)
	scaled := mustBlade(t, m, -3, factors, 3)
	if !scaled.ApproxEqual(unit.Scale(-3), 1e-12) {
		t.Fatalf("MakeBlade(-3) = %v, want %v", scaled, unit.Scale(-3))
	}
}

func TestMakeBladeOfBasisRows(t *testing.T) {
	m, _ := model.Lookup(model.KindEuclidean, 3)
	factors := FactorsList{
		testutil.UnitRow(3, 0),
		testutil.UnitRow(3, 1),
		testutil.UnitRow(3, 2),
	}

	b := mustBlade(t, m, 2, factors, 3)
	want := m.Algebra().Pseudoscalar().Scale(2)
	if !b.ApproxEqual(want, 0) {
		t.Fatalf("MakeBlade = %v, want %v", b, want)
	}
}

func TestMakeBladeUsesLeadingCoordinates(t *testing.T) {
	m, _ := model.Lookup(model.KindEuclidean, 2)
	factors := FactorsList{{1, 0, 99}, {0, 1, 99}}

	b := mustBlade(t, m, 1, factors, 2)
	if b.Coeff(0b11) != 1 {
		t.Fatalf("MakeBlade = %v, want e1^e2", b)
	}
}

func TestMakeBladeRangeErrors(t *testing.T) {
	m, _ := model.Lookup(model.KindEuclidean, 3)
	factors := FactorsList{{1, 2, 3}, {4, 5}}

	tests := []struct {
		name  string
		grade int
		what  string
	}{
		{name: "negative-grade", grade: -1, what: "grade"},
		{name: "grade-exceeds-factors", grade: 3, what: "factor"},
		{name: "short-row", grade: 2, what: "coordinate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MakeBlade(m, 1, factors, tt.grade)
			if !errors.Is(err, ErrIndexRange) {
				t.Fatalf("err = %v, want ErrIndexRange", err)
			}
			var rangeErr *IndexRangeError
			if !errors.As(err, &rangeErr) || rangeErr.What != tt.what {
				t.Fatalf("err = %#v, want %s range error", err, tt.what)
			}
		})
	}
}

func TestSquaredReverseNormEuclidean(t *testing.T) {
	m, _ := model.Lookup(model.KindEuclidean, 2)

	for _, xy := range [][2]Real{{3, 4}, {-1.5, 0.25}, {0, 0}} {
		v, err := EuclideanVector(m, xy[0], xy[1])
		if err != nil {
			t.Fatalf("EuclideanVector: %v", err)
		}
		want := xy[0]*xy[0] + xy[1]*xy[1]
		testutil.RequireNearlyEqual(t, "norm", SquaredReverseNorm(v, 1), want, eps)
	}
}

func TestSquaredReverseNormSignature(t *testing.T) {
	m, _ := model.Lookup(model.KindMinkowski, 2)
	em, _ := m.Basis("em")
	ep, _ := m.Basis("ep")

	testutil.RequireNearlyEqual(t, "em", SquaredReverseNorm(em, 1), -1, 0)
	testutil.RequireNearlyEqual(t, "ep", SquaredReverseNorm(ep, 1), 1, 0)

	// The reverse norm of a Euclidean blade is the squared area/volume.
	e3, _ := model.Lookup(model.KindEuclidean, 3)
	b := mustBlade(t, e3, 1, FactorsList{{2, 0, 0}, {0, 3, 0}}, 2)
	testutil.RequireNearlyEqual(t, "area2", SquaredReverseNorm(b, 2), 36, eps)
}

func TestPointForwarding(t *testing.T) {
	m, _ := model.Lookup(model.KindConformal, 2)
	x, y := 0.75, -3.0

	p, err := Point(m, x, y)
	if err != nil {
		t.Fatalf("Point: %v", err)
	}

	for name, want := range map[string]Real{"eo": 1, "ei": 0.5 * (x*x + y*y), "e1": x, "e2": y} {
		got, err := m.Component(p, name)
		if err != nil {
			t.Fatalf("Component(%s): %v", name, err)
		}
		testutil.RequireNearlyEqual(t, name, got, want, eps)
	}

	e2, _ := model.Lookup(model.KindEuclidean, 2)
	if _, err := Point(e2, x, y); !errors.Is(err, model.ErrPointUnsupported) {
		t.Fatalf("Point(e2ga) err = %v, want ErrPointUnsupported", err)
	}
}
