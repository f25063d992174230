package gabm

import (
	"github.com/laffernandes/ga-benchmark/algebra"
	"github.com/laffernandes/ga-benchmark/model"
)

// Adapter binds a Config to its model.
type Adapter struct {
	cfg   Config
	model *model.Model
	n     int
}

// New returns an adapter for the configuration built from opts.
func New(opts ...Option) (*Adapter, error) {
	return NewFromConfig(ApplyOptions(opts...))
}

// NewFromConfig returns an adapter for cfg.
func NewFromConfig(cfg Config) (*Adapter, error) {
	m, err := cfg.resolve()
	if err != nil {
		return nil, err
	}

	n := cfg.N
	if n == 0 {
		n = m.N()
	}
	return &Adapter{cfg: cfg, model: m, n: n}, nil
}

// Config returns the configuration the adapter was built from.
func (a *Adapter) Config() Config { return a.cfg }

// Model returns the selected model.
func (a *Adapter) Model() *model.Model { return a.model }

// N returns the number of coordinates read from each factor row.
func (a *Adapter) N() int { return a.n }

// MakeBlade returns scalar * (v0 ^ ... ^ v[grade-1]), reading N coordinates
// per factor row.
func (a *Adapter) MakeBlade(scalar Real, factors FactorsList, grade int) (algebra.Multivector, error) {
	return makeBlade(a.model.Algebra(), a.n, scalar, factors, grade)
}

// SquaredReverseNorm returns the scalar part of arg * ~arg.
func (a *Adapter) SquaredReverseNorm(arg algebra.Multivector, grade int) Real {
	return SquaredReverseNorm(arg, grade)
}

// EuclideanVector returns x1*e1 + ... + xD*eD.
func (a *Adapter) EuclideanVector(coords ...Real) (algebra.Multivector, error) {
	return a.model.EuclideanVector(coords...)
}

// Point returns the conformal point of coords.
func (a *Adapter) Point(coords ...Real) (algebra.Multivector, error) {
	return a.model.Point(coords...)
}

// ApplyRotor returns rotor * arg * ~rotor.
func (a *Adapter) ApplyRotor(rotor, arg algebra.Multivector) algebra.Multivector {
	return ApplyRotor(rotor, arg)
}
