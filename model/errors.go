package model

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownKind reports a model kind that cannot be parsed.
	ErrUnknownKind = errors.New("model: unknown model kind")

	// ErrUnsupported reports a model kind/dimension pair with no algebra.
	ErrUnsupported = errors.New("model: unsupported model/dimension combination")

	// ErrPointUnsupported reports Point on a model without a point embedding.
	ErrPointUnsupported = errors.New("model: points are only defined in the conformal model")

	// ErrCoordinateCount reports a coordinate list that does not match D.
	ErrCoordinateCount = errors.New("model: wrong number of coordinates")

	// ErrUnknownBasis reports a basis name not present in the model.
	ErrUnknownBasis = errors.New("model: unknown basis element")
)

func unsupported(kind Kind, d int) error {
	lo, hi, ok := kind.DimensionRange()
	if !ok {
		return fmt.Errorf("%w: %v D=%d", ErrUnsupported, kind, d)
	}
	return fmt.Errorf("%w: %v D=%d (supported %d..%d)", ErrUnsupported, kind, d, lo, hi)
}

func validateCoords(m *Model, coords []float64) error {
	if len(coords) != m.d {
		return fmt.Errorf("%w: %s takes %d, got %d", ErrCoordinateCount, m.name, m.d, len(coords))
	}
	return nil
}
