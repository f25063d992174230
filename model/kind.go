package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies a family of geometric algebra models. The numeric values
// match the Model=<hex> field of benchmark names.
type Kind int

const (
	KindUnknown Kind = iota
	KindConformal
	KindEuclidean
	KindHomogeneous
	KindMinkowski
)

// Kinds lists the known model kinds in benchmark order.
var Kinds = []Kind{KindConformal, KindEuclidean, KindHomogeneous, KindMinkowski}

// String returns the model name used by the benchmark suite.
func (k Kind) String() string {
	switch k {
	case KindConformal:
		return "ConformalModel"
	case KindEuclidean:
		return "EuclideanModel"
	case KindHomogeneous:
		return "HomogeneousModel"
	case KindMinkowski:
		return "MinkowskiModel"
	default:
		return "Unknown"
	}
}

// prefix is the library name prefix, as in c3ga or e4ga.
func (k Kind) prefix() string {
	switch k {
	case KindConformal:
		return "c"
	case KindEuclidean:
		return "e"
	case KindHomogeneous:
		return "h"
	case KindMinkowski:
		return "m"
	default:
		return "?"
	}
}

// DimensionRange returns the inclusive range of supported Euclidean
// dimensions for k. ok is false for unknown kinds.
func (k Kind) DimensionRange() (lo, hi int, ok bool) {
	switch k {
	case KindConformal:
		return 2, 3, true
	case KindEuclidean:
		return 2, 5, true
	case KindHomogeneous:
		return 2, 4, true
	case KindMinkowski:
		return 2, 3, true
	default:
		return 0, 0, false
	}
}

// Supports reports whether the model kind is available in dimension d.
func (k Kind) Supports(d int) bool {
	lo, hi, ok := k.DimensionRange()
	return ok && d >= lo && d <= hi
}

// ParseKind accepts "ConformalModel", "conformal" (any case) or the numeric
// benchmark code ("1".."4", optionally "0x"-prefixed).
func ParseKind(s string) (Kind, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	t = strings.TrimSuffix(t, "model")

	for _, k := range Kinds {
		if t == strings.ToLower(strings.TrimSuffix(k.String(), "Model")) {
			return k, nil
		}
	}

	if n, err := strconv.ParseInt(strings.TrimPrefix(t, "0x"), 16, 0); err == nil {
		k := Kind(n)
		if _, _, ok := k.DimensionRange(); ok {
			return k, nil
		}
	}

	return KindUnknown, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}
