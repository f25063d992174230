package algebra

import (
	"errors"
	"fmt"
)

var (
	// ErrDimension reports a signature outside 1..MaxDimensions basis vectors.
	ErrDimension = errors.New("algebra: unsupported dimension")

	// ErrBasisIndex reports a basis vector index outside the algebra.
	ErrBasisIndex = errors.New("algebra: basis index out of range")

	// ErrNotInvertible reports a multivector whose reverse norm is zero.
	ErrNotInvertible = errors.New("algebra: multivector is not invertible")
)

func validateSignature(sig Signature) error {
	if len(sig) == 0 || len(sig) > MaxDimensions {
		return fmt.Errorf("%w: %d basis vectors (want 1..%d)", ErrDimension, len(sig), MaxDimensions)
	}
	for i, s := range sig {
		if s != 1 && s != -1 && s != 0 {
			return fmt.Errorf("algebra: basis vector %d squares to %v (want -1, 0 or +1)", i+1, s)
		}
	}
	return nil
}

func validateNames(names []string, n int) error {
	if names == nil {
		return nil
	}
	if len(names) != n {
		return fmt.Errorf("algebra: %d basis names for %d basis vectors", len(names), n)
	}
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if name == "" {
			return errors.New("algebra: empty basis name")
		}
		if seen[name] {
			return fmt.Errorf("algebra: duplicate basis name %q", name)
		}
		seen[name] = true
	}
	return nil
}
