package gabm

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexRange is matched by every *IndexRangeError.
	ErrIndexRange = errors.New("gabm: index out of range")

	// ErrInvalidConfig reports a configuration that selects no model.
	ErrInvalidConfig = errors.New("gabm: invalid configuration")

	// ErrNotRotationPlane reports a rotor plane that is not a bivector with
	// negative square.
	ErrNotRotationPlane = errors.New("gabm: plane is not a bivector with negative square")

	// ErrNotQuaternionAlgebra reports a quaternion conversion outside e3ga.
	ErrNotQuaternionAlgebra = errors.New("gabm: quaternions require the 3D Euclidean model")
)

// IndexRangeError reports an access outside a factor list, coordinate row
// or grade range.
type IndexRangeError struct {
	What  string
	Index int
	Len   int
}

func (e *IndexRangeError) Error() string {
	return fmt.Sprintf("gabm: %s index %d out of range [0,%d)", e.What, e.Index, e.Len)
}

// Is reports whether target is ErrIndexRange.
func (e *IndexRangeError) Is(target error) bool {
	return target == ErrIndexRange
}
