package algebra

import "math/bits"

// Blade identifies a basis blade as a bitmask over basis vectors.
// Bit i set means the (i+1)-th basis vector is a factor. Factors are
// always taken in ascending index order.
type Blade uint32

// ScalarBlade is the grade-0 basis blade.
const ScalarBlade Blade = 0

// Grade returns the number of basis vectors in b.
func (b Blade) Grade() int {
	return bits.OnesCount32(uint32(b))
}

// Contains reports whether every factor of o is also a factor of b.
func (b Blade) Contains(o Blade) bool {
	return o&^b == 0
}

// reorderingSign returns the sign produced by moving the factors of b past
// the factors of a into canonical order when forming a*b.
func reorderingSign(a, b Blade) float64 {
	a >>= 1
	swaps := 0
	for a != 0 {
		swaps += bits.OnesCount32(uint32(a & b))
		a >>= 1
	}
	if swaps&1 == 0 {
		return 1
	}
	return -1
}

// reverseSign is (-1)^(k(k-1)/2) for a blade of grade k.
func reverseSign(k int) float64 {
	if (k*(k-1)/2)&1 == 0 {
		return 1
	}
	return -1
}

// involutionSign is (-1)^k.
func involutionSign(k int) float64 {
	if k&1 == 0 {
		return 1
	}
	return -1
}
