// Package algebra implements real geometric (Clifford) algebras over a
// diagonal metric.
//
// An [Algebra] is defined by the squares of its basis vectors. Multivectors
// store one coefficient per basis blade, indexed by the blade bitmask, so an
// algebra of n basis vectors has 2^n coefficients. Product tables are built
// lazily on first use and shared by every multivector of the algebra.
//
// # Product kinds
//
// All binary products share one kernel: for every non-zero coefficient of
// the left operand the right operand is multiplied by a precomputed sign row
// and scattered into the blade given by the XOR of the two bitmasks. The
// sign rows differ per product:
//
//   - geometric: reordering sign times the metric of shared basis vectors
//   - outer: reordering sign when the blades share no basis vector, else 0
//   - left contraction: geometric sign when the left blade is a subset of the
//     right one, else 0
//   - scalar: geometric sign on the diagonal only
//
// Reverse, grade involution and Clifford conjugation are per-blade signs.
package algebra
