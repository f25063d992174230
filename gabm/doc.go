// Package gabm is the uniform front-end the benchmark suite uses to drive
// every geometric algebra model.
//
// The selected model plays the role of the library under test; the
// functions here only build inputs and forward to it:
//
//	MakeBlade           scalar * (v0 ^ v1 ^ ... ^ v[grade-1])
//	SquaredReverseNorm  <arg * ~arg>_0
//	EuclideanVector     x1*e1 + ... + xD*eD
//	Point               x + ½|x|² ei + eo        (conformal only)
//	ApplyRotor          rotor * arg * ~rotor
//
// A model is selected at run time from a [Config] (model kind, dimension and
// embedding dimension), the counterpart of the GABM_* build settings.
// [Adapter] binds a configuration to its model and exposes the operations as
// methods.
package gabm
