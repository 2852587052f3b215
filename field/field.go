// Package field implements prime-field element arithmetic for the narrow
// widths used by a power-sum quACK: 16, 32 and 64 bits, plus an optional
// Montgomery-form representation of the 64-bit field.
//
// Every implementation shares the same Field contract so that the
// accumulator and decoder packages built on top never need to know which
// concrete width or representation they are working with.
package field

import "errors"

// Field is the arithmetic contract a power-sum accumulator is built on.
// Values are always passed and returned in the implementation's own
// internal representation: plain canonical form for Field16/Field32/Field64,
// Montgomery form for Montgomery64. Reduce/Export cross that boundary.
type Field interface {
	// Prime returns the field's modulus p.
	Prime() uint64

	// NarrowBits returns the bit width of the narrow wire type (16, 32 or 64),
	// used to size the serialized representation.
	NarrowBits() int

	// Reduce imports an arbitrary external narrow value into this field's
	// internal representation.
	Reduce(raw uint64) uint64

	// Export maps an internal representation value back to the canonical
	// [0,p) integer used for comparisons, decode output and serialization.
	Export(v uint64) uint64

	Add(a, b uint64) uint64
	Sub(a, b uint64) uint64
	Neg(a uint64) uint64
	Mul(a, b uint64) uint64
	Pow(base, exp uint64) uint64

	// Inverse returns a^-1. Behavior for a == 0 is undefined; callers must
	// not invoke it with a zero element.
	Inverse(a uint64) uint64
}

var (
	errPrimeTooLarge = errors.New("field: prime exceeds the width's bit budget")
	errNotPrime      = errors.New("field: modulus must be prime")
)
