package field

import "math/big"

// DefaultPrime16 is the recommended 16-bit prime: the largest prime below 2^16.
const DefaultPrime16 = 65521

// Field16 implements Field for a 16-bit-width prime. All values are stored
// widened to uint64 but are always kept in [0, prime).
type Field16 struct {
	prime uint64
}

// NewField16 builds a Field over the given 16-bit-width prime. Primality is
// checked but not proven (matches the teacher's own NewPrimeField caveat).
func NewField16(prime uint16) (*Field16, error) {
	if prime == 0 {
		return nil, errNotPrime
	}

	b := new(big.Int).SetUint64(uint64(prime))
	if !b.ProbablyPrime(20) {
		return nil, errNotPrime
	}

	return &Field16{prime: uint64(prime)}, nil
}

func (f *Field16) Prime() uint64   { return f.prime }
func (f *Field16) NarrowBits() int { return 16 }

func (f *Field16) Reduce(raw uint64) uint64 { return raw % f.prime }
func (f *Field16) Export(v uint64) uint64   { return v }

// Add computes a+b in a uint64, subtracting p once if needed:
// inputs are < p < 2^16 so the sum is always < 2^17.
func (f *Field16) Add(a, b uint64) uint64 {
	tmp := a + b
	if tmp >= f.prime {
		tmp -= f.prime
	}

	return tmp
}

// Sub computes (p-b)+a, never going negative.
func (f *Field16) Sub(a, b uint64) uint64 {
	tmp := (f.prime - b) + a
	if tmp >= f.prime {
		tmp -= f.prime
	}

	return tmp
}

func (f *Field16) Neg(a uint64) uint64 {
	if a == 0 {
		return 0
	}

	return f.prime - a
}

func (f *Field16) Mul(a, b uint64) uint64 {
	return (a * b) % f.prime
}

// Pow is square-and-multiply, grounded in the teacher's PrimeField.Pow.
func (f *Field16) Pow(base, exp uint64) uint64 {
	base %= f.prime

	result := uint64(1)
	for exp > 0 {
		if exp&1 == 1 {
			result = f.Mul(result, base)
		}

		base = f.Mul(base, base)
		exp >>= 1
	}

	return result
}

// Inverse uses Fermat's little theorem: a^(p-2) == a^-1 (mod p).
func (f *Field16) Inverse(a uint64) uint64 {
	if a == 0 {
		panic("field: zero has no inverse")
	}

	return f.Pow(a, f.prime-2)
}
