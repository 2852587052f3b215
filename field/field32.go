package field

import "math/big"

// DefaultPrime32 is the recommended 32-bit prime: the largest prime below 2^32.
const DefaultPrime32 = 4294967291

// Field32 implements Field for a 32-bit-width prime, widening to uint64 for
// the intermediate multiply.
type Field32 struct {
	prime uint64
}

func NewField32(prime uint32) (*Field32, error) {
	if prime == 0 {
		return nil, errNotPrime
	}

	b := new(big.Int).SetUint64(uint64(prime))
	if !b.ProbablyPrime(20) {
		return nil, errNotPrime
	}

	return &Field32{prime: uint64(prime)}, nil
}

func (f *Field32) Prime() uint64   { return f.prime }
func (f *Field32) NarrowBits() int { return 32 }

func (f *Field32) Reduce(raw uint64) uint64 { return raw % f.prime }
func (f *Field32) Export(v uint64) uint64   { return v }

// Add: inputs < p < 2^32, so the sum fits comfortably in uint64 with a
// single conditional subtraction.
func (f *Field32) Add(a, b uint64) uint64 {
	tmp := a + b
	if tmp >= f.prime {
		tmp -= f.prime
	}

	return tmp
}

func (f *Field32) Sub(a, b uint64) uint64 {
	tmp := (f.prime - b) + a
	if tmp >= f.prime {
		tmp -= f.prime
	}

	return tmp
}

func (f *Field32) Neg(a uint64) uint64 {
	if a == 0 {
		return 0
	}

	return f.prime - a
}

// Mul multiplies in uint64 (product < 2^64 since both factors < 2^32) and
// reduces with a single %.
func (f *Field32) Mul(a, b uint64) uint64 {
	return (a * b) % f.prime
}

func (f *Field32) Pow(base, exp uint64) uint64 {
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

func (f *Field32) Inverse(a uint64) uint64 {
	if a == 0 {
		panic("field: zero has no inverse")
	}

	return f.Pow(a, f.prime-2)
}
