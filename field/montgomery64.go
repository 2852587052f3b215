package field

import (
	"math/big"
	"math/bits"
)

// Montgomery64 is an alternate 64-bit Field implementation storing every
// element in Montgomery form a*R mod p with R = 2^64, trading the division
// in Mul for one multiply-and-add REDC step. The shape follows the
// mldsa-style fieldReduce/fieldMul pair (KarpelesLab-mldsa's field.go),
// scaled from a 32-bit word to a 64-bit word with a genuine 128-bit
// intermediate product via math/bits.
type Montgomery64 struct {
	prime  uint64
	pPrime uint64 // p' = -p^-1 mod 2^64
	rModP  uint64 // R mod p, i.e. Montgomery form of 1
	r2ModP uint64 // R^2 mod p, used to convert a plain value into Montgomery form
}

// NewMontgomery64 builds the Montgomery-form counterpart of Field64 over the
// same prime. The prime must be odd (required for R=2^64 to be invertible
// mod p) in addition to being prime.
func NewMontgomery64(prime uint64) (*Montgomery64, error) {
	if prime == 0 || prime%2 == 0 {
		return nil, errNotPrime
	}

	bp := new(big.Int).SetUint64(prime)
	if !bp.ProbablyPrime(20) {
		return nil, errNotPrime
	}

	r := new(big.Int).Lsh(big.NewInt(1), 64)

	pInv := new(big.Int).ModInverse(bp, r)
	if pInv == nil {
		return nil, errNotPrime
	}

	pPrime := new(big.Int).Sub(r, pInv)
	pPrime.Mod(pPrime, r)

	rModP := new(big.Int).Mod(r, bp)

	r2 := new(big.Int).Mul(r, r)
	r2ModP := new(big.Int).Mod(r2, bp)

	return &Montgomery64{
		prime:  prime,
		pPrime: pPrime.Uint64(),
		rModP:  rModP.Uint64(),
		r2ModP: r2ModP.Uint64(),
	}, nil
}

func (f *Montgomery64) Prime() uint64   { return f.prime }
func (f *Montgomery64) NarrowBits() int { return 64 }

// Reduce performs the "do-conversion" of an external plain value into
// Montgomery form: raw*R mod p, computed as REDC(raw * R^2).
func (f *Montgomery64) Reduce(raw uint64) uint64 {
	raw %= f.prime
	hi, lo := bits.Mul64(raw, f.r2ModP)

	return f.redc(hi, lo)
}

// Export converts a Montgomery-form value back to its plain [0,p) integer:
// REDC(v, 0) == v * R^-1 mod p.
func (f *Montgomery64) Export(v uint64) uint64 {
	return f.redc(0, v)
}

// Add/Sub/Neg are identical in shape to the plain field: (aR)±(bR) = (a±b)R,
// so Montgomery form needs no special casing for additive operations.
func (f *Montgomery64) Add(a, b uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	if carry == 0 {
		if sum >= f.prime {
			sum -= f.prime
		}

		return sum
	}

	_, rem := bits.Div64(carry, sum, f.prime)
	return rem
}

func (f *Montgomery64) Sub(a, b uint64) uint64 {
	tmp, carry := bits.Add64(f.prime-b, a, 0)
	if carry == 0 {
		if tmp >= f.prime {
			tmp -= f.prime
		}

		return tmp
	}

	_, rem := bits.Div64(carry, tmp, f.prime)
	return rem
}

func (f *Montgomery64) Neg(a uint64) uint64 {
	if a == 0 {
		return 0
	}

	return f.prime - a
}

// Mul performs one 128-bit multiplication followed by a REDC reduction.
func (f *Montgomery64) Mul(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return f.redc(hi, lo)
}

// redc implements the REDC algorithm: given T = hi*2^64 + lo (T < p*R),
// returns T*R^-1 mod p.
func (f *Montgomery64) redc(hi, lo uint64) uint64 {
	m := lo * f.pPrime // low 64 bits of lo * p', mod 2^64

	mpHi, mpLo := bits.Mul64(m, f.prime)

	_, carry := bits.Add64(lo, mpLo, 0)
	sumHi, carry2 := bits.Add64(hi, mpHi, carry)

	if carry2 != 0 {
		// T + m*p overflowed past 128 bits: the true high half is
		// sumHi + 2^64, which reduces to sumHi - p (mod 2^64, exact since
		// the true value is < 2p).
		return sumHi + (^f.prime + 1)
	}

	t := sumHi
	if t >= f.prime {
		t -= f.prime
	}

	return t
}

// Pow is square-and-multiply initialized at R mod p (Montgomery form of 1)
// instead of 1, so the ladder stays in Montgomery form throughout.
func (f *Montgomery64) Pow(base, exp uint64) uint64 {
	result := f.rModP
	for exp > 0 {
		if exp&1 == 1 {
			result = f.Mul(result, base)
		}

		base = f.Mul(base, base)
		exp >>= 1
	}

	return result
}

// Inverse uses Fermat's little theorem. Because Pow already carries the
// Montgomery scaling correctly through every REDC-multiply step (each
// REDC divides by R, and the ladder starts from R mod p = Mont(1)),
// Pow(a, p-2) already yields Mont(a^-1) with no further adjustment needed.
func (f *Montgomery64) Inverse(a uint64) uint64 {
	if a == 0 {
		panic("field: zero has no inverse")
	}

	return f.Pow(a, f.prime-2)
}
