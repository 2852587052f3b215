package quack

import "github.com/jonathanmweiss/quack/field"

// Eval evaluates the monic polynomial represented by coefficient vector c
// (as produced by ToPolynomialCoefficients: c[0] is the x^(t-1) term, c[t-1]
// the constant term, with an implicit leading x^t) at point x, via Horner's
// rule: start with r = x, for i in [0,t-1): r = (r + c[i]) * x; return
// r + c[t-1]. Uses the 16-bit PowerTable-accelerated path when available.
func Eval(f field.Field, c []uint64, x uint64) uint64 {
	if f16, ok := f.(*field.Field16); ok {
		if pt, err := field.GetPowerTable(f16, currentMaxPowerSumThreshold()); err == nil && len(c) <= pt.Tmax() {
			return evalTabled(f16, pt, c, x)
		}
	}

	return evalDirect(f, c, x)
}

func evalDirect(f field.Field, c []uint64, x uint64) uint64 {
	xr := f.Reduce(x)

	t := len(c)
	if t == 0 {
		return f.Reduce(0)
	}

	r := xr
	for i := 0; i < t-1; i++ {
		r = f.Mul(f.Add(r, c[i]), xr)
	}

	return f.Add(r, c[t-1])
}

// evalTabled computes P(x) = x^t + sum_i c[i]*x^(t-i-1) + c[t-1] using the
// PowerTable's precomputed powers of x and a single final reduction. Safe
// from overflow because every term and the prime itself fit comfortably in
// a uint64 wide accumulator for the 16-bit field (p < 2^16, so each
// product is < 2^32 and the running sum over any realistic threshold is
// far under 2^64).
func evalTabled(f *field.Field16, pt *field.PowerTable, c []uint64, x uint64) uint64 {
	t := len(c)
	if t == 0 {
		return 0
	}

	row := pt.Row(uint16(x))

	acc := row[t-1] // coefficient of x^t is the implicit 1

	for i := 0; i < t-1; i++ {
		power := row[t-i-2] // x^(t-i-1)
		acc += c[i] * power
	}

	acc += c[t-1]

	return acc % f.Prime()
}
