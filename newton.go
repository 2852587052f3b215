package quack

import "github.com/jonathanmweiss/quack/field"

// ToPolynomialCoefficients converts the accumulator's power sums into the
// coefficients of the monic degree-t polynomial whose roots are the
// inserted (or, for a difference accumulator, the set-difference)
// elements, via Newton's identities. Allocates a fresh slice of length t.
func (a *PowerSumAccumulator) ToPolynomialCoefficients() []uint64 {
	buf := make([]uint64, a.threshold)
	a.ToPolynomialCoefficientsPreallocated(buf)

	return buf
}

// ToPolynomialCoefficientsPreallocated is ToPolynomialCoefficients but
// writes into buf (which must have length a.Threshold()) instead of
// allocating an output slice. It still allocates one scratch slice of
// length t+1 for the elementary symmetric polynomials.
func (a *PowerSumAccumulator) ToPolynomialCoefficientsPreallocated(buf []uint64) {
	newtonIdentities(a.f, a.sums, buf)
}

// newtonIdentities computes, from power sums p[0..t-1] (p[i] == power sum
// p_(i+1)), the monic polynomial coefficients c[0..t-1] such that
//
//	P(x) = x^t + c[0]*x^(t-1) + c[1]*x^(t-2) + ... + c[t-1]
//
// is the polynomial whose roots (with multiplicity) are the multiset's
// elements, following the elementary-symmetric-polynomial recurrence
//
//	k*e_k = sum_{i=1..k} (-1)^(i-1) * e_(k-i) * p_i,   e_0 = 1
//	c[i] = (-1)^(i+1) * e_(i+1)
//
// c has length t and receives only the final coefficients; e_0..e_t are
// built in a separate scratch slice of length t+1 and mapped into c at the
// end.
func newtonIdentities(f field.Field, sums, c []uint64) {
	t := len(sums)

	inv := field.GetInverseTable(f, t)

	e := make([]uint64, t+1)
	e[0] = f.Reduce(1)

	for k := 1; k <= t; k++ {
		acc := f.Reduce(0)

		for i := 1; i <= k; i++ {
			term := f.Mul(e[k-i], sums[i-1])
			if i%2 == 1 {
				acc = f.Add(acc, term)
			} else {
				acc = f.Sub(acc, term)
			}
		}

		e[k] = f.Mul(acc, inv.At(k))
	}

	for i := 0; i < t; i++ {
		if i%2 == 0 {
			c[i] = f.Neg(e[i+1])
		} else {
			c[i] = e[i+1]
		}
	}
}
