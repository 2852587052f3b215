package quack

import "github.com/jonathanmweiss/quack/field"

// DecodeWithLog recovers the set difference this accumulator represents,
// given a candidate log of every element that might be a member. It
// derives the monic polynomial whose roots are the difference's elements
// and returns, in log order (duplicates and all), every log entry that
// evaluates to zero.
//
// If the true difference cardinality exceeds the accumulator's threshold,
// the trailing coefficients won't all cancel to zero and the returned set
// is meaningless garbage rather than an error: callers that must detect
// this case should compare the result's length against an independently
// known count.
func (a *PowerSumAccumulator) DecodeWithLog(log []uint64) []uint64 {
	c := a.ToPolynomialCoefficients()

	d := effectiveDegree(a.f, c)
	if d == 0 {
		return nil
	}

	q := c[:d]

	var out []uint64
	for _, x := range log {
		if Eval(a.f, q, x) == a.f.Reduce(0) {
			out = append(out, x)
		}
	}

	return out
}

// effectiveDegree returns d = t - (number of trailing zero coefficients).
// A power-sum accumulator holding a true difference of cardinality d <= t
// always produces c[d], c[d+1], ..., c[t-1] == 0, since the degree-t
// polynomial factors as x^(t-d) times the degree-d polynomial whose roots
// are the actual elements.
func effectiveDegree(f field.Field, c []uint64) int {
	zero := f.Reduce(0)

	t := len(c)
	tz := 0
	for i := t - 1; i >= 0 && c[i] == zero; i-- {
		tz++
	}

	return t - tz
}
