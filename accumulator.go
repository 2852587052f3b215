// Package quack implements a power-sum quACK: a fixed-size digest of a
// multiset of packet identifiers that supports incremental insertion,
// removal, subtraction, and decoding of a bounded-cardinality set
// difference against a candidate log.
package quack

import "github.com/jonathanmweiss/quack/field"

// PowerSumAccumulator holds the first Threshold() power sums of an inserted
// multiset over a single Field. It is a single-owner, single-writer value:
// distinct accumulators may be manipulated concurrently on different
// goroutines with no coordination, but one accumulator must not be written
// from two goroutines at once.
type PowerSumAccumulator struct {
	f         field.Field
	threshold int
	count     uint32
	lastValue uint64
	sums      []uint64

	// powerTable is populated lazily, once, only when f is a *field.Field16
	// and a table has successfully been built for the process T_MAX.
	powerTable *field.PowerTable
}

// New allocates an empty accumulator for threshold t over field f. t must
// be at least 1 and at most the process-wide T_MAX (see
// GlobalConfigSetMaxPowerSumThreshold).
func New(f field.Field, t int) (*PowerSumAccumulator, error) {
	if t < 1 || t > currentMaxPowerSumThreshold() {
		return nil, ErrThresholdExceedsMax
	}

	return &PowerSumAccumulator{
		f:         f,
		threshold: t,
		sums:      make([]uint64, t),
	}, nil
}

// Threshold returns t, the maximum recoverable difference cardinality.
func (a *PowerSumAccumulator) Threshold() int { return a.threshold }

// Count returns the number of elements inserted minus the number removed.
func (a *PowerSumAccumulator) Count() uint32 { return a.count }

// LastValue returns the most recently inserted element (in canonical [0,p)
// form), or 0 if nothing has ever been inserted. Remove, SubAssign and Sub
// never update it — callers that need a meaningful last_value after those
// operations should not consult this field.
func (a *PowerSumAccumulator) LastValue() uint64 { return a.lastValue }

// Field returns the Field this accumulator was built over.
func (a *PowerSumAccumulator) Field() field.Field { return a.f }

// Insert folds v into the accumulator: for i in [0,t), S[i] += v^(i+1).
// Uses the PowerTable-accelerated path when the underlying field is
// *field.Field16 and a table is available; falls back to the direct
// running-power loop otherwise.
func (a *PowerSumAccumulator) Insert(v uint64) {
	val := a.f.Reduce(v)

	if row, ok := a.tabledRow(v); ok {
		for i := range a.sums {
			a.sums[i] = a.f.Add(a.sums[i], row[i])
		}
	} else {
		y := val
		for i := range a.sums {
			a.sums[i] = a.f.Add(a.sums[i], y)
			y = a.f.Mul(y, val)
		}
	}

	a.count++
	a.lastValue = a.f.Export(val)
}

// Remove folds v out of the accumulator: for i in [0,t), S[i] -= v^(i+1).
// It does not verify v was ever inserted — callers rely on this to build
// Sub/SubAssign out of symmetric insert/remove. last_value is untouched.
func (a *PowerSumAccumulator) Remove(v uint64) {
	val := a.f.Reduce(v)

	if row, ok := a.tabledRow(v); ok {
		for i := range a.sums {
			a.sums[i] = a.f.Sub(a.sums[i], row[i])
		}
	} else {
		y := val
		for i := range a.sums {
			a.sums[i] = a.f.Sub(a.sums[i], y)
			y = a.f.Mul(y, val)
		}
	}

	a.count--
}

// tabledRow opportunistically builds (on first use, process-wide, cached)
// and returns the PowerTable row for v when the accumulator's field is
// *field.Field16. The table is sized to the current process T_MAX, per
// the PowerTable lifecycle.
func (a *PowerSumAccumulator) tabledRow(v uint64) ([]uint64, bool) {
	f16, ok := a.f.(*field.Field16)
	if !ok {
		return nil, false
	}

	if a.powerTable == nil {
		table, err := field.GetPowerTable(f16, currentMaxPowerSumThreshold())
		if err != nil {
			return nil, false
		}

		a.powerTable = table
	}

	if a.threshold > a.powerTable.Tmax() {
		return nil, false
	}

	return a.powerTable.Row(uint16(v))[:a.threshold], true
}

// SubAssign subtracts other's power sums and count from a in place. other
// is left usable but logically spent (mirroring the C ABI's "consumes b"
// semantics is the caller's responsibility at the binding layer, out of
// scope here).
func (a *PowerSumAccumulator) SubAssign(other *PowerSumAccumulator) error {
	if a.threshold != other.threshold {
		return ErrThresholdMismatch
	}

	for i := range a.sums {
		a.sums[i] = a.f.Sub(a.sums[i], other.sums[i])
	}

	a.count -= other.count

	return nil
}

// Sub returns a new accumulator equal to a's power sums minus b's. Count is
// lhs.count - rhs.count with no overflow checking, and last_value is left
// at whatever a.clone() carried (undefined for this derived use).
func Sub(a, b *PowerSumAccumulator) (*PowerSumAccumulator, error) {
	out := a.clone()
	if err := out.SubAssign(b); err != nil {
		return nil, err
	}

	return out, nil
}

func (a *PowerSumAccumulator) clone() *PowerSumAccumulator {
	sums := make([]uint64, len(a.sums))
	copy(sums, a.sums)

	return &PowerSumAccumulator{
		f:          a.f,
		threshold:  a.threshold,
		count:      a.count,
		lastValue:  a.lastValue,
		sums:       sums,
		powerTable: a.powerTable,
	}
}
