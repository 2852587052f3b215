package field

import (
	"errors"
	"sync"
)

// ErrThresholdExceedsMax is returned when a PowerTable already built for a
// smaller T_MAX is asked to serve a larger threshold: the table is sized
// once, lazily, and never grown.
var ErrThresholdExceedsMax = errors.New("field: threshold exceeds the bound the power table was built for")

// PowerTable precomputes, for every possible 16-bit input x, the vector
// (x^1, x^2, ..., x^tmax) mod p. It accelerates PowerSumAccumulator.Insert
// and polynomial evaluation for Field16 by turning t multiplies into t
// table lookups.
type PowerTable struct {
	tmax int
	rows []uint64 // len 65536*tmax; row x occupies rows[x*tmax : x*tmax+tmax]
}

// Row returns (x^1, ..., x^tmax) mod p for the given 16-bit input. The
// returned slice must not be mutated or retained past the table's lifetime
// assumptions (it is shared process-wide).
func (pt *PowerTable) Row(x uint16) []uint64 {
	start := int(x) * pt.tmax
	return pt.rows[start : start+pt.tmax]
}

// Tmax is the threshold this table was built for.
func (pt *PowerTable) Tmax() int { return pt.tmax }

func buildPowerTable(f *Field16, tmax int) *PowerTable {
	rows := make([]uint64, 65536*tmax)

	for x := 0; x < 65536; x++ {
		row := rows[x*tmax : x*tmax+tmax]

		base := f.Reduce(uint64(x))
		y := base
		for i := 0; i < tmax; i++ {
			row[i] = y
			y = f.Mul(y, base)
		}
	}

	return &PowerTable{tmax: tmax, rows: rows}
}

// powerTableRegistry is the process-wide singleton registry, one table per
// prime, adapting the teacher's evaluationCache / twiddleCache
// double-checked-lookup idiom.
type powerTableRegistry struct {
	mu     sync.RWMutex
	tables map[uint64]*PowerTable
}

var globalPowerTables = &powerTableRegistry{
	tables: make(map[uint64]*PowerTable),
}

// GetPowerTable returns the cached PowerTable for f's prime, building it
// (sized to tmax) on first use. A later call requesting a larger tmax than
// the table was originally built for fails with ErrThresholdExceedsMax
// rather than silently reallocating.
func GetPowerTable(f *Field16, tmax int) (*PowerTable, error) {
	prime := f.Prime()

	globalPowerTables.mu.RLock()
	table, ok := globalPowerTables.tables[prime]
	globalPowerTables.mu.RUnlock()

	if ok {
		if tmax > table.tmax {
			return nil, ErrThresholdExceedsMax
		}

		return table, nil
	}

	globalPowerTables.mu.Lock()
	defer globalPowerTables.mu.Unlock()

	if table, ok := globalPowerTables.tables[prime]; ok {
		if tmax > table.tmax {
			return nil, ErrThresholdExceedsMax
		}

		return table, nil
	}

	table = buildPowerTable(f, tmax)
	globalPowerTables.tables[prime] = table

	return table, nil
}
