package quack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeWithLogFindsExactDifference(t *testing.T) {
	a := assert.New(t)

	f := newField64(t)

	left, err := New(f, 6)
	a.NoError(err)

	right, err := New(f, 6)
	a.NoError(err)

	shared := []uint64{100, 200, 300}
	onlyLeft := []uint64{7, 77}

	for _, v := range shared {
		left.Insert(v)
		right.Insert(v)
	}
	for _, v := range onlyLeft {
		left.Insert(v)
	}

	diff, err := Sub(left, right)
	a.NoError(err)

	log := append(append([]uint64{}, shared...), onlyLeft...)
	got := diff.DecodeWithLog(log)

	a.ElementsMatch(onlyLeft, got)
}

func TestDecodeWithLogEmptyDifference(t *testing.T) {
	a := assert.New(t)

	f := newField64(t)

	left, err := New(f, 4)
	a.NoError(err)

	right, err := New(f, 4)
	a.NoError(err)

	vals := []uint64{1, 2, 3}
	for _, v := range vals {
		left.Insert(v)
		right.Insert(v)
	}

	diff, err := Sub(left, right)
	a.NoError(err)

	got := diff.DecodeWithLog(vals)
	a.Empty(got)
}

func TestDecodeWithLogPreservesOrderAndDuplicates(t *testing.T) {
	a := assert.New(t)

	f := newField64(t)

	left, err := New(f, 4)
	a.NoError(err)

	right, err := New(f, 4)
	a.NoError(err)

	left.Insert(50)
	left.Insert(60)
	right.Insert(60)

	diff, err := Sub(left, right)
	a.NoError(err)

	log := []uint64{99, 50, 50, 60, 88}
	got := diff.DecodeWithLog(log)

	a.Equal([]uint64{50, 50}, got)
}

func TestDecodeWithLogMontgomery64(t *testing.T) {
	a := assert.New(t)

	f := newMontgomery64(t)

	left, err := New(f, 6)
	a.NoError(err)

	right, err := New(f, 6)
	a.NoError(err)

	shared := []uint64{100, 200, 300}
	onlyLeft := []uint64{7, 77}

	for _, v := range shared {
		left.Insert(v)
		right.Insert(v)
	}
	for _, v := range onlyLeft {
		left.Insert(v)
	}

	diff, err := Sub(left, right)
	a.NoError(err)

	log := append(append([]uint64{}, shared...), onlyLeft...)
	got := diff.DecodeWithLog(log)

	a.ElementsMatch(onlyLeft, got)
}

// TestDecodeWithLogOverflow covers the |A\B| = t+1 case: the true
// difference exceeds the threshold, so the decoded result is allowed to
// be bogus, but decoding must not panic, and the caller can detect the
// overflow by comparing the result length against the known count.
func TestDecodeWithLogOverflow(t *testing.T) {
	a := assert.New(t)

	f := newField64(t)

	const threshold = 10

	left, err := New(f, threshold)
	a.NoError(err)

	right, err := New(f, threshold)
	a.NoError(err)

	onlyLeft := make([]uint64, threshold+1)
	for i := range onlyLeft {
		onlyLeft[i] = uint64(1000 + i)
	}

	for _, v := range onlyLeft {
		left.Insert(v)
	}

	diff, err := Sub(left, right)
	a.NoError(err)

	a.NotPanics(func() {
		got := diff.DecodeWithLog(onlyLeft)
		a.NotEqual(len(onlyLeft), len(got))
	})
}

func TestDecodeWithLogAtCapacity(t *testing.T) {
	a := assert.New(t)

	f := newField64(t)

	const threshold = 5

	left, err := New(f, threshold)
	a.NoError(err)

	right, err := New(f, threshold)
	a.NoError(err)

	onlyLeft := []uint64{11, 22, 33, 44, 55}

	for _, v := range onlyLeft {
		left.Insert(v)
	}

	diff, err := Sub(left, right)
	a.NoError(err)

	got := diff.DecodeWithLog(onlyLeft)
	a.ElementsMatch(onlyLeft, got)
	a.Len(got, threshold)
}
