package quack

import (
	"encoding/binary"

	"github.com/jonathanmweiss/quack/field"
)

// Serialize encodes a into a deterministic, little-endian, tightly packed
// byte layout:
//
//	threshold:  u16
//	count:      u32
//	last_value: narrow
//	power_sums: narrow * threshold
//
// where narrow is the field's native width (2, 4, or 8 bytes, per
// Field.NarrowBits). The format is stable across invocations for a given
// (narrow width, prime, threshold).
func Serialize(a *PowerSumAccumulator) ([]byte, error) {
	width := a.f.NarrowBits() / 8

	buf := make([]byte, 2+4+width+width*a.threshold)
	off := 0

	binary.LittleEndian.PutUint16(buf[off:], uint16(a.threshold))
	off += 2

	binary.LittleEndian.PutUint32(buf[off:], a.count)
	off += 4

	off += putNarrow(buf[off:], width, a.lastValue)

	for i := 0; i < a.threshold; i++ {
		off += putNarrow(buf[off:], width, a.f.Export(a.sums[i]))
	}

	return buf, nil
}

// Deserialize decodes bytes produced by Serialize back into an accumulator
// over field f. The caller supplies f because the wire format carries no
// indication of width, prime, or Montgomery-ness.
func Deserialize(f field.Field, b []byte) (*PowerSumAccumulator, error) {
	width := f.NarrowBits() / 8

	if len(b) < 2+4+width {
		return nil, ErrSerializationFormat
	}

	off := 0
	threshold := int(binary.LittleEndian.Uint16(b[off:]))
	off += 2

	count := binary.LittleEndian.Uint32(b[off:])
	off += 4

	want := 2 + 4 + width + width*threshold
	if len(b) != want {
		return nil, ErrSerializationFormat
	}

	lastValue, n := getNarrow(b[off:], width)
	off += n

	sums := make([]uint64, threshold)
	for i := 0; i < threshold; i++ {
		raw, n := getNarrow(b[off:], width)
		off += n
		sums[i] = f.Reduce(raw)
	}

	return &PowerSumAccumulator{
		f:         f,
		threshold: threshold,
		count:     count,
		lastValue: lastValue,
		sums:      sums,
	}, nil
}

func putNarrow(buf []byte, width int, v uint64) int {
	switch width {
	case 2:
		binary.LittleEndian.PutUint16(buf, uint16(v))
	case 4:
		binary.LittleEndian.PutUint32(buf, uint32(v))
	default:
		binary.LittleEndian.PutUint64(buf, v)
	}

	return width
}

func getNarrow(buf []byte, width int) (uint64, int) {
	switch width {
	case 2:
		return uint64(binary.LittleEndian.Uint16(buf)), width
	case 4:
		return uint64(binary.LittleEndian.Uint32(buf)), width
	default:
		return binary.LittleEndian.Uint64(buf), width
	}
}
