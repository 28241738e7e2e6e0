// Package stat defines the fixed-layout statistics record, its binary wire
// form, and the default hooks used when records are folded together.
package stat

import (
	"encoding/binary"
	"math"
)

// RecordSize is the exact on-disk width of one record in bytes.
//
// The layout is packed little-endian with no alignment padding:
//
//	offset 0  (8 bytes)  id, signed
//	offset 8  (4 bytes)  count, signed
//	offset 12 (4 bytes)  cost, IEEE-754 binary32
//	offset 16 (4 bytes)  flag word: bit 0 = primary, bits 1-3 = mode,
//	                     bits 4-31 zero
//
// A dump file is the raw concatenation of records in this form; there is no
// header, magic, or version.
const RecordSize = 20

// MaxMode is the largest representable mode value (3 bits).
const MaxMode = 7

// Record is one statistics tuple. It is a plain value: copyable, comparable
// field-by-field, and free of pointers.
type Record struct {
	// ID is the identity key records are deduplicated on.
	ID int64

	// Count is an additive accumulator.
	Count int32

	// Cost is an additive accumulator. Fold order affects rounding; that
	// drift is an accepted artefact of the float representation.
	Cost float32

	// Primary is a conjunctive accumulator: folding clears it as soon as
	// any contributing record has it cleared.
	Primary bool

	// Mode is a maximum-wins accumulator in [0, MaxMode].
	Mode uint8
}

const (
	flagPrimary = 1 << 0
	modeShift   = 1
	modeMask    = MaxMode << modeShift
)

// EncodeRecord writes the wire form of r into buf.
// buf must be at least RecordSize bytes.
func EncodeRecord(buf []byte, r Record) {
	binary.LittleEndian.PutUint64(buf[0:8], uint64(r.ID))
	binary.LittleEndian.PutUint32(buf[8:12], uint32(r.Count))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(r.Cost))

	flags := uint32(r.Mode) << modeShift & modeMask
	if r.Primary {
		flags |= flagPrimary
	}

	binary.LittleEndian.PutUint32(buf[16:20], flags)
}

// DecodeRecord reads one record from the wire form in buf.
// buf must be at least RecordSize bytes. Padding bits in the flag word are
// ignored.
func DecodeRecord(buf []byte) Record {
	flags := binary.LittleEndian.Uint32(buf[16:20])

	return Record{
		ID:      int64(binary.LittleEndian.Uint64(buf[0:8])),
		Count:   int32(binary.LittleEndian.Uint32(buf[8:12])),
		Cost:    math.Float32frombits(binary.LittleEndian.Uint32(buf[12:16])),
		Primary: flags&flagPrimary != 0,
		Mode:    uint8(flags & modeMask >> modeShift),
	}
}

// AppendRecord appends the wire form of r to dst and returns the extended
// slice.
func AppendRecord(dst []byte, r Record) []byte {
	var buf [RecordSize]byte
	EncodeRecord(buf[:], r)

	return append(dst, buf[:]...)
}
