package ruuid

import (
	"encoding/binary"
	"encoding/hex"
)

// UUID is a 128-bit identifier stored in RFC 4122 big-endian field order:
//
//	bytes[0:4]   time_low
//	bytes[4:6]   time_mid
//	bytes[6:8]   time_hi_and_version
//	bytes[8:10]  clock_seq_hi_and_reserved, clock_seq_low
//	bytes[10:16] node
//
// The version and variant bits are never validated; a UUID is a transparent
// 16-byte container. UUID is comparable and can be used directly as a map key.
type UUID [16]byte

// Size is the length of a UUID in bytes.
const Size = 16

// Version represents the UUID version nibble
type Version byte

const (
	_ Version = iota
	VersionTimeBased
	VersionDCESecurity
	VersionNameBasedMD5
	VersionRandom
	VersionNameBasedSHA1
	VersionReorderedTime
	VersionTimeSorted
	VersionCustom
)

// Variant represents the UUID variant
type Variant byte

const (
	VariantNCS Variant = iota
	VariantRFC4122
	VariantMicrosoft
	VariantFuture
)

func (v Variant) String() string {
	switch v {
	case VariantNCS:
		return "ncs"
	case VariantRFC4122:
		return "rfc4122"
	case VariantMicrosoft:
		return "microsoft"
	default:
		return "future"
	}
}

// Nil is the nil UUID (all zeros)
var Nil UUID

// TimeLow returns the 32-bit time_low field.
func (u UUID) TimeLow() uint32 {
	return binary.BigEndian.Uint32(u[0:4])
}

// TimeMid returns the 16-bit time_mid field.
func (u UUID) TimeMid() uint16 {
	return binary.BigEndian.Uint16(u[4:6])
}

// TimeHiAndVersion returns the 16-bit time_hi_and_version field.
func (u UUID) TimeHiAndVersion() uint16 {
	return binary.BigEndian.Uint16(u[6:8])
}

// ClockSeqHiAndReserved returns byte 8, which carries the variant bits and
// the high bits of the clock sequence.
func (u UUID) ClockSeqHiAndReserved() uint8 {
	return u[8]
}

// ClockSeqLow returns byte 9.
func (u UUID) ClockSeqLow() uint8 {
	return u[9]
}

// ClockSeq returns bytes 8 and 9 as a single big-endian value, variant bits included.
func (u UUID) ClockSeq() uint16 {
	return binary.BigEndian.Uint16(u[8:10])
}

// Node returns the 48-bit node field in the low bits of a uint64.
func (u UUID) Node() uint64 {
	return uint64(u[10])<<40 |
		uint64(u[11])<<32 |
		uint64(u[12])<<24 |
		uint64(u[13])<<16 |
		uint64(u[14])<<8 |
		uint64(u[15])
}

// Version returns the version nibble of the UUID. It is not validated.
func (u UUID) Version() Version {
	return Version(u[6] >> 4)
}

// Variant returns the variant of the UUID
func (u UUID) Variant() Variant {
	switch {
	case (u[8] & 0x80) == 0x00:
		return VariantNCS
	case (u[8] & 0xc0) == 0x80:
		return VariantRFC4122
	case (u[8] & 0xe0) == 0xc0:
		return VariantMicrosoft
	default:
		return VariantFuture
	}
}

// String returns the canonical string representation of the UUID
// in the format: xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
func (u UUID) String() string {
	var buf [36]byte
	encodeHex(buf[:], u)
	return string(buf[:])
}

// Format returns the canonical lowercase representation of a raw 16-byte value.
func Format(b [Size]byte) string {
	return UUID(b).String()
}

// encodeHex encodes UUID to its canonical hex representation
func encodeHex(dst []byte, u UUID) {
	hex.Encode(dst[0:8], u[0:4])
	dst[8] = '-'
	hex.Encode(dst[9:13], u[4:6])
	dst[13] = '-'
	hex.Encode(dst[14:18], u[6:8])
	dst[18] = '-'
	hex.Encode(dst[19:23], u[8:10])
	dst[23] = '-'
	hex.Encode(dst[24:36], u[10:16])
}

// Bytes returns a copy of the UUID as a byte slice
func (u UUID) Bytes() []byte {
	b := make([]byte, Size)
	copy(b, u[:])
	return b
}

// IsNil returns true if the UUID is the nil UUID (all zeros)
func (u UUID) IsNil() bool {
	return u == Nil
}

// Compare returns an integer comparing two UUIDs lexicographically, byte 0 first.
// The result will be 0 if u==other, -1 if u < other, and +1 if u > other.
// UUID.Compare can be passed directly to slices.SortFunc.
func (u UUID) Compare(other UUID) int {
	for i := 0; i < Size; i++ {
		if u[i] < other[i] {
			return -1
		}
		if u[i] > other[i] {
			return 1
		}
	}
	return 0
}

// Less reports whether u sorts before other.
func (u UUID) Less(other UUID) bool {
	return u.Compare(other) < 0
}

// Equal returns true if u and other represent the same UUID
func (u UUID) Equal(other UUID) bool {
	return u == other
}

// Hash folds the UUID into 64 bits by XOR-ing its two big-endian halves.
// It is meant for hash-table placement only and is trivially collidable,
// so do not use it on attacker-controlled keys.
func (u UUID) Hash() uint64 {
	return binary.BigEndian.Uint64(u[0:8]) ^ binary.BigEndian.Uint64(u[8:16])
}
