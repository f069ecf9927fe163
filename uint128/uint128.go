package uint128

import (
	"encoding/binary"
	"math/bits"
)

// Uint128 is an unsigned 128-bit integer split into two 64-bit limbs.
// It is a comparable value type; the zero value is the number zero.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// Max is the largest representable value, 2^128 - 1.
var Max = Uint128{Hi: ^uint64(0), Lo: ^uint64(0)}

// From64 widens a 64-bit value.
func From64(v uint64) Uint128 {
	return Uint128{Lo: v}
}

// New builds a value from its high and low 64-bit halves.
func New(hi, lo uint64) Uint128 {
	return Uint128{Hi: hi, Lo: lo}
}

// FromBytes interprets b as a big-endian 128-bit integer.
func FromBytes(b [16]byte) Uint128 {
	return Uint128{
		Hi: binary.BigEndian.Uint64(b[:8]),
		Lo: binary.BigEndian.Uint64(b[8:]),
	}
}

// Bytes returns the big-endian byte representation.
func (u Uint128) Bytes() [16]byte {
	var b [16]byte
	binary.BigEndian.PutUint64(b[:8], u.Hi)
	binary.BigEndian.PutUint64(b[8:], u.Lo)
	return b
}

// IsZero reports whether u is zero.
func (u Uint128) IsZero() bool {
	return u.Hi == 0 && u.Lo == 0
}

// Compare returns -1, 0 or 1 depending on whether u is less than, equal
// to, or greater than o.
func (u Uint128) Compare(o Uint128) int {
	switch {
	case u.Hi != o.Hi:
		if u.Hi < o.Hi {
			return -1
		}
		return 1
	case u.Lo != o.Lo:
		if u.Lo < o.Lo {
			return -1
		}
		return 1
	}
	return 0
}

// Mul64 multiplies u by v. The second result reports overflow past 128
// bits, in which case the value result is unspecified.
func (u Uint128) Mul64(v uint64) (Uint128, bool) {
	carry, lo := bits.Mul64(u.Lo, v)
	hi1, hi0 := bits.Mul64(u.Hi, v)
	hi, c := bits.Add64(hi0, carry, 0)
	return Uint128{Hi: hi, Lo: lo}, hi1 != 0 || c != 0
}

// Add adds o to u. The second result reports overflow past 128 bits.
func (u Uint128) Add(o Uint128) (Uint128, bool) {
	lo, carry := bits.Add64(u.Lo, o.Lo, 0)
	hi, c := bits.Add64(u.Hi, o.Hi, carry)
	return Uint128{Hi: hi, Lo: lo}, c != 0
}

// QuoRem64 divides u by d, returning the quotient and remainder.
// Division by zero panics, as it does for native integers.
func (u Uint128) QuoRem64(d uint64) (Uint128, uint64) {
	if u.Hi < d {
		lo, r := bits.Div64(u.Hi, u.Lo, d)
		return Uint128{Lo: lo}, r
	}
	hi := u.Hi / d
	lo, r := bits.Div64(u.Hi%d, u.Lo, d)
	return Uint128{Hi: hi, Lo: lo}, r
}
