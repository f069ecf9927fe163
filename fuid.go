package fuid

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/viant/fuid/base62"
	"github.com/viant/fuid/uint128"
)

// ID is a 128-bit identifier. It is a comparable value type: the zero
// value is the identifier with integer value zero, and == compares the
// underlying integers.
type ID uint128.Uint128

// newUUID supplies randomness for New. Override in tests for determinism.
var newUUID = uuid.New

// New returns a random ID. The value is a version-4 UUID (122 random
// bits plus fixed version and variant bits) reinterpreted as a plain
// 128-bit integer.
func New() ID {
	return FromUUID(newUUID())
}

// FromInt wraps a 128-bit integer verbatim.
func FromInt(n uint128.Uint128) ID {
	return ID(n)
}

// Parse decodes a base-62 string into an ID. It fails on characters
// outside the 0-9A-Za-z alphabet and on values exceeding 128 bits.
func Parse(s string) (ID, error) {
	n, err := base62.Decode(s)
	if err != nil {
		return ID{}, err
	}
	return ID(n), nil
}

// MustParse is like Parse but panics on invalid input. It is intended
// for identifier literals known to be valid at compile time.
func MustParse(s string) ID {
	id, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("fuid: MustParse(%q): %v", s, err))
	}
	return id
}

// FromUUID reinterprets a UUID as an ID, treating its 16 bytes as a
// big-endian integer. The conversion is lossless; UUID recovers u.
func FromUUID(u uuid.UUID) ID {
	return ID(uint128.FromBytes(u))
}

// String returns the canonical base-62 encoding.
func (id ID) String() string {
	return base62.Encode(uint128.Uint128(id))
}

// Int returns the underlying 128-bit integer.
func (id ID) Int() uint128.Uint128 {
	return uint128.Uint128(id)
}

// UUID returns the identifier in standard UUID form, the inverse of
// FromUUID.
func (id ID) UUID() uuid.UUID {
	return uuid.UUID(uint128.Uint128(id).Bytes())
}

// Compare orders identifiers numerically, returning -1, 0 or 1. Note
// this differs from ordering the encoded strings lexicographically,
// since encodings of smaller values are shorter.
func (id ID) Compare(o ID) int {
	return uint128.Uint128(id).Compare(uint128.Uint128(o))
}

// IsZero reports whether id is the zero identifier.
func (id ID) IsZero() bool {
	return uint128.Uint128(id).IsZero()
}
