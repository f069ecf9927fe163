package base62

import (
	"errors"
	"fmt"

	"github.com/viant/fuid/uint128"
)

const base = 62

// maxEncodedLen is the longest possible encoding: 62^22 > 2^128 > 62^21.
const maxEncodedLen = 22

// ErrOverflow is returned by Decode when the input denotes a value
// larger than 2^128 - 1.
var ErrOverflow = errors.New("base62: value overflows 128 bits")

// InvalidSymbolError reports a character outside the base-62 alphabet.
// Position is 1-based and counted from the start of the input string.
type InvalidSymbolError struct {
	Symbol   byte
	Position int
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("base62: invalid symbol %q at position %d", e.Symbol, e.Position)
}

// Encode returns the canonical base-62 representation of n, most
// significant symbol first. Zero encodes to "0".
func Encode(n uint128.Uint128) string {
	if n.IsZero() {
		return "0"
	}
	buf := make([]byte, 0, maxEncodedLen)
	for !n.IsZero() {
		var r uint64
		n, r = n.QuoRem64(base)
		buf = append(buf, symbolFor(r))
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

// Decode parses a base-62 string into a 128-bit unsigned integer. It
// returns *InvalidSymbolError for characters outside the alphabet and
// ErrOverflow when the denoted value does not fit in 128 bits. The
// empty string decodes to zero.
func Decode(s string) (uint128.Uint128, error) {
	var (
		result uint128.Uint128
		power  = uint128.From64(1)
		// power silently wraps once the scan passes 62^21; from there
		// any non-zero symbol overflows, but leading zero symbols are
		// still a valid spelling of the same value.
		powerOverflowed bool
	)
	for i := 0; i < len(s); i++ {
		c := s[len(s)-1-i]
		v, ok := symbolValue(c)
		if !ok {
			return uint128.Uint128{}, &InvalidSymbolError{Symbol: c, Position: len(s) - i}
		}
		if v != 0 {
			if powerOverflowed {
				return uint128.Uint128{}, ErrOverflow
			}
			term, overflow := power.Mul64(v)
			if overflow {
				return uint128.Uint128{}, ErrOverflow
			}
			result, overflow = result.Add(term)
			if overflow {
				return uint128.Uint128{}, ErrOverflow
			}
		}
		if i+1 < len(s) {
			var overflow bool
			if power, overflow = power.Mul64(base); overflow {
				powerOverflowed = true
			}
		}
	}
	return result, nil
}

func symbolFor(v uint64) byte {
	switch {
	case v < 10:
		return '0' + byte(v)
	case v < 36:
		return 'A' + byte(v-10)
	default:
		return 'a' + byte(v-36)
	}
}

func symbolValue(c byte) (uint64, bool) {
	switch {
	case c >= '0' && c <= '9':
		return uint64(c - '0'), true
	case c >= 'A' && c <= 'Z':
		return uint64(c-'A') + 10, true
	case c >= 'a' && c <= 'z':
		return uint64(c-'a') + 36, true
	}
	return 0, false
}
