package base62

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/fuid/uint128"
)

func TestEncode(t *testing.T) {
	testCases := []struct {
		name     string
		input    uint128.Uint128
		expected string
	}{
		{name: "zero", input: uint128.Uint128{}, expected: "0"},
		{name: "one", input: uint128.From64(1), expected: "1"},
		{name: "single symbol max", input: uint128.From64(61), expected: "z"},
		{name: "base", input: uint128.From64(62), expected: "10"},
		{name: "known vector", input: uint128.From64(852751187393), expected: "F0ob4rZ"},
		{name: "max uint64", input: uint128.From64(^uint64(0)), expected: "LygHa16AHYF"},
		{name: "max uint128", input: uint128.Max, expected: "7n42DGM5Tflk9n8mt7Fhc7"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Encode(tc.input))
		})
	}
}

func TestDecode(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected uint128.Uint128
	}{
		{name: "zero", input: "0", expected: uint128.Uint128{}},
		{name: "empty decodes to zero", input: "", expected: uint128.Uint128{}},
		{name: "known vector", input: "F0ob4rZ", expected: uint128.From64(852751187393)},
		{name: "max uint128", input: "7n42DGM5Tflk9n8mt7Fhc7", expected: uint128.Max},
		{name: "leading zeros are redundant", input: "000F0ob4rZ", expected: uint128.From64(852751187393)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			n, err := Decode(tc.input)
			if err != nil {
				t.Fatalf("failed to decode %q: %v", tc.input, err)
			}
			assert.Equal(t, tc.expected, n)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	values := []uint128.Uint128{
		{},
		uint128.From64(1),
		uint128.From64(61),
		uint128.From64(62),
		uint128.From64(3843),
		uint128.From64(852751187393),
		uint128.From64(^uint64(0)),
		uint128.New(1, 0),
		uint128.New(0xdeadbeef, 0xcafebabe),
		uint128.Max,
	}
	for _, v := range values {
		s := Encode(v)
		got, err := Decode(s)
		if err != nil {
			t.Fatalf("failed to decode %q: %v", s, err)
		}
		assert.Equal(t, v, got, "round trip of %q", s)
	}
}

func TestEncodeNoLeadingZero(t *testing.T) {
	values := []uint128.Uint128{
		uint128.From64(1),
		uint128.From64(62),
		uint128.From64(62 * 62),
		uint128.New(1, 0),
		uint128.Max,
	}
	for _, v := range values {
		s := Encode(v)
		assert.NotEmpty(t, s)
		assert.NotEqual(t, byte('0'), s[0], "encoding %q has a leading zero", s)
	}
}

func TestDecodeInvalidSymbol(t *testing.T) {
	_, err := Decode("ds{Z455f")
	var invalid *InvalidSymbolError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidSymbolError, got %v", err)
	}
	assert.Equal(t, byte('{'), invalid.Symbol)
	assert.Equal(t, 3, invalid.Position)
	assert.Equal(t, `base62: invalid symbol '{' at position 3`, invalid.Error())
}

func TestDecodeInvalidSymbolPositions(t *testing.T) {
	// Position is counted from the start of the string, 1-based.
	testCases := []struct {
		input    string
		symbol   byte
		position int
	}{
		{"!", '!', 1},
		{"ab-", '-', 3},
		{"-ab", '-', 1},
		{"a b", ' ', 2},
	}
	for _, tc := range testCases {
		_, err := Decode(tc.input)
		var invalid *InvalidSymbolError
		if !errors.As(err, &invalid) {
			t.Fatalf("decode %q: expected InvalidSymbolError, got %v", tc.input, err)
		}
		assert.Equal(t, tc.symbol, invalid.Symbol, "decode %q", tc.input)
		assert.Equal(t, tc.position, invalid.Position, "decode %q", tc.input)
	}
}

func TestDecodeOverflow(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{name: "long repeated symbols", input: "dsZ455f" + strings.Repeat("z", 108)},
		{name: "65 z", input: strings.Repeat("z", 65)},
		{name: "23 symbols", input: "1" + strings.Repeat("0", 22)},
		{name: "max plus one", input: "7n42DGM5Tflk9n8mt7Fhc8"},
		{name: "past max same length", input: "8000000000000000000000"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(tc.input)
			assert.ErrorIs(t, err, ErrOverflow)
		})
	}
}

func TestDecodeLeadingZerosNeverOverflow(t *testing.T) {
	// A long run of leading zero symbols does not change the value and
	// must not trip the overflow check.
	n, err := Decode(strings.Repeat("0", 100) + "F0ob4rZ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assert.Equal(t, uint128.From64(852751187393), n)
}

func TestDecodeBoundary(t *testing.T) {
	// Largest 21-symbol value and the smallest 22-symbol one both fit.
	n, err := Decode(strings.Repeat("z", 21))
	assert.NoError(t, err)
	assert.Equal(t, 1, uint128.Max.Compare(n))

	smallest22, err := Decode("1" + strings.Repeat("0", 21))
	assert.NoError(t, err)
	assert.Equal(t, 1, smallest22.Compare(n))
}
