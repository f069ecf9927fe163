package fuid

import (
	"fmt"

	"github.com/viant/fuid/uint128"
	"gopkg.in/yaml.v3"
)

// MarshalText implements encoding.TextMarshaler, emitting the base-62
// string. This also drives encoding/json marshalling.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ID) UnmarshalText(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return fmt.Errorf("fuid: unmarshal %q: %w", data, err)
	}
	*id = parsed
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler, emitting the
// 16-byte big-endian value. Binary codecs such as CBOR pick this up.
func (id ID) MarshalBinary() ([]byte, error) {
	b := uint128.Uint128(id).Bytes()
	return b[:], nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (id *ID) UnmarshalBinary(data []byte) error {
	if len(data) != 16 {
		return fmt.Errorf("fuid: unmarshal binary: expected 16 bytes, got %d", len(data))
	}
	var b [16]byte
	copy(b[:], data)
	*id = ID(uint128.FromBytes(b))
	return nil
}

// MarshalYAML implements yaml.Marshaler for gopkg.in/yaml.v3.
func (id ID) MarshalYAML() (interface{}, error) {
	return id.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for gopkg.in/yaml.v3.
func (id *ID) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	return id.UnmarshalText([]byte(s))
}
