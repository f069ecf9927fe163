// Package fuid provides a friendly unique identifier: a 128-bit value
// generated like a random UUID but rendered as a compact base-62 string
// such as "6fTiplVKIi6bJFe8rTXPcu" instead of the hyphenated hex form.
//
// The string form uses only 0-9, A-Z and a-z, so identifiers are safe
// in URLs, filenames and code without escaping, and select with a
// double click. An ID is an immutable value type; equality and ordering
// are defined over the underlying integer, and conversion to and from
// uuid.UUID is a lossless bit-for-bit reinterpretation:
//
//	id := fuid.New()
//	s := id.String()
//	back, err := fuid.Parse(s)
//
// IDs marshal as their base-62 string in JSON and YAML, and as the raw
// 16-byte big-endian value in binary codecs.
package fuid
