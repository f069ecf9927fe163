// Package base62 converts 128-bit unsigned integers to and from their
// base-62 string form over the alphabet 0-9, A-Z, a-z. The alphabet
// ordering is part of the wire contract: symbol indices 0-9 map to
// '0'-'9', 10-35 to 'A'-'Z' and 36-61 to 'a'-'z', so encoded strings of
// equal length sort in numeric order.
//
// Encoding is total: every value has exactly one canonical string, with
// zero encoding to "0" and no leading zero symbols otherwise. Decoding
// fails on characters outside the alphabet and on values that exceed
// 128 bits; the empty string decodes to zero.
package base62
