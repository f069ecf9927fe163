// Package uint128 provides a fixed-width 128-bit unsigned integer with
// the small set of operations the fuid library needs: big-endian byte
// conversion, comparison, and overflow-checked multiply/add plus
// division by a 64-bit divisor. It is not a general bignum facility.
package uint128
