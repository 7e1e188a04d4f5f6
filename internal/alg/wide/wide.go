// Package wide implements arithmetic on 512-bit big-endian unsigned integers.
package wide

import "github.com/zeebo/stribog/internal/consts"

// ZeroExtend places b in the least significant bytes of a 64-byte big-endian
// integer. Operands wider than 512 bits are rejected with a panic.
func ZeroExtend(b []byte) (out [consts.BlockLen]byte) {
	if len(b) > consts.BlockLen {
		panic("operand wider than 512 bits")
	}
	copy(out[consts.BlockLen-len(b):], b)
	return out
}

// AddModulo512 returns (a + b) mod 2^512. Both operands are big-endian and
// are zero-extended on the left to 64 bytes. The carry out of the most
// significant byte is discarded.
func AddModulo512(a, b []byte) (c [consts.BlockLen]byte) {
	x, y := ZeroExtend(a), ZeroExtend(b)

	var carry uint
	for i := consts.BlockLen - 1; i >= 0; i-- {
		carry += uint(x[i]) + uint(y[i])
		c[i] = byte(carry)
		carry >>= 8
	}

	return c
}
