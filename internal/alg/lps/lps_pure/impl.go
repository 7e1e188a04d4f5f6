// Package lps_pure is the direct rendition of the X, S, P and L transforms.
package lps_pure

import (
	"encoding/binary"

	"github.com/zeebo/stribog/internal/consts"
)

// X stores a ^ b into out. out may alias either input.
func X(a, b, out *[consts.BlockLen]byte) {
	for i := range out {
		out[i] = a[i] ^ b[i]
	}
}

// S substitutes every byte of a through Pi.
func S(a *[consts.BlockLen]byte) {
	for i := range a {
		a[i] = consts.Pi[a[i]]
	}
}

// P transposes a viewed as an 8x8 row-major byte matrix.
func P(a *[consts.BlockLen]byte) {
	for i := 0; i < consts.Lanes; i++ {
		for j := i + 1; j < consts.Lanes; j++ {
			a[i*8+j], a[j*8+i] = a[j*8+i], a[i*8+j]
		}
	}
}

// L multiplies every big-endian 64 bit lane of a by the matrix A, one bit at
// a time.
func L(a *[consts.BlockLen]byte) {
	for i := 0; i < consts.Lanes; i++ {
		lane := a[i*consts.LaneLen : (i+1)*consts.LaneLen]
		w := binary.BigEndian.Uint64(lane)

		var t uint64
		for j := 0; j < 64; j++ {
			if w&(1<<(63-uint(j))) != 0 {
				t ^= consts.A[j]
			}
		}

		binary.BigEndian.PutUint64(lane, t)
	}
}

// SPL applies S, then P, then L.
func SPL(a *[consts.BlockLen]byte) {
	S(a)
	P(a)
	L(a)
}
