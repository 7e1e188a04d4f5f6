// Package lps_table computes SPL with eight table lookups per lane.
package lps_table

import (
	"encoding/binary"

	"github.com/zeebo/stribog/internal/consts"
)

// table[j][v] is the contribution of input byte v sitting at column j of a lane
// after P, with the substitution already applied.
var table = func() (t [consts.LaneLen][256]uint64) {
	for j := 0; j < consts.LaneLen; j++ {
		for v := 0; v < 256; v++ {
			s := consts.Pi[v]
			for k := 0; k < 8; k++ {
				if s&(0x80>>uint(k)) != 0 {
					t[j][v] ^= consts.A[8*j+k]
				}
			}
		}
	}
	return t
}()

// SPL applies S, then P, then L in place.
func SPL(a *[consts.BlockLen]byte) {
	var out [consts.BlockLen]byte

	for i := 0; i < consts.Lanes; i++ {
		// after P, lane i is column i of the input
		w := table[0][a[0*8+i]] ^
			table[1][a[1*8+i]] ^
			table[2][a[2*8+i]] ^
			table[3][a[3*8+i]] ^
			table[4][a[4*8+i]] ^
			table[5][a[5*8+i]] ^
			table[6][a[6*8+i]] ^
			table[7][a[7*8+i]]

		binary.BigEndian.PutUint64(out[i*consts.LaneLen:], w)
	}

	*a = out
}
