// Package compress implements the compression function g_N(h, m).
package compress

import (
	"github.com/zeebo/stribog/internal/alg/lps"
	"github.com/zeebo/stribog/internal/consts"
)

type block = [consts.BlockLen]byte

// G folds the message block m and the counter n into the chaining value h and
// stores the result in out. out may alias h.
func G(n, h, m, out *block) {
	var k, t block

	lps.X(h, n, &k)
	lps.SPL(&k)

	E(&k, m, &t)

	lps.X(&t, h, &t)
	lps.X(&t, m, out)
}

// E encrypts m under the key k with twelve rounds, storing the result in out.
// The round keys are derived from k in sequence; k itself is not modified.
func E(k, m, out *block) {
	key := *k

	var step block
	lps.X(&key, m, &step)

	for i := 0; i < consts.Rounds; i++ {
		lps.SPL(&step)

		lps.X(&key, &consts.C[i], &key)
		lps.SPL(&key)

		lps.X(&key, &step, &step)
	}

	*out = step
}
