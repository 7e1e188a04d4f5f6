// Package lps exposes the transformation layer used by the compression
// function. SPL is backed by lookup tables unless built with the purego tag.
package lps

import (
	"github.com/zeebo/stribog/internal/alg/lps/lps_pure"
	"github.com/zeebo/stribog/internal/consts"
)

// X stores a ^ b into out. out may alias either input.
func X(a, b, out *[consts.BlockLen]byte) { lps_pure.X(a, b, out) }
