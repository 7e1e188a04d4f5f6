//go:build !purego
// +build !purego

package lps

import (
	"github.com/zeebo/stribog/internal/alg/lps/lps_table"
	"github.com/zeebo/stribog/internal/consts"
)

// SPL applies S, then P, then L in place.
func SPL(a *[consts.BlockLen]byte) { lps_table.SPL(a) }
