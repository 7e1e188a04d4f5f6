package stribog

import (
	"context"
	"encoding/binary"

	"github.com/zeebo/stribog/internal/alg/compress"
	"github.com/zeebo/stribog/internal/alg/wide"
	"github.com/zeebo/stribog/internal/consts"
)

type block = [consts.BlockLen]byte

// zero is the counter input to the two closing compressions.
var zero block

//
// hasher contains state for a single GOST R 34.11-2012 computation
//

type hasher struct {
	h     block // chaining value
	n     block // bits consumed through full blocks
	sigma block // sum of every compressed block
}

func newHasher(w Width) hasher {
	if w == Width256 {
		return hasher{h: consts.IV256}
	}
	return hasher{h: consts.IV512}
}

// consume processes one full message block.
func (a *hasher) consume(m *block) {
	compress.G(&a.n, &a.h, m, &a.h)
	a.n = wide.AddModulo512(a.n[:], consts.BlockBits[:])
	a.sigma = wide.AddModulo512(a.sigma[:], m[:])
}

// finalize pads the remainder of the message, which must be shorter than a
// block, and runs the closing compressions over the length and checksum.
func (a *hasher) finalize(rem []byte) {
	m := pad(rem)

	var bits [8]byte
	binary.BigEndian.PutUint64(bits[:], uint64(len(rem))*8)

	compress.G(&a.n, &a.h, &m, &a.h)
	a.n = wide.AddModulo512(a.n[:], bits[:])
	a.sigma = wide.AddModulo512(a.sigma[:], m[:])

	compress.G(&zero, &a.h, &a.n, &a.h)
	compress.G(&zero, &a.h, &a.sigma, &a.h)
}

// digest copies the leading bytes of the chaining value into out.
func (a *hasher) digest(out []byte) {
	copy(out, a.h[:])
}

// pad right aligns rem in a block behind a single 0x01 marker byte.
func pad(rem []byte) (m block) {
	if len(rem) >= consts.BlockLen {
		panic("remainder must be shorter than a block")
	}
	m[consts.BlockLen-1-len(rem)] = 0x01
	copy(m[consts.BlockLen-len(rem):], rem)
	return m
}

//
// driving the hasher over a whole message
//

// hashInto computes the digest of msg into out, which must have the size of w.
// Full blocks are taken from the end of the message toward the start, and ctx
// is polled every CheckInterval blocks.
func hashInto(ctx context.Context, msg []byte, w Width, out []byte) error {
	a := newHasher(w)

	end, blocks := len(msg), 0
	for ; end >= consts.BlockLen; end -= consts.BlockLen {
		if blocks%CheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		a.consume((*block)(msg[end-consts.BlockLen : end]))
		blocks++
	}

	a.finalize(msg[:end])
	a.digest(out)
	return nil
}
