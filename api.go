// Package stribog implements the GOST R 34.11-2012 hash function, also known
// as Streebog, with 256 and 512 bit digests.
//
// Messages and digests use the byte order in which the standard writes its
// examples: the last byte of the message is the least significant one, and it
// belongs to the first block that is compressed.
package stribog

import (
	"context"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"

	"github.com/zeebo/stribog/internal/consts"
)

// Width selects the digest size in bits.
type Width int

const (
	Width256 Width = 256
	Width512 Width = 512
)

// CheckInterval is the number of blocks SumContext processes between checks
// of its context.
const CheckInterval = 1024

var (
	// ErrInvalidWidth is returned for widths other than 256 and 512.
	ErrInvalidWidth = errors.New("stribog: invalid digest width")

	// ErrNotByteAligned is returned by SumBits for bit lengths that are not a
	// multiple of eight. Such messages are not supported.
	ErrNotByteAligned = errors.New("stribog: message length is not a whole number of bytes")

	// ErrLength is returned by SumBits when the bit length does not describe
	// the provided bytes.
	ErrLength = errors.New("stribog: bit length does not match message")
)

// Valid reports if w is a supported width.
func (w Width) Valid() bool { return w == Width256 || w == Width512 }

// Size returns the number of bytes in a digest of width w, or 0 if w is not
// valid.
func (w Width) Size() int {
	switch w {
	case Width256:
		return consts.Size256
	case Width512:
		return consts.Size512
	default:
		return 0
	}
}

func (w Width) String() string {
	if !w.Valid() {
		return "Width(" + strconv.Itoa(int(w)) + ")"
	}
	return strconv.Itoa(int(w))
}

// Sum256 returns the 256 bit digest of msg.
func Sum256(msg []byte) (out [consts.Size256]byte) {
	_ = hashInto(context.Background(), msg, Width256, out[:])
	return out
}

// Sum512 returns the 512 bit digest of msg.
func Sum512(msg []byte) (out [consts.Size512]byte) {
	_ = hashInto(context.Background(), msg, Width512, out[:])
	return out
}

// Sum returns the digest of msg with the requested width. The digest has
// w.Size() bytes.
func Sum(msg []byte, w Width) ([]byte, error) {
	if !w.Valid() {
		return nil, ErrInvalidWidth
	}
	out := make([]byte, w.Size())
	_ = hashInto(context.Background(), msg, w, out)
	return out, nil
}

// SumContext is like Sum, but stops with the context's error if ctx is done
// before the digest is complete. No partial digest is returned.
func SumContext(ctx context.Context, msg []byte, w Width) ([]byte, error) {
	if !w.Valid() {
		return nil, ErrInvalidWidth
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]byte, w.Size())
	if err := hashInto(ctx, msg, w, out); err != nil {
		return nil, err
	}
	return out, nil
}

// SumBits hashes a message whose length is given in bits. Only lengths that
// cover exactly the bytes of msg are accepted.
func SumBits(msg []byte, bits uint64, w Width) ([]byte, error) {
	if !w.Valid() {
		return nil, ErrInvalidWidth
	}
	if bits%8 != 0 {
		return nil, ErrNotByteAligned
	}
	if bits/8 != uint64(len(msg)) {
		return nil, ErrLength
	}
	return Sum(msg, w)
}

// HexString formats a digest as uppercase hexadecimal without separators.
func HexString(digest []byte) string {
	return strings.ToUpper(hex.EncodeToString(digest))
}

// SumHex returns HexString of the digest of msg.
func SumHex(msg []byte, w Width) (string, error) {
	digest, err := Sum(msg, w)
	if err != nil {
		return "", err
	}
	return HexString(digest), nil
}
