package utils

import (
	"math/bits"

	"lukechampine.com/uint128"
)

// BitDistance Hamming distance between two 128-bit blocks
func BitDistance(a, b [16]byte) int {
	d := uint128.FromBytes(a[:]).Xor(uint128.FromBytes(b[:]))
	return bits.OnesCount64(d.Lo) + bits.OnesCount64(d.Hi)
}
