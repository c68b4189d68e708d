package aes

import "math/bits"

// sbox FIPS-197 Figure 7. S-box substitution values generation
var sbox = func() (sbox [256]byte) {
	// p walks every non-zero element as powers of the generator 3, q tracks its inverse
	var p, q uint8 = 1, 1
	for {
		// multiply p by 3
		p ^= xtime(p)

		// divide q by 3 (equals multiplication by 0xf6)
		q ^= q << 1
		q ^= q << 2
		q ^= q << 4
		if q&0x80 != 0 {
			q ^= 0x09
		}

		// affine transformation
		sbox[p] = q ^ bits.RotateLeft8(q, 1) ^ bits.RotateLeft8(q, 2) ^ bits.RotateLeft8(q, 3) ^ bits.RotateLeft8(q, 4) ^ 0x63

		if p == 1 {
			break
		}
	}

	// 0 has no inverse
	sbox[0] = 0x63
	return sbox
}()

// invSbox FIPS-197 Figure 14. Inverse S-box substitution values
var invSbox = func() (inv [256]byte) {
	for i := range 256 {
		inv[sbox[i]] = byte(i)
	}
	return inv
}()

// roundConstants first byte of Rcon[i], powers of x mod poly. Index 0 is never used by the key schedule.
var roundConstants = [15]byte{
	0x00,
	0x01,
	0x02,
	0x04,
	0x08,
	0x10,
	0x20,
	0x40,
	0x80,
	0x1b,
	0x36,
	0x6c,
	0xd8,
	0xab,
	0x4d,
}

// SBox forward substitution of b
func SBox(b byte) byte {
	return sbox[b]
}

// InvSBox inverse substitution of b
func InvSBox(b byte) byte {
	return invSbox[b]
}

// RoundConstant first byte of Rcon[i]. Panics for i outside [0, 15).
func RoundConstant(i int) byte {
	return roundConstants[i]
}
