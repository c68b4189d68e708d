package aes

// AES is based on the mathematical behavior of binary polynomials
// (polynomials over GF(2)) modulo the irreducible polynomial x⁸ + x⁴ + x³ + x + 1.
// Addition of these binary polynomials corresponds to binary xor.
// Reducing mod poly corresponds to binary xor with poly every
// time a 0x100 bit appears.
const poly = 1<<8 | 1<<4 | 1<<3 | 1<<1 | 1<<0 // x⁸ + x⁴ + x³ + x + 1

// xtime multiplies b by x modulo poly
func xtime(b byte) byte {
	if b&0x80 != 0 {
		return b<<1 ^ byte(poly&0xff)
	}
	return b << 1
}

// Mul multiplies a and b as GF(2) polynomials modulo poly
func Mul(a, b byte) (s byte) {
	for b != 0 {
		// Invariant: s ^ a*b is the product
		if b&1 != 0 {
			s ^= a
		}
		a = xtime(a)
		b >>= 1
	}
	return s
}
