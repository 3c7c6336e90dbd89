// Package gf implements arithmetic in the finite field GF(2^8) reduced by the polynomial 283 (0x11B).
//
// Multiplication and inversion are served from lookup tables built once at package
// initialization from the shift-and-reduce and extended-Euclid reference algorithms.
package gf

import "math/bits"

// Modulus is the irreducible reduction polynomial x^8 + x^4 + x^3 + x + 1.
const Modulus = 0x11B

//nolint:gochecknoglobals
var (
	mulTable [256][256]byte
	invTable [256]byte
)

//nolint:gochecknoinits
func init() {
	for a := range 256 {
		for b := range 256 {
			mulTable[a][b] = mulSlow(byte(a), byte(b))
		}

		invTable[a] = inverseSlow(byte(a))
	}
}

// Mul returns the field product of a and b.
func Mul(a, b byte) byte {
	return mulTable[a][b]
}

// Inverse returns the multiplicative inverse of v.
// Zero has no inverse and maps to zero.
func Inverse(v byte) byte {
	return invTable[v]
}

// Pow2 returns the field element 2 raised to t, computed by repeated doubling.
func Pow2(t int) byte {
	r := byte(1)

	for range t {
		r = Mul(r, 2)
	}

	return r
}

// mulSlow forms the carry-less product of a and b and reduces it by the modulus,
// aligned to the product's current degree, until the degree drops below 8.
func mulSlow(a, b byte) byte {
	product := polyMul(uint16(a), uint16(b))

	for deg := degree(product); deg >= 8; deg = degree(product) {
		product ^= Modulus << (deg - 8)
	}

	return byte(product)
}

// inverseSlow runs the extended Euclidean algorithm over GF(2)[x] against the modulus.
// The invariant s_i * v = r_i (mod Modulus) holds for both tracked remainders.
func inverseSlow(v byte) byte {
	if v == 0 {
		return 0
	}

	r0, r1 := uint16(Modulus), uint16(v)
	s0, s1 := uint16(0), uint16(1)

	for r1 != 1 {
		q, r := polyDivMod(r0, r1)
		r0, r1 = r1, r
		s0, s1 = s1, s0^polyMul(q, s1)
	}

	return byte(s1)
}

// polyMul multiplies two polynomials over GF(2) without reduction.
func polyMul(a, b uint16) uint16 {
	var product uint16

	for i := range bits.Len16(b) {
		if b>>i&1 == 1 {
			product ^= a << i
		}
	}

	return product
}

// polyDivMod divides a by b over GF(2). b must be non-zero.
func polyDivMod(a, b uint16) (q, r uint16) {
	db := degree(b)
	r = a

	for degree(r) >= db {
		shift := degree(r) - db
		q |= 1 << shift
		r ^= b << shift
	}

	return q, r
}

// degree returns the degree of p, or -1 for the zero polynomial.
func degree(p uint16) int {
	return bits.Len16(p) - 1
}
