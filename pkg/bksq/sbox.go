package bksq

import "github.com/idelchi/bksq/pkg/gf"

// affineConstant is the additive vector of the S-box affine map.
const affineConstant = 0x63

//nolint:gochecknoglobals
var sbox = func() [256]byte {
	var table [256]byte

	for v := range table {
		table[v] = affine(gf.Inverse(byte(v)))
	}

	return table
}()

// affine applies the fixed GF(2) affine map: bit i of the result is
// b[i] ^ b[i+4] ^ b[i+5] ^ b[i+6] ^ b[i+7] ^ c[i], indices taken mod 8.
func affine(v byte) byte {
	var out byte

	for i := range 8 {
		bit := v>>i ^ v>>((i+4)%8) ^ v>>((i+5)%8) ^ v>>((i+6)%8) ^ v>>((i+7)%8) ^ affineConstant>>i
		out |= (bit & 1) << i
	}

	return out
}

// SubByte substitutes a single byte: field inversion followed by the affine map.
func SubByte(v byte) byte {
	return sbox[v]
}

// SubBytes applies SubByte to every byte of x.
func SubBytes(x Block) Block {
	for i := range x {
		x[i] = sbox[x[i]]
	}

	return x
}
