package bksq

import "github.com/idelchi/bksq/pkg/gf"

// Theta coefficients; the inverse matrix over GF(2^8) has 246 on the diagonal and 247 elsewhere.
const (
	thetaDiag        = 3
	thetaOffDiag     = 2
	thetaInvDiag     = 246
	thetaInvOffDiag  = 247
	thetaGroupLength = 3
)

// Theta mixes each 3-byte group of x with the circulant matrix (3 2 2).
func Theta(x Block) Block {
	return mix(x, thetaDiag, thetaOffDiag)
}

// ThetaInverse undoes Theta.
func ThetaInverse(x Block) Block {
	return mix(x, thetaInvDiag, thetaInvOffDiag)
}

func mix(x Block, diag, off byte) Block {
	var out Block

	for g := 0; g < BlockSize; g += thetaGroupLength {
		a, b, c := x[g], x[g+1], x[g+2]

		out[g] = gf.Mul(a, diag) ^ gf.Mul(b, off) ^ gf.Mul(c, off)
		out[g+1] = gf.Mul(a, off) ^ gf.Mul(b, diag) ^ gf.Mul(c, off)
		out[g+2] = gf.Mul(a, off) ^ gf.Mul(b, off) ^ gf.Mul(c, diag)
	}

	return out
}
