// Package bksq implements the BKSQ block cipher, a 10-round substitution-permutation network over
// 96-bit blocks with 96-bit keys.
//
// Each round applies the theta diffusion layer, the byte-wise S-box, a fixed byte permutation and a
// round-key XOR. Before the first round the plaintext passes through theta-inverse and is whitened
// with the raw key. Only the encryption direction exists; modes built on top (counter mode,
// Davies-Meyer hashing) never need the inverse permutation.
//
// The package also defines the sentinel errors and status codes shared by the modes of operation.
package bksq
