// Package dmhash implements a Davies-Meyer compression hash over the BKSQ block cipher.
//
// Each 96-bit message block is used as the cipher key to encrypt the running chaining value, and
// the result is XORed with that chaining value: H_i = E(H_{i-1}, M_i) ^ H_{i-1}, starting from an
// all-zero H_0. No padding is applied; messages must be a whole number of blocks.
package dmhash

import (
	"fmt"

	"github.com/idelchi/bksq/pkg/bksq"
)

const (
	// Size is the digest size in bytes.
	Size = bksq.BlockSize
	// BlockSize is the message block size in bytes.
	BlockSize = bksq.BlockSize
)

// Sum returns the digest of data, which must be a multiple of BlockSize long.
func Sum(data []byte) (bksq.Block, error) {
	if len(data)%BlockSize != 0 {
		return bksq.Block{}, fmt.Errorf("%w: got %d bits", bksq.ErrInvalidDataLength, 8*len(data))
	}

	var h bksq.Block

	for off := 0; off < len(data); off += BlockSize {
		h = compress(h, data[off:off+BlockSize])
	}

	return h, nil
}

func compress(h bksq.Block, message []byte) bksq.Block {
	return bksq.EncryptBlock(h, bksq.Key(message)).Xor(h)
}

// Digest is a streaming Davies-Meyer hash. The zero value is ready to use.
// Data may arrive in chunks of any size; only the total length must be block-aligned.
type Digest struct {
	h       bksq.Block
	pending [BlockSize]byte
	n       int
	written uint64
}

// New returns an empty Digest.
func New() *Digest {
	return &Digest{}
}

// Write absorbs p. It never returns an error.
func (d *Digest) Write(p []byte) (int, error) {
	total := len(p)
	d.written += uint64(total)

	if d.n > 0 {
		k := copy(d.pending[d.n:], p)
		d.n += k
		p = p[k:]

		if d.n < BlockSize {
			return total, nil
		}

		d.h = compress(d.h, d.pending[:])
		d.n = 0
	}

	for len(p) >= BlockSize {
		d.h = compress(d.h, p[:BlockSize])
		p = p[BlockSize:]
	}

	d.n = copy(d.pending[:], p)

	return total, nil
}

// Sum returns the digest of everything written so far without changing the state.
// It fails if the input so far ends inside a block.
func (d *Digest) Sum() (bksq.Block, error) {
	if d.n != 0 {
		return bksq.Block{}, fmt.Errorf("%w: got %d bits", bksq.ErrInvalidDataLength, 8*d.written)
	}

	return d.h, nil
}

// Reset returns the digest to its initial state.
func (d *Digest) Reset() {
	*d = Digest{}
}

// Size returns the digest size in bytes.
func (d *Digest) Size() int {
	return Size
}

// BlockSize returns the message block size in bytes.
func (d *Digest) BlockSize() int {
	return BlockSize
}
