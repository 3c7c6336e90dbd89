// Package ctr turns the BKSQ block cipher into a stream cipher in counter mode.
//
// The 96-bit counter block is the 48-bit nonce followed by a 48-bit big-endian counter that starts
// at zero. Every data block is XORed in place with the encryption of the current counter block, so
// encryption and decryption are the same operation.
package ctr

import (
	"fmt"
	"unsafe"

	"golang.org/x/sync/errgroup"

	"github.com/idelchi/bksq/pkg/bksq"
)

const (
	// NonceSize is the nonce length in bytes, the high half of the counter block.
	NonceSize = bksq.BlockSize / 2
	// MaxBlocks is the number of distinct counter values available to one nonce.
	MaxBlocks = 1 << (8 * (bksq.BlockSize - NonceSize))
	// MaxDataSize is the largest data buffer one nonce can encrypt.
	MaxDataSize = MaxBlocks * bksq.BlockSize
)

// Context holds the inputs of a counter-mode pass.
// Data is transformed in place and must not overlap Nonce.
type Context struct {
	// Data is the block-aligned buffer to encrypt or decrypt.
	Data []byte

	// Key is the cipher key.
	Key bksq.Key

	// Nonce fills the high half of every counter block.
	Nonce []byte
}

// Validate checks the context without touching the data.
func (c Context) Validate() error {
	if len(c.Data) == 0 || len(c.Data)%bksq.BlockSize != 0 {
		return fmt.Errorf("%w: got %d bits", bksq.ErrInvalidDataLength, 8*len(c.Data))
	}

	if len(c.Nonce) != NonceSize {
		return fmt.Errorf("%w: got %d bits", bksq.ErrInvalidNonceLength, 8*len(c.Nonce))
	}

	if uint64(len(c.Data)/bksq.BlockSize) > MaxBlocks {
		return fmt.Errorf("%w: %d blocks", bksq.ErrCounterExhausted, len(c.Data)/bksq.BlockSize)
	}

	if overlaps(c.Data, c.Nonce) {
		return bksq.ErrAliasedBuffers
	}

	return nil
}

// InitialCounter returns the counter block for block index zero: the nonce followed by zeros.
// The nonce must be NonceSize bytes.
func InitialCounter(nonce []byte) bksq.Block {
	var block bksq.Block

	copy(block[:NonceSize], nonce)

	return block
}

// Crypt encrypts or decrypts c.Data in place.
func Crypt(c Context) error {
	if err := c.Validate(); err != nil {
		return err
	}

	cipher := bksq.NewCipher(c.Key)
	counter := InitialCounter(c.Nonce)

	xorKeyStream(cipher, &counter, c.Data)

	return nil
}

// CryptParallel produces the same result as Crypt, encrypting contiguous segments of the data
// concurrently on up to workers goroutines.
func CryptParallel(c Context, workers int) error {
	if err := c.Validate(); err != nil {
		return err
	}

	blocks := len(c.Data) / bksq.BlockSize

	if workers <= 1 || blocks < 2*segmentBlocks {
		return Crypt(c)
	}

	cipher := bksq.NewCipher(c.Key)
	base := InitialCounter(c.Nonce)

	group := errgroup.Group{}
	group.SetLimit(workers)

	for start := 0; start < blocks; start += segmentBlocks {
		end := min(start+segmentBlocks, blocks)
		segment := c.Data[start*bksq.BlockSize : end*bksq.BlockSize]

		group.Go(func() error {
			counter := base
			SetCounter(&counter, uint64(start))

			xorKeyStream(cipher, &counter, segment)

			return nil
		})
	}

	return group.Wait()
}

// segmentBlocks is the number of blocks each parallel task processes.
const segmentBlocks = 4096

func xorKeyStream(cipher *bksq.Cipher, counter *bksq.Block, data []byte) {
	var keystream bksq.Block

	for off := 0; off < len(data); off += bksq.BlockSize {
		cipher.Encrypt(&keystream, counter)

		block := data[off : off+bksq.BlockSize]
		for i := range block {
			block[i] ^= keystream[i]
		}

		Increment(counter)
	}
}

// Increment adds one to the big-endian counter in the low half of block.
// The carry never reaches the nonce: an all-ones counter wraps to zero.
func Increment(block *bksq.Block) {
	for i := bksq.BlockSize - 1; i >= NonceSize; i-- {
		block[i]++
		if block[i] != 0 {
			return
		}
	}
}

// SetCounter stores n, reduced to 48 bits, as the big-endian counter of block.
func SetCounter(block *bksq.Block, n uint64) {
	for i := bksq.BlockSize - 1; i >= NonceSize; i-- {
		block[i] = byte(n)
		n >>= 8
	}
}

// overlaps reports whether a and b share any memory.
func overlaps(a, b []byte) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}

	aStart := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	bStart := uintptr(unsafe.Pointer(unsafe.SliceData(b)))

	return aStart < bStart+uintptr(len(b)) && bStart < aStart+uintptr(len(a))
}
