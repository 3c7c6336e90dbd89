// Package hmac implements HMAC over the Davies-Meyer BKSQ hash.
//
// Keys must be exactly one block (96 bits); unlike RFC 2104 there is no hashing of long keys or
// padding of short ones. An optional block-aligned prefix is absorbed ahead of the data inside the
// inner hash, which lets callers bind context such as a nonce into the tag.
package hmac

import (
	"crypto/subtle"
	"fmt"

	"github.com/idelchi/bksq/pkg/bksq"
	"github.com/idelchi/bksq/pkg/dmhash"
)

const (
	// KeySize is the required key size in bytes.
	KeySize = bksq.BlockSize
	// Size is the tag size in bytes.
	Size = dmhash.Size

	ipad = 0x36
	opad = 0x5c
)

// MAC is a streaming HMAC computation.
type MAC struct {
	inner    dmhash.Digest
	outerPad bksq.Block
}

// New starts a MAC under key with prefix already absorbed. prefix may be nil.
func New(key, prefix []byte) (*MAC, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d bits", bksq.ErrInvalidKeyLength, 8*len(key))
	}

	if len(prefix)%dmhash.BlockSize != 0 {
		return nil, fmt.Errorf("prefix: %w: got %d bits", bksq.ErrInvalidDataLength, 8*len(prefix))
	}

	m := &MAC{outerPad: padKey(key, opad)}

	innerPad := padKey(key, ipad)
	_, _ = m.inner.Write(innerPad[:])
	_, _ = m.inner.Write(prefix)

	return m, nil
}

// Write absorbs message data. It never returns an error.
func (m *MAC) Write(p []byte) (int, error) {
	return m.inner.Write(p)
}

// Sum returns the tag over everything written so far.
// It fails if the data written so far is not block-aligned.
func (m *MAC) Sum() (bksq.Block, error) {
	inner, err := m.inner.Sum()
	if err != nil {
		return bksq.Block{}, fmt.Errorf("data: %w", err)
	}

	var outer dmhash.Digest

	_, _ = outer.Write(m.outerPad[:])
	_, _ = outer.Write(inner[:])

	return outer.Sum()
}

// Sum returns tag = H((key ^ opad) || H((key ^ ipad) || prefix || data)).
// prefix may be nil. Both prefix and data must be block-aligned.
//
// The prefix is prepended to data, never used in place of it, so Sum(data, key, prefix)
// equals Sum(prefix||data, key, nil). A prefix of nonce||0^6 with the ciphertext as data
// yields the Encrypt-then-MAC tag.
func Sum(data, key, prefix []byte) (bksq.Block, error) {
	m, err := New(key, prefix)
	if err != nil {
		return bksq.Block{}, err
	}

	if len(data)%dmhash.BlockSize != 0 {
		return bksq.Block{}, fmt.Errorf("data: %w: got %d bits", bksq.ErrInvalidDataLength, 8*len(data))
	}

	_, _ = m.Write(data)

	return m.Sum()
}

// Equal compares two tags in constant time.
func Equal(a, b bksq.Block) bool {
	return subtle.ConstantTimeCompare(a[:], b[:]) == 1
}

// Verify recomputes the tag over data and prefix and compares it to tag.
func Verify(data, key, prefix []byte, tag bksq.Block) error {
	want, err := Sum(data, key, prefix)
	if err != nil {
		return err
	}

	if !Equal(want, tag) {
		return bksq.ErrAuthentication
	}

	return nil
}

func padKey(key []byte, pad byte) bksq.Block {
	var out bksq.Block

	for i := range out {
		out[i] = key[i] ^ pad
	}

	return out
}
