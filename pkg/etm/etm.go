// Package etm provides authenticated encryption by composing BKSQ counter mode with HMAC in
// Encrypt-then-MAC order.
//
// The tag authenticates the initial counter block (nonce followed by a zero counter) and the
// ciphertext, so a receiver can reject forged data before decrypting anything.
package etm

import (
	"fmt"

	"github.com/idelchi/bksq/pkg/bksq"
	"github.com/idelchi/bksq/pkg/ctr"
	"github.com/idelchi/bksq/pkg/hmac"
)

// TagSize is the authentication tag size in bytes.
const TagSize = hmac.Size

// Seal encrypts c.Data in place and returns the tag over the resulting ciphertext.
// No tag is computed when the context is invalid.
func Seal(c ctr.Context) (bksq.Block, error) {
	return seal(c, ctr.Crypt)
}

// SealParallel is Seal with the counter-mode pass spread over workers goroutines.
func SealParallel(c ctr.Context, workers int) (bksq.Block, error) {
	return seal(c, func(c ctr.Context) error { return ctr.CryptParallel(c, workers) })
}

// Open verifies tag against the ciphertext in c.Data and, only if it matches, decrypts in place.
func Open(c ctr.Context, tag bksq.Block) error {
	return open(c, tag, ctr.Crypt)
}

// OpenParallel is Open with the counter-mode pass spread over workers goroutines.
func OpenParallel(c ctr.Context, tag bksq.Block, workers int) error {
	return open(c, tag, func(c ctr.Context) error { return ctr.CryptParallel(c, workers) })
}

// Tag computes the tag for ciphertext already held in c.Data.
func Tag(c ctr.Context) (bksq.Block, error) {
	if err := c.Validate(); err != nil {
		return bksq.Block{}, err
	}

	prefix := ctr.InitialCounter(c.Nonce)

	return tag(c, prefix)
}

func seal(c ctr.Context, crypt func(ctr.Context) error) (bksq.Block, error) {
	if err := c.Validate(); err != nil {
		return bksq.Block{}, fmt.Errorf("encrypting: %w", err)
	}

	prefix := ctr.InitialCounter(c.Nonce)

	if err := crypt(c); err != nil {
		return bksq.Block{}, fmt.Errorf("encrypting: %w", err)
	}

	return tag(c, prefix)
}

func open(c ctr.Context, want bksq.Block, crypt func(ctr.Context) error) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("decrypting: %w", err)
	}

	prefix := ctr.InitialCounter(c.Nonce)

	got, err := tag(c, prefix)
	if err != nil {
		return err
	}

	if !hmac.Equal(got, want) {
		return bksq.ErrAuthentication
	}

	if err := crypt(c); err != nil {
		return fmt.Errorf("decrypting: %w", err)
	}

	return nil
}

func tag(c ctr.Context, prefix bksq.Block) (bksq.Block, error) {
	t, err := hmac.Sum(c.Data, c.Key[:], prefix[:])
	if err != nil {
		return bksq.Block{}, fmt.Errorf("authenticating: %w", err)
	}

	return t, nil
}
