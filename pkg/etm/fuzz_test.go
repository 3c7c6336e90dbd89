package etm_test

import (
	"bytes"
	"testing"

	fuzz "github.com/trailofbits/go-fuzz-utils"

	"github.com/idelchi/bksq/pkg/bksq"
	"github.com/idelchi/bksq/pkg/ctr"
	"github.com/idelchi/bksq/pkg/etm"
)

// FuzzSealOpen seals random messages under random keys and nonces, then checks that opening
// restores the plaintext and that a flipped ciphertext byte is rejected.
func FuzzSealOpen(f *testing.F) {
	f.Add(bytes.Repeat([]byte{0x01}, 64))
	f.Add(bytes.Repeat([]byte{0xa5}, 256))

	f.Fuzz(func(t *testing.T, data []byte) {
		tp, err := fuzz.NewTypeProvider(data)
		if err != nil {
			t.Skip(err)
		}

		keyBytes, err := tp.GetBytes()
		if err != nil || len(keyBytes) < bksq.KeySize {
			t.Skip("not enough key material")
		}

		nonce, err := tp.GetBytes()
		if err != nil || len(nonce) < ctr.NonceSize {
			t.Skip("not enough nonce material")
		}

		message, err := tp.GetBytes()
		if err != nil {
			t.Skip(err)
		}

		blocks := len(message) / bksq.BlockSize
		if blocks == 0 {
			t.Skip("message shorter than one block")
		}

		plaintext := bytes.Clone(message[:blocks*bksq.BlockSize])
		c := ctr.Context{Data: bytes.Clone(plaintext), Key: bksq.Key(keyBytes[:bksq.KeySize]), Nonce: nonce[:ctr.NonceSize]}

		tag, err := etm.Seal(c)
		if err != nil {
			t.Fatalf("seal: %v", err)
		}

		flip, err := tp.GetUint16()
		if err != nil {
			flip = 0
		}

		tampered := c
		tampered.Data = bytes.Clone(c.Data)
		tampered.Data[int(flip)%len(tampered.Data)] ^= 0x80

		if err := etm.Open(tampered, tag); err == nil {
			t.Fatalf("tampered ciphertext accepted")
		}

		if err := etm.Open(c, tag); err != nil {
			t.Fatalf("open: %v", err)
		}

		if !bytes.Equal(plaintext, c.Data) {
			t.Fatalf("round trip mismatch: %x != %x", plaintext, c.Data)
		}
	})
}
