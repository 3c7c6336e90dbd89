package encryption

import (
	"bytes"
	"crypto/rand"
	"fmt"

	"github.com/idelchi/bksq/pkg/bksq"
	"github.com/idelchi/bksq/pkg/ctr"
	"github.com/idelchi/bksq/pkg/etm"
)

const (
	envelopeMagic   = "BKSQ"
	envelopeVersion = byte(1)

	envelopeFlagExec = 0x01
)

const (
	envelopeHeaderSize = len(envelopeMagic) + 2
	envelopeBodyOffset = envelopeHeaderSize + ctr.NonceSize
	// EnvelopeOverhead is the number of bytes an envelope adds to its plaintext.
	EnvelopeOverhead = envelopeBodyOffset + etm.TagSize
)

func newEnvelopeHeader(executable bool) []byte {
	header := make([]byte, envelopeHeaderSize)
	copy(header, envelopeMagic)

	header[len(envelopeMagic)] = envelopeVersion

	if executable {
		header[len(envelopeMagic)+1] |= envelopeFlagExec
	}

	return header
}

func parseEnvelopeHeader(header []byte) (bool, error) {
	if len(header) != envelopeHeaderSize {
		return false, fmt.Errorf("%w: envelope header too short", ErrProcessing)
	}

	if !bytes.Equal(header[:len(envelopeMagic)], []byte(envelopeMagic)) {
		return false, fmt.Errorf("%w: invalid envelope magic", ErrProcessing)
	}

	version := header[len(envelopeMagic)]
	if version != envelopeVersion {
		return false, fmt.Errorf("%w: unsupported envelope version %d", ErrProcessing, version)
	}

	flags := header[len(envelopeMagic)+1]
	if flags&^envelopeFlagExec != 0 {
		return false, fmt.Errorf("%w: unknown envelope flags %#x", ErrProcessing, flags)
	}

	return flags&envelopeFlagExec != 0, nil
}

// Seal wraps plaintext in an envelope under key with a fresh random nonce.
// The counter-mode pass uses up to workers goroutines.
func Seal(key bksq.Key, plaintext []byte, executable bool, workers int) ([]byte, error) {
	if len(plaintext) == 0 {
		return nil, ErrEmptyData
	}

	if len(plaintext)%bksq.BlockSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of %d and padding is not supported",
			bksq.ErrInvalidDataLength, len(plaintext), bksq.BlockSize)
	}

	if uint64(len(plaintext)) > ctr.MaxDataSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrTooLarge, len(plaintext))
	}

	out := make([]byte, EnvelopeOverhead+len(plaintext))
	copy(out, newEnvelopeHeader(executable))

	nonce := out[envelopeHeaderSize:envelopeBodyOffset]
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("generating nonce: %w", err)
	}

	body := out[envelopeBodyOffset : envelopeBodyOffset+len(plaintext)]
	copy(body, plaintext)

	tag, err := etm.SealParallel(ctr.Context{Data: body, Key: key, Nonce: nonce}, workers)
	if err != nil {
		return nil, fmt.Errorf("sealing: %w", err)
	}

	copy(out[envelopeBodyOffset+len(plaintext):], tag[:])

	return out, nil
}

// Open authenticates and decrypts an envelope, returning the plaintext and the executable flag.
// envelope is not modified.
func Open(key bksq.Key, envelope []byte, workers int) ([]byte, bool, error) {
	if len(envelope) < EnvelopeOverhead {
		return nil, false, fmt.Errorf("%w: envelope too short", ErrProcessing)
	}

	executable, err := parseEnvelopeHeader(envelope[:envelopeHeaderSize])
	if err != nil {
		return nil, false, err
	}

	nonce := envelope[envelopeHeaderSize:envelopeBodyOffset]
	body := envelope[envelopeBodyOffset : len(envelope)-etm.TagSize]
	tag := bksq.Block(envelope[len(envelope)-etm.TagSize:])

	plaintext := bytes.Clone(body)

	if err := etm.OpenParallel(ctr.Context{Data: plaintext, Key: key, Nonce: nonce}, tag, workers); err != nil {
		return nil, false, fmt.Errorf("opening: %w", err)
	}

	return plaintext, executable, nil
}
