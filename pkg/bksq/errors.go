package bksq

import "errors"

var (
	// ErrInvalidDataLength is returned when data is not a whole number of blocks.
	ErrInvalidDataLength = errors.New("data length is not a positive multiple of the block size")
	// ErrInvalidNonceLength is returned when a nonce is not exactly half a block.
	ErrInvalidNonceLength = errors.New("nonce must be 48 bits")
	// ErrInvalidKeyLength is returned when a MAC key is not exactly one block.
	ErrInvalidKeyLength = errors.New("key must be 96 bits")
	// ErrCounterExhausted is returned when data would need more counter values than 48 bits provide.
	ErrCounterExhausted = errors.New("counter space exhausted")
	// ErrAliasedBuffers is returned when the data buffer overlaps the nonce.
	ErrAliasedBuffers = errors.New("data buffer overlaps nonce")
	// ErrAuthentication is returned when a tag does not match the ciphertext.
	ErrAuthentication = errors.New("message authentication failed")
)

// Code is the numeric status of a toolkit operation. Zero means success.
type Code uint8

const (
	// CodeOK reports success.
	CodeOK Code = iota
	// CodeInvalidDataLength matches ErrInvalidDataLength.
	CodeInvalidDataLength
	// CodeInvalidNonceLength matches ErrInvalidNonceLength.
	CodeInvalidNonceLength
	// CodeInvalidKeyLength matches ErrInvalidKeyLength.
	CodeInvalidKeyLength
	// CodeCounterExhausted matches ErrCounterExhausted.
	CodeCounterExhausted
	// CodeAliasedBuffers matches ErrAliasedBuffers.
	CodeAliasedBuffers
	// CodeAuthentication matches ErrAuthentication.
	CodeAuthentication
	// CodeUnknown is any other error.
	CodeUnknown
)

// CodeOf maps an error returned by this module, possibly wrapped, to its status code.
func CodeOf(err error) Code {
	switch {
	case err == nil:
		return CodeOK
	case errors.Is(err, ErrInvalidDataLength):
		return CodeInvalidDataLength
	case errors.Is(err, ErrInvalidNonceLength):
		return CodeInvalidNonceLength
	case errors.Is(err, ErrInvalidKeyLength):
		return CodeInvalidKeyLength
	case errors.Is(err, ErrCounterExhausted):
		return CodeCounterExhausted
	case errors.Is(err, ErrAliasedBuffers):
		return CodeAliasedBuffers
	case errors.Is(err, ErrAuthentication):
		return CodeAuthentication
	default:
		return CodeUnknown
	}
}

// String returns a short lower-case description of the code.
func (c Code) String() string {
	switch c {
	case CodeOK:
		return "ok"
	case CodeInvalidDataLength:
		return "invalid data length"
	case CodeInvalidNonceLength:
		return "invalid nonce length"
	case CodeInvalidKeyLength:
		return "invalid key length"
	case CodeCounterExhausted:
		return "counter exhausted"
	case CodeAliasedBuffers:
		return "aliased buffers"
	case CodeAuthentication:
		return "authentication failed"
	default:
		return "unknown"
	}
}
