package encryption

import "errors"

var (
	// ErrEmptyData is returned when attempting to encrypt an empty file.
	ErrEmptyData = errors.New("empty data")
	// ErrProcessing indicates a malformed envelope.
	ErrProcessing = errors.New("envelope processing error")
	// ErrTooLarge is returned for inputs beyond what one nonce can encrypt.
	ErrTooLarge = errors.New("input too large")
)
