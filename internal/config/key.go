package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/idelchi/gogen/pkg/key"

	"github.com/idelchi/bksq/pkg/bksq"
)

// ErrNoKey is returned when a command needs a key and none was given.
var ErrNoKey = errors.New("a key is required: use --key, --key-file or BKSQ_KEY")

// ResolveKey decodes the key given by value or read from the key file.
func (c *Config) ResolveKey() (bksq.Key, error) {
	var encoded string

	switch {
	case c.Key != "":
		encoded = c.Key
	case c.KeyFile != "":
		data, err := os.ReadFile(filepath.Clean(c.KeyFile))
		if err != nil {
			return bksq.Key{}, fmt.Errorf("reading key file: %w", err)
		}

		encoded = strings.TrimSpace(string(data))
	default:
		return bksq.Key{}, ErrNoKey
	}

	raw, err := key.FromHex(encoded)
	if err != nil {
		return bksq.Key{}, fmt.Errorf("decoding key: %w", err)
	}

	if len(raw) != bksq.KeySize {
		return bksq.Key{}, fmt.Errorf("%w: key must be %d bytes (%d hex characters), got %d",
			bksq.ErrInvalidKeyLength, bksq.KeySize, 2*bksq.KeySize, len(raw))
	}

	return bksq.Key(raw), nil
}
