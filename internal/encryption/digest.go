package encryption

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/idelchi/bksq/pkg/bksq"
	"github.com/idelchi/bksq/pkg/dmhash"
	"github.com/idelchi/bksq/pkg/hmac"
)

// blockSummer is satisfied by the streaming hash and MAC.
type blockSummer interface {
	io.Writer
	Sum() (bksq.Block, error)
}

// HashFile streams the file at path through the Davies-Meyer hash.
func HashFile(path string) (bksq.Block, error) {
	return sumFile(path, dmhash.New())
}

// MACFile streams the file at path through HMAC under key.
func MACFile(path string, key bksq.Key) (bksq.Block, error) {
	mac, err := hmac.New(key[:], nil)
	if err != nil {
		return bksq.Block{}, err
	}

	return sumFile(path, mac)
}

func sumFile(path string, summer blockSummer) (bksq.Block, error) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return bksq.Block{}, fmt.Errorf("opening input file: %w", err)
	}
	defer file.Close()

	buf, _ := bufferPool.Get().(*[]byte)
	defer bufferPool.Put(buf)

	if _, err := io.CopyBuffer(summer, file, *buf); err != nil {
		return bksq.Block{}, fmt.Errorf("reading input: %w", err)
	}

	sum, err := summer.Sum()
	if err != nil {
		return bksq.Block{}, fmt.Errorf("%s: %w", path, err)
	}

	return sum, nil
}
