package encryption

import (
	"sync"

	"github.com/idelchi/bksq/pkg/bksq"
)

// defaultBufferSize is a whole number of blocks close to 32KB.
const defaultBufferSize = (32 * 1024 / bksq.BlockSize) * bksq.BlockSize

// bufferPool provides reusable byte slices for streaming file reads.
//
//nolint:gochecknoglobals
var bufferPool = sync.Pool{
	New: func() any {
		buf := make([]byte, defaultBufferSize)

		return &buf
	},
}
