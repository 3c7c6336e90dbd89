package bksq

const (
	// BlockSize is the cipher block size in bytes.
	BlockSize = 12
	// KeySize is the cipher key size in bytes.
	KeySize = 12
	// Rounds is the number of full rounds applied after key whitening.
	Rounds = 10
)

// Block is a single 96-bit cipher block.
type Block [BlockSize]byte

// Key is a 96-bit cipher key or round key.
type Key [KeySize]byte

// Xor returns the byte-wise XOR of b and o.
func (b Block) Xor(o Block) Block {
	for i := range b {
		b[i] ^= o[i]
	}

	return b
}

func addRoundKey(b Block, k Key) Block {
	return b.Xor(Block(k))
}
