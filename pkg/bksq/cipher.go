package bksq

// Cipher is a BKSQ instance with a pre-expanded key schedule.
// It is safe for concurrent use.
type Cipher struct {
	roundKeys [Rounds + 1]Key
}

// NewCipher expands key once for repeated block encryptions.
func NewCipher(key Key) *Cipher {
	return &Cipher{roundKeys: ExpandKey(key)}
}

// BlockSize returns the cipher's block size in bytes.
func (c *Cipher) BlockSize() int {
	return BlockSize
}

// Encrypt encrypts src into dst. dst and src may point to the same block.
func (c *Cipher) Encrypt(dst, src *Block) {
	state := addRoundKey(ThetaInverse(*src), c.roundKeys[0])

	for t := 1; t <= Rounds; t++ {
		state = round(state, c.roundKeys[t])
	}

	*dst = state
}

// EncryptBlock encrypts a single block with key, deriving round keys as it goes.
func EncryptBlock(plaintext Block, key Key) Block {
	state := addRoundKey(ThetaInverse(plaintext), key)
	roundKey := key

	for t := 1; t <= Rounds; t++ {
		roundKey = NextRoundKey(roundKey, t)
		state = round(state, roundKey)
	}

	return state
}

func round(state Block, roundKey Key) Block {
	return addRoundKey(Permute(SubBytes(Theta(state))), roundKey)
}
