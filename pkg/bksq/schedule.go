package bksq

import "github.com/idelchi/bksq/pkg/gf"

// NextRoundKey derives round key t from round key t-1.
//
// The first 3-byte word mixes three S-boxed bytes of the last word and the round constant 2^t into
// the first word of prev; each following word is the XOR of the matching word of prev with the word
// just produced.
func NextRoundKey(prev Key, t int) Key {
	var next Key

	next[0] = prev[0] ^ SubByte(prev[10]) ^ gf.Pow2(t)
	next[1] = prev[1] ^ SubByte(prev[11])
	next[2] = prev[2] ^ SubByte(prev[9])

	for i := 3; i < KeySize; i++ {
		next[i] = prev[i] ^ next[i-3]
	}

	return next
}

// ExpandKey returns all round keys for key; index 0 is key itself.
func ExpandKey(key Key) [Rounds + 1]Key {
	var keys [Rounds + 1]Key

	keys[0] = key

	for t := 1; t <= Rounds; t++ {
		keys[t] = NextRoundKey(keys[t-1], t)
	}

	return keys
}
