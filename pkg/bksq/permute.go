package bksq

// permutation[i] is the input position moved to output position i.
//
//nolint:gochecknoglobals
var permutation = [BlockSize]int{0, 10, 8, 3, 1, 11, 6, 4, 2, 9, 7, 5}

// Permute shuffles the bytes of x into their fixed round positions.
func Permute(x Block) Block {
	var out Block

	for i, from := range permutation {
		out[i] = x[from]
	}

	return out
}
