package loader

import (
	"errors"
	"math/rand"
)

// ErrTooFewIndices is returned when a permutation cannot fill the requested
// number of blocks.
var ErrTooFewIndices = errors.New("fewer indices than blocks")

// Permutation returns a random permutation of 0..n-1 drawn from seed.
func Permutation(n int, seed int64) []int {
	return rand.New(rand.NewSource(seed)).Perm(n)
}

// Blocks splits perm into nBlocks contiguous blocks of ceil(len/nBlocks)
// indices, the last one possibly shorter. When that chunking would leave fewer
// than nBlocks blocks (e.g. 5 indices into 4 blocks) the sizes are balanced
// instead, the first len%nBlocks blocks getting one extra index.
// The blocks are copies; perm is not modified.
func Blocks(perm []int, nBlocks int) ([][]int, error) {
	n := len(perm)
	if nBlocks < 1 || n < nBlocks {
		return nil, ErrTooFewIndices
	}

	size := (n + nBlocks - 1) / nBlocks
	if (n+size-1)/size < nBlocks {
		return balanced(perm, nBlocks), nil
	}

	blocks := make([][]int, 0, nBlocks)
	for s := 0; s < n; s += size {
		e := min(s+size, n)
		b := make([]int, e-s)
		copy(b, perm[s:e])
		blocks = append(blocks, b)
	}
	return blocks, nil
}

func balanced(perm []int, nBlocks int) [][]int {
	n := len(perm)
	per := n / nBlocks
	remainder := n % nBlocks

	blocks := make([][]int, nBlocks)
	idx := 0
	for i := range blocks {
		sz := per
		if i < remainder {
			sz++
		}
		blocks[i] = make([]int, sz)
		copy(blocks[i], perm[idx:idx+sz])
		idx += sz
	}
	return blocks
}

// Concat joins blocks in order, skipping the block at index skip (-1 keeps all).
func Concat(blocks [][]int, skip int) []int {
	var out []int
	for i, b := range blocks {
		if i == skip {
			continue
		}
		out = append(out, b...)
	}
	return out
}
