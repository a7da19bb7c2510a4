package loader

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkPartition(t *testing.T, name string, perm []int, blocks [][]int, nBlocks int) {
	t.Helper()
	require.Len(t, blocks, nBlocks, name)

	// Each index must appear in exactly one block, in perm order.
	count := make([]int, len(perm))
	var flat []int
	for _, b := range blocks {
		assert.NotEmpty(t, b, "%s: empty block", name)
		for _, idx := range b {
			count[idx]++
		}
		flat = append(flat, b...)
	}
	for idx, c := range count {
		assert.Equal(t, 1, c, "%s: index %d seen %d times", name, idx, c)
	}
	assert.Equal(t, perm, flat, name)

	// Sizes differ by at most the ceil/remainder slack.
	size := (len(perm) + nBlocks - 1) / nBlocks
	for _, b := range blocks {
		assert.LessOrEqual(t, len(b), size, name)
	}
}

func TestBlocksPartition(t *testing.T) {
	for n := 1; n <= 40; n++ {
		for nBlocks := 1; nBlocks <= n; nBlocks++ {
			perm := Permutation(n, int64(n*100+nBlocks))
			blocks, err := Blocks(perm, nBlocks)
			require.NoError(t, err)
			checkPartition(t, fmt.Sprintf("n=%d blocks=%d", n, nBlocks), perm, blocks, nBlocks)
		}
	}
}

func TestBlocksCeilChunking(t *testing.T) {
	perm := []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}
	blocks, err := Blocks(perm, 4)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{9, 8, 7}, {6, 5, 4}, {3, 2, 1}, {0}}, blocks)

	// ceil(5/4) = 2 would only give 3 blocks.
	blocks, err = Blocks([]int{4, 3, 2, 1, 0}, 4)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{4, 3}, {2}, {1}, {0}}, blocks)
}

func TestBlocksTooFew(t *testing.T) {
	_, err := Blocks([]int{0, 1}, 3)
	assert.ErrorIs(t, err, ErrTooFewIndices)
	_, err = Blocks([]int{0, 1}, 0)
	assert.ErrorIs(t, err, ErrTooFewIndices)
}

func TestPermutationSeeded(t *testing.T) {
	a := Permutation(20, 42)
	assert.Equal(t, a, Permutation(20, 42))
	assert.ElementsMatch(t, Concat([][]int{a}, -1), Permutation(20, 7))
}

func TestConcat(t *testing.T) {
	blocks := [][]int{{1, 2}, {3}, {4, 5}}
	assert.Equal(t, []int{1, 2, 4, 5}, Concat(blocks, 1))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, Concat(blocks, -1))
}
