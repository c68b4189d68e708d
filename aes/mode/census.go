package mode

import (
	"git.gammaspectra.live/P2Pool/softaes/aes"
	"git.gammaspectra.live/P2Pool/softaes/types"
	"github.com/dolthub/swiss"
)

// Census describes how often identical blocks appear in an ECB ciphertext.
// Identical plaintext blocks under one key encrypt to identical ciphertext blocks, so Repeats > 0 leaks structure.
type Census struct {
	Total    int          `json:"total"`
	Distinct int          `json:"distinct"`
	Repeats  int          `json:"repeats"`
	Blocks   []BlockCount `json:"blocks,omitempty"`
}

type BlockCount struct {
	Block types.Block `json:"block"`
	Count int         `json:"count"`
}

// RepeatedBlocks counts the 16-byte blocks of ciphertext. A trailing partial block is zero padded.
// Blocks lists every block seen more than once, in order of first appearance.
func RepeatedBlocks(ciphertext []byte) Census {
	blocks := (len(ciphertext) + aes.BlockSize - 1) / aes.BlockSize
	counts := swiss.NewMap[types.Block, int](uint32(max(blocks, 1)))

	var order []types.Block
	for i := 0; i < len(ciphertext); i += aes.BlockSize {
		b := types.BlockFromBytes(ciphertext[i:min(i+aes.BlockSize, len(ciphertext))])
		n, ok := counts.Get(b)
		if !ok {
			order = append(order, b)
		}
		counts.Put(b, n+1)
	}

	census := Census{
		Total:    blocks,
		Distinct: counts.Count(),
	}
	census.Repeats = census.Total - census.Distinct

	for _, b := range order {
		if n, _ := counts.Get(b); n > 1 {
			census.Blocks = append(census.Blocks, BlockCount{Block: b, Count: n})
		}
	}
	return census
}
