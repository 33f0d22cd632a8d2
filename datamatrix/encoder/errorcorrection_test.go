package encoder

import (
	"math/rand"
	"testing"

	"github.com/ericlevine/barcodelogic/reedsolomon"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCorrectionKnownSymbol(t *testing.T) {
	info, err := Lookup(3, 0, nil, nil)
	require.NoError(t, err)
	got, err := ErrorCorrection([]int{142, 164, 186}, info)
	require.NoError(t, err)
	assert.Equal(t, []int{142, 164, 186, 114, 25, 5, 88, 102}, got)
}

func TestErrorCorrectionRejectsWrongLength(t *testing.T) {
	info, err := Lookup(3, 0, nil, nil)
	require.NoError(t, err)
	_, err = ErrorCorrection([]int{1, 2}, info)
	assert.Error(t, err)
}

func TestErrorCorrectionBlocks(t *testing.T) {
	field := reedsolomon.DataMatrixField256
	symbols := Symbols()
	properties := gopter.NewProperties(nil)

	properties.Property("every interleaved block is a Reed-Solomon codeword", prop.ForAll(
		func(idx int, seed int64) bool {
			info := &symbols[idx]
			rng := rand.New(rand.NewSource(seed))
			data := make([]int, info.DataCapacity)
			for i := range data {
				data[i] = rng.Intn(256)
			}
			out, err := ErrorCorrection(data, info)
			if err != nil || len(out) != info.CodewordCount() {
				return false
			}
			n := info.InterleavedBlockCount()
			for b := 0; b < n; b++ {
				var block []int
				for i := b; i < info.DataCapacity; i += n {
					block = append(block, out[i])
				}
				for i := info.DataCapacity + b; i < len(out); i += n {
					block = append(block, out[i])
				}
				poly := reedsolomon.NewPoly(field, block)
				for r := 1; r <= info.RSBlockError; r++ {
					if poly.EvaluateAt(field.Exp(r)) != 0 {
						return false
					}
				}
			}
			return true
		},
		gen.IntRange(0, len(symbols)-1),
		gen.Int64(),
	))

	properties.TestingRun(t)
}
