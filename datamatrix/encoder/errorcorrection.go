// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import (
	"fmt"

	"github.com/ericlevine/barcodelogic/reedsolomon"
)

var rsEncoder = reedsolomon.NewEncoder(reedsolomon.DataMatrixField256)

// ErrorCorrection appends the Reed-Solomon error correction codewords to the
// data codewords of a symbol. Symbols with several blocks interleave them:
// data codeword i belongs to block i mod blockCount, and the error
// correction codewords are interleaved the same way after the data.
func ErrorCorrection(data []int, info *SymbolInfo) ([]int, error) {
	if len(data) != info.DataCapacity {
		return nil, fmt.Errorf("datamatrix: %d data codewords for a symbol holding %d", len(data), info.DataCapacity)
	}
	out := make([]int, info.CodewordCount())
	copy(out, data)

	blockCount := info.InterleavedBlockCount()
	for block := 0; block < blockCount; block++ {
		blockData := make([]int, 0, info.DataLengthForBlock(block+1))
		for d := block; d < info.DataCapacity; d += blockCount {
			blockData = append(blockData, data[d])
		}
		ec, err := rsEncoder.Encode(blockData, info.ErrorLengthForBlock(block+1))
		if err != nil {
			return nil, fmt.Errorf("datamatrix: block %d: %w", block, err)
		}
		for i, cw := range ec {
			out[info.DataCapacity+block+i*blockCount] = cw
		}
	}
	return out, nil
}
