// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package encoder implements Data Matrix ECC200 encoding: high-level
// encodation, Reed-Solomon error correction and module placement.
package encoder

import (
	"github.com/ericlevine/barcodelogic/bitutil"
)

// Symbol is an encoded Data Matrix symbol.
type Symbol struct {
	Info *SymbolInfo
	// Codewords holds the data codewords followed by the interleaved error
	// correction codewords.
	Codewords []int
	// Matrix holds every module of the symbol, finder and clock patterns
	// included. It has no quiet zone.
	Matrix *bitutil.BitMatrix
}

// Encode encodes msg into the smallest symbol allowed by opts.
func Encode(msg string, opts Options) (*Symbol, error) {
	data, info, err := EncodeHighLevel(msg, opts)
	if err != nil {
		return nil, err
	}
	codewords, err := ErrorCorrection(data, info)
	if err != nil {
		return nil, err
	}
	placement := NewPlacement(codewords, info.SymbolDataWidth(), info.SymbolDataHeight())
	placement.Place()
	return &Symbol{
		Info:      info,
		Codewords: codewords,
		Matrix:    encodeLowLevel(placement, info),
	}, nil
}

// encodeLowLevel surrounds every data region with its finder pattern (solid
// left and bottom edges) and clock track (alternating top and right edges).
func encodeLowLevel(placement *Placement, info *SymbolInfo) *bitutil.BitMatrix {
	symbolWidth := info.SymbolDataWidth()
	symbolHeight := info.SymbolDataHeight()
	matrix := bitutil.NewBitMatrix(info.SymbolWidth(), info.SymbolHeight())

	matrixY := 0
	for y := 0; y < symbolHeight; y++ {
		if y%info.RegionHeight == 0 {
			for x := 0; x < info.SymbolWidth(); x++ {
				matrix.SetTo(x, matrixY, x%2 == 0)
			}
			matrixY++
		}
		matrixX := 0
		for x := 0; x < symbolWidth; x++ {
			if x%info.RegionWidth == 0 {
				matrix.Set(matrixX, matrixY)
				matrixX++
			}
			matrix.SetTo(matrixX, matrixY, placement.Bit(x, y))
			matrixX++
			if x%info.RegionWidth == info.RegionWidth-1 {
				matrix.SetTo(matrixX, matrixY, y%2 == 0)
				matrixX++
			}
		}
		matrixY++
		if y%info.RegionHeight == info.RegionHeight-1 {
			for x := 0; x < info.SymbolWidth(); x++ {
				matrix.Set(x, matrixY)
			}
			matrixY++
		}
	}
	return matrix
}
