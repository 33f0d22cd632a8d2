// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import (
	"fmt"

	"github.com/ericlevine/barcodelogic"
)

// SymbolInfo describes a single Data Matrix ECC200 symbol size.
type SymbolInfo struct {
	Rectangular    bool
	DataCapacity   int // data codewords, summed over all interleaved blocks
	ErrorCodewords int // error correction codewords, summed over all blocks
	RegionWidth    int // data modules per region, horizontally
	RegionHeight   int // data modules per region, vertically
	DataRegions    int
	RSBlockData    int // data codewords per RS block
	RSBlockError   int // error correction codewords per RS block
}

func newSymbolInfo(rect bool, dataCapacity, errorCodewords, regionWidth, regionHeight, regions int) SymbolInfo {
	return SymbolInfo{
		Rectangular:    rect,
		DataCapacity:   dataCapacity,
		ErrorCodewords: errorCodewords,
		RegionWidth:    regionWidth,
		RegionHeight:   regionHeight,
		DataRegions:    regions,
		RSBlockData:    dataCapacity,
		RSBlockError:   errorCodewords,
	}
}

func newBlockedSymbolInfo(dataCapacity, errorCodewords, regionWidth, regionHeight, regions, rsData, rsError int) SymbolInfo {
	si := newSymbolInfo(false, dataCapacity, errorCodewords, regionWidth, regionHeight, regions)
	si.RSBlockData = rsData
	si.RSBlockError = rsError
	return si
}

// symbols lists every ECC200 size by increasing data capacity. Rectangular
// sizes are interleaved with the square ones so that a shape-agnostic lookup
// finds the smallest symbol of either shape.
var symbols = []SymbolInfo{
	newSymbolInfo(false, 3, 5, 8, 8, 1),
	newSymbolInfo(false, 5, 7, 10, 10, 1),
	newSymbolInfo(true, 5, 7, 16, 6, 1),
	newSymbolInfo(false, 8, 10, 12, 12, 1),
	newSymbolInfo(true, 10, 11, 14, 6, 2),
	newSymbolInfo(false, 12, 12, 14, 14, 1),
	newSymbolInfo(true, 16, 14, 24, 10, 1),

	newSymbolInfo(false, 18, 14, 16, 16, 1),
	newSymbolInfo(false, 22, 18, 18, 18, 1),
	newSymbolInfo(true, 22, 18, 16, 10, 2),
	newSymbolInfo(false, 30, 20, 20, 20, 1),
	newSymbolInfo(true, 32, 24, 16, 14, 2),
	newSymbolInfo(false, 36, 24, 22, 22, 1),
	newSymbolInfo(false, 44, 28, 24, 24, 1),
	newSymbolInfo(true, 49, 28, 22, 14, 2),

	newSymbolInfo(false, 62, 36, 14, 14, 4),
	newSymbolInfo(false, 86, 42, 16, 16, 4),
	newSymbolInfo(false, 114, 48, 18, 18, 4),
	newSymbolInfo(false, 144, 56, 20, 20, 4),
	newSymbolInfo(false, 174, 68, 22, 22, 4),

	newBlockedSymbolInfo(204, 84, 24, 24, 4, 102, 42),
	newBlockedSymbolInfo(280, 112, 14, 14, 16, 140, 56),
	newBlockedSymbolInfo(368, 144, 16, 16, 16, 92, 36),
	newBlockedSymbolInfo(456, 192, 18, 18, 16, 114, 48),
	newBlockedSymbolInfo(576, 224, 20, 20, 16, 144, 56),
	newBlockedSymbolInfo(696, 272, 22, 22, 16, 174, 68),
	newBlockedSymbolInfo(816, 336, 24, 24, 16, 136, 56),
	newBlockedSymbolInfo(1050, 408, 18, 18, 36, 175, 68),
	newBlockedSymbolInfo(1304, 496, 20, 20, 36, 163, 62),
	newBlockedSymbolInfo(1558, 620, 22, 22, 36, 156, 62),
}

// Symbols returns a copy of the symbol table in lookup order.
func Symbols() []SymbolInfo {
	return append([]SymbolInfo(nil), symbols...)
}

// Lookup finds the smallest symbol that holds dataCodewords codewords and
// satisfies the shape and size constraints. minSize and maxSize may be nil.
// The result is a copy of the table entry.
func Lookup(dataCodewords int, shape barcodelogic.SymbolShape, minSize, maxSize *barcodelogic.Size) (*SymbolInfo, error) {
	for i := range symbols {
		si := &symbols[i]
		if shape == barcodelogic.ShapeSquare && si.Rectangular {
			continue
		}
		if shape == barcodelogic.ShapeRectangle && !si.Rectangular {
			continue
		}
		if minSize != nil && (si.SymbolWidth() < minSize.Width || si.SymbolHeight() < minSize.Height) {
			continue
		}
		if maxSize != nil && (si.SymbolWidth() > maxSize.Width || si.SymbolHeight() > maxSize.Height) {
			continue
		}
		if dataCodewords <= si.DataCapacity {
			info := *si
			return &info, nil
		}
	}
	return nil, fmt.Errorf("datamatrix: no %s symbol holds %d data codewords: %w",
		shape, dataCodewords, barcodelogic.ErrCapacityExceeded)
}

// LookupBySize returns a copy of the symbol with the given size in modules.
func LookupBySize(width, height int) (*SymbolInfo, error) {
	for i := range symbols {
		si := &symbols[i]
		if si.SymbolWidth() == width && si.SymbolHeight() == height {
			info := *si
			return &info, nil
		}
	}
	return nil, fmt.Errorf("datamatrix: no %dx%d symbol: %w", width, height, barcodelogic.ErrInvalidOption)
}

// HorizontalDataRegions returns the number of regions across the symbol.
func (si *SymbolInfo) HorizontalDataRegions() int {
	switch si.DataRegions {
	case 1:
		return 1
	case 2, 4:
		return 2
	case 16:
		return 4
	case 36:
		return 6
	}
	panic("datamatrix: unexpected number of data regions")
}

// VerticalDataRegions returns the number of regions down the symbol.
func (si *SymbolInfo) VerticalDataRegions() int {
	switch si.DataRegions {
	case 1, 2:
		return 1
	case 4:
		return 2
	case 16:
		return 4
	case 36:
		return 6
	}
	panic("datamatrix: unexpected number of data regions")
}

// SymbolDataWidth is the width of the mapping matrix.
func (si *SymbolInfo) SymbolDataWidth() int { return si.HorizontalDataRegions() * si.RegionWidth }

// SymbolDataHeight is the height of the mapping matrix.
func (si *SymbolInfo) SymbolDataHeight() int { return si.VerticalDataRegions() * si.RegionHeight }

// SymbolWidth is the width of the symbol in modules, finder and clock
// patterns included.
func (si *SymbolInfo) SymbolWidth() int { return si.SymbolDataWidth() + si.HorizontalDataRegions()*2 }

// SymbolHeight is the height of the symbol in modules.
func (si *SymbolInfo) SymbolHeight() int { return si.SymbolDataHeight() + si.VerticalDataRegions()*2 }

// CodewordCount returns data plus error correction codewords.
func (si *SymbolInfo) CodewordCount() int { return si.DataCapacity + si.ErrorCodewords }

// InterleavedBlockCount returns the number of Reed-Solomon blocks.
func (si *SymbolInfo) InterleavedBlockCount() int {
	if si.DataCapacity == 1558 {
		return 10
	}
	return si.DataCapacity / si.RSBlockData
}

// DataLengthForBlock returns the data codewords of block index (1-based).
// The 144x144 symbol has eight blocks of 156 and two of 155.
func (si *SymbolInfo) DataLengthForBlock(index int) int {
	if si.DataCapacity == 1558 && index > 8 {
		return 155
	}
	return si.RSBlockData
}

// ErrorLengthForBlock returns the error correction codewords of a block.
func (si *SymbolInfo) ErrorLengthForBlock(int) int { return si.RSBlockError }

func (si *SymbolInfo) String() string {
	shape := "square"
	if si.Rectangular {
		shape = "rectangular"
	}
	return fmt.Sprintf("%s %dx%d (%d data, %d error codewords)",
		shape, si.SymbolWidth(), si.SymbolHeight(), si.DataCapacity, si.ErrorCodewords)
}
