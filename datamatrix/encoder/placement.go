// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

// Placement lays codeword bits out in the mapping matrix of a symbol, the
// data area without finder and clock patterns (ISO/IEC 16022 Annex F).
type Placement struct {
	codewords []int
	numRows   int
	numCols   int
	bits      []int8 // -1 unset, 0 light, 1 dark
	writes    int
}

// NewPlacement creates a placement for the given codewords and mapping
// matrix size.
func NewPlacement(codewords []int, numCols, numRows int) *Placement {
	p := &Placement{
		codewords: codewords,
		numRows:   numRows,
		numCols:   numCols,
		bits:      make([]int8, numRows*numCols),
	}
	for i := range p.bits {
		p.bits[i] = -1
	}
	return p
}

// NumRows returns the number of rows.
func (p *Placement) NumRows() int { return p.numRows }

// NumCols returns the number of columns.
func (p *Placement) NumCols() int { return p.numCols }

// Bit reports whether the module at (col, row) is dark.
func (p *Placement) Bit(col, row int) bool {
	return p.bits[row*p.numCols+col] == 1
}

// IsSet reports whether the module at (col, row) has been assigned.
func (p *Placement) IsSet(col, row int) bool {
	return p.bits[row*p.numCols+col] >= 0
}

func (p *Placement) setBit(col, row int, bit bool) {
	var v int8
	if bit {
		v = 1
	}
	p.bits[row*p.numCols+col] = v
	p.writes++
}

// Place assigns every module of the mapping matrix.
func (p *Placement) Place() {
	pos := 0
	row := 4
	col := 0

	for {
		if row == p.numRows && col == 0 {
			p.corner1(pos)
			pos++
		}
		if row == p.numRows-2 && col == 0 && p.numCols%4 != 0 {
			p.corner2(pos)
			pos++
		}
		if row == p.numRows-2 && col == 0 && p.numCols%8 == 4 {
			p.corner3(pos)
			pos++
		}
		if row == p.numRows+4 && col == 2 && p.numCols%8 == 0 {
			p.corner4(pos)
			pos++
		}

		// upward-right diagonal
		for {
			if row < p.numRows && col >= 0 && !p.IsSet(col, row) {
				p.utah(row, col, pos)
				pos++
			}
			row -= 2
			col += 2
			if row < 0 || col >= p.numCols {
				break
			}
		}
		row++
		col += 3

		// downward-left diagonal
		for {
			if row >= 0 && col < p.numCols && !p.IsSet(col, row) {
				p.utah(row, col, pos)
				pos++
			}
			row += 2
			col -= 2
			if row >= p.numRows || col < 0 {
				break
			}
		}
		row += 3
		col++

		if row >= p.numRows && col >= p.numCols {
			break
		}
	}

	// Sizes whose mapping matrix is not a multiple of the utah shape leave
	// the bottom-right 2x2 corner unused; it gets a fixed pattern.
	if !p.IsSet(p.numCols-1, p.numRows-1) {
		p.setBit(p.numCols-1, p.numRows-1, true)
		p.setBit(p.numCols-2, p.numRows-1, false)
		p.setBit(p.numCols-1, p.numRows-2, false)
		p.setBit(p.numCols-2, p.numRows-2, true)
	}
}

// module places bit (1 = most significant) of codeword pos, wrapping
// positions that fall outside the matrix.
func (p *Placement) module(row, col, pos, bit int) {
	if row < 0 {
		row += p.numRows
		col += 4 - ((p.numRows + 4) % 8)
	}
	if col < 0 {
		col += p.numCols
		row += 4 - ((p.numCols + 4) % 8)
	}
	v := p.codewords[pos] & (1 << uint(8-bit))
	p.setBit(col, row, v != 0)
}

// utah places the 8 modules of a standard codeword whose last module is at
// (row, col).
func (p *Placement) utah(row, col, pos int) {
	p.module(row-2, col-2, pos, 1)
	p.module(row-2, col-1, pos, 2)
	p.module(row-1, col-2, pos, 3)
	p.module(row-1, col-1, pos, 4)
	p.module(row-1, col, pos, 5)
	p.module(row, col-2, pos, 6)
	p.module(row, col-1, pos, 7)
	p.module(row, col, pos, 8)
}

func (p *Placement) corner1(pos int) {
	p.module(p.numRows-1, 0, pos, 1)
	p.module(p.numRows-1, 1, pos, 2)
	p.module(p.numRows-1, 2, pos, 3)
	p.module(0, p.numCols-2, pos, 4)
	p.module(0, p.numCols-1, pos, 5)
	p.module(1, p.numCols-1, pos, 6)
	p.module(2, p.numCols-1, pos, 7)
	p.module(3, p.numCols-1, pos, 8)
}

func (p *Placement) corner2(pos int) {
	p.module(p.numRows-3, 0, pos, 1)
	p.module(p.numRows-2, 0, pos, 2)
	p.module(p.numRows-1, 0, pos, 3)
	p.module(0, p.numCols-4, pos, 4)
	p.module(0, p.numCols-3, pos, 5)
	p.module(0, p.numCols-2, pos, 6)
	p.module(0, p.numCols-1, pos, 7)
	p.module(1, p.numCols-1, pos, 8)
}

func (p *Placement) corner3(pos int) {
	p.module(p.numRows-3, 0, pos, 1)
	p.module(p.numRows-2, 0, pos, 2)
	p.module(p.numRows-1, 0, pos, 3)
	p.module(0, p.numCols-2, pos, 4)
	p.module(0, p.numCols-1, pos, 5)
	p.module(1, p.numCols-1, pos, 6)
	p.module(2, p.numCols-1, pos, 7)
	p.module(3, p.numCols-1, pos, 8)
}

func (p *Placement) corner4(pos int) {
	p.module(p.numRows-1, 0, pos, 1)
	p.module(p.numRows-1, p.numCols-1, pos, 2)
	p.module(0, p.numCols-3, pos, 3)
	p.module(0, p.numCols-2, pos, 4)
	p.module(0, p.numCols-1, pos, 5)
	p.module(1, p.numCols-3, pos, 6)
	p.module(1, p.numCols-2, pos, 7)
	p.module(1, p.numCols-1, pos, 8)
}
