// Package bitutil holds the module matrix shared by the 2D symbologies.
package bitutil

import (
	"fmt"
	"strings"
)

// BitMatrix is a 2D matrix of modules. x is the column and y the row; the
// origin is the top-left module. A set bit is a dark module.
type BitMatrix struct {
	width   int
	height  int
	rowSize int
	data    []uint32
}

// NewBitMatrix creates an all-light matrix of the given size.
func NewBitMatrix(width, height int) *BitMatrix {
	if width < 1 || height < 1 {
		panic("bitmatrix: dimensions must be greater than 0")
	}
	rowSize := (width + 31) / 32
	return &BitMatrix{
		width:   width,
		height:  height,
		rowSize: rowSize,
		data:    make([]uint32, rowSize*height),
	}
}

// ParseBitMatrix reads a matrix written one row per line, using set for
// dark modules and unset for light ones. Empty lines are ignored.
func ParseBitMatrix(repr, set, unset string) (*BitMatrix, error) {
	var rows [][]bool
	for _, line := range strings.Split(repr, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		var row []bool
		for len(line) > 0 {
			switch {
			case strings.HasPrefix(line, set):
				row = append(row, true)
				line = line[len(set):]
			case strings.HasPrefix(line, unset):
				row = append(row, false)
				line = line[len(unset):]
			default:
				return nil, fmt.Errorf("bitmatrix: unexpected %q in row %d", line, len(rows))
			}
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("bitmatrix: row %d has %d modules, want %d", len(rows), len(row), len(rows[0]))
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("bitmatrix: empty matrix")
	}
	bm := NewBitMatrix(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, dark := range row {
			bm.SetTo(x, y, dark)
		}
	}
	return bm, nil
}

// Get returns true if the module at (x, y) is dark.
func (bm *BitMatrix) Get(x, y int) bool {
	offset := y*bm.rowSize + x/32
	return (bm.data[offset]>>uint(x&0x1f))&1 != 0
}

// Set darkens the module at (x, y).
func (bm *BitMatrix) Set(x, y int) {
	offset := y*bm.rowSize + x/32
	bm.data[offset] |= 1 << uint(x&0x1f)
}

// Unset lightens the module at (x, y).
func (bm *BitMatrix) Unset(x, y int) {
	offset := y*bm.rowSize + x/32
	bm.data[offset] &^= 1 << uint(x&0x1f)
}

// SetTo sets the module at (x, y) to dark or light.
func (bm *BitMatrix) SetTo(x, y int, dark bool) {
	if dark {
		bm.Set(x, y)
	} else {
		bm.Unset(x, y)
	}
}

// Runs returns the run lengths of row y. The first run is dark and may be
// empty, so even indices are dark runs and odd indices light runs.
func (bm *BitMatrix) Runs(y int) []int {
	runs := []int{0}
	dark := true
	for x := 0; x < bm.width; x++ {
		if bm.Get(x, y) != dark {
			dark = !dark
			runs = append(runs, 0)
		}
		runs[len(runs)-1]++
	}
	return runs
}

// Width returns the number of columns.
func (bm *BitMatrix) Width() int { return bm.width }

// Height returns the number of rows.
func (bm *BitMatrix) Height() int { return bm.height }

// Clone returns a deep copy of the BitMatrix.
func (bm *BitMatrix) Clone() *BitMatrix {
	d := make([]uint32, len(bm.data))
	copy(d, bm.data)
	return &BitMatrix{width: bm.width, height: bm.height, rowSize: bm.rowSize, data: d}
}

// String returns a string representation using "X " for set and "  " for unset.
func (bm *BitMatrix) String() string {
	return bm.StringWithChars("X ", "  ")
}

// StringWithChars returns a string representation using the given set/unset strings.
func (bm *BitMatrix) StringWithChars(setString, unsetString string) string {
	var sb strings.Builder
	sb.Grow(bm.height * (bm.width*len(setString) + 1))
	for y := 0; y < bm.height; y++ {
		for x := 0; x < bm.width; x++ {
			if bm.Get(x, y) {
				sb.WriteString(setString)
			} else {
				sb.WriteString(unsetString)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Equals returns true if two BitMatrices are equal.
func (bm *BitMatrix) Equals(other *BitMatrix) bool {
	if bm.width != other.width || bm.height != other.height {
		return false
	}
	for i := range bm.data {
		if bm.data[i] != other.data[i] {
			return false
		}
	}
	return true
}
