// Copyright 2011 ZXing authors. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import "github.com/ericlevine/barcodelogic/bitutil"

// Row is one row of a symbol: its cluster, row indicators and data
// codewords. Compact symbols have no right indicator.
type Row struct {
	Cluster        int
	LeftIndicator  int
	RightIndicator int
	Codewords      []int
}

// Pattern returns the 17-module pattern of codeword value in cluster
// (0, 1 or 2 for clusters 0, 3 and 6).
func Pattern(cluster, value int) int { return codewordTable[cluster][value] }

// StartPattern and StopPattern return the guard patterns with their length
// in modules. A compact symbol ends with a single bar.
func StartPattern() (pattern, bits int) { return startPattern, 17 }

func StopPattern(compact bool) (pattern, bits int) {
	if compact {
		return 1, 1
	}
	return stopPattern, 18
}

// Widths splits the low bits of pattern, most significant first, into
// alternating bar and space widths. Patterns start with a bar.
func Widths(pattern, bits int) []int {
	var widths []int
	last := -1
	for i := bits - 1; i >= 0; i-- {
		b := (pattern >> i) & 1
		if b == last {
			widths[len(widths)-1]++
		} else {
			widths = append(widths, 1)
			last = b
		}
	}
	return widths
}

// barcodeRow collects the modules of one row as they are added.
type barcodeRow struct {
	row             []bool
	currentLocation int
}

func newBarcodeRow(width int) *barcodeRow {
	return &barcodeRow{row: make([]bool, width)}
}

func (br *barcodeRow) addBar(black bool, width int) {
	for i := 0; i < width; i++ {
		br.row[br.currentLocation] = black
		br.currentLocation++
	}
}

// encodeChar appends the bars of the low bits of pattern.
func (br *barcodeRow) encodeChar(pattern, bits int) {
	black := true
	for _, w := range Widths(pattern, bits) {
		br.addBar(black, w)
		black = !black
	}
}

// rowIndicators returns the left and right indicator values of row y.
func rowIndicators(y, rows, cols, level int) (left, right int) {
	base := 30 * (y / 3)
	switch y % 3 {
	case 0:
		return base + (rows-1)/3, base + cols - 1
	case 1:
		return base + level*3 + (rows-1)%3, base + (rows-1)/3
	default:
		return base + cols - 1, base + level*3 + (rows-1)%3
	}
}

// Matrix returns the modules of the symbol, one matrix row per symbol row.
func (s *Symbol) Matrix() *bitutil.BitMatrix {
	width := ModuleWidth(s.Columns, s.Compact)
	m := bitutil.NewBitMatrix(width, s.Rows)
	for y := 0; y < s.Rows; y++ {
		row := s.Row(y)
		br := newBarcodeRow(width)
		br.encodeChar(StartPattern())
		br.encodeChar(Pattern(row.Cluster, row.LeftIndicator), 17)
		for _, cw := range row.Codewords {
			br.encodeChar(Pattern(row.Cluster, cw), 17)
		}
		if !s.Compact {
			br.encodeChar(Pattern(row.Cluster, row.RightIndicator), 17)
		}
		br.encodeChar(StopPattern(s.Compact))
		for x, black := range br.row {
			m.SetTo(x, y, black)
		}
	}
	return m
}
