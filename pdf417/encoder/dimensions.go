// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import (
	"fmt"
	"math"

	"github.com/ericlevine/barcodelogic"
)

// Symbol size limits.
const (
	MinRows = 3
	MaxRows = 90
	MinCols = 1
	MaxCols = 30

	// MaxCodewords bounds the length descriptor, data and error
	// correction codewords of one symbol.
	MaxCodewords = 928

	DefaultWidthToHeightRatio = 3.0
	DefaultRowHeightFactor    = 3.0
)

// DimensionOptions bounds the symbol size. Zero values select the defaults.
type DimensionOptions struct {
	MinRows, MaxRows int
	MinCols, MaxCols int

	// WidthToHeightRatio is the preferred ratio of symbol width to height.
	WidthToHeightRatio float64

	// RowHeightFactor is the row height in modules.
	RowHeightFactor float64

	// Compact selects the truncated symbol width.
	Compact bool
}

func (o DimensionOptions) withDefaults() DimensionOptions {
	if o.MinRows == 0 {
		o.MinRows = MinRows
	}
	if o.MaxRows == 0 {
		o.MaxRows = MaxRows
	}
	if o.MinCols == 0 {
		o.MinCols = MinCols
	}
	if o.MaxCols == 0 {
		o.MaxCols = MaxCols
	}
	if o.WidthToHeightRatio == 0 {
		o.WidthToHeightRatio = DefaultWidthToHeightRatio
	}
	if o.RowHeightFactor == 0 {
		o.RowHeightFactor = DefaultRowHeightFactor
	}
	return o
}

func (o DimensionOptions) validate() error {
	if o.MinRows < MinRows || o.MaxRows > MaxRows || o.MinRows > o.MaxRows ||
		o.MinCols < MinCols || o.MaxCols > MaxCols || o.MinCols > o.MaxCols {
		return fmt.Errorf("pdf417: rows %d-%d, columns %d-%d: %w",
			o.MinRows, o.MaxRows, o.MinCols, o.MaxCols, barcodelogic.ErrInvalidOption)
	}
	return nil
}

// ModuleWidth returns the width in modules of a symbol with cols data
// columns.
func ModuleWidth(cols int, compact bool) int {
	if compact {
		return 17*cols + 35
	}
	return 17*cols + 69
}

func numberOfRows(m, k, c int) int {
	rows := (m+1+k)/c + 1
	if c*rows >= m+1+k+c {
		rows--
	}
	return rows
}

// Dimensions chooses the number of data columns and rows for m data
// codewords and k error correction codewords. Among the column counts that
// fit, it picks the one whose aspect ratio is closest to the preferred one.
func Dimensions(m, k int, opts DimensionOptions) (cols, rows int, err error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return 0, 0, err
	}
	if m+1+k > MaxCodewords {
		return 0, 0, fmt.Errorf("pdf417: %d codewords: %w", m+1+k, barcodelogic.ErrCapacityExceeded)
	}

	ratio := 0.0
	for c := opts.MinCols; c <= opts.MaxCols; c++ {
		r := numberOfRows(m, k, c)
		if r < opts.MinRows {
			break
		}
		if r > opts.MaxRows {
			continue
		}
		newRatio := float64(ModuleWidth(c, opts.Compact)) / (float64(r) * opts.RowHeightFactor)
		if cols != 0 && math.Abs(newRatio-opts.WidthToHeightRatio) > math.Abs(ratio-opts.WidthToHeightRatio) {
			continue
		}
		ratio = newRatio
		cols, rows = c, r
	}
	if cols == 0 && numberOfRows(m, k, opts.MinCols) < opts.MinRows {
		cols, rows = opts.MinCols, opts.MinRows
	}
	if cols == 0 {
		return 0, 0, fmt.Errorf("pdf417: %d codewords do not fit in %d-%d rows of %d-%d columns: %w",
			m+1+k, opts.MinRows, opts.MaxRows, opts.MinCols, opts.MaxCols, barcodelogic.ErrCapacityExceeded)
	}
	return cols, rows, nil
}

func numberOfPadCodewords(m, k, c, r int) int {
	n := c*r - k
	if n > m+1 {
		return n - m - 1
	}
	return 0
}
