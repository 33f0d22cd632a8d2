// Copyright 2011 ZXing authors. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

// Package encoder implements PDF417 encoding: text, byte and numeric
// compaction, mod-929 error correction and row layout.
package encoder

import "github.com/ericlevine/barcodelogic"

const padCodeword = 900

// Options configures a symbol.
type Options struct {
	Compaction barcodelogic.PDF417Compaction

	// ErrorCorrectionLevel forces a level; nil selects the recommended one.
	ErrorCorrectionLevel *int

	Dimensions DimensionOptions
}

// Symbol is an encoded PDF417 symbol.
type Symbol struct {
	// Columns is the number of data columns; Rows the number of rows.
	Columns, Rows int

	ErrorCorrectionLevel int
	Compact              bool

	// Codewords holds the length descriptor, data, padding and error
	// correction codewords in row-major order.
	Codewords []int

	// DataCodewords is the number of codewords produced by the high-level
	// encoder.
	DataCodewords int
}

// Encode encodes msg into a PDF417 symbol.
func Encode(msg string, opts Options) (*Symbol, error) {
	data, err := EncodeHighLevel(msg, opts.Compaction)
	if err != nil {
		return nil, err
	}

	level := 0
	if opts.ErrorCorrectionLevel != nil {
		level = *opts.ErrorCorrectionLevel
	} else if level, err = RecommendedLevel(len(data)); err != nil {
		return nil, err
	}

	k, err := ErrorCorrectionCodewordCount(level)
	if err != nil {
		return nil, err
	}
	cols, rows, err := Dimensions(len(data), k, opts.Dimensions)
	if err != nil {
		return nil, err
	}
	pad := numberOfPadCodewords(len(data), k, cols, rows)

	full := make([]int, 0, cols*rows)
	full = append(full, 1+len(data)+pad)
	full = append(full, data...)
	for i := 0; i < pad; i++ {
		full = append(full, padCodeword)
	}
	ec, err := ErrorCorrection(full, level)
	if err != nil {
		return nil, err
	}
	full = append(full, ec...)

	return &Symbol{
		Columns:              cols,
		Rows:                 rows,
		ErrorCorrectionLevel: level,
		Compact:              opts.Dimensions.Compact,
		Codewords:            full,
		DataCodewords:        len(data),
	}, nil
}

// Row returns row y of the symbol.
func (s *Symbol) Row(y int) Row {
	left, right := rowIndicators(y, s.Rows, s.Columns, s.ErrorCorrectionLevel)
	return Row{
		Cluster:        y % 3,
		LeftIndicator:  left,
		RightIndicator: right,
		Codewords:      s.Codewords[y*s.Columns : (y+1)*s.Columns],
	}
}
