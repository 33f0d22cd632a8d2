// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import (
	"fmt"

	"github.com/ericlevine/barcodelogic"
)

// ErrorCorrectionCodewordCount returns the number of error correction
// codewords of level (0-8), which is 2^(level+1).
func ErrorCorrectionCodewordCount(level int) (int, error) {
	if level < 0 || level > 8 {
		return 0, fmt.Errorf("pdf417: error correction level %d: %w", level, barcodelogic.ErrInvalidOption)
	}
	return 1 << (level + 1), nil
}

// RecommendedLevel returns the error correction level recommended for n
// data codewords.
func RecommendedLevel(n int) (int, error) {
	switch {
	case n <= 0:
		return 0, fmt.Errorf("pdf417: %d data codewords: %w", n, barcodelogic.ErrInvalidLength)
	case n <= 40:
		return 2, nil
	case n <= 160:
		return 3, nil
	case n <= 320:
		return 4, nil
	case n <= 863:
		return 5, nil
	}
	return 0, fmt.Errorf("pdf417: %d data codewords: %w", n, barcodelogic.ErrCapacityExceeded)
}

// ErrorCorrection computes the error correction codewords of data, a
// complete codeword sequence including the length descriptor, using the
// mod-929 Reed-Solomon code of level.
func ErrorCorrection(data []int, level int) ([]int, error) {
	k, err := ErrorCorrectionCodewordCount(level)
	if err != nil {
		return nil, err
	}
	coefficients := ecCoefficients[level]
	e := make([]int, k)
	for _, d := range data {
		t1 := (d + e[k-1]) % 929
		for j := k - 1; j >= 1; j-- {
			t2 := (t1 * coefficients[j]) % 929
			e[j] = (e[j-1] + 929 - t2) % 929
		}
		t2 := (t1 * coefficients[0]) % 929
		e[0] = (929 - t2) % 929
	}
	out := make([]int, k)
	for j := k - 1; j >= 0; j-- {
		if e[j] != 0 {
			e[j] = 929 - e[j]
		}
		out[k-1-j] = e[j]
	}
	return out, nil
}
