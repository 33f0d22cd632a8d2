// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import "math"

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func isExtendedASCII(ch byte) bool { return ch >= 128 }

func isNativeC40(ch byte) bool { return ch == ' ' || isDigit(ch) || (ch >= 'A' && ch <= 'Z') }

func isNativeText(ch byte) bool { return ch == ' ' || isDigit(ch) || (ch >= 'a' && ch <= 'z') }

func isX12TermSep(ch byte) bool { return ch == '\r' || ch == '*' || ch == '>' }

func isNativeX12(ch byte) bool {
	return isX12TermSep(ch) || ch == ' ' || isDigit(ch) || (ch >= 'A' && ch <= 'Z')
}

func isNativeEDIFACT(ch byte) bool { return ch >= ' ' && ch <= '^' }

// lookAheadTest picks the encodation scheme for the characters starting at
// startpos (ISO/IEC 16022 Annex P). Staying in X12 or EDIFACT additionally
// requires the next few characters to be native to them.
func lookAheadTest(msg []byte, startpos int, current Mode) Mode {
	next := lookAheadTestIntern(msg, startpos, current)
	switch {
	case current == ModeX12 && next == ModeX12:
		for i := startpos; i < min(startpos+3, len(msg)); i++ {
			if !isNativeX12(msg[i]) {
				return ModeASCII
			}
		}
	case current == ModeEDIFACT && next == ModeEDIFACT:
		for i := startpos; i < min(startpos+4, len(msg)); i++ {
			if !isNativeEDIFACT(msg[i]) {
				return ModeASCII
			}
		}
	}
	return next
}

func lookAheadTestIntern(msg []byte, startpos int, current Mode) Mode {
	if startpos >= len(msg) {
		return current
	}
	var counts [6]float32
	if current == ModeASCII {
		counts = [6]float32{0, 1, 1, 1, 1, 1.25}
	} else {
		counts = [6]float32{1, 2, 2, 2, 2, 2.25}
		counts[current] = 0
	}

	var ints [6]int
	var mins [6]int
	for charsProcessed := 0; ; {
		if startpos+charsProcessed == len(msg) {
			minimum := findMinimums(&counts, &ints, &mins)
			minCount := 0
			for _, m := range mins {
				minCount += m
			}
			if ints[ModeASCII] == minimum {
				return ModeASCII
			}
			if minCount == 1 {
				switch {
				case mins[ModeBase256] > 0:
					return ModeBase256
				case mins[ModeEDIFACT] > 0:
					return ModeEDIFACT
				case mins[ModeText] > 0:
					return ModeText
				case mins[ModeX12] > 0:
					return ModeX12
				}
			}
			return ModeC40
		}

		ch := msg[startpos+charsProcessed]
		charsProcessed++

		// step L
		switch {
		case isDigit(ch):
			counts[ModeASCII] += 0.5
		case isExtendedASCII(ch):
			counts[ModeASCII] = ceil32(counts[ModeASCII]) + 2
		default:
			counts[ModeASCII] = ceil32(counts[ModeASCII]) + 1
		}

		// steps M and N
		for _, m := range [2]Mode{ModeC40, ModeText} {
			native := isNativeC40
			if m == ModeText {
				native = isNativeText
			}
			switch {
			case native(ch):
				counts[m] += float32(2.0 / 3.0)
			case isExtendedASCII(ch):
				counts[m] += float32(8.0 / 3.0)
			default:
				counts[m] += float32(4.0 / 3.0)
			}
		}

		// step O
		switch {
		case isNativeX12(ch):
			counts[ModeX12] += float32(2.0 / 3.0)
		case isExtendedASCII(ch):
			counts[ModeX12] += float32(13.0 / 3.0)
		default:
			counts[ModeX12] += float32(10.0 / 3.0)
		}

		// step P
		switch {
		case isNativeEDIFACT(ch):
			counts[ModeEDIFACT] += float32(3.0 / 4.0)
		case isExtendedASCII(ch):
			counts[ModeEDIFACT] += float32(17.0 / 4.0)
		default:
			counts[ModeEDIFACT] += float32(13.0 / 4.0)
		}

		// step Q
		counts[ModeBase256]++

		// step R
		if charsProcessed < 4 {
			continue
		}
		findMinimums(&counts, &ints, &mins)
		a, c40, text, x12, edf, b256 := ints[ModeASCII], ints[ModeC40], ints[ModeText],
			ints[ModeX12], ints[ModeEDIFACT], ints[ModeBase256]

		if a < min(b256, c40, text, x12, edf) {
			return ModeASCII
		}
		if b256 < a || b256+1 < min(c40, text, x12, edf) {
			return ModeBase256
		}
		if edf+1 < min(b256, c40, text, x12, a) {
			return ModeEDIFACT
		}
		if text+1 < min(b256, c40, edf, x12, a) {
			return ModeText
		}
		if x12+1 < min(b256, c40, edf, text, a) {
			return ModeX12
		}
		if c40+1 < min(a, b256, edf, text) {
			if c40 < x12 {
				return ModeC40
			}
			if c40 == x12 {
				for p := startpos + charsProcessed + 1; p < len(msg); p++ {
					tc := msg[p]
					if isX12TermSep(tc) {
						return ModeX12
					}
					if !isNativeX12(tc) {
						break
					}
				}
				return ModeC40
			}
		}
	}
}

// findMinimums rounds the counts up into ints, marks the modes holding the
// smallest count in mins and returns that count.
func findMinimums(counts *[6]float32, ints, mins *[6]int) int {
	minimum := math.MaxInt
	*mins = [6]int{}
	for i := range counts {
		ints[i] = int(ceil32(counts[i]))
		if minimum > ints[i] {
			minimum = ints[i]
			*mins = [6]int{}
		}
		if minimum == ints[i] {
			mins[i]++
		}
	}
	return minimum
}

func ceil32(f float32) float32 { return float32(math.Ceil(float64(f))) }
