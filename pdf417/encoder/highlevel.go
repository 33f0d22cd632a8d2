// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import (
	"fmt"
	"math/big"

	"github.com/ericlevine/barcodelogic"
	"github.com/ericlevine/barcodelogic/charset"
)

// Compaction modes
const (
	textCompaction    = 0
	byteCompaction    = 1
	numericCompaction = 2
)

// Text compaction submodes
const (
	submodeAlpha       = 0
	submodeLower       = 1
	submodeMixed       = 2
	submodePunctuation = 3
)

// Mode latch and shift codewords
const (
	latchToText       = 900
	latchToBytePadded = 901
	latchToNumeric    = 902
	shiftToByte       = 913
	latchToByte       = 924
)

// textMixedRaw is the code table of the Mixed submode.
var textMixedRaw = []byte{
	48, 49, 50, 51, 52, 53, 54, 55, 56, 57, 38, 13, 9, 44, 58,
	35, 45, 46, 36, 47, 43, 37, 42, 61, 94, 0, 32, 0, 0, 0,
}

// textPunctuationRaw is the code table of the Punctuation submode.
var textPunctuationRaw = []byte{
	59, 60, 62, 64, 91, 92, 93, 95, 96, 126, 33, 13, 9, 44, 58,
	10, 45, 46, 36, 47, 34, 124, 42, 40, 41, 63, 123, 125, 39, 0,
}

var (
	mixed       [128]int
	punctuation [128]int
)

func init() {
	for i := range mixed {
		mixed[i] = -1
		punctuation[i] = -1
	}
	for i, b := range textMixedRaw {
		if b > 0 {
			mixed[b] = i
		}
	}
	for i, b := range textPunctuationRaw {
		if b > 0 {
			punctuation[b] = i
		}
	}
}

// codewordBuffer accumulates codewords.
type codewordBuffer []int

func (b *codewordBuffer) write(cws ...int) { *b = append(*b, cws...) }

// EncodeHighLevel converts msg into PDF417 data codewords using the
// algorithm of ISO/IEC 15438:2001 Annex P. The message is transcoded to
// ISO-8859-1 first; characters outside it are rejected.
func EncodeHighLevel(msg string, compaction barcodelogic.PDF417Compaction) ([]int, error) {
	if len(msg) == 0 {
		return nil, fmt.Errorf("pdf417: empty message: %w", barcodelogic.ErrInvalidLength)
	}
	data, err := charset.Latin1(msg)
	if err != nil {
		return nil, fmt.Errorf("pdf417: %w", err)
	}

	var out codewordBuffer
	switch compaction {
	case barcodelogic.CompactionText:
		for i, ch := range data {
			if !isText(ch) {
				return nil, fmt.Errorf("pdf417: text compaction: %w", &barcodelogic.CharacterError{Char: rune(ch), Pos: i})
			}
		}
		encodeText(data, 0, len(data), &out, submodeAlpha)

	case barcodelogic.CompactionByte:
		encodeBinary(data, 0, len(data), byteCompaction, &out)

	case barcodelogic.CompactionNumeric:
		for i, ch := range data {
			if !isDigit(ch) {
				return nil, fmt.Errorf("pdf417: numeric compaction: %w", &barcodelogic.CharacterError{Char: rune(ch), Pos: i})
			}
		}
		out.write(latchToNumeric)
		encodeNumeric(data, 0, len(data), &out)

	default:
		encodeAuto(data, &out)
	}
	return out, nil
}

func encodeAuto(data []byte, out *codewordBuffer) {
	encodingMode := textCompaction
	textSubMode := submodeAlpha
	p := 0
	for p < len(data) {
		n := determineConsecutiveDigitCount(data, p)
		if n >= 13 {
			out.write(latchToNumeric)
			encodingMode = numericCompaction
			textSubMode = submodeAlpha
			encodeNumeric(data, p, n, out)
			p += n
			continue
		}
		t := determineConsecutiveTextCount(data, p)
		if t >= 5 || n == len(data) {
			if encodingMode != textCompaction {
				out.write(latchToText)
				encodingMode = textCompaction
				textSubMode = submodeAlpha
			}
			textSubMode = encodeText(data, p, t, out, textSubMode)
			p += t
			continue
		}
		b := determineConsecutiveBinaryCount(data, p)
		if b == 0 {
			b = 1
		}
		if b == 1 && encodingMode == textCompaction {
			// A single byte is shifted rather than latched.
			encodeBinary(data, p, 1, textCompaction, out)
		} else {
			encodeBinary(data, p, b, encodingMode, out)
			encodingMode = byteCompaction
			textSubMode = submodeAlpha
		}
		p += b
	}
}

// encodeText encodes count characters from startpos with Text Compaction
// (ISO/IEC 15438:2001 4.4.2) and returns the submode it ends in.
func encodeText(msg []byte, startpos, count int, out *codewordBuffer, initialSubmode int) int {
	tmp := make([]int, 0, count)
	submode := initialSubmode
	idx := 0
	for {
		ch := msg[startpos+idx]
		switch submode {
		case submodeAlpha:
			switch {
			case isAlphaUpper(ch):
				if ch == ' ' {
					tmp = append(tmp, 26)
				} else {
					tmp = append(tmp, int(ch-'A'))
				}
			case isAlphaLower(ch):
				submode = submodeLower
				tmp = append(tmp, 27) // ll
				continue
			case isMixed(ch):
				submode = submodeMixed
				tmp = append(tmp, 28) // ml
				continue
			default:
				tmp = append(tmp, 29, punctuation[ch]) // ps
			}

		case submodeLower:
			switch {
			case isAlphaLower(ch):
				if ch == ' ' {
					tmp = append(tmp, 26)
				} else {
					tmp = append(tmp, int(ch-'a'))
				}
			case isAlphaUpper(ch):
				tmp = append(tmp, 27, int(ch-'A')) // as
			case isMixed(ch):
				submode = submodeMixed
				tmp = append(tmp, 28) // ml
				continue
			default:
				tmp = append(tmp, 29, punctuation[ch]) // ps
			}

		case submodeMixed:
			switch {
			case isMixed(ch):
				tmp = append(tmp, mixed[ch])
			case isAlphaUpper(ch):
				submode = submodeAlpha
				tmp = append(tmp, 28) // al
				continue
			case isAlphaLower(ch):
				submode = submodeLower
				tmp = append(tmp, 27) // ll
				continue
			default:
				if idx+1 < count && isPunctuation(msg[startpos+idx+1]) {
					submode = submodePunctuation
					tmp = append(tmp, 25) // pl
					continue
				}
				tmp = append(tmp, 29, punctuation[ch]) // ps
			}

		default:
			if isPunctuation(ch) {
				tmp = append(tmp, punctuation[ch])
			} else {
				submode = submodeAlpha
				tmp = append(tmp, 29) // al
				continue
			}
		}
		idx++
		if idx >= count {
			break
		}
	}

	h := 0
	for i, v := range tmp {
		if i%2 != 0 {
			out.write(h*30 + v)
		} else {
			h = v
		}
	}
	if len(tmp)%2 != 0 {
		out.write(h*30 + 29) // ps
	}
	return submode
}

// encodeBinary encodes count bytes from startpos with Byte Compaction
// (ISO/IEC 15438:2001 4.4.3). Six bytes pack into five codewords.
func encodeBinary(data []byte, startpos, count, startmode int, out *codewordBuffer) {
	switch {
	case count == 1 && startmode == textCompaction:
		out.write(shiftToByte)
	case count%6 == 0:
		out.write(latchToByte)
	default:
		out.write(latchToBytePadded)
	}

	idx := startpos
	var chars [5]int
	for startpos+count-idx >= 6 {
		var t int64
		for i := 0; i < 6; i++ {
			t = t<<8 | int64(data[idx+i])
		}
		for i := 0; i < 5; i++ {
			chars[i] = int(t % 900)
			t /= 900
		}
		for i := len(chars) - 1; i >= 0; i-- {
			out.write(chars[i])
		}
		idx += 6
	}
	for i := idx; i < startpos+count; i++ {
		out.write(int(data[i]))
	}
}

var (
	num900 = big.NewInt(900)
	num0   = big.NewInt(0)
)

// encodeNumeric encodes count digits from startpos with Numeric Compaction
// (ISO/IEC 15438:2001 4.4.4), in groups of up to 44 digits.
func encodeNumeric(msg []byte, startpos, count int, out *codewordBuffer) {
	for idx := 0; idx < count; {
		length := min(44, count-idx)
		part := "1" + string(msg[startpos+idx:startpos+idx+length])
		// Callers pass digit runs only, so part always parses.
		bigint, _ := new(big.Int).SetString(part, 10)

		var tmp []int
		mod := new(big.Int)
		for {
			bigint.DivMod(bigint, num900, mod)
			tmp = append(tmp, int(mod.Int64()))
			if bigint.Cmp(num0) == 0 {
				break
			}
		}
		for i := len(tmp) - 1; i >= 0; i-- {
			out.write(tmp[i])
		}
		idx += length
	}
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func isAlphaUpper(ch byte) bool { return ch == ' ' || (ch >= 'A' && ch <= 'Z') }

func isAlphaLower(ch byte) bool { return ch == ' ' || (ch >= 'a' && ch <= 'z') }

func isMixed(ch byte) bool { return ch < 128 && mixed[ch] != -1 }

func isPunctuation(ch byte) bool { return ch < 128 && punctuation[ch] != -1 }

func isText(ch byte) bool {
	return ch == '\t' || ch == '\n' || ch == '\r' || (ch >= 32 && ch <= 126)
}

// determineConsecutiveDigitCount counts the digits starting at startpos.
func determineConsecutiveDigitCount(msg []byte, startpos int) int {
	count := 0
	for idx := startpos; idx < len(msg) && isDigit(msg[idx]); idx++ {
		count++
	}
	return count
}

// determineConsecutiveTextCount counts the characters from startpos that
// text compaction should take. A run of 13 digits ends the count.
func determineConsecutiveTextCount(msg []byte, startpos int) int {
	idx := startpos
	for idx < len(msg) {
		numericCount := 0
		for numericCount < 13 && idx < len(msg) && isDigit(msg[idx]) {
			numericCount++
			idx++
		}
		if numericCount >= 13 {
			return idx - startpos - numericCount
		}
		if numericCount > 0 {
			continue
		}
		if !isText(msg[idx]) {
			break
		}
		idx++
	}
	return idx - startpos
}

// determineConsecutiveBinaryCount counts the bytes from startpos that byte
// compaction should take. It stops before 13 digits or 5 text characters.
func determineConsecutiveBinaryCount(msg []byte, startpos int) int {
	idx := startpos
	for idx < len(msg) {
		numericCount := 0
		for i := idx; numericCount < 13 && i < len(msg) && isDigit(msg[i]); i++ {
			numericCount++
		}
		if numericCount >= 13 {
			return idx - startpos
		}
		textCount := 0
		for i := idx; textCount < 5 && i < len(msg) && isText(msg[i]); i++ {
			textCount++
		}
		if textCount >= 5 {
			return idx - startpos
		}
		idx++
	}
	return idx - startpos
}
