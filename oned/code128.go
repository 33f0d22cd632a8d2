package oned

import (
	"fmt"
	"strings"

	"github.com/ericlevine/barcodelogic"
	"github.com/ericlevine/barcodelogic/checksum"
)

// Escape characters used to specify FNC codes in Code 128 input.
const (
	Code128EscapeFNC1 = '\u00f1'
	Code128EscapeFNC2 = '\u00f2'
	Code128EscapeFNC3 = '\u00f3'
	Code128EscapeFNC4 = '\u00f4'
)

const (
	code128CodeC  = 99
	code128CodeB  = 100
	code128CodeA  = 101
	code128FNC1   = 102
	code128FNC2   = 97
	code128FNC3   = 96
	code128FNC4A  = 101
	code128FNC4B  = 100
	code128StartA = 103
	code128StartB = 104
	code128StartC = 105
	code128Stop   = 106
)

// Code128 encodes Code 128 symbols. Codesets are chosen to minimise the
// number of codewords, within Options.Code128Codesets. The mod-103 check
// character is always added.
type Code128 struct{ code128Layout }

// code128Layout provides the geometry shared by Code 128 and EAN-128.
type code128Layout struct{}

// BarWidth implements barcodelogic.Symbology.
func (code128Layout) BarWidth(_ bool, width int, opts *barcodelogic.Options) float64 {
	return code128Defaults.barWidth(width, opts)
}

// CalcDimensions implements barcodelogic.Symbology.
func (code128Layout) CalcDimensions(enc *barcodelogic.EncodedMessage, opts *barcodelogic.Options) barcodelogic.Dimension {
	return code128Defaults.dimensions(enc, opts)
}

// Format implements barcodelogic.Symbology.
func (Code128) Format() barcodelogic.Format { return barcodelogic.FormatCode128 }

// Validate implements barcodelogic.Symbology.
func (Code128) Validate(msg string, opts *barcodelogic.Options) error {
	if err := code128ChecksumMode(opts); err != nil {
		return fmt.Errorf("code 128: %w", err)
	}
	if _, err := encodeCode128([]rune(msg), code128Codesets(opts)); err != nil {
		return fmt.Errorf("code 128: %w", err)
	}
	return nil
}

// Encode implements barcodelogic.Symbology.
func (Code128) Encode(msg string, opts *barcodelogic.Options) (*barcodelogic.EncodedMessage, error) {
	if err := code128ChecksumMode(opts); err != nil {
		return nil, fmt.Errorf("code 128: %w", err)
	}
	chars, err := encodeCode128([]rune(msg), code128Codesets(opts))
	if err != nil {
		return nil, fmt.Errorf("code 128: %w", err)
	}
	return newCode128Message(barcodelogic.FormatCode128, msg, code128Display(msg), chars), nil
}

func code128ChecksumMode(opts *barcodelogic.Options) error {
	if opts.ChecksumMode() == barcodelogic.ChecksumCheck {
		return fmt.Errorf("checksum mode %s: %w", barcodelogic.ChecksumCheck, barcodelogic.ErrUnsupported)
	}
	return nil
}

func code128Codesets(opts *barcodelogic.Options) barcodelogic.Codeset {
	if opts == nil {
		return barcodelogic.CodesetAll
	}
	return opts.Code128Codesets
}

// code128Display drops the FNC escapes from msg.
func code128Display(msg string) string {
	return strings.Map(func(r rune) rune {
		if r >= Code128EscapeFNC1 && r <= Code128EscapeFNC4 {
			return -1
		}
		return r
	}, msg)
}

// code128Char is one encoded symbol character and the text it carries.
type code128Char struct {
	value int
	label string
}

// Code128Codewords returns the codewords of msg from the start character to
// the stop character, check character included.
func Code128Codewords(msg string, codesets barcodelogic.Codeset) ([]int, error) {
	chars, err := encodeCode128([]rune(msg), codesets)
	if err != nil {
		return nil, err
	}
	values := make([]int, len(chars))
	for i, c := range chars {
		values[i] = c.value
	}
	return values, nil
}

func newCode128Message(format barcodelogic.Format, msg, display string, chars []code128Char) *barcodelogic.EncodedMessage {
	codewords := make([]int, len(chars))
	for i, c := range chars {
		codewords[i] = c.value
	}
	emit := func(h barcodelogic.TwoDimLogicHandler) {
		h.StartBarcode(msg, display)
		for i, c := range chars {
			group := barcodelogic.MessageCharacter
			switch i {
			case 0:
				group = barcodelogic.StartCharacter
			case len(chars) - 1:
				group = barcodelogic.StopCharacter
			}
			addGroup(h, group, c.label, code128Patterns[c.value], true)
		}
		h.EndBarcode()
	}
	return barcodelogic.NewEncodedMessage(format, codewords, emit)
}

func isFNC(c rune) bool {
	return c >= Code128EscapeFNC1 && c <= Code128EscapeFNC4
}

func checkCode128Contents(contents []rune) error {
	if len(contents) == 0 {
		return fmt.Errorf("empty message: %w", barcodelogic.ErrInvalidLength)
	}
	for i, c := range contents {
		if c > 127 && !isFNC(c) {
			return &barcodelogic.CharacterError{Char: c, Pos: i}
		}
	}
	return nil
}

// code128CType classifies characters for Code C lookahead.
type code128CType int

const (
	code128Uncodable code128CType = iota
	code128OneDigit
	code128TwoDigits
	code128FNC1Found
)

func findCode128CType(value []rune, start int) code128CType {
	last := len(value)
	if start >= last {
		return code128Uncodable
	}
	c := value[start]
	if c == Code128EscapeFNC1 {
		return code128FNC1Found
	}
	if c < '0' || c > '9' {
		return code128Uncodable
	}
	if start+1 >= last {
		return code128OneDigit
	}
	c = value[start+1]
	if c < '0' || c > '9' {
		return code128OneDigit
	}
	return code128TwoDigits
}

func chooseCode128(value []rune, start, oldCode int) int {
	lookahead := findCode128CType(value, start)
	if lookahead == code128OneDigit {
		if oldCode == code128CodeA {
			return code128CodeA
		}
		return code128CodeB
	}
	if lookahead == code128Uncodable {
		if start < len(value) {
			c := value[start]
			if c < ' ' || (oldCode == code128CodeA && (c < '`' || isFNC(c))) {
				return code128CodeA
			}
		}
		return code128CodeB
	}
	if oldCode == code128CodeA && lookahead == code128FNC1Found {
		return code128CodeA
	}
	if oldCode == code128CodeC {
		return code128CodeC
	}
	if oldCode == code128CodeB {
		if lookahead == code128FNC1Found {
			return code128CodeB
		}
		lookahead = findCode128CType(value, start+2)
		if lookahead == code128Uncodable || lookahead == code128OneDigit {
			return code128CodeB
		}
		if lookahead == code128FNC1Found {
			lookahead = findCode128CType(value, start+3)
			if lookahead == code128TwoDigits {
				return code128CodeC
			}
			return code128CodeB
		}
		index := start + 4
		for findCode128CType(value, index) == code128TwoDigits {
			index += 2
		}
		if findCode128CType(value, index) == code128OneDigit {
			return code128CodeB
		}
		return code128CodeC
	}
	// oldCode == 0: choosing the start character
	if lookahead == code128FNC1Found {
		lookahead = findCode128CType(value, start+1)
	}
	if lookahead == code128TwoDigits {
		return code128CodeC
	}
	return code128CodeB
}

func code128Set(code int) barcodelogic.Codeset {
	switch code {
	case code128CodeA:
		return barcodelogic.CodesetA
	case code128CodeB:
		return barcodelogic.CodesetB
	default:
		return barcodelogic.CodesetC
	}
}

// canEncode128 reports whether the character at start fits codeset code.
func canEncode128(value []rune, start, code int) bool {
	c := value[start]
	switch code {
	case code128CodeA:
		return c < '`' || isFNC(c)
	case code128CodeB:
		return (c >= ' ' && c < 128) || isFNC(c)
	default:
		t := findCode128CType(value, start)
		return t == code128TwoDigits || t == code128FNC1Found
	}
}

// nextCode128 picks the codeset for the character at start, staying within
// allowed.
func nextCode128(value []rune, start, oldCode int, allowed barcodelogic.Codeset) (int, error) {
	code := chooseCode128(value, start, oldCode)
	if allowed.Has(code128Set(code)) && canEncode128(value, start, code) {
		return code, nil
	}
	if oldCode != 0 && allowed.Has(code128Set(oldCode)) && canEncode128(value, start, oldCode) {
		return oldCode, nil
	}
	for _, alt := range [...]int{code128CodeB, code128CodeA, code128CodeC} {
		if allowed.Has(code128Set(alt)) && canEncode128(value, start, alt) {
			return alt, nil
		}
	}
	return 0, &barcodelogic.CharacterError{Char: value[start], Pos: start}
}

// encodeCode128 returns the symbol characters of contents, from the start
// character to the stop character.
func encodeCode128(contents []rune, allowed barcodelogic.Codeset) ([]code128Char, error) {
	if err := checkCode128Contents(contents); err != nil {
		return nil, err
	}
	length := len(contents)
	var chars []code128Char
	codeSet := 0
	position := 0

	for position < length {
		newCodeSet, err := nextCode128(contents, position, codeSet, allowed)
		if err != nil {
			return nil, err
		}

		var ch code128Char
		if newCodeSet == codeSet {
			c := contents[position]
			switch c {
			case Code128EscapeFNC1:
				ch.value = code128FNC1
			case Code128EscapeFNC2:
				ch.value = code128FNC2
			case Code128EscapeFNC3:
				ch.value = code128FNC3
			case Code128EscapeFNC4:
				if codeSet == code128CodeA {
					ch.value = code128FNC4A
				} else {
					ch.value = code128FNC4B
				}
			default:
				switch codeSet {
				case code128CodeA:
					ch.value = int(c) - ' '
					if ch.value < 0 {
						ch.value += '`'
					}
					ch.label = string(c)
				case code128CodeB:
					ch.value = int(c) - ' '
					ch.label = string(c)
				default:
					ch.value = int(c-'0')*10 + int(contents[position+1]-'0')
					ch.label = string(contents[position : position+2])
					position++
				}
			}
			position++
		} else {
			if codeSet == 0 {
				switch newCodeSet {
				case code128CodeA:
					ch.value = code128StartA
				case code128CodeB:
					ch.value = code128StartB
				default:
					ch.value = code128StartC
				}
			} else {
				ch.value = newCodeSet
			}
			codeSet = newCodeSet
		}
		chars = append(chars, ch)
	}

	values := make([]int, len(chars))
	for i, c := range chars {
		values[i] = c.value
	}
	chars = append(chars,
		code128Char{value: checksum.Mod103(values)},
		code128Char{value: code128Stop})
	return chars, nil
}
