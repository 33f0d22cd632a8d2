package oned

import (
	"fmt"
	"strings"

	"github.com/ericlevine/barcodelogic"
	"github.com/ericlevine/barcodelogic/checksum"
)

// Code39 encodes Code 39 symbols, framed by '*' start and stop characters.
// With Options.Code39Extended, full ASCII is encoded through two-character
// sequences.
type Code39 struct{}

// Format implements barcodelogic.Symbology.
func (Code39) Format() barcodelogic.Format { return barcodelogic.FormatCode39 }

// BarWidth implements barcodelogic.Symbology.
func (Code39) BarWidth(_ bool, width int, opts *barcodelogic.Options) float64 {
	return code39Defaults.barWidth(width, opts)
}

// CalcDimensions implements barcodelogic.Symbology.
func (Code39) CalcDimensions(enc *barcodelogic.EncodedMessage, opts *barcodelogic.Options) barcodelogic.Dimension {
	return code39Defaults.dimensions(enc, opts)
}

// Validate implements barcodelogic.Symbology.
func (Code39) Validate(msg string, opts *barcodelogic.Options) error {
	if _, _, err := prepareCode39(msg, opts); err != nil {
		return fmt.Errorf("code 39: %w", err)
	}
	return nil
}

// Encode implements barcodelogic.Symbology.
func (Code39) Encode(msg string, opts *barcodelogic.Options) (*barcodelogic.EncodedMessage, error) {
	contents, hasCheck, err := prepareCode39(msg, opts)
	if err != nil {
		return nil, fmt.Errorf("code 39: %w", err)
	}
	codewords := make([]int, len(contents))
	for i := 0; i < len(contents); i++ {
		codewords[i] = strings.IndexByte(code39Alphabet, contents[i])
	}
	display := msg
	if hasCheck && opts != nil && opts.Code39DisplayChecksum {
		display += contents[len(contents)-1:]
	}
	if opts != nil && opts.Code39DisplayStartStop {
		display = "*" + display + "*"
	}
	emit := func(h barcodelogic.TwoDimLogicHandler) {
		h.StartBarcode(msg, display)
		addGroup(h, barcodelogic.StartCharacter, "*", code39Widths(code39AsteriskEncoding), true)
		for i := 0; i < len(contents); i++ {
			h.AddBar(false, 1)
			addGroup(h, barcodelogic.MessageCharacter, contents[i:i+1], code39Widths(code39CharacterEncodings[codewords[i]]), true)
		}
		h.AddBar(false, 1)
		addGroup(h, barcodelogic.StopCharacter, "*", code39Widths(code39AsteriskEncoding), true)
		h.EndBarcode()
	}
	return barcodelogic.NewEncodedMessage(barcodelogic.FormatCode39, codewords, emit), nil
}

// prepareCode39 returns the characters to encode, the check character
// included, and whether the last one is a check character.
func prepareCode39(msg string, opts *barcodelogic.Options) (string, bool, error) {
	if msg == "" {
		return "", false, fmt.Errorf("empty message: %w", barcodelogic.ErrInvalidLength)
	}
	contents := msg
	if opts != nil && opts.Code39Extended {
		ext, err := toCode39Extended(msg)
		if err != nil {
			return "", false, err
		}
		contents = ext
	}
	for i, c := range contents {
		if c > 127 || strings.IndexByte(code39Alphabet, byte(c)) < 0 {
			return "", false, &barcodelogic.CharacterError{Char: c, Pos: i}
		}
	}
	switch mode := opts.ChecksumMode(); mode {
	case barcodelogic.ChecksumAdd:
		return contents + string(code39Alphabet[code39Check(contents)]), true, nil
	case barcodelogic.ChecksumCheck:
		if len(contents) < 2 {
			return "", false, fmt.Errorf("message too short for a check character: %w", barcodelogic.ErrInvalidLength)
		}
		body := contents[:len(contents)-1]
		want := code39Alphabet[code39Check(body)]
		if got := contents[len(contents)-1]; got != want {
			return "", false, &barcodelogic.ChecksumError{Expected: string(want), Actual: string(got)}
		}
		return contents, true, nil
	default:
		return contents, false, nil
	}
}

func code39Check(contents string) int {
	values := make([]int, len(contents))
	for i := 0; i < len(contents); i++ {
		values[i] = strings.IndexByte(code39Alphabet, contents[i])
	}
	return checksum.Mod43(values)
}

// code39Widths expands a 9-bit Code 39 pattern to narrow (1) and wide (2)
// widths.
func code39Widths(a int) []int {
	widths := make([]int, 9)
	for i := 0; i < 9; i++ {
		if a&(1<<uint(8-i)) != 0 {
			widths[i] = 2
		} else {
			widths[i] = 1
		}
	}
	return widths
}

// toCode39Extended rewrites full ASCII contents in the Code 39 alphabet.
func toCode39Extended(contents string) (string, error) {
	var ext strings.Builder
	for i, r := range contents {
		if r > 127 {
			return "", &barcodelogic.CharacterError{Char: r, Pos: i}
		}
		c := byte(r)
		switch {
		case c == 0:
			ext.WriteString("%U")
		case c == ' ' || c == '-' || c == '.':
			ext.WriteByte(c)
		case c == '@':
			ext.WriteString("%V")
		case c == '`':
			ext.WriteString("%W")
		case c <= 26:
			ext.WriteByte('$')
			ext.WriteByte('A' + c - 1)
		case c < ' ':
			ext.WriteByte('%')
			ext.WriteByte('A' + c - 27)
		case c <= ',' || c == '/' || c == ':':
			ext.WriteByte('/')
			ext.WriteByte('A' + c - 33)
		case c <= '9':
			ext.WriteByte(c)
		case c <= '?':
			ext.WriteByte('%')
			ext.WriteByte('F' + c - 59)
		case c <= 'Z':
			ext.WriteByte(c)
		case c <= '_':
			ext.WriteByte('%')
			ext.WriteByte('K' + c - 91)
		case c <= 'z':
			ext.WriteByte('+')
			ext.WriteByte('A' + c - 97)
		default:
			ext.WriteByte('%')
			ext.WriteByte('P' + c - 123)
		}
	}
	return ext.String(), nil
}
