package oned

import (
	"fmt"
	"strings"

	"github.com/ericlevine/barcodelogic"
)

const codabarDefaultGuard = 'A'

// Codabar encodes Codabar symbols. A message may carry its own start and
// stop characters (A-D, or the aliases T, N, * and E); otherwise A is used
// for both.
type Codabar struct{}

// Format implements barcodelogic.Symbology.
func (Codabar) Format() barcodelogic.Format { return barcodelogic.FormatCodabar }

// BarWidth implements barcodelogic.Symbology.
func (Codabar) BarWidth(_ bool, width int, opts *barcodelogic.Options) float64 {
	return codabarDefaults.barWidth(width, opts)
}

// CalcDimensions implements barcodelogic.Symbology.
func (Codabar) CalcDimensions(enc *barcodelogic.EncodedMessage, opts *barcodelogic.Options) barcodelogic.Dimension {
	return codabarDefaults.dimensions(enc, opts)
}

// Validate implements barcodelogic.Symbology.
func (Codabar) Validate(msg string, opts *barcodelogic.Options) error {
	if _, err := prepareCodabar(msg, opts); err != nil {
		return fmt.Errorf("codabar: %w", err)
	}
	return nil
}

// Encode implements barcodelogic.Symbology.
func (Codabar) Encode(msg string, opts *barcodelogic.Options) (*barcodelogic.EncodedMessage, error) {
	contents, err := prepareCodabar(msg, opts)
	if err != nil {
		return nil, fmt.Errorf("codabar: %w", err)
	}
	codewords := make([]int, len(contents))
	for i := 0; i < len(contents); i++ {
		codewords[i] = strings.IndexByte(codabarAlphabet, contents[i])
	}
	last := len(contents) - 1
	emit := func(h barcodelogic.TwoDimLogicHandler) {
		h.StartBarcode(msg, contents[1:last])
		for i, idx := range codewords {
			group := barcodelogic.MessageCharacter
			switch i {
			case 0:
				group = barcodelogic.StartCharacter
			case last:
				group = barcodelogic.StopCharacter
			}
			if i > 0 {
				h.AddBar(false, 1)
			}
			addGroup(h, group, contents[i:i+1], codabarCharacterEncodings[idx][:], true)
		}
		h.EndBarcode()
	}
	return barcodelogic.NewEncodedMessage(barcodelogic.FormatCodabar, codewords, emit), nil
}

// prepareCodabar returns msg with its start and stop characters in A-D form.
func prepareCodabar(msg string, opts *barcodelogic.Options) (string, error) {
	switch mode := opts.ChecksumMode(); mode {
	case barcodelogic.ChecksumAdd, barcodelogic.ChecksumCheck:
		return "", fmt.Errorf("checksum mode %s: %w", mode, barcodelogic.ErrUnsupported)
	}
	if msg == "" {
		return "", fmt.Errorf("empty message: %w", barcodelogic.ErrInvalidLength)
	}
	contents := []byte(msg)
	first, firstOK := codabarGuard(msg[0])
	lastC, lastOK := codabarGuard(msg[len(msg)-1])
	switch {
	case firstOK && lastOK && len(msg) >= 2:
		contents[0], contents[len(contents)-1] = first, lastC
	case firstOK || lastOK:
		return "", fmt.Errorf("%q has only one start/stop character: %w", msg, barcodelogic.ErrInvalidMessage)
	default:
		contents = append(append([]byte{codabarDefaultGuard}, contents...), codabarDefaultGuard)
	}
	body := contents[1 : len(contents)-1]
	offset := 0
	if firstOK {
		offset = 1
	}
	for i, c := range string(body) {
		if c > 127 || strings.IndexByte(codabarAlphabet[:16], byte(c)) < 0 {
			return "", &barcodelogic.CharacterError{Char: c, Pos: i + offset}
		}
	}
	return string(contents), nil
}

// codabarGuard maps a start/stop character to its A-D form.
func codabarGuard(c byte) (byte, bool) {
	switch c {
	case 'A', 'B', 'C', 'D':
		return c, true
	case 'T':
		return 'A', true
	case 'N':
		return 'B', true
	case '*':
		return 'C', true
	case 'E':
		return 'D', true
	}
	return 0, false
}
