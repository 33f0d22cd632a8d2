package fourstate

import (
	"fmt"
	"strings"

	"github.com/ericlevine/barcodelogic"
	"github.com/ericlevine/barcodelogic/checksum"
)

// RoyalMailAlphabet lists the characters of the Royal Mail and KIX tables in
// table order.
const RoyalMailAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// rmWeights are the bar weights of a character: the ascenders of two bars
// add up to the row, the descenders of two bars to the column.
var rmWeights = [4]int{4, 2, 1, 0}

// rmChars holds the four bar states of each alphabet character.
var rmChars [36][4]int

func init() {
	for i := range rmChars {
		row, col := i/6+1, i%6+1
		for j, w := range rmWeights {
			asc := weightInPair(w, row)
			desc := weightInPair(w, col)
			switch {
			case asc && desc:
				rmChars[i][j] = barcodelogic.FourStateFull
			case asc:
				rmChars[i][j] = barcodelogic.FourStateAscender
			case desc:
				rmChars[i][j] = barcodelogic.FourStateDescender
			default:
				rmChars[i][j] = barcodelogic.FourStateTracker
			}
		}
	}
}

// weightInPair reports whether w is one of the two weights that add up to
// sum.
func weightInPair(w, sum int) bool {
	for _, a := range rmWeights {
		for _, b := range rmWeights {
			if a > b && a+b == sum {
				return w == a || w == b
			}
		}
	}
	return false
}

// RoyalMailCBC encodes Royal Mail 4-State Customer Barcodes: a start bar,
// the message, a row/column check character and a stop bar.
type RoyalMailCBC struct{ royalMailLayout }

// KIX encodes Dutch KIX symbols: the Royal Mail characters with neither
// start and stop bars nor a check character.
type KIX struct{ royalMailLayout }

type royalMailLayout struct{}

// BarWidth implements barcodelogic.Symbology.
func (royalMailLayout) BarWidth(black bool, _ int, opts *barcodelogic.Options) float64 {
	return royalMailDefaults.barWidth(black, opts)
}

// CalcDimensions implements barcodelogic.Symbology.
func (royalMailLayout) CalcDimensions(enc *barcodelogic.EncodedMessage, opts *barcodelogic.Options) barcodelogic.Dimension {
	return royalMailDefaults.dimensions(enc, opts)
}

// BarSpan returns the vertical offset and height of a bar in the given
// state.
func (royalMailLayout) BarSpan(state int, opts *barcodelogic.Options) (offset, height float64) {
	return royalMailDefaults.barSpan(state, opts)
}

// Format implements barcodelogic.Symbology.
func (RoyalMailCBC) Format() barcodelogic.Format { return barcodelogic.FormatRoyalMailCBC }

// Validate implements barcodelogic.Symbology.
func (RoyalMailCBC) Validate(msg string, opts *barcodelogic.Options) error {
	if _, err := prepareRoyalMail(msg, opts); err != nil {
		return fmt.Errorf("royal mail: %w", err)
	}
	return nil
}

// Encode implements barcodelogic.Symbology.
func (RoyalMailCBC) Encode(msg string, opts *barcodelogic.Options) (*barcodelogic.EncodedMessage, error) {
	contents, err := prepareRoyalMail(msg, opts)
	if err != nil {
		return nil, fmt.Errorf("royal mail: %w", err)
	}
	return newRoyalMailMessage(barcodelogic.FormatRoyalMailCBC, msg, contents, true), nil
}

// Format implements barcodelogic.Symbology.
func (KIX) Format() barcodelogic.Format { return barcodelogic.FormatKIX }

// Validate implements barcodelogic.Symbology.
func (KIX) Validate(msg string, opts *barcodelogic.Options) error {
	if err := prepareKIX(msg, opts); err != nil {
		return fmt.Errorf("kix: %w", err)
	}
	return nil
}

// Encode implements barcodelogic.Symbology.
func (KIX) Encode(msg string, opts *barcodelogic.Options) (*barcodelogic.EncodedMessage, error) {
	if err := prepareKIX(msg, opts); err != nil {
		return nil, fmt.Errorf("kix: %w", err)
	}
	return newRoyalMailMessage(barcodelogic.FormatKIX, msg, msg, false), nil
}

// RoyalMailCheck returns the check character of msg: the rows and the
// columns of its characters are summed separately modulo 6.
func RoyalMailCheck(msg string) (byte, error) {
	if err := royalMailChars(msg); err != nil {
		return 0, err
	}
	rows, cols := 0, 0
	for i := 0; i < len(msg); i++ {
		idx := strings.IndexByte(RoyalMailAlphabet, msg[i])
		rows += idx/6 + 1
		cols += idx%6 + 1
	}
	r, c := rows%6, cols%6
	if r == 0 {
		r = 6
	}
	if c == 0 {
		c = 6
	}
	return RoyalMailAlphabet[(r-1)*6+c-1], nil
}

// royalMailChars reports the first character of msg outside the alphabet.
func royalMailChars(msg string) error {
	for i, r := range msg {
		if r > 127 || strings.IndexByte(RoyalMailAlphabet, byte(r)) < 0 {
			return &barcodelogic.CharacterError{Char: r, Pos: i}
		}
	}
	return nil
}

func prepareRoyalMail(msg string, opts *barcodelogic.Options) (string, error) {
	if msg == "" {
		return "", fmt.Errorf("empty message: %w", barcodelogic.ErrInvalidLength)
	}
	if err := royalMailChars(msg); err != nil {
		return "", err
	}
	mode := opts.ChecksumMode()
	switch mode {
	case barcodelogic.ChecksumIgnore:
		return msg, nil
	case barcodelogic.ChecksumAuto, barcodelogic.ChecksumAdd:
		return checksum.Apply(msg, barcodelogic.ChecksumAdd,
			checksum.Policy{Bare: len(msg), Full: len(msg) + 1, Compute: RoyalMailCheck})
	default:
		if len(msg) < 2 {
			return "", fmt.Errorf("message too short for a check character: %w", barcodelogic.ErrInvalidLength)
		}
		return checksum.Apply(msg, mode,
			checksum.Policy{Bare: len(msg) - 1, Full: len(msg), Compute: RoyalMailCheck})
	}
}

func prepareKIX(msg string, opts *barcodelogic.Options) error {
	switch mode := opts.ChecksumMode(); mode {
	case barcodelogic.ChecksumAdd, barcodelogic.ChecksumCheck:
		return fmt.Errorf("checksum mode %s: %w", mode, barcodelogic.ErrUnsupported)
	}
	if msg == "" {
		return fmt.Errorf("empty message: %w", barcodelogic.ErrInvalidLength)
	}
	return royalMailChars(msg)
}

func newRoyalMailMessage(format barcodelogic.Format, msg, contents string, framed bool) *barcodelogic.EncodedMessage {
	codewords := make([]int, len(contents))
	for i := 0; i < len(contents); i++ {
		codewords[i] = strings.IndexByte(RoyalMailAlphabet, contents[i])
	}
	emit := func(h barcodelogic.TwoDimLogicHandler) {
		h.StartBarcode(msg, contents)
		w := &barWriter{h: h}
		if framed {
			w.group(barcodelogic.StartCharacter, "", barcodelogic.FourStateAscender)
		}
		for i, idx := range codewords {
			w.group(barcodelogic.MessageCharacter, contents[i:i+1], rmChars[idx][:]...)
		}
		if framed {
			w.group(barcodelogic.StopCharacter, "", barcodelogic.FourStateFull)
		}
		h.EndBarcode()
	}
	return barcodelogic.NewEncodedMessage(format, codewords, emit)
}
