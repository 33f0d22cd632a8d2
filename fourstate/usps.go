package fourstate

import (
	"fmt"
	"math/big"
	"math/bits"

	"github.com/ericlevine/barcodelogic"
	"github.com/ericlevine/barcodelogic/checksum"
)

const (
	// USPSTrackingLength is the number of digits of the tracking code.
	USPSTrackingLength = 20
	// USPSMaxLength is the longest message: tracking code and an 11-digit
	// routing code.
	USPSMaxLength = USPSTrackingLength + 11
)

// Characters of the Intelligent Mail symbol are 13-bit values with five or
// two bits set.
var (
	uspsFiveOf13 = nof13Table(5, 1287)
	uspsTwoOf13  = nof13Table(2, 78)
)

var (
	big636  = big.NewInt(636)
	big1365 = big.NewInt(1365)
)

// USPSIntelligentMail encodes USPS Intelligent Mail barcodes. A message is
// the 20-digit tracking code followed by a routing code of 0, 5, 9 or 11
// digits. The frame check sequence is always embedded.
type USPSIntelligentMail struct{}

// Format implements barcodelogic.Symbology.
func (USPSIntelligentMail) Format() barcodelogic.Format {
	return barcodelogic.FormatUSPSIntelligentMail
}

// BarWidth implements barcodelogic.Symbology.
func (USPSIntelligentMail) BarWidth(black bool, _ int, opts *barcodelogic.Options) float64 {
	return uspsDefaults.barWidth(black, opts)
}

// CalcDimensions implements barcodelogic.Symbology.
func (USPSIntelligentMail) CalcDimensions(enc *barcodelogic.EncodedMessage, opts *barcodelogic.Options) barcodelogic.Dimension {
	return uspsDefaults.dimensions(enc, opts)
}

// BarSpan returns the vertical offset and height of a bar in the given
// state.
func (USPSIntelligentMail) BarSpan(state int, opts *barcodelogic.Options) (offset, height float64) {
	return uspsDefaults.barSpan(state, opts)
}

// Validate implements barcodelogic.Symbology.
func (USPSIntelligentMail) Validate(msg string, opts *barcodelogic.Options) error {
	if err := validateUSPS(msg, opts); err != nil {
		return fmt.Errorf("intelligent mail: %w", err)
	}
	return nil
}

// Encode implements barcodelogic.Symbology.
func (USPSIntelligentMail) Encode(msg string, opts *barcodelogic.Options) (*barcodelogic.EncodedMessage, error) {
	if err := validateUSPS(msg, opts); err != nil {
		return nil, fmt.Errorf("intelligent mail: %w", err)
	}
	codewords, chars := uspsCharacters(msg)
	emit := func(h barcodelogic.TwoDimLogicHandler) {
		h.StartBarcode(msg, msg)
		h.StartBarGroup(barcodelogic.MessageCharacter, msg)
		for i, m := range uspsTable {
			if i > 0 {
				h.AddBar(false, 1)
			}
			desc := chars[m.DescenderChar]>>m.DescenderBit&1 != 0
			asc := chars[m.AscenderChar]>>m.AscenderBit&1 != 0
			h.AddBar(true, barState(asc, desc))
		}
		h.EndBarGroup()
		h.EndBarcode()
	}
	return barcodelogic.NewEncodedMessage(barcodelogic.FormatUSPSIntelligentMail, codewords[:], emit), nil
}

func barState(asc, desc bool) int {
	switch {
	case asc && desc:
		return barcodelogic.FourStateFull
	case asc:
		return barcodelogic.FourStateAscender
	case desc:
		return barcodelogic.FourStateDescender
	default:
		return barcodelogic.FourStateTracker
	}
}

func validateUSPS(msg string, opts *barcodelogic.Options) error {
	if mode := opts.ChecksumMode(); mode == barcodelogic.ChecksumCheck {
		return fmt.Errorf("checksum mode %s: %w", mode, barcodelogic.ErrUnsupported)
	}
	if err := checksum.Digits(msg); err != nil {
		return err
	}
	switch len(msg) - USPSTrackingLength {
	case 0, 5, 9, 11:
	default:
		return fmt.Errorf("%d digits, want 20, 25, 29 or 31: %w", len(msg), barcodelogic.ErrInvalidLength)
	}
	if msg[1] > '4' {
		return &barcodelogic.CharacterError{Char: rune(msg[1]), Pos: 1}
	}
	return nil
}

// uspsValue converts the routing and tracking codes to the 102-bit binary
// value of the symbol.
func uspsValue(msg string) *big.Int {
	tracking, routing := msg[:USPSTrackingLength], msg[USPSTrackingLength:]
	v := new(big.Int)
	if routing != "" {
		v.SetString(routing, 10)
		switch len(routing) {
		case 5:
			v.Add(v, big.NewInt(1))
		case 9:
			v.Add(v, big.NewInt(100000+1))
		case 11:
			v.Add(v, big.NewInt(1000000000+100000+1))
		}
	}
	v.Mul(v, big.NewInt(10)).Add(v, big.NewInt(int64(tracking[0]-'0')))
	v.Mul(v, big.NewInt(5)).Add(v, big.NewInt(int64(tracking[1]-'0')))
	ten := big.NewInt(10)
	for i := 2; i < len(tracking); i++ {
		v.Mul(v, ten).Add(v, big.NewInt(int64(tracking[i]-'0')))
	}
	return v
}

// uspsCharacters returns the ten codewords A to J of msg and the characters
// they map to, with the frame check sequence folded in.
func uspsCharacters(msg string) (codewords, chars [10]int) {
	v := uspsValue(msg)
	var data [13]byte
	v.FillBytes(data[:])
	fcs := checksum.USPSFrameCheck(data)

	m := new(big.Int)
	v.DivMod(v, big636, m)
	codewords[9] = int(m.Int64())
	for i := 8; i >= 1; i-- {
		v.DivMod(v, big1365, m)
		codewords[i] = int(m.Int64())
	}
	codewords[0] = int(v.Int64())
	codewords[9] *= 2
	if fcs&0x400 != 0 {
		codewords[0] += 659
	}

	for i, cw := range codewords {
		if cw < len(uspsFiveOf13) {
			chars[i] = uspsFiveOf13[cw]
		} else {
			chars[i] = uspsTwoOf13[cw-len(uspsFiveOf13)]
		}
		if fcs>>i&1 != 0 {
			chars[i] ^= 0x1FFF
		}
	}
	return codewords, chars
}

// nof13Table lists the 13-bit values with n bits set. A value and its bit
// reversal are stored next to each other from the front; palindromes fill
// the table from the back.
func nof13Table(n, size int) []int {
	t := make([]int, size)
	lo, hi := 0, size-1
	for c := 0; c < 1<<13; c++ {
		if bits.OnesCount16(uint16(c)) != n {
			continue
		}
		rev := int(bits.Reverse16(uint16(c)) >> 3)
		if rev < c {
			continue
		}
		if rev == c {
			t[hi] = c
			hi--
		} else {
			t[lo] = c
			t[lo+1] = rev
			lo += 2
		}
	}
	return t
}
