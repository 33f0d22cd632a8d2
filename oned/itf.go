package oned

import (
	"fmt"

	"github.com/ericlevine/barcodelogic"
	"github.com/ericlevine/barcodelogic/checksum"
)

var itf14Policy = checksum.Policy{Bare: 13, Full: 14}

// ITF encodes Interleaved 2 of 5 symbols. Digits are encoded in pairs, the
// first in the bars and the second in the spaces; an odd digit count is
// padded with a leading zero.
type ITF struct{ itfLayout }

// ITF14 encodes ITF-14 shipping container symbols: 13 digits and a mod-10
// check digit.
type ITF14 struct{ itfLayout }

// itfLayout provides the geometry shared by ITF and ITF-14.
type itfLayout struct{}

// BarWidth implements barcodelogic.Symbology.
func (itfLayout) BarWidth(_ bool, width int, opts *barcodelogic.Options) float64 {
	return itfDefaults.barWidth(width, opts)
}

// CalcDimensions implements barcodelogic.Symbology.
func (itfLayout) CalcDimensions(enc *barcodelogic.EncodedMessage, opts *barcodelogic.Options) barcodelogic.Dimension {
	return itfDefaults.dimensions(enc, opts)
}

// Format implements barcodelogic.Symbology.
func (ITF) Format() barcodelogic.Format { return barcodelogic.FormatITF }

// Validate implements barcodelogic.Symbology.
func (ITF) Validate(msg string, opts *barcodelogic.Options) error {
	if _, err := prepareITF(msg, opts); err != nil {
		return fmt.Errorf("itf: %w", err)
	}
	return nil
}

// Encode implements barcodelogic.Symbology.
func (ITF) Encode(msg string, opts *barcodelogic.Options) (*barcodelogic.EncodedMessage, error) {
	contents, err := prepareITF(msg, opts)
	if err != nil {
		return nil, fmt.Errorf("itf: %w", err)
	}
	return newITFMessage(barcodelogic.FormatITF, msg, contents), nil
}

// Format implements barcodelogic.Symbology.
func (ITF14) Format() barcodelogic.Format { return barcodelogic.FormatITF14 }

// Validate implements barcodelogic.Symbology.
func (ITF14) Validate(msg string, opts *barcodelogic.Options) error {
	if _, err := prepareITF14(msg, opts); err != nil {
		return fmt.Errorf("itf-14: %w", err)
	}
	return nil
}

// Encode implements barcodelogic.Symbology.
func (ITF14) Encode(msg string, opts *barcodelogic.Options) (*barcodelogic.EncodedMessage, error) {
	contents, err := prepareITF14(msg, opts)
	if err != nil {
		return nil, fmt.Errorf("itf-14: %w", err)
	}
	return newITFMessage(barcodelogic.FormatITF14, msg, contents), nil
}

func prepareITF(msg string, opts *barcodelogic.Options) (string, error) {
	if msg == "" {
		return "", fmt.Errorf("empty message: %w", barcodelogic.ErrInvalidLength)
	}
	if err := digitsAt(msg, 0); err != nil {
		return "", err
	}
	contents := msg
	switch mode := opts.ChecksumMode(); mode {
	case barcodelogic.ChecksumAdd:
		c, err := checksum.Mod10Rune(msg)
		if err != nil {
			return "", err
		}
		contents += string(c)
	case barcodelogic.ChecksumCheck:
		if len(msg) < 2 {
			return "", fmt.Errorf("message too short for a check digit: %w", barcodelogic.ErrInvalidLength)
		}
		p := checksum.Policy{Bare: len(msg) - 1, Full: len(msg)}
		if _, err := checksum.Apply(msg, mode, p); err != nil {
			return "", err
		}
	}
	if len(contents)%2 != 0 {
		contents = "0" + contents
	}
	return contents, nil
}

func prepareITF14(msg string, opts *barcodelogic.Options) (string, error) {
	if err := digitsAt(msg, 0); err != nil {
		return "", err
	}
	return checksum.Apply(msg, opts.ChecksumMode(), itf14Policy)
}

func newITFMessage(format barcodelogic.Format, msg, contents string) *barcodelogic.EncodedMessage {
	emit := func(h barcodelogic.TwoDimLogicHandler) {
		h.StartBarcode(msg, contents)
		addGroup(h, barcodelogic.StartCharacter, "", itfStartPattern, true)
		for i := 0; i < len(contents); i += 2 {
			bars := itfPatterns[contents[i]-'0']
			spaces := itfPatterns[contents[i+1]-'0']
			h.StartBarGroup(barcodelogic.MessageCharacter, contents[i:i+2])
			for j := 0; j < 5; j++ {
				h.AddBar(true, bars[j])
				h.AddBar(false, spaces[j])
			}
			h.EndBarGroup()
		}
		addGroup(h, barcodelogic.StopCharacter, "", itfStopPattern, true)
		h.EndBarcode()
	}
	return barcodelogic.NewEncodedMessage(format, digitValues(contents), emit)
}
