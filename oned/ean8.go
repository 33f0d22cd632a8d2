package oned

import (
	"fmt"

	"github.com/ericlevine/barcodelogic"
)

// EAN8 encodes EAN-8 symbols.
type EAN8 struct{ upceanLayout }

// Format implements barcodelogic.Symbology.
func (EAN8) Format() barcodelogic.Format { return barcodelogic.FormatEAN8 }

// Validate implements barcodelogic.Symbology.
func (EAN8) Validate(msg string, opts *barcodelogic.Options) error {
	_, _, err := prepareUPCEAN(msg, opts, ean8Policy)
	if err != nil {
		return fmt.Errorf("ean-8: %w", err)
	}
	return nil
}

// Encode implements barcodelogic.Symbology.
func (EAN8) Encode(msg string, opts *barcodelogic.Options) (*barcodelogic.EncodedMessage, error) {
	full, supp, err := prepareUPCEAN(msg, opts, ean8Policy)
	if err != nil {
		return nil, fmt.Errorf("ean-8: %w", err)
	}
	emit := func(h barcodelogic.TwoDimLogicHandler) {
		h.StartBarcode(msg, upceanDisplay(full, supp))
		addGuard(h, upceanSideGuard, true)
		addDigits(h, full[:4], 0, false)
		addGuard(h, upceanCentreGuard, false)
		addDigits(h, full[4:7], 0, true)
		addCheckDigit(h, full[7])
		addGuard(h, upceanSideGuard, true)
		addSupplemental(h, supp)
		h.EndBarcode()
	}
	return barcodelogic.NewEncodedMessage(barcodelogic.FormatEAN8, digitValues(full+supp), emit), nil
}
