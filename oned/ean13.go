package oned

import (
	"fmt"

	"github.com/ericlevine/barcodelogic"
)

// EAN13 encodes EAN-13 symbols. The first digit is carried by the L/G
// parities of the left group and has no bars of its own.
type EAN13 struct{ upceanLayout }

// Format implements barcodelogic.Symbology.
func (EAN13) Format() barcodelogic.Format { return barcodelogic.FormatEAN13 }

// Validate implements barcodelogic.Symbology.
func (EAN13) Validate(msg string, opts *barcodelogic.Options) error {
	_, _, err := prepareUPCEAN(msg, opts, ean13Policy)
	if err != nil {
		return fmt.Errorf("ean-13: %w", err)
	}
	return nil
}

// Encode implements barcodelogic.Symbology.
func (EAN13) Encode(msg string, opts *barcodelogic.Options) (*barcodelogic.EncodedMessage, error) {
	full, supp, err := prepareUPCEAN(msg, opts, ean13Policy)
	if err != nil {
		return nil, fmt.Errorf("ean-13: %w", err)
	}
	emit := func(h barcodelogic.TwoDimLogicHandler) {
		h.StartBarcode(msg, upceanDisplay(full, supp))
		addGuard(h, upceanSideGuard, true)
		h.StartBarGroup(barcodelogic.UPCEANLead, full[:1])
		h.EndBarGroup()
		addDigits(h, full[1:7], ean13FirstDigitParities[full[0]-'0'], false)
		addGuard(h, upceanCentreGuard, false)
		addDigits(h, full[7:12], 0, true)
		addCheckDigit(h, full[12])
		addGuard(h, upceanSideGuard, true)
		addSupplemental(h, supp)
		h.EndBarcode()
	}
	return barcodelogic.NewEncodedMessage(barcodelogic.FormatEAN13, digitValues(full+supp), emit), nil
}
