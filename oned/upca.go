package oned

import (
	"fmt"

	"github.com/ericlevine/barcodelogic"
)

// UPCA encodes UPC-A symbols. The bars are those of the EAN-13 symbol with
// a leading zero.
type UPCA struct{ upceanLayout }

// Format implements barcodelogic.Symbology.
func (UPCA) Format() barcodelogic.Format { return barcodelogic.FormatUPCA }

// Validate implements barcodelogic.Symbology.
func (UPCA) Validate(msg string, opts *barcodelogic.Options) error {
	_, _, err := prepareUPCEAN(msg, opts, upcaPolicy)
	if err != nil {
		return fmt.Errorf("upc-a: %w", err)
	}
	return nil
}

// Encode implements barcodelogic.Symbology.
func (UPCA) Encode(msg string, opts *barcodelogic.Options) (*barcodelogic.EncodedMessage, error) {
	full, supp, err := prepareUPCEAN(msg, opts, upcaPolicy)
	if err != nil {
		return nil, fmt.Errorf("upc-a: %w", err)
	}
	emit := func(h barcodelogic.TwoDimLogicHandler) {
		h.StartBarcode(msg, upceanDisplay(full, supp))
		addGuard(h, upceanSideGuard, true)
		h.StartBarGroup(barcodelogic.UPCEANLead, full[:1])
		addGroup(h, barcodelogic.MessageCharacter, full[:1], lPatterns[full[0]-'0'], false)
		h.EndBarGroup()
		addDigits(h, full[1:6], 0, false)
		addGuard(h, upceanCentreGuard, false)
		addDigits(h, full[6:11], 0, true)
		addCheckDigit(h, full[11])
		addGuard(h, upceanSideGuard, true)
		addSupplemental(h, supp)
		h.EndBarcode()
	}
	return barcodelogic.NewEncodedMessage(barcodelogic.FormatUPCA, digitValues(full+supp), emit), nil
}
