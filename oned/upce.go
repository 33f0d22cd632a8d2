package oned

import (
	"fmt"
	"strings"

	"github.com/ericlevine/barcodelogic"
	"github.com/ericlevine/barcodelogic/checksum"
)

var upcePolicy = checksum.Policy{Bare: 7, Full: 8, Compute: upceCheckDigit}

// UPCE encodes zero-suppressed UPC-E symbols. Messages are 7 or 8 digits
// (number system, six digits, check digit) or an 11 or 12 digit UPC-A
// message that can be compacted.
type UPCE struct{ upceanLayout }

// Format implements barcodelogic.Symbology.
func (UPCE) Format() barcodelogic.Format { return barcodelogic.FormatUPCE }

// Validate implements barcodelogic.Symbology.
func (UPCE) Validate(msg string, opts *barcodelogic.Options) error {
	_, _, err := prepareUPCE(msg, opts)
	if err != nil {
		return fmt.Errorf("upc-e: %w", err)
	}
	return nil
}

// Encode implements barcodelogic.Symbology.
func (UPCE) Encode(msg string, opts *barcodelogic.Options) (*barcodelogic.EncodedMessage, error) {
	full, supp, err := prepareUPCE(msg, opts)
	if err != nil {
		return nil, fmt.Errorf("upc-e: %w", err)
	}
	numberSystem := full[0] - '0'
	check := full[7] - '0'
	emit := func(h barcodelogic.TwoDimLogicHandler) {
		h.StartBarcode(msg, upceanDisplay(full, supp))
		addGuard(h, upceanSideGuard, true)
		h.StartBarGroup(barcodelogic.UPCEANLead, full[:1])
		h.EndBarGroup()
		addDigits(h, full[1:7], upceParities[numberSystem][check], false)
		h.StartBarGroup(barcodelogic.UPCEANCheck, full[7:])
		h.EndBarGroup()
		addGuard(h, upceEndGuard, false)
		addSupplemental(h, supp)
		h.EndBarcode()
	}
	return barcodelogic.NewEncodedMessage(barcodelogic.FormatUPCE, digitValues(full+supp), emit), nil
}

func prepareUPCE(msg string, opts *barcodelogic.Options) (full, supp string, err error) {
	main, supp, err := splitSupplemental(msg)
	if err != nil {
		return "", "", err
	}
	if err := digitsAt(main, 0); err != nil {
		return "", "", err
	}
	switch len(main) {
	case upcaPolicy.Bare, upcaPolicy.Full:
		upca, err := checksum.Apply(main, opts.ChecksumMode(), upcaPolicy)
		if err != nil {
			return "", "", err
		}
		compact, ok := CompactUPCA(upca[:11])
		if !ok {
			return "", "", fmt.Errorf("%s cannot be zero-suppressed: %w", main, barcodelogic.ErrInvalidMessage)
		}
		full = compact + upca[11:]
	default:
		if len(main) > 0 && main[0] != '0' && main[0] != '1' {
			return "", "", fmt.Errorf("number system %c must be 0 or 1: %w", main[0], barcodelogic.ErrInvalidMessage)
		}
		full, err = checksum.Apply(main, opts.ChecksumMode(), upcePolicy)
		if err != nil {
			return "", "", err
		}
	}
	return full, supp, nil
}

func upceCheckDigit(bare string) (byte, error) {
	return checksum.Mod10Rune(ExpandUPCE(bare))
}

// ExpandUPCE converts a 7 or 8 digit UPC-E message to the UPC-A message it
// stands for. A check digit is carried over unchanged.
func ExpandUPCE(upce string) string {
	if len(upce) < 7 {
		return upce
	}
	chars := upce[1:7]
	var result strings.Builder
	result.WriteByte(upce[0])

	last := chars[5]
	switch last {
	case '0', '1', '2':
		result.WriteString(chars[0:2])
		result.WriteByte(last)
		result.WriteString("0000")
		result.WriteString(chars[2:5])
	case '3':
		result.WriteString(chars[0:3])
		result.WriteString("00000")
		result.WriteString(chars[3:5])
	case '4':
		result.WriteString(chars[0:4])
		result.WriteString("00000")
		result.WriteByte(chars[4])
	default:
		result.WriteString(chars[0:5])
		result.WriteString("0000")
		result.WriteByte(last)
	}
	if len(upce) >= 8 {
		result.WriteByte(upce[7])
	}
	return result.String()
}

// CompactUPCA zero-suppresses an 11 digit UPC-A message without check
// digit. It reports false when the message has no UPC-E form.
func CompactUPCA(upca string) (string, bool) {
	if len(upca) != 11 || (upca[0] != '0' && upca[0] != '1') {
		return "", false
	}
	mfr, product := upca[1:6], upca[6:11]
	var compact string
	switch {
	case mfr[3:] == "00" && mfr[2] <= '2' && product[:2] == "00":
		compact = mfr[:2] + product[2:] + mfr[2:3]
	case mfr[3:] == "00" && product[:3] == "000":
		compact = mfr[:3] + product[3:] + "3"
	case mfr[4] == '0' && product[:4] == "0000":
		compact = mfr[:4] + product[4:] + "4"
	case product[:4] == "0000" && product[4] >= '5':
		compact = mfr + product[4:]
	default:
		return "", false
	}
	compact = upca[:1] + compact
	if ExpandUPCE(compact) != upca {
		return "", false
	}
	return compact, true
}
