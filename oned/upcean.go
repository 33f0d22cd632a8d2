package oned

import (
	"fmt"
	"strings"

	"github.com/ericlevine/barcodelogic"
	"github.com/ericlevine/barcodelogic/checksum"
)

// supplementalGap is the space between a UPC/EAN symbol and its
// supplemental, in modules.
const supplementalGap = 9

var (
	upcaPolicy  = checksum.Policy{Bare: 11, Full: 12}
	ean13Policy = checksum.Policy{Bare: 12, Full: 13}
	ean8Policy  = checksum.Policy{Bare: 7, Full: 8}
)

// upceanLayout provides the geometry shared by UPC-A, UPC-E, EAN-13 and
// EAN-8.
type upceanLayout struct{}

// BarWidth implements barcodelogic.Symbology.
func (upceanLayout) BarWidth(_ bool, width int, opts *barcodelogic.Options) float64 {
	return upceanDefaults.barWidth(width, opts)
}

// CalcDimensions implements barcodelogic.Symbology.
func (upceanLayout) CalcDimensions(enc *barcodelogic.EncodedMessage, opts *barcodelogic.Options) barcodelogic.Dimension {
	return upceanDefaults.dimensions(enc, opts)
}

// splitSupplemental splits a "main+supp" message.
func splitSupplemental(msg string) (main, supp string, err error) {
	i := strings.IndexByte(msg, '+')
	if i < 0 {
		return msg, "", nil
	}
	main, supp = msg[:i], msg[i+1:]
	if err := digitsAt(supp, i+1); err != nil {
		return "", "", err
	}
	if len(supp) != 2 && len(supp) != 5 {
		return "", "", fmt.Errorf("supplemental %q must have 2 or 5 digits: %w", supp, barcodelogic.ErrInvalidLength)
	}
	return main, supp, nil
}

// prepareUPCEAN validates msg and applies the checksum mode to its main
// part. It returns the main part including its check digit.
func prepareUPCEAN(msg string, opts *barcodelogic.Options, p checksum.Policy) (full, supp string, err error) {
	main, supp, err := splitSupplemental(msg)
	if err != nil {
		return "", "", err
	}
	if err := digitsAt(main, 0); err != nil {
		return "", "", err
	}
	full, err = checksum.Apply(main, opts.ChecksumMode(), p)
	if err != nil {
		return "", "", err
	}
	return full, supp, nil
}

func upceanDisplay(full, supp string) string {
	if supp == "" {
		return full
	}
	return full + "+" + supp
}

// addDigits reports digits as a UPCEANGroup. A set bit in parities, counted
// from the last digit, selects the G pattern for that digit. Right-hand
// digits start with a bar.
func addDigits(h barcodelogic.LogicHandler, digits string, parities int, right bool) {
	h.StartBarGroup(barcodelogic.UPCEANGroup, digits)
	for i := 0; i < len(digits); i++ {
		d := int(digits[i] - '0')
		if (parities>>(len(digits)-1-i))&1 == 1 {
			d += 10
		}
		addGroup(h, barcodelogic.MessageCharacter, digits[i:i+1], lAndGPatterns[d], right)
	}
	h.EndBarGroup()
}

func addGuard(h barcodelogic.LogicHandler, pattern []int, black bool) {
	addGroup(h, barcodelogic.UPCEANGuard, "", pattern, black)
}

func addCheckDigit(h barcodelogic.LogicHandler, c byte) {
	addGroup(h, barcodelogic.UPCEANCheck, string(c), lPatterns[c-'0'], true)
}

func supplementalParities(supp string) int {
	d := digitValues(supp)
	if len(d) == 2 {
		return (d[0]*10 + d[1]) % 4
	}
	check := (3*(d[0]+d[2]+d[4]) + 9*(d[1]+d[3])) % 10
	return supplemental5Parities[check]
}

// addSupplemental reports a 2 or 5 digit add-on symbol.
func addSupplemental(h barcodelogic.LogicHandler, supp string) {
	if supp == "" {
		return
	}
	h.AddBar(false, supplementalGap)
	h.StartBarGroup(barcodelogic.UPCEANSupplemental, supp)
	addGuard(h, supplementalGuard, true)
	parities := supplementalParities(supp)
	for i := 0; i < len(supp); i++ {
		if i > 0 {
			addPattern(h, supplementalSep, false)
		}
		d := int(supp[i] - '0')
		if (parities>>(len(supp)-1-i))&1 == 1 {
			d += 10
		}
		addGroup(h, barcodelogic.MessageCharacter, supp[i:i+1], lAndGPatterns[d], false)
	}
	h.EndBarGroup()
}
