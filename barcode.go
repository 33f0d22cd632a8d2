// Package barcodelogic turns messages into the logical bar structure of
// linear, four-state and two-dimensional barcode symbologies.
//
// Symbologies live in subpackages (oned, fourstate, datamatrix, pdf417) and
// register themselves on import. Encoding produces an EncodedMessage whose
// events can be replayed to any LogicHandler; rendering is left to the
// handler.
package barcodelogic

import (
	"fmt"
	"strings"
)

// Format represents a barcode symbology.
type Format int

const (
	FormatUPCA Format = iota
	FormatUPCE
	FormatEAN13
	FormatEAN8
	FormatCode128
	FormatEAN128
	FormatCodabar
	FormatCode39
	FormatITF
	FormatITF14
	FormatRoyalMailCBC
	FormatKIX
	FormatUSPSIntelligentMail
	FormatDataMatrix
	FormatPDF417
)

var formatNames = [...]string{
	FormatUPCA:                "UPC_A",
	FormatUPCE:                "UPC_E",
	FormatEAN13:               "EAN_13",
	FormatEAN8:                "EAN_8",
	FormatCode128:             "CODE_128",
	FormatEAN128:              "EAN_128",
	FormatCodabar:             "CODABAR",
	FormatCode39:              "CODE_39",
	FormatITF:                 "ITF",
	FormatITF14:               "ITF_14",
	FormatRoyalMailCBC:        "ROYAL_MAIL_CBC",
	FormatKIX:                 "KIX",
	FormatUSPSIntelligentMail: "USPS_INTELLIGENT_MAIL",
	FormatDataMatrix:          "DATA_MATRIX",
	FormatPDF417:              "PDF_417",
}

var formatAliases = map[string]Format{
	"GS1128":          FormatEAN128,
	"INTELLIGENTMAIL": FormatUSPSIntelligentMail,
	"IMB":             FormatUSPSIntelligentMail,
	"USPS4CB":         FormatUSPSIntelligentMail,
	"RM4SCC":          FormatRoyalMailCBC,
	"INTERLEAVED2OF5": FormatITF,
}

// String returns the name of the barcode format.
func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return "UNKNOWN"
	}
	return formatNames[f]
}

// ParseFormat returns the format with the given name. Case, dashes and
// underscores are ignored, so "upc-a", "UPC_A" and "upca" are equivalent.
func ParseFormat(s string) (Format, error) {
	key := normalizeFormatName(s)
	for i, name := range formatNames {
		if normalizeFormatName(name) == key {
			return Format(i), nil
		}
	}
	if f, ok := formatAliases[key]; ok {
		return f, nil
	}
	return 0, fmt.Errorf("format %q: %w", s, ErrInvalidOption)
}

func normalizeFormatName(s string) string {
	return strings.NewReplacer("_", "", "-", "", " ", "").Replace(strings.ToUpper(strings.TrimSpace(s)))
}
