package oned

import (
	"image"
	"testing"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/codabar"
	"github.com/boombuler/barcode/code128"
	"github.com/boombuler/barcode/code39"
	"github.com/boombuler/barcode/ean"
	"github.com/boombuler/barcode/twooffive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericlevine/barcodelogic"
)

// imageModules reads the first row of a rendered 1D barcode.
func imageModules(img image.Image) []bool {
	b := img.Bounds()
	out := make([]bool, 0, b.Dx())
	for x := b.Min.X; x < b.Max.X; x++ {
		r, _, _, _ := img.At(x, b.Min.Y).RGBA()
		out = append(out, r == 0)
	}
	return out
}

// TestCrossCheck compares the bars of each symbol against the boombuler
// encoders, which render one pixel per module.
func TestCrossCheck(t *testing.T) {
	tests := []struct {
		name string
		s    barcodelogic.Symbology
		msg  string
		opts *barcodelogic.Options
		wide int
		ref  func() (barcode.Barcode, error)
	}{
		{"ean-13", EAN13{}, "590123412345", nil, 0,
			func() (barcode.Barcode, error) { return ean.Encode("5901234123457") }},
		{"ean-8", EAN8{}, "9638507", nil, 0,
			func() (barcode.Barcode, error) { return ean.Encode("96385074") }},
		{"upc-a", UPCA{}, "036000291452", nil, 0,
			func() (barcode.Barcode, error) { return ean.Encode("0036000291452") }},
		{"code 128 digits", Code128{}, "123456", nil, 0,
			func() (barcode.Barcode, error) { return code128.Encode("123456") }},
		{"code 128 text", Code128{}, "PJJ123C", nil, 0,
			func() (barcode.Barcode, error) { return code128.Encode("PJJ123C") }},
		{"code 128 mixed", Code128{}, "1234ABCD", nil, 0,
			func() (barcode.Barcode, error) { return code128.Encode("1234ABCD") }},
		{"code 39", Code39{}, "CODE 39", nil, 2,
			func() (barcode.Barcode, error) { return code39.Encode("CODE 39", false, false) }},
		{"code 39 check", Code39{}, "CODE 39", &barcodelogic.Options{Checksum: barcodelogic.ChecksumAdd}, 2,
			func() (barcode.Barcode, error) { return code39.Encode("CODE 39", true, false) }},
		{"code 39 extended", Code39{}, "Hello", &barcodelogic.Options{Code39Extended: true}, 2,
			func() (barcode.Barcode, error) { return code39.Encode("Hello", false, true) }},
		{"codabar", Codabar{}, "A40156B", nil, 2,
			func() (barcode.Barcode, error) { return codabar.Encode("A40156B") }},
		{"itf", ITF{}, "12345670", nil, 3,
			func() (barcode.Barcode, error) { return twooffive.Encode("12345670", true) }},
		{"itf-14", ITF14{}, "1540014128876", nil, 3,
			func() (barcode.Barcode, error) { return twooffive.Encode("15400141288763", true) }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			enc := mustEncode(t, tc.s, tc.msg, tc.opts)
			ref, err := tc.ref()
			require.NoError(t, err)
			assert.Equal(t, moduleString(imageModules(ref)), moduleString(modules(enc, tc.wide)))
		})
	}
}

func TestCrossCheckCode128Checksum(t *testing.T) {
	for _, msg := range []string{"123456", "PJJ123C", "Hello, World!"} {
		enc := mustEncode(t, Code128{}, msg, nil)
		ref, err := code128.Encode(msg)
		require.NoError(t, err)
		cw := enc.Codewords()
		assert.Equal(t, ref.CheckSum(), cw[len(cw)-2], msg)
	}
}
