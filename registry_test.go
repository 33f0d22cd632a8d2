package barcodelogic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericlevine/barcodelogic"
	_ "github.com/ericlevine/barcodelogic/datamatrix"
	_ "github.com/ericlevine/barcodelogic/fourstate"
	_ "github.com/ericlevine/barcodelogic/oned"
	_ "github.com/ericlevine/barcodelogic/pdf417"
)

func TestEveryFormatRegistered(t *testing.T) {
	formats := barcodelogic.Formats()
	require.Len(t, formats, int(barcodelogic.FormatPDF417)+1)
	for i, f := range formats {
		assert.Equal(t, barcodelogic.Format(i), f)
		s, err := barcodelogic.Lookup(f)
		require.NoError(t, err, f.String())
		assert.Equal(t, f, s.Format())
	}
}

func TestLookupUnregistered(t *testing.T) {
	_, err := barcodelogic.Lookup(barcodelogic.Format(99))
	assert.ErrorIs(t, err, barcodelogic.ErrUnsupported)

	_, err = barcodelogic.Encode(barcodelogic.Format(99), "1", nil)
	assert.ErrorIs(t, err, barcodelogic.ErrUnsupported)

	_, err = barcodelogic.CalcDimensions(barcodelogic.Format(99), "1", nil)
	assert.ErrorIs(t, err, barcodelogic.ErrUnsupported)
}

func TestEncodeValidatesOptions(t *testing.T) {
	_, err := barcodelogic.Encode(barcodelogic.FormatEAN13, "590123412345", &barcodelogic.Options{ModuleWidth: -1})
	assert.ErrorIs(t, err, barcodelogic.ErrInvalidOption)

	err = barcodelogic.Generate(barcodelogic.FormatCode39, "A", &barcodelogic.Options{WideFactor: 1}, &barcodelogic.Recorder{})
	assert.ErrorIs(t, err, barcodelogic.ErrInvalidOption)
}

func TestValidateMatchesEncode(t *testing.T) {
	tests := []struct {
		format barcodelogic.Format
		msg    string
	}{
		{barcodelogic.FormatEAN8, "9638507"},
		{barcodelogic.FormatEAN8, "96385075"},
		{barcodelogic.FormatCode39, "lower"},
		{barcodelogic.FormatCodabar, "A12"},
		{barcodelogic.FormatKIX, "2500GG30250"},
		{barcodelogic.FormatUSPSIntelligentMail, "0123"},
		{barcodelogic.FormatDataMatrix, "Hello"},
		{barcodelogic.FormatPDF417, "Hello"},
	}
	for _, tt := range tests {
		t.Run(tt.format.String()+"/"+tt.msg, func(t *testing.T) {
			s, err := barcodelogic.Lookup(tt.format)
			require.NoError(t, err)
			_, encErr := s.Encode(tt.msg, nil)
			valErr := s.Validate(tt.msg, nil)
			if encErr == nil {
				assert.NoError(t, valErr)
			} else {
				assert.Error(t, valErr)
			}
		})
	}
}

func TestGenerateReplaysEvents(t *testing.T) {
	enc, err := barcodelogic.Encode(barcodelogic.FormatRoyalMailCBC, "SN34RD1A", nil)
	require.NoError(t, err)

	var rec barcodelogic.Recorder
	require.NoError(t, barcodelogic.Generate(barcodelogic.FormatRoyalMailCBC, "SN34RD1A", nil, &rec))
	assert.Equal(t, enc.Events(), rec.Events())

	first := rec.Events()[0]
	assert.Equal(t, barcodelogic.EventStartBarcode, first.Kind)
	assert.Equal(t, "SN34RD1A", first.Message)
	assert.Equal(t, "SN34RD1AK", first.Display)
}

func TestCalcDimensions(t *testing.T) {
	d, err := barcodelogic.CalcDimensions(barcodelogic.FormatKIX, "1", nil)
	require.NoError(t, err)
	assert.InDelta(t, 4*0.5+3*0.6, d.Width, 1e-9)
	assert.InDelta(t, d.Width+4, d.WidthPlusQuiet, 1e-9)

	qz := 0.0
	d, err = barcodelogic.CalcDimensions(barcodelogic.FormatDataMatrix, "12", &barcodelogic.Options{ModuleWidth: 1, QuietZone: &qz})
	require.NoError(t, err)
	assert.Equal(t, 10.0, d.Width)
	assert.Equal(t, 10.0, d.Height)
	assert.Equal(t, 10.0, d.WidthPlusQuiet)

	_, err = barcodelogic.CalcDimensions(barcodelogic.FormatEAN13, "12", nil)
	assert.ErrorIs(t, err, barcodelogic.ErrInvalidLength)
}
