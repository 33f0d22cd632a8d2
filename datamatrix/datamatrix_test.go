package datamatrix

import (
	"testing"

	"github.com/ericlevine/barcodelogic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistered(t *testing.T) {
	s, err := barcodelogic.Lookup(barcodelogic.FormatDataMatrix)
	require.NoError(t, err)
	assert.Equal(t, barcodelogic.FormatDataMatrix, s.Format())
}

func TestEncodeEvents(t *testing.T) {
	enc, err := Symbology{}.Encode("123456", nil)
	require.NoError(t, err)
	assert.Equal(t, 10, enc.Rows())
	assert.Equal(t, 10, enc.Columns())
	assert.Equal(t, []int{142, 164, 186, 114, 25, 5, 88, 102}, enc.Codewords())

	events := enc.Events()
	require.Equal(t, barcodelogic.EventStartBarcode, events[0].Kind)
	assert.Equal(t, "123456", events[0].Message)
	assert.Equal(t, barcodelogic.EventEndBarcode, events[len(events)-1].Kind)

	// The top row is the clock track: ten alternating single modules.
	require.Equal(t, barcodelogic.EventStartRow, events[1].Kind)
	for i := 0; i < 10; i++ {
		ev := events[2+i]
		assert.Equal(t, barcodelogic.EventAddBar, ev.Kind)
		assert.Equal(t, i%2 == 0, ev.Black)
		assert.Equal(t, 1, ev.Width)
	}
	assert.Equal(t, barcodelogic.EventEndRow, events[12].Kind)

	// Every row covers the full width.
	width := 0
	for _, ev := range events {
		switch ev.Kind {
		case barcodelogic.EventStartRow:
			width = 0
		case barcodelogic.EventAddBar:
			width += ev.Width
		case barcodelogic.EventEndRow:
			assert.Equal(t, 10, width)
		}
	}
}

func TestCalcDimensions(t *testing.T) {
	opts := &barcodelogic.Options{ModuleWidth: 0.5}
	dim, err := barcodelogic.CalcDimensions(barcodelogic.FormatDataMatrix, "123456", opts)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, dim.Width, 1e-9)
	assert.InDelta(t, 5.0, dim.Height, 1e-9)
	assert.InDelta(t, 6.0, dim.WidthPlusQuiet, 1e-9)
	assert.InDelta(t, 6.0, dim.HeightPlusQuiet, 1e-9)
	assert.InDelta(t, 0.5, dim.XOffset, 1e-9)
}

func TestShapeAndSizeOptions(t *testing.T) {
	size, err := SymbolSize("AB", &barcodelogic.Options{DataMatrixShape: barcodelogic.ShapeRectangle})
	require.NoError(t, err)
	assert.Equal(t, barcodelogic.Size{Width: 18, Height: 8}, size)

	size, err = SymbolSize("AB", &barcodelogic.Options{DataMatrixMinSize: &barcodelogic.Size{Width: 16, Height: 16}})
	require.NoError(t, err)
	assert.Equal(t, barcodelogic.Size{Width: 16, Height: 16}, size)

	err = Symbology{}.Validate("ABCDEFGHIJKLMNOPQRSTUVWXYZ", &barcodelogic.Options{
		DataMatrixMaxSize: &barcodelogic.Size{Width: 10, Height: 10},
	})
	assert.ErrorIs(t, err, barcodelogic.ErrCapacityExceeded)
}

func TestNonLatin1Rejected(t *testing.T) {
	_, err := Symbology{}.Encode("€", nil)
	assert.ErrorIs(t, err, barcodelogic.ErrInvalidCharacter)
}
