package pdf417

import (
	"strconv"
	"testing"

	"github.com/ericlevine/barcodelogic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeEvents(t *testing.T) {
	enc, err := barcodelogic.Encode(barcodelogic.FormatPDF417, "Hello, World!", nil)
	require.NoError(t, err)
	require.Greater(t, enc.Rows(), 0)

	cols := 0
	cws := enc.Codewords()
	var labels []string
	rows := 0
	for _, ev := range enc.Events() {
		switch ev.Kind {
		case barcodelogic.EventStartRow:
			rows++
		case barcodelogic.EventStartBarGroup:
			if rows == 1 {
				labels = append(labels, ev.Label)
				if ev.Group == barcodelogic.MessageCharacter {
					cols++
				}
			}
		}
	}
	assert.Equal(t, enc.Rows(), rows)
	// Data columns plus the two row indicators.
	dataCols := cols - 2
	assert.Equal(t, 17*dataCols+69, enc.Columns())
	assert.Len(t, cws, dataCols*enc.Rows())
	assert.Equal(t, "", labels[0])
	for i := 0; i < dataCols; i++ {
		assert.Equal(t, strconv.Itoa(cws[i]), labels[2+i])
	}
}

func TestCompactSymbol(t *testing.T) {
	enc, err := barcodelogic.Encode(barcodelogic.FormatPDF417, "Hello, World!", &barcodelogic.Options{PDF417Compact: true})
	require.NoError(t, err)
	full, err := barcodelogic.Encode(barcodelogic.FormatPDF417, "Hello, World!", nil)
	require.NoError(t, err)
	if enc.Rows() == full.Rows() {
		assert.Equal(t, full.Columns()-34, enc.Columns())
	}
	assert.Zero(t, (enc.Columns()-35)%17)
}

func TestCalcDimensions(t *testing.T) {
	opts := &barcodelogic.Options{ModuleWidth: 0.25, PDF417RowHeightFactor: 4}
	enc, err := barcodelogic.Encode(barcodelogic.FormatPDF417, "PDF417", opts)
	require.NoError(t, err)
	dim := Symbology{}.CalcDimensions(enc, opts)
	assert.InDelta(t, float64(enc.Columns())*0.25, dim.Width, 1e-9)
	assert.InDelta(t, float64(enc.Rows()), dim.Height, 1e-9)
	assert.InDelta(t, dim.Width+1.0, dim.WidthPlusQuiet, 1e-9)
}

func TestOptionsReachEncoder(t *testing.T) {
	level := 6
	enc, err := barcodelogic.Encode(barcodelogic.FormatPDF417, "PDF417", &barcodelogic.Options{
		PDF417ErrorCorrectionLevel: &level,
		PDF417Dimensions:           &barcodelogic.PDF417DimensionConfig{MinRows: 3, MaxRows: 90, MinCols: 5, MaxCols: 5},
	})
	require.NoError(t, err)
	assert.Equal(t, 17*5+69, enc.Columns())
	assert.Len(t, enc.Codewords(), 5*enc.Rows())

	_, err = barcodelogic.Encode(barcodelogic.FormatPDF417, "12ab", &barcodelogic.Options{
		PDF417Compaction: barcodelogic.CompactionNumeric,
	})
	assert.ErrorIs(t, err, barcodelogic.ErrInvalidCharacter)
}
