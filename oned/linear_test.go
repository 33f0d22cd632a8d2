package oned

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericlevine/barcodelogic"
)

// modules flattens the bars of enc into one bool per module. Elements of
// width 2 span wide modules.
func modules(enc *barcodelogic.EncodedMessage, wide int) []bool {
	var out []bool
	for _, ev := range enc.Events() {
		if ev.Kind != barcodelogic.EventAddBar {
			continue
		}
		n := ev.Width
		if wide > 0 && n == 2 {
			n = wide
		}
		for i := 0; i < n; i++ {
			out = append(out, ev.Black)
		}
	}
	return out
}

// moduleString renders modules as '1' for bars and '0' for spaces.
func moduleString(m []bool) string {
	b := make([]byte, len(m))
	for i, black := range m {
		b[i] = '0'
		if black {
			b[i] = '1'
		}
	}
	return string(b)
}

// groupsOf returns the labels of the top-level groups of the given kind.
func groupsOf(enc *barcodelogic.EncodedMessage, group barcodelogic.BarGroup) []string {
	var labels []string
	for _, ev := range enc.Events() {
		if ev.Kind == barcodelogic.EventStartBarGroup && ev.Group == group {
			labels = append(labels, ev.Label)
		}
	}
	return labels
}

func mustEncode(t *testing.T, s barcodelogic.Symbology, msg string, opts *barcodelogic.Options) *barcodelogic.EncodedMessage {
	t.Helper()
	enc, err := s.Encode(msg, opts)
	require.NoError(t, err, "encode %q", msg)
	return enc
}

func TestRegistered(t *testing.T) {
	for _, f := range []barcodelogic.Format{
		barcodelogic.FormatUPCA,
		barcodelogic.FormatUPCE,
		barcodelogic.FormatEAN13,
		barcodelogic.FormatEAN8,
		barcodelogic.FormatCode128,
		barcodelogic.FormatEAN128,
		barcodelogic.FormatCodabar,
		barcodelogic.FormatCode39,
		barcodelogic.FormatITF,
		barcodelogic.FormatITF14,
	} {
		s, err := barcodelogic.Lookup(f)
		require.NoError(t, err, f.String())
		assert.Equal(t, f, s.Format())
	}
}

func TestEventsAreBalanced(t *testing.T) {
	tests := []struct {
		s   barcodelogic.Symbology
		msg string
	}{
		{EAN13{}, "590123412345+12345"},
		{UPCA{}, "03600029145"},
		{UPCE{}, "0425261"},
		{EAN8{}, "9638507"},
		{Code128{}, "Hello 123"},
		{EAN128{}, "(01)0950110153000(10)ABC"},
		{Codabar{}, "A40156B"},
		{Code39{}, "CODE 39"},
		{ITF{}, "1234567"},
		{ITF14{}, "1540014128876"},
	}
	for _, tc := range tests {
		t.Run(tc.s.Format().String(), func(t *testing.T) {
			enc := mustEncode(t, tc.s, tc.msg, nil)
			events := enc.Events()
			require.NotEmpty(t, events)
			assert.Equal(t, barcodelogic.EventStartBarcode, events[0].Kind)
			assert.Equal(t, barcodelogic.EventEndBarcode, events[len(events)-1].Kind)
			depth := 0
			for _, ev := range events {
				switch ev.Kind {
				case barcodelogic.EventStartBarGroup:
					depth++
				case barcodelogic.EventEndBarGroup:
					depth--
					require.GreaterOrEqual(t, depth, 0)
				case barcodelogic.EventAddBar:
					assert.Positive(t, ev.Width)
				}
			}
			assert.Zero(t, depth)
			assert.Zero(t, enc.Rows())

			m := modules(enc, 2)
			assert.True(t, m[0], "symbol starts with a bar")
			assert.True(t, m[len(m)-1], "symbol ends with a bar")
		})
	}
}

func TestLinearDimensions(t *testing.T) {
	enc := mustEncode(t, EAN13{}, "5901234123457", nil)

	d := EAN13{}.CalcDimensions(enc, nil)
	assert.InDelta(t, 95*0.33, d.Width, 1e-9)
	assert.InDelta(t, DefaultBarHeight+DefaultFontSize, d.Height, 1e-9)
	assert.InDelta(t, 10*0.33, d.XOffset, 1e-9)
	assert.InDelta(t, d.Width+20*0.33, d.WidthPlusQuiet, 1e-9)
	assert.Zero(t, d.YOffset)

	qz := 1.0
	opts := &barcodelogic.Options{
		ModuleWidth:       0.5,
		BarHeight:         20,
		QuietZone:         &qz,
		VerticalQuietZone: &qz,
		HumanReadable:     barcodelogic.HumanReadableTop,
		FontSize:          3,
	}
	d = EAN13{}.CalcDimensions(enc, opts)
	assert.InDelta(t, 47.5, d.Width, 1e-9)
	assert.InDelta(t, 23, d.Height, 1e-9)
	assert.InDelta(t, 49.5, d.WidthPlusQuiet, 1e-9)
	assert.InDelta(t, 25, d.HeightPlusQuiet, 1e-9)
	assert.InDelta(t, 1, d.XOffset, 1e-9)
	assert.InDelta(t, 4, d.YOffset, 1e-9)

	opts.HumanReadable = barcodelogic.HumanReadableNone
	d = EAN13{}.CalcDimensions(enc, opts)
	assert.InDelta(t, 20, d.Height, 1e-9)
	assert.InDelta(t, 1, d.YOffset, 1e-9)
}

func TestWideFactor(t *testing.T) {
	enc := mustEncode(t, Code39{}, "A", nil)
	// Three characters of 6 narrow and 3 wide elements, and 2 gaps.
	want := 20*0.19 + 9*0.19*2.5
	assert.InDelta(t, want, enc.Width(func(black bool, w int) float64 {
		return Code39{}.BarWidth(black, w, nil)
	}), 1e-9)

	opts := &barcodelogic.Options{ModuleWidth: 0.2, WideFactor: 3}
	assert.InDelta(t, 0.6, Code39{}.BarWidth(true, 2, opts), 1e-9)
	assert.InDelta(t, 0.2, Code39{}.BarWidth(false, 1, opts), 1e-9)
	// Code 128 widths are plain module multiples.
	assert.InDelta(t, 0.4, Code128{}.BarWidth(true, 2, opts), 1e-9)
	assert.InDelta(t, 0.8, Code128{}.BarWidth(true, 4, opts), 1e-9)
}
