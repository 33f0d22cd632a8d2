package fourstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericlevine/barcodelogic"
)

// barLetters renders the bars of enc as F, A, D and T.
func barLetters(enc *barcodelogic.EncodedMessage) string {
	var b []byte
	for _, ev := range enc.Events() {
		if ev.Kind == barcodelogic.EventAddBar && ev.Black {
			b = append(b, StateLetter(ev.Width))
		}
	}
	return string(b)
}

func TestRegistered(t *testing.T) {
	for _, f := range []barcodelogic.Format{
		barcodelogic.FormatRoyalMailCBC,
		barcodelogic.FormatKIX,
		barcodelogic.FormatUSPSIntelligentMail,
	} {
		s, err := barcodelogic.Lookup(f)
		require.NoError(t, err, f.String())
		assert.Equal(t, f, s.Format())
	}
}

func TestGapsBetweenBars(t *testing.T) {
	for _, tc := range []struct {
		s    barcodelogic.Symbology
		msg  string
		bars int
	}{
		{RoyalMailCBC{}, "SN34RD1A", 2 + 4*9},
		{KIX{}, "2500GG30250", 4 * 11},
		{USPSIntelligentMail{}, "01234567094987654321", USPSBars},
	} {
		t.Run(tc.s.Format().String(), func(t *testing.T) {
			enc, err := tc.s.Encode(tc.msg, nil)
			require.NoError(t, err)
			var kinds []bool
			for _, ev := range enc.Events() {
				if ev.Kind == barcodelogic.EventAddBar {
					kinds = append(kinds, ev.Black)
					if !ev.Black {
						assert.Equal(t, 1, ev.Width)
					}
				}
			}
			require.Len(t, kinds, 2*tc.bars-1)
			for i, black := range kinds {
				assert.Equal(t, i%2 == 0, black, "element %d", i)
			}
		})
	}
}

func TestDimensions(t *testing.T) {
	enc, err := KIX{}.Encode("1", nil)
	require.NoError(t, err)
	d := KIX{}.CalcDimensions(enc, nil)
	assert.InDelta(t, 4*0.5+3*0.6, d.Width, 1e-9)
	assert.InDelta(t, 5.22, d.Height, 1e-9)
	assert.InDelta(t, 2, d.XOffset, 1e-9)
	assert.InDelta(t, 2, d.YOffset, 1e-9)

	opts := &barcodelogic.Options{ModuleWidth: 1, IntercharGapWidth: 2, BarHeight: 8, HumanReadable: barcodelogic.HumanReadableBottom, FontSize: 3}
	d = KIX{}.CalcDimensions(enc, opts)
	assert.InDelta(t, 4+6, d.Width, 1e-9)
	assert.InDelta(t, 11, d.Height, 1e-9)

	enc, err = USPSIntelligentMail{}.Encode("01234567094987654321", nil)
	require.NoError(t, err)
	d = USPSIntelligentMail{}.CalcDimensions(enc, nil)
	assert.InDelta(t, 65*0.508+64*0.6465, d.Width, 1e-9)
	assert.InDelta(t, 3.683, d.Height, 1e-9)
}

func TestBarSpan(t *testing.T) {
	opts := &barcodelogic.Options{BarHeight: 6, TrackHeight: 2, AscenderHeight: 1.5}
	tests := []struct {
		state          int
		offset, height float64
	}{
		{barcodelogic.FourStateFull, 0, 6},
		{barcodelogic.FourStateAscender, 0, 3.5},
		{barcodelogic.FourStateDescender, 2.5, 3.5},
		{barcodelogic.FourStateTracker, 2, 2},
	}
	for _, tc := range tests {
		t.Run(string(StateLetter(tc.state)), func(t *testing.T) {
			off, h := RoyalMailCBC{}.BarSpan(tc.state, opts)
			assert.InDelta(t, tc.offset, off, 1e-9)
			assert.InDelta(t, tc.height, h, 1e-9)
		})
	}
	off, h := USPSIntelligentMail{}.BarSpan(barcodelogic.FourStateTracker, nil)
	assert.InDelta(t, (3.683-1.27)/2, off, 1e-9)
	assert.InDelta(t, 1.27, h, 1e-9)
}
