package oned

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericlevine/barcodelogic"
)

func TestCodabar(t *testing.T) {
	tests := []struct {
		msg       string
		display   string
		codewords []int
	}{
		{"A40156B", "40156", []int{16, 4, 0, 1, 5, 6, 17}},
		{"40156", "40156", []int{16, 4, 0, 1, 5, 6, 16}},
		{"T12E", "12", []int{16, 1, 2, 19}},
		{"C-$:/.+D", "-$:/.+", []int{18, 10, 11, 12, 13, 14, 15, 19}},
	}
	for _, tc := range tests {
		t.Run(tc.msg, func(t *testing.T) {
			enc := mustEncode(t, Codabar{}, tc.msg, nil)
			assert.Equal(t, tc.display, enc.Display())
			assert.Equal(t, tc.codewords, enc.Codewords())
			assert.Len(t, groupsOf(enc, barcodelogic.StartCharacter), 1)
			assert.Len(t, groupsOf(enc, barcodelogic.StopCharacter), 1)
			assert.Len(t, groupsOf(enc, barcodelogic.MessageCharacter), len(tc.codewords)-2)
		})
	}
}

func TestCodabarErrors(t *testing.T) {
	tests := []struct {
		name    string
		msg     string
		mode    barcodelogic.ChecksumMode
		wantErr error
	}{
		{"empty", "", barcodelogic.ChecksumAuto, barcodelogic.ErrInvalidLength},
		{"add", "A123B", barcodelogic.ChecksumAdd, barcodelogic.ErrUnsupported},
		{"check", "A123B", barcodelogic.ChecksumCheck, barcodelogic.ErrUnsupported},
		{"start only", "A123", barcodelogic.ChecksumAuto, barcodelogic.ErrInvalidMessage},
		{"stop only", "123D", barcodelogic.ChecksumAuto, barcodelogic.ErrInvalidMessage},
		{"guard inside", "A1B2C", barcodelogic.ChecksumAuto, barcodelogic.ErrInvalidCharacter},
		{"letter", "12X4", barcodelogic.ChecksumAuto, barcodelogic.ErrInvalidCharacter},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			opts := &barcodelogic.Options{Checksum: tc.mode}
			_, err := Codabar{}.Encode(tc.msg, opts)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.ErrorIs(t, Codabar{}.Validate(tc.msg, opts), tc.wantErr)
		})
	}

	_, err := Codabar{}.Encode("A1B2C", nil)
	var ce *barcodelogic.CharacterError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 'B', ce.Char)
	assert.Equal(t, 2, ce.Pos)
}

func TestCodabarGaps(t *testing.T) {
	enc := mustEncode(t, Codabar{}, "A1B", nil)
	// Three characters of seven elements, separated by narrow spaces.
	var widths []int
	for _, ev := range enc.Events() {
		if ev.Kind == barcodelogic.EventAddBar {
			widths = append(widths, ev.Width)
		}
	}
	require.Len(t, widths, 3*7+2)
	assert.Equal(t, 1, widths[7])
	assert.Equal(t, 1, widths[15])

	w := enc.Width(func(black bool, width int) float64 {
		return Codabar{}.BarWidth(black, width, nil)
	})
	assert.Greater(t, w, 0.0)
}
