package encoder

import (
	"math/big"
	"strings"
	"testing"

	"github.com/ericlevine/barcodelogic"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeHighLevel(t *testing.T) {
	tests := []struct {
		name       string
		msg        string
		compaction barcodelogic.PDF417Compaction
		want       []int
	}{
		{"text", "ABCDE", barcodelogic.CompactionAuto, []int{1, 63, 149}},
		{"numeric", "1234567890123", barcodelogic.CompactionAuto, []int{902, 17, 110, 836, 811, 223}},
		{"byte shift", "é", barcodelogic.CompactionAuto, []int{913, 233}},
		{"short text as bytes", "A1", barcodelogic.CompactionAuto, []int{901, 65, 49}},
		{"forced byte", "ABCDEF", barcodelogic.CompactionByte, []int{924, 109, 326, 368, 127, 330}},
		{"forced text mixed", "A1", barcodelogic.CompactionText, []int{28, 59}},
		{"forced text lower", "Ab1", barcodelogic.CompactionText, []int{27, 58, 59}},
		{"forced text punctuation latch", "1;;", barcodelogic.CompactionText, []int{841, 750, 29}},
		{"forced numeric", "1234567890123", barcodelogic.CompactionNumeric, []int{902, 17, 110, 836, 811, 223}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := EncodeHighLevel(tc.msg, tc.compaction)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEncodeHighLevelErrors(t *testing.T) {
	_, err := EncodeHighLevel("", barcodelogic.CompactionAuto)
	assert.ErrorIs(t, err, barcodelogic.ErrInvalidLength)

	_, err = EncodeHighLevel("12a", barcodelogic.CompactionNumeric)
	var ce *barcodelogic.CharacterError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 'a', ce.Char)
	assert.Equal(t, 2, ce.Pos)

	_, err = EncodeHighLevel("é", barcodelogic.CompactionText)
	assert.ErrorIs(t, err, barcodelogic.ErrInvalidCharacter)

	_, err = EncodeHighLevel("price €5", barcodelogic.CompactionAuto)
	assert.ErrorIs(t, err, barcodelogic.ErrInvalidCharacter)
}

// decodeNumeric reverses numeric compaction of a single group.
func decodeNumeric(cws []int) string {
	n := new(big.Int)
	for _, cw := range cws {
		n.Mul(n, big.NewInt(900))
		n.Add(n, big.NewInt(int64(cw)))
	}
	return strings.TrimPrefix(n.String(), "1")
}

func TestNumericCompactionRoundTrip(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("numeric groups decode to the original digits", prop.ForAll(
		func(digits string) bool {
			cws, err := EncodeHighLevel(digits, barcodelogic.CompactionNumeric)
			if err != nil || cws[0] != latchToNumeric {
				return false
			}
			return decodeNumeric(cws[1:]) == digits
		},
		gen.NumString().SuchThat(func(s string) bool { return len(s) >= 1 && len(s) <= 44 }),
	))

	properties.TestingRun(t)
}

func TestErrorCorrection(t *testing.T) {
	// ISO/IEC 15438 Annex Q example.
	ec, err := ErrorCorrection([]int{5, 453, 178, 121, 239}, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{452, 327, 657, 619}, ec)
	for level := 0; level <= 8; level++ {
		ec, err := ErrorCorrection([]int{1, 2, 3}, level)
		require.NoError(t, err)
		assert.Len(t, ec, 2<<level)
	}
}

func TestErrorCorrectionLevelOutOfRange(t *testing.T) {
	for _, level := range []int{-1, 9} {
		_, err := ErrorCorrectionCodewordCount(level)
		assert.ErrorIs(t, err, barcodelogic.ErrInvalidOption)
		_, err = ErrorCorrection([]int{1, 2, 3}, level)
		assert.ErrorIs(t, err, barcodelogic.ErrInvalidOption)
		_, err = Encode("123", Options{ErrorCorrectionLevel: &level})
		assert.ErrorIs(t, err, barcodelogic.ErrInvalidOption)
	}
}

func TestRecommendedLevel(t *testing.T) {
	tests := []struct{ n, want int }{{1, 2}, {40, 2}, {41, 3}, {160, 3}, {161, 4}, {320, 4}, {321, 5}, {863, 5}}
	for _, tc := range tests {
		got, err := RecommendedLevel(tc.n)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "n=%d", tc.n)
	}
	_, err := RecommendedLevel(864)
	assert.ErrorIs(t, err, barcodelogic.ErrCapacityExceeded)
}

func TestDimensions(t *testing.T) {
	cols, rows, err := Dimensions(3, 8, DimensionOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, cols)
	assert.Equal(t, 12, rows)

	cols, rows, err = Dimensions(3, 8, DimensionOptions{MinCols: 4})
	require.NoError(t, err)
	assert.Equal(t, 4, cols)
	assert.Equal(t, 3, rows)

	cols, rows, err = Dimensions(3, 8, DimensionOptions{MinRows: 20})
	require.NoError(t, err)
	assert.Equal(t, 1, cols)
	assert.Equal(t, 20, rows)

	_, _, err = Dimensions(900, 64, DimensionOptions{})
	assert.ErrorIs(t, err, barcodelogic.ErrCapacityExceeded)

	_, _, err = Dimensions(200, 16, DimensionOptions{MaxCols: 2, MaxRows: 10})
	assert.ErrorIs(t, err, barcodelogic.ErrCapacityExceeded)

	_, _, err = Dimensions(3, 8, DimensionOptions{MaxCols: 31})
	assert.ErrorIs(t, err, barcodelogic.ErrInvalidOption)
}

func TestWidths(t *testing.T) {
	assert.Equal(t, []int{8, 1, 1, 1, 1, 1, 1, 3}, Widths(StartPattern()))
	assert.Equal(t, []int{7, 1, 1, 3, 1, 1, 1, 2, 1}, Widths(StopPattern(false)))
	assert.Equal(t, []int{1}, Widths(StopPattern(true)))

	for cluster := 0; cluster < 3; cluster++ {
		for v := 0; v < 929; v++ {
			w := Widths(Pattern(cluster, v), 17)
			require.Len(t, w, 8, "cluster %d value %d", cluster, v)
			// The cluster number is (b1 - b2 + b3 - b4 + 9) mod 9 over the bars.
			assert.Equal(t, cluster*3, (w[0]-w[2]+w[4]-w[6]+9)%9, "cluster %d value %d", cluster, v)
		}
	}
}

func TestEncodeSymbol(t *testing.T) {
	sym, err := Encode("PDF417 barcode logic", Options{})
	require.NoError(t, err)
	assert.Len(t, sym.Codewords, sym.Columns*sym.Rows)
	k, err := ErrorCorrectionCodewordCount(sym.ErrorCorrectionLevel)
	require.NoError(t, err)
	assert.Equal(t, len(sym.Codewords)-k, sym.Codewords[0])
	assert.Equal(t, 2, sym.ErrorCorrectionLevel)

	m := sym.Matrix()
	assert.Equal(t, 17*sym.Columns+69, m.Width())
	assert.Equal(t, sym.Rows, m.Height())
	for y := 0; y < sym.Rows; y++ {
		assert.Equal(t, []int{8, 1, 1, 1, 1, 1, 1, 3}, m.Runs(y)[:8], "row %d", y)
	}

	level := 5
	sym, err = Encode("PDF417", Options{ErrorCorrectionLevel: &level, Dimensions: DimensionOptions{Compact: true}})
	require.NoError(t, err)
	assert.Equal(t, 5, sym.ErrorCorrectionLevel)
	assert.Equal(t, 17*sym.Columns+35, sym.Matrix().Width())

	level = 9
	_, err = Encode("PDF417", Options{ErrorCorrectionLevel: &level})
	assert.ErrorIs(t, err, barcodelogic.ErrInvalidOption)
}

func TestRowIndicators(t *testing.T) {
	sym, err := Encode(strings.Repeat("0123456789", 20), Options{})
	require.NoError(t, err)
	for y := 0; y < sym.Rows; y++ {
		row := sym.Row(y)
		require.Equal(t, y%3, row.Cluster)
		base := 30 * (y / 3)
		left, right := row.LeftIndicator-base, row.RightIndicator-base
		switch row.Cluster {
		case 0:
			assert.Equal(t, (sym.Rows-1)/3, left)
			assert.Equal(t, sym.Columns-1, right)
		case 1:
			assert.Equal(t, sym.ErrorCorrectionLevel*3+(sym.Rows-1)%3, left)
			assert.Equal(t, (sym.Rows-1)/3, right)
		case 2:
			assert.Equal(t, sym.Columns-1, left)
			assert.Equal(t, sym.ErrorCorrectionLevel*3+(sym.Rows-1)%3, right)
		}
	}
}
