package encoder

import (
	"strconv"
	"strings"
	"testing"

	"github.com/ericlevine/barcodelogic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func codewords(s string) []int {
	fields := strings.Fields(s)
	out := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			panic(err)
		}
		out[i] = n
	}
	return out
}

// encodeVisible returns the high-level codewords up to the first pad.
func encodeVisible(t *testing.T, msg string) []int {
	t.Helper()
	cw, _, err := EncodeHighLevel(msg, Options{})
	require.NoError(t, err)
	for i, c := range cw {
		if c == pad {
			return cw[:i+1]
		}
	}
	return cw
}

func TestEncodeHighLevel(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		want string
	}{
		{"ascii digits", "123456", "142 164 186"},
		{"ascii upper shift", "123456£", "142 164 186 235 36"},
		{"ascii mixed", "30Q324343430794<OQQ", "160 82 162 173 173 173 137 224 61 80 82 82"},
		{"c40", "AIMAIMAIM", "230 91 11 91 11 91 11 254"},
		{"c40 backtrack", "AIMAIAB", "230 91 11 90 255 254 67 129"},
		{"ascii lowercase tail", "AIMAIAb", "66 74 78 66 74 66 99 129"},
		{"c40 upper shift", "AIMAIMAIMË", "230 91 11 91 11 91 11 254 235 76"},
		{"c40 upper shift lower", "AIMAIMAIMë", "230 91 11 91 11 91 11 254 235 108"},
		{"text", "aimaimaim", "239 91 11 91 11 91 11 254"},
		{"text punctuation", "aimaimaim'", "239 91 11 91 11 91 11 254 40 129"},
		{"text shift", "aimaimaIm", "239 91 11 91 11 87 218 110"},
		{"text then ascii", "aimaimaimB", "239 91 11 91 11 91 11 254 67 129"},
		{"x12", "ABC>ABC123>AB", "238 89 233 14 192 100 207 44 31 67"},
		{"x12 one left", "ABC>ABC123>ABC", "238 89 233 14 192 100 207 44 31 254 67 68"},
		{"x12 full", "ABC>ABC123>ABCD", "238 89 233 14 192 100 207 44 31 96 82 254"},
		{"x12 exact", "ABC>ABC123>ABCDE", "238 89 233 14 192 100 207 44 31 96 82 70"},
		{"x12 trailing", "ABC>ABC123>ABCDEF", "238 89 233 14 192 100 207 44 31 96 82 254 70 71 129 237"},
		{"edifact", ".A.C1.3.DATA.123DATA.123DATA",
			"240 184 27 131 198 236 238 16 21 1 187 28 179 16 21 1 187 28 179 16 21 1"},
		{"edifact unlatch", ".A.C1.3.X.X2..", "240 184 27 131 198 236 238 98 230 50 47 47"},
		{"edifact tail ascii", ".A.C1.3.X.X2.", "240 184 27 131 198 236 238 98 230 50 47 129"},
		{"edifact short tail", ".A.C1.3.X.X", "240 184 27 131 198 236 238 98 230 31"},
		{"edifact two left", ".A.C1.3.X.", "240 184 27 131 198 236 238 98 231 192"},
		{"edifact one left", ".A.C1.3.X", "240 184 27 131 198 236 238 89"},
		{"base256", "«äöüé»", "231 44 108 59 226 126 1 104"},
		{"base256 longer", "«äöüéà»", "231 51 108 59 226 126 1 141 254 129"},
		{"base256 eight", "«äöüéàá»", "231 44 108 59 226 126 1 141 36 147"},
		{"ascii after space", " 23£", "33 153 235 36 129"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cw, _, err := EncodeHighLevel(tc.msg, Options{})
			require.NoError(t, err)
			want := codewords(tc.want)
			require.GreaterOrEqual(t, len(cw), len(want))
			assert.Equal(t, want, cw[:len(want)])
		})
	}
}

func TestEncodeHighLevelPadding(t *testing.T) {
	cw, info, err := EncodeHighLevel("12", Options{})
	require.NoError(t, err)
	assert.Equal(t, []int{142, 129, 70}, cw)
	assert.Equal(t, 3, info.DataCapacity)
	assert.Equal(t, 142, encodeVisible(t, "12")[0])
}

func TestEncodeHighLevelMacro(t *testing.T) {
	cw, _, err := EncodeHighLevel("[)>\x1e05\x1d12\x1e\x04", Options{})
	require.NoError(t, err)
	assert.Equal(t, []int{macro05, 142}, cw[:2])

	cw, _, err = EncodeHighLevel("[)>\x1e06\x1d12\x1e\x04", Options{})
	require.NoError(t, err)
	assert.Equal(t, []int{macro06, 142}, cw[:2])
}

func TestEncodeHighLevelErrors(t *testing.T) {
	_, _, err := EncodeHighLevel("snow ☃", Options{})
	assert.ErrorIs(t, err, barcodelogic.ErrInvalidCharacter)

	_, _, err = EncodeHighLevel(strings.Repeat("A", 4000), Options{})
	assert.ErrorIs(t, err, barcodelogic.ErrCapacityExceeded)

	_, _, err = EncodeHighLevel("1234567890123456789012345678901234567890", Options{
		MaxSize: &barcodelogic.Size{Width: 12, Height: 12},
	})
	assert.ErrorIs(t, err, barcodelogic.ErrCapacityExceeded)
}

func TestEncodeHighLevelShape(t *testing.T) {
	_, info, err := EncodeHighLevel("AB", Options{Shape: barcodelogic.ShapeRectangle})
	require.NoError(t, err)
	assert.True(t, info.Rectangular)
	assert.Equal(t, 18, info.SymbolWidth())
	assert.Equal(t, 8, info.SymbolHeight())

	_, info, err = EncodeHighLevel("ABCDEF", Options{Shape: barcodelogic.ShapeSquare})
	require.NoError(t, err)
	assert.False(t, info.Rectangular)
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "EDIFACT", ModeEDIFACT.String())
	assert.Equal(t, "none", modeNone.String())
}
