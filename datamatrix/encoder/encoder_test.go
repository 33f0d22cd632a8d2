package encoder

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeSymbol(t *testing.T) {
	sym, err := Encode("123456", Options{})
	require.NoError(t, err)
	assert.Equal(t, []int{142, 164, 186, 114, 25, 5, 88, 102}, sym.Codewords)
	require.Equal(t, 10, sym.Matrix.Width())
	require.Equal(t, 10, sym.Matrix.Height())

	for i := 0; i < 10; i++ {
		assert.True(t, sym.Matrix.Get(0, i), "left finder row %d", i)
		assert.True(t, sym.Matrix.Get(i, 9), "bottom finder col %d", i)
		assert.Equal(t, i%2 == 0, sym.Matrix.Get(i, 0), "top clock col %d", i)
	}
	// The right clock track starts dark on the first data row.
	for y := 1; y < 9; y++ {
		assert.Equal(t, y%2 == 1, sym.Matrix.Get(9, y), "right clock row %d", y)
	}
}

func TestEncodeMultiRegionSymbol(t *testing.T) {
	msg := strings.Repeat("ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789abcdefghijklmnopqrstuvwxyz", 2)
	sym, err := Encode(msg, Options{})
	require.NoError(t, err)
	info := sym.Info
	require.Greater(t, info.DataRegions, 1)
	m := sym.Matrix
	assert.Equal(t, info.SymbolWidth(), m.Width())
	assert.Equal(t, info.SymbolHeight(), m.Height())

	// Every region's bottom edge is a solid row.
	for r := 1; r <= info.VerticalDataRegions(); r++ {
		y := r*(info.RegionHeight+2) - 1
		for x := 0; x < m.Width(); x++ {
			require.True(t, m.Get(x, y), "row %d col %d", y, x)
		}
	}
}

func TestEncodeProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("codewords and matrix match the symbol", prop.ForAll(
		func(msg string) bool {
			sym, err := Encode(msg, Options{})
			if err != nil {
				return false
			}
			info := sym.Info
			return len(sym.Codewords) == info.CodewordCount() &&
				sym.Matrix.Width() == info.SymbolWidth() &&
				sym.Matrix.Height() == info.SymbolHeight()
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
