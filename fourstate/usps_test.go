package fourstate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericlevine/barcodelogic"
)

func TestUSPSIntelligentMail(t *testing.T) {
	const tracking = "01234567094987654321"
	tests := []struct {
		routing string
		bars    string
	}{
		{"", "ATTFATTDTTADTAATTDTDTATTDAFDDFADFDFTFFFFFTATFAAAATDFFTDAADFTFDTDT"},
		{"01234", "DTTAFADDTTFTDTFTFDTDDADADAFADFATDDFTAAAFDTTADFAAATDFDTDFADDDTDFFT"},
		{"012345678", "ADFTTAFDTTTTFATTADTAAATFTFTATDAAAFDDADATATDTDTTDFDTDATADADTDFFTFA"},
		{"01234567891", "AADTFFDFTDADTAADAATFDTDDAAADDTDTTDAFADADDDTFFFDDTTTADFAAADFTDAADA"},
	}
	for _, tc := range tests {
		t.Run("routing "+tc.routing, func(t *testing.T) {
			enc, err := USPSIntelligentMail{}.Encode(tracking+tc.routing, nil)
			require.NoError(t, err)
			assert.Equal(t, tc.bars, barLetters(enc))
		})
	}
}

func TestUSPSCodewords(t *testing.T) {
	enc, err := USPSIntelligentMail{}.Encode("01234567094987654321", nil)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 0, 559, 202, 508, 451, 124, 34}, enc.Codewords())

	// FCS bit 10 is set for this message: codeword A gains 659.
	enc, err = USPSIntelligentMail{}.Encode("0123456709498765432101234567891", nil)
	require.NoError(t, err)
	assert.Equal(t, []int{673, 787, 607, 1022, 861, 19, 816, 1294, 35, 602}, enc.Codewords())
}

func TestUSPSErrors(t *testing.T) {
	tests := []struct {
		name    string
		msg     string
		opts    *barcodelogic.Options
		wantErr error
	}{
		{"short", "0123456709498765432", nil, barcodelogic.ErrInvalidLength},
		{"bad routing length", "012345670949876543210123", nil, barcodelogic.ErrInvalidLength},
		{"too long", strings.Repeat("0", 32), nil, barcodelogic.ErrInvalidLength},
		{"letter", "0123456709498765432A", nil, barcodelogic.ErrInvalidCharacter},
		{"barcode identifier", "05234567094987654321", nil, barcodelogic.ErrInvalidCharacter},
		{"check mode", "01234567094987654321", &barcodelogic.Options{Checksum: barcodelogic.ChecksumCheck}, barcodelogic.ErrUnsupported},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := USPSIntelligentMail{}.Encode(tc.msg, tc.opts)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.ErrorIs(t, USPSIntelligentMail{}.Validate(tc.msg, tc.opts), tc.wantErr)
		})
	}
}

func TestNof13Tables(t *testing.T) {
	for _, tc := range []struct {
		table []int
		bits  int
	}{
		{uspsFiveOf13, 5},
		{uspsTwoOf13, 2},
	} {
		seen := map[int]bool{}
		for _, v := range tc.table {
			assert.False(t, seen[v], "duplicate %#x", v)
			seen[v] = true
			n := 0
			for x := v; x > 0; x &= x - 1 {
				n++
			}
			assert.Equal(t, tc.bits, n)
		}
	}
	assert.Equal(t, 0x1F, uspsFiveOf13[0])
	assert.Equal(t, 0x1F00, uspsFiveOf13[1])
}

func TestLoadTable(t *testing.T) {
	table, err := LoadTable(strings.NewReader(string(usps4cbData)))
	require.NoError(t, err)
	assert.Equal(t, BarMapping{DescenderChar: 7, DescenderBit: 2, AscenderChar: 4, AscenderBit: 3}, table[0])
	assert.Equal(t, BarMapping{DescenderChar: 3, DescenderBit: 10, AscenderChar: 8, AscenderBit: 2}, table[64])

	lines := strings.Split(strings.TrimSpace(string(usps4cbData)), "\n")
	tests := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"missing bar", strings.Join(lines[:64], "\n")},
		{"repeated bar", strings.Join(append(lines[:64], lines[0]), "\n")},
		{"wrong field count", "1;H;2;E\n"},
		{"bad character", strings.Replace(string(usps4cbData), "1;H;2", "1;K;2", 1)},
		{"bad bit", strings.Replace(string(usps4cbData), "1;H;2", "1;H;13", 1)},
		{"bad bar", "0;H;2;E;3\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadTable(strings.NewReader(tc.data))
			assert.ErrorIs(t, err, barcodelogic.ErrMissingResource)
		})
	}

	commented := "# bar;desc;bit;asc;bit\n" + string(usps4cbData)
	_, err = LoadTable(strings.NewReader(commented))
	assert.NoError(t, err)
}
