package oned

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericlevine/barcodelogic"
)

func TestEAN128(t *testing.T) {
	wantPrefix := []int{105, 102, 1, 9, 50, 11, 1, 53, 0, 3, 10, 100, 33, 34, 35}
	tests := []struct {
		name string
		msg  string
	}{
		{"bracketed, check digit added", "(01)0950110153000(10)ABC"},
		{"bracketed, check digit present", "(01)09501101530003(10)ABC"},
		{"raw", "010950110153000310ABC"},
		{"raw with FNC1", "ñ010950110153000310ABC"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			enc := mustEncode(t, EAN128{}, tc.msg, nil)
			assert.Equal(t, "(01)09501101530003(10)ABC", enc.Display())
			assert.Equal(t, tc.msg, enc.Message())
			cw := enc.Codewords()
			require.Greater(t, len(cw), len(wantPrefix))
			assert.Equal(t, wantPrefix, cw[:len(wantPrefix)])
			assert.Equal(t, code128Stop, cw[len(cw)-1])
		})
	}
}

func TestEAN128VariableFieldSeparator(t *testing.T) {
	// AI 10 is variable length, so an FNC1 follows it when another field
	// comes next.
	enc := mustEncode(t, EAN128{}, "(10)12(11)991231", nil)
	cw := enc.Codewords()
	assert.Equal(t, []int{105, 102, 10, 12, 102, 11, 99, 12, 31}, cw[:9])

	raw := mustEncode(t, EAN128{}, "1012\x1d11991231", nil)
	assert.Equal(t, cw, raw.Codewords())
	assert.Equal(t, "(10)12(11)991231", raw.Display())
}

func TestEAN128Errors(t *testing.T) {
	long := "(10)" + strings.Repeat("A", 20) + "(21)" + strings.Repeat("B", 20) + "(22)" + strings.Repeat("C", 10)
	tests := []struct {
		name    string
		msg     string
		opts    *barcodelogic.Options
		wantErr error
	}{
		{"empty", "", nil, barcodelogic.ErrInvalidLength},
		{"unknown AI", "(23)X", nil, barcodelogic.ErrInvalidMessage},
		{"unterminated", "(01", nil, barcodelogic.ErrInvalidMessage},
		{"bad check digit", "(01)09501101530009", nil, barcodelogic.ErrChecksumMismatch},
		{"short fixed field", "(01)095011015", nil, barcodelogic.ErrInvalidLength},
		{"letter in numeric field", "(11)99123A", nil, barcodelogic.ErrInvalidCharacter},
		{"field too long", "(10)" + strings.Repeat("A", 21), nil, barcodelogic.ErrInvalidLength},
		{"too many characters", long, nil, barcodelogic.ErrInvalidLength},
		{"not GS1 charset", "(10)A#B", nil, barcodelogic.ErrInvalidCharacter},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := EAN128{}.Encode(tc.msg, tc.opts)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.ErrorIs(t, EAN128{}.Validate(tc.msg, tc.opts), tc.wantErr)
		})
	}
}

func TestEAN128ChecksumModes(t *testing.T) {
	add := &barcodelogic.Options{Checksum: barcodelogic.ChecksumAdd}
	enc := mustEncode(t, EAN128{}, "(01)0950110153000", add)
	assert.Equal(t, "(01)09501101530003", enc.Display())

	ignore := &barcodelogic.Options{Checksum: barcodelogic.ChecksumIgnore}
	enc = mustEncode(t, EAN128{}, "(01)09501101530009", ignore)
	assert.Equal(t, "(01)09501101530009", enc.Display())

	check := &barcodelogic.Options{Checksum: barcodelogic.ChecksumCheck}
	_, err := EAN128{}.Encode("(01)0950110153000", check)
	assert.ErrorIs(t, err, barcodelogic.ErrInvalidLength)
}

func TestEAN128Template(t *testing.T) {
	tmpl := &barcodelogic.Options{EAN128Template: "(01)n13+cd(10)an1-20"}

	enc := mustEncode(t, EAN128{}, "(01)0950110153000(10)ABC", tmpl)
	assert.Equal(t, "(01)09501101530003(10)ABC", enc.Display())

	enc = mustEncode(t, EAN128{}, "(01)0950110153000", tmpl)
	assert.Equal(t, "(01)09501101530003", enc.Display())

	_, err := EAN128{}.Encode("(01)0950110153000(10)ABC(21)X", tmpl)
	assert.ErrorIs(t, err, barcodelogic.ErrInvalidMessage)
	assert.Contains(t, err.Error(), "more AIs than template")

	_, err = EAN128{}.Encode("(10)ABC", tmpl)
	assert.ErrorIs(t, err, barcodelogic.ErrInvalidMessage)

	// AIs unknown to the GS1 table are accepted when the template names them.
	custom := &barcodelogic.Options{EAN128Template: "(23)n2"}
	enc = mustEncode(t, EAN128{}, "(23)42", custom)
	assert.Equal(t, "(23)42", enc.Display())

	bad := &barcodelogic.Options{EAN128Template: "(01)x13"}
	_, err = EAN128{}.Encode("(01)0950110153000", bad)
	assert.ErrorIs(t, err, barcodelogic.ErrInvalidMessage)
}

func TestGS1AITable(t *testing.T) {
	table, err := GS1AITable()
	require.NoError(t, err)
	assert.Greater(t, table.Len(), 500)

	f, ok := table.Lookup("3103")
	require.True(t, ok)
	assert.Equal(t, "n6", f.Format)
	assert.True(t, f.Fixed())

	f, ok = table.Match("10ABC")
	require.True(t, ok)
	assert.Equal(t, "10", f.AI)
	assert.False(t, f.Fixed())
	assert.Equal(t, 20, f.MaxLength())

	_, ok = table.Lookup("3")
	assert.False(t, ok)
	_, ok = table.Match("23")
	assert.False(t, ok)
}

func TestAITableInsert(t *testing.T) {
	var table AITable
	field := func(ai, format string) *AIField {
		f, err := ParseAIField(ai, format)
		require.NoError(t, err)
		return f
	}

	t1, err := table.Insert(field("01", "n13+cd"))
	require.NoError(t, err)
	t2, err := t1.Insert(field("02", "n13+cd"))
	require.NoError(t, err)

	// Insert leaves the original table untouched.
	assert.Equal(t, 1, t1.Len())
	assert.Equal(t, 2, t2.Len())
	_, ok := t1.Lookup("02")
	assert.False(t, ok)
	_, ok = t2.Lookup("02")
	assert.True(t, ok)

	_, err = t2.Insert(field("0", "n1"))
	assert.ErrorIs(t, err, barcodelogic.ErrInvalidMessage)
	_, err = t2.Insert(field("011", "n1"))
	assert.ErrorIs(t, err, barcodelogic.ErrInvalidMessage)
	_, err = t2.Insert(field("01", "n1"))
	assert.ErrorIs(t, err, barcodelogic.ErrInvalidMessage)
}

func TestParseAIField(t *testing.T) {
	for _, bad := range []string{"", "x3", "n", "n3-1", "n1-3+n2", "an0"} {
		_, err := ParseAIField("99", bad)
		assert.ErrorIs(t, err, barcodelogic.ErrInvalidMessage, bad)
	}
	_, err := ParseAIField("9a", "n2")
	assert.ErrorIs(t, err, barcodelogic.ErrInvalidCharacter)

	f, err := ParseAIField("253", "n12+cd+an0-17")
	require.NoError(t, err)
	assert.False(t, f.Fixed())
	assert.Equal(t, 30, f.MaxLength())
	v, err := f.Normalize("4012345000009ABC", barcodelogic.ChecksumAuto)
	require.NoError(t, err)
	assert.Equal(t, "4012345000009ABC", v)
}

func TestLoadAITableErrors(t *testing.T) {
	_, err := LoadAITable([]byte("[other]\n01 = n13+cd\n"))
	assert.ErrorIs(t, err, barcodelogic.ErrMissingResource)

	_, err = LoadAITable([]byte("[ai]\n01 = n13+cd\n011 = n2\n"))
	assert.ErrorIs(t, err, barcodelogic.ErrInvalidMessage)

	table, err := LoadAITable([]byte("[ai]\n10-12 = n2\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, table.Len())
}
