package oned

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericlevine/barcodelogic"
)

func TestCode128Codewords(t *testing.T) {
	tests := []struct {
		name     string
		msg      string
		codesets barcodelogic.Codeset
		want     []int
	}{
		{"digits use C", "123456", 0, []int{105, 12, 34, 56, 44, 106}},
		{"text uses B", "PJJ123C", 0, []int{104, 48, 42, 42, 17, 18, 19, 35, 55, 106}},
		{"control uses A", "\x01A", 0, []int{103, 65, 33, 28, 106}},
		{"forced B", "123456", barcodelogic.CodesetB, []int{104, 17, 18, 19, 20, 21, 22, 16, 106}},
		{"FNC1", "ñ123", 0, []int{105, 102, 12, code128CodeB, 19, 92, 106}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Code128Codewords(tc.msg, tc.codesets)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCode128Events(t *testing.T) {
	enc := mustEncode(t, Code128{}, "123456", nil)
	assert.Equal(t, "123456", enc.Display())
	assert.Equal(t, []string{"12", "34", "56", ""}, groupsOf(enc, barcodelogic.MessageCharacter))
	assert.Len(t, groupsOf(enc, barcodelogic.StartCharacter), 1)
	assert.Len(t, groupsOf(enc, barcodelogic.StopCharacter), 1)
	assert.Len(t, modules(enc, 0), 11+3*11+11+13)

	enc = mustEncode(t, Code128{}, "ñAB", nil)
	assert.Equal(t, "AB", enc.Display())
}

func TestCode128Errors(t *testing.T) {
	tests := []struct {
		name    string
		msg     string
		opts    *barcodelogic.Options
		wantErr error
	}{
		{"empty", "", nil, barcodelogic.ErrInvalidLength},
		{"non-ascii", "café", nil, barcodelogic.ErrInvalidCharacter},
		{"odd digits in C", "123", &barcodelogic.Options{Code128Codesets: barcodelogic.CodesetC}, barcodelogic.ErrInvalidCharacter},
		{"lowercase in A", "abc", &barcodelogic.Options{Code128Codesets: barcodelogic.CodesetA}, barcodelogic.ErrInvalidCharacter},
		{"control in B", "\x01", &barcodelogic.Options{Code128Codesets: barcodelogic.CodesetB}, barcodelogic.ErrInvalidCharacter},
		{"check mode", "123", &barcodelogic.Options{Checksum: barcodelogic.ChecksumCheck}, barcodelogic.ErrUnsupported},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Code128{}.Encode(tc.msg, tc.opts)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.ErrorIs(t, Code128{}.Validate(tc.msg, tc.opts), tc.wantErr)
		})
	}
}

func TestCode128CodesetRestriction(t *testing.T) {
	// A and C only: lowercase is impossible but digits and capitals work.
	opts := &barcodelogic.Options{Code128Codesets: barcodelogic.CodesetA | barcodelogic.CodesetC}
	got, err := Code128Codewords("AB1234", opts.Code128Codesets)
	require.NoError(t, err)
	assert.Equal(t, 103, got[0])
	assert.NotContains(t, got[1:len(got)-2], code128CodeB)
}

func TestCode128EvenDigitsUseCodesetC(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("even-length digit strings start in C and never latch", prop.ForAll(
		func(digits string) bool {
			if len(digits)%2 == 1 {
				digits += "0"
			}
			cw, err := Code128Codewords(digits, 0)
			if err != nil || cw[0] != code128StartC || len(cw) != len(digits)/2+3 {
				return false
			}
			for _, v := range cw[1 : len(cw)-2] {
				if v > 99 {
					return false
				}
			}
			return true
		},
		gen.NumString().SuchThat(func(s string) bool { return len(s) > 0 && len(s) <= 40 }),
	))

	properties.Property("check character is mod 103 of the rest", prop.ForAll(
		func(s string) bool {
			cw, err := Code128Codewords(s, 0)
			if err != nil {
				return false
			}
			sum := cw[0]
			for i := 1; i < len(cw)-2; i++ {
				sum += cw[i] * i
			}
			return cw[len(cw)-2] == sum%103 && cw[len(cw)-1] == code128Stop
		},
		gen.AnyString().Map(func(s string) string {
			b := []byte{}
			for _, r := range s {
				if r >= ' ' && r < 127 {
					b = append(b, byte(r))
				}
			}
			return "X" + string(b)
		}),
	))

	properties.TestingRun(t)
}
