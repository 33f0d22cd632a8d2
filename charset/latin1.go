// Package charset transcodes messages to the byte sets the symbologies
// encode.
package charset

import (
	"github.com/ericlevine/barcodelogic"
	"golang.org/x/text/encoding/charmap"
)

// Latin1 returns msg encoded as ISO-8859-1. A rune outside Latin-1 is
// reported as a *barcodelogic.CharacterError carrying its rune index.
func Latin1(msg string) ([]byte, error) {
	out := make([]byte, 0, len(msg))
	pos := 0
	for _, r := range msg {
		b, ok := charmap.ISO8859_1.EncodeRune(r)
		if !ok {
			return nil, &barcodelogic.CharacterError{Char: r, Pos: pos}
		}
		out = append(out, b)
		pos++
	}
	return out, nil
}

// Latin1String decodes ISO-8859-1 bytes back into a string.
func Latin1String(b []byte) string {
	runes := make([]rune, len(b))
	for i, c := range b {
		runes[i] = charmap.ISO8859_1.DecodeByte(c)
	}
	return string(runes)
}
