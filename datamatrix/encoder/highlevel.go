// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import (
	"bytes"
	"fmt"

	"github.com/ericlevine/barcodelogic"
	"github.com/ericlevine/barcodelogic/charset"
)

// Mode is a Data Matrix encodation scheme.
type Mode int

const (
	ModeASCII Mode = iota
	ModeC40
	ModeText
	ModeX12
	ModeEDIFACT
	ModeBase256

	modeNone Mode = -1
)

var modeNames = [...]string{"ASCII", "C40", "Text", "X12", "EDIFACT", "Base256"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "none"
	}
	return modeNames[m]
}

// Special codewords.
const (
	pad            = 129
	latchToC40     = 230
	latchToBase256 = 231
	upperShift     = 235
	macro05        = 236
	macro06        = 237
	latchToX12     = 238
	latchToText    = 239
	latchToEDIFACT = 240
	c40Unlatch     = 254
	x12Unlatch     = 254
)

var (
	macro05Header = []byte("[)>\x1e05\x1d")
	macro06Header = []byte("[)>\x1e06\x1d")
	macroTrailer  = []byte("\x1e\x04")
)

// Options constrains the symbol the high-level encoder may choose.
type Options struct {
	Shape   barcodelogic.SymbolShape
	MinSize *barcodelogic.Size
	MaxSize *barcodelogic.Size
}

type modeEncoder func(c *encoderContext) error

var encoders = [...]modeEncoder{
	ModeASCII:   encodeASCII,
	ModeC40:     func(c *encoderContext) error { return encodeC40(c, ModeC40) },
	ModeText:    func(c *encoderContext) error { return encodeC40(c, ModeText) },
	ModeX12:     encodeX12,
	ModeEDIFACT: encodeEDIFACT,
	ModeBase256: encodeBase256,
}

// EncodeHighLevel converts msg into Data Matrix data codewords, switching
// encodation schemes as the look-ahead test suggests, and pads them to the
// capacity of the smallest symbol that fits. Characters outside ISO-8859-1
// are rejected.
func EncodeHighLevel(msg string, opts Options) ([]int, *SymbolInfo, error) {
	data, err := charset.Latin1(msg)
	if err != nil {
		return nil, nil, fmt.Errorf("datamatrix: %w", err)
	}
	c := &encoderContext{msg: data, opts: opts, newMode: modeNone}

	if bytes.HasSuffix(data, macroTrailer) && len(data) >= len(macro05Header)+len(macroTrailer) {
		switch {
		case bytes.HasPrefix(data, macro05Header):
			c.writeCodeword(macro05)
		case bytes.HasPrefix(data, macro06Header):
			c.writeCodeword(macro06)
		}
		if len(c.codewords) > 0 {
			c.skipAtEnd = len(macroTrailer)
			c.pos = len(macro05Header)
		}
	}

	mode := ModeASCII
	for c.hasMoreCharacters() {
		if err := encoders[mode](c); err != nil {
			return nil, nil, err
		}
		if c.newMode != modeNone {
			mode = c.newMode
			c.newMode = modeNone
		}
	}

	n := len(c.codewords)
	if err := c.updateSymbolInfo(n); err != nil {
		return nil, nil, err
	}
	capacity := c.symbol.DataCapacity
	if n < capacity && mode != ModeASCII && mode != ModeBase256 && mode != ModeEDIFACT {
		c.writeCodeword(c40Unlatch)
	}
	if len(c.codewords) < capacity {
		c.writeCodeword(pad)
	}
	for len(c.codewords) < capacity {
		c.writeCodeword(randomize253State(pad, len(c.codewords)+1))
	}
	return c.codewords, c.symbol, nil
}

func randomize253State(ch, pos int) int {
	pseudoRandom := ((149 * pos) % 253) + 1
	t := ch + pseudoRandom
	if t <= 254 {
		return t
	}
	return t - 254
}

func randomize255State(ch, pos int) int {
	pseudoRandom := ((149 * pos) % 255) + 1
	t := ch + pseudoRandom
	if t <= 255 {
		return t
	}
	return t - 256
}
