// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import "github.com/ericlevine/barcodelogic"

// encoderContext is the state shared by the encodation schemes while one
// message is encoded.
type encoderContext struct {
	msg       []byte
	opts      Options
	pos       int
	codewords []int
	skipAtEnd int
	newMode   Mode
	symbol    *SymbolInfo
}

func (c *encoderContext) current() byte { return c.msg[c.pos] }

func (c *encoderContext) hasMoreCharacters() bool { return c.pos < c.totalCharacters() }

func (c *encoderContext) totalCharacters() int { return len(c.msg) - c.skipAtEnd }

func (c *encoderContext) remainingCharacters() int { return c.totalCharacters() - c.pos }

func (c *encoderContext) writeCodeword(cw int) { c.codewords = append(c.codewords, cw) }

func (c *encoderContext) writeCodewords(cws ...int) { c.codewords = append(c.codewords, cws...) }

func (c *encoderContext) signalEncoderChange(m Mode) { c.newMode = m }

func (c *encoderContext) resetSymbolInfo() { c.symbol = nil }

// updateSymbolInfo makes sure the current symbol holds n data codewords.
func (c *encoderContext) updateSymbolInfo(n int) error {
	if c.symbol != nil && n <= c.symbol.DataCapacity {
		return nil
	}
	si, err := Lookup(n, c.opts.Shape, c.opts.MinSize, c.opts.MaxSize)
	if err != nil {
		return err
	}
	c.symbol = si
	return nil
}

func (c *encoderContext) update() error { return c.updateSymbolInfo(len(c.codewords)) }

func (c *encoderContext) characterError(pos int) error {
	return &barcodelogic.CharacterError{Char: rune(c.msg[pos]), Pos: pos}
}
