// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

const edifactUnlatch = 31

func encodeEDIFACT(c *encoderContext) error {
	var buf []int
	for c.hasMoreCharacters() {
		ch := c.current()
		switch {
		case ch >= ' ' && ch <= '?':
			buf = append(buf, int(ch))
		case ch >= '@' && ch <= '^':
			buf = append(buf, int(ch)-64)
		default:
			return c.characterError(c.pos)
		}
		c.pos++
		if len(buf) >= 4 {
			c.writeCodewords(edifactCodewords(buf[:4])...)
			buf = buf[4:]
			if lookAheadTest(c.msg, c.pos, ModeEDIFACT) != ModeEDIFACT {
				c.signalEncoderChange(ModeASCII)
				break
			}
		}
	}
	buf = append(buf, edifactUnlatch)
	err := handleEDIFACTEOD(c, buf)
	c.signalEncoderChange(ModeASCII)
	return err
}

// handleEDIFACTEOD writes the final, possibly incomplete, group. Up to two
// trailing characters are left to ASCII when that saves space at the end of
// the symbol.
func handleEDIFACTEOD(c *encoderContext, buf []int) error {
	if len(buf) == 1 {
		if err := c.update(); err != nil {
			return err
		}
		available := c.symbol.DataCapacity - len(c.codewords)
		remaining := c.remainingCharacters()
		if remaining > available {
			if err := c.updateSymbolInfo(len(c.codewords) + 1); err != nil {
				return err
			}
			available = c.symbol.DataCapacity - len(c.codewords)
		}
		if remaining <= available && available <= 2 {
			// No unlatch needed.
			return nil
		}
	}

	restChars := len(buf) - 1
	encoded := edifactCodewords(buf)
	restInASCII := !c.hasMoreCharacters() && restChars <= 2
	if restChars <= 2 {
		if err := c.updateSymbolInfo(len(c.codewords) + restChars); err != nil {
			return err
		}
		if c.symbol.DataCapacity-len(c.codewords) >= 3 {
			restInASCII = false
			if err := c.updateSymbolInfo(len(c.codewords) + len(encoded)); err != nil {
				return err
			}
		}
	}
	if restInASCII {
		c.resetSymbolInfo()
		c.pos -= restChars
	} else {
		c.writeCodewords(encoded...)
	}
	return nil
}

// edifactCodewords packs up to four 6-bit values into up to three codewords.
func edifactCodewords(buf []int) []int {
	var v int
	for i := 0; i < 4; i++ {
		v <<= 6
		if i < len(buf) {
			v |= buf[i]
		}
	}
	out := []int{(v >> 16) & 0xff}
	if len(buf) >= 2 {
		out = append(out, (v>>8)&0xff)
	}
	if len(buf) >= 3 {
		out = append(out, v&0xff)
	}
	return out
}
