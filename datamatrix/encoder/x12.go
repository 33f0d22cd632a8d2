// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

func encodeX12(c *encoderContext) error {
	var buf []int
	for c.hasMoreCharacters() {
		v, ok := x12Value(c.current())
		if !ok {
			return c.characterError(c.pos)
		}
		c.pos++
		buf = append(buf, v)
		if len(buf)%3 == 0 {
			buf = writeNextTriplet(c, buf)
			if lookAheadTest(c.msg, c.pos, ModeX12) != ModeX12 {
				c.signalEncoderChange(ModeASCII)
				break
			}
		}
	}
	return handleX12EOD(c, buf)
}

func x12Value(ch byte) (int, bool) {
	switch {
	case ch == '\r':
		return 0, true
	case ch == '*':
		return 1, true
	case ch == '>':
		return 2, true
	case ch == ' ':
		return 3, true
	case isDigit(ch):
		return int(ch-'0') + 4, true
	case ch >= 'A' && ch <= 'Z':
		return int(ch-'A') + 14, true
	}
	return 0, false
}

// handleX12EOD re-encodes an incomplete triplet in ASCII.
func handleX12EOD(c *encoderContext, buf []int) error {
	if err := c.update(); err != nil {
		return err
	}
	available := c.symbol.DataCapacity - len(c.codewords)
	c.pos -= len(buf)
	if c.remainingCharacters() > 1 || available > 1 || c.remainingCharacters() != available {
		c.writeCodeword(x12Unlatch)
	}
	if c.newMode == modeNone {
		c.signalEncoderChange(ModeASCII)
	}
	return nil
}
