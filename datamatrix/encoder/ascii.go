// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

func encodeASCII(c *encoderContext) error {
	if consecutiveDigitCount(c.msg, c.pos) >= 2 {
		c.writeCodeword(encodeASCIIDigits(c.msg[c.pos], c.msg[c.pos+1]))
		c.pos += 2
		return nil
	}
	ch := c.current()
	switch next := lookAheadTest(c.msg, c.pos, ModeASCII); next {
	case ModeASCII:
	case ModeBase256:
		c.writeCodeword(latchToBase256)
		c.signalEncoderChange(next)
		return nil
	case ModeC40:
		c.writeCodeword(latchToC40)
		c.signalEncoderChange(next)
		return nil
	case ModeX12:
		c.writeCodeword(latchToX12)
		c.signalEncoderChange(next)
		return nil
	case ModeText:
		c.writeCodeword(latchToText)
		c.signalEncoderChange(next)
		return nil
	case ModeEDIFACT:
		c.writeCodeword(latchToEDIFACT)
		c.signalEncoderChange(next)
		return nil
	}
	if isExtendedASCII(ch) {
		c.writeCodewords(upperShift, int(ch)-128+1)
	} else {
		c.writeCodeword(int(ch) + 1)
	}
	c.pos++
	return nil
}

func consecutiveDigitCount(msg []byte, start int) int {
	n := 0
	for i := start; i < len(msg) && isDigit(msg[i]); i++ {
		n++
	}
	return n
}

func encodeASCIIDigits(d1, d2 byte) int {
	return int(d1-'0')*10 + int(d2-'0') + 130
}
