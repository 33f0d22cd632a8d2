// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import "fmt"

// charValues appends the C40 or Text values of ch to buf and reports how
// many it appended.
type charValues func(ch byte, buf []int) ([]int, int)

// encodeC40 handles both C40 and Text, which differ only in their
// character sets.
func encodeC40(c *encoderContext, mode Mode) error {
	values := c40Values
	if mode == ModeText {
		values = textValues
	}
	var buf []int
	last := 0
	for c.hasMoreCharacters() {
		ch := c.current()
		c.pos++
		buf, last = values(ch, buf)

		unwritten := (len(buf) / 3) * 2
		current := len(c.codewords) + unwritten
		if err := c.updateSymbolInfo(current); err != nil {
			return err
		}
		available := c.symbol.DataCapacity - current

		if !c.hasMoreCharacters() {
			// Avoid leaving one value alone in a triplet.
			if len(buf)%3 == 2 && available != 2 {
				buf, last = backtrackOneCharacter(c, buf, last, values)
			}
			for len(buf)%3 == 1 && (last > 3 || available != 1) {
				buf, last = backtrackOneCharacter(c, buf, last, values)
			}
			break
		}

		if len(buf)%3 == 0 && lookAheadTest(c.msg, c.pos, mode) != mode {
			c.signalEncoderChange(ModeASCII)
			break
		}
	}
	return handleC40EOD(c, buf)
}

func backtrackOneCharacter(c *encoderContext, buf []int, last int, values charValues) ([]int, int) {
	buf = buf[:len(buf)-last]
	c.pos--
	_, last = values(c.current(), nil)
	c.resetSymbolInfo()
	return buf, last
}

func writeNextTriplet(c *encoderContext, buf []int) []int {
	v := 1600*buf[0] + 40*buf[1] + buf[2] + 1
	c.writeCodewords(v/256, v%256)
	return buf[3:]
}

func handleC40EOD(c *encoderContext, buf []int) error {
	unwritten := (len(buf) / 3) * 2
	rest := len(buf) % 3
	current := len(c.codewords) + unwritten
	if err := c.updateSymbolInfo(current); err != nil {
		return err
	}
	available := c.symbol.DataCapacity - current

	switch {
	case rest == 2:
		buf = append(buf, 0) // Shift 1
		for len(buf) >= 3 {
			buf = writeNextTriplet(c, buf)
		}
		if c.hasMoreCharacters() {
			c.writeCodeword(c40Unlatch)
		}
	case available == 1 && rest == 1:
		for len(buf) >= 3 {
			buf = writeNextTriplet(c, buf)
		}
		if c.hasMoreCharacters() {
			c.writeCodeword(c40Unlatch)
		}
		// The last character is encoded in ASCII without unlatch.
		c.pos--
	case rest == 0:
		for len(buf) >= 3 {
			buf = writeNextTriplet(c, buf)
		}
		if available > 0 || c.hasMoreCharacters() {
			c.writeCodeword(c40Unlatch)
		}
	default:
		return fmt.Errorf("datamatrix: %d values left at end of C40/Text data", rest)
	}
	c.signalEncoderChange(ModeASCII)
	return nil
}

func c40Values(ch byte, buf []int) ([]int, int) {
	switch {
	case ch == ' ':
		return append(buf, 3), 1
	case isDigit(ch):
		return append(buf, int(ch-'0')+4), 1
	case ch >= 'A' && ch <= 'Z':
		return append(buf, int(ch-'A')+14), 1
	case ch < ' ':
		return append(buf, 0, int(ch)), 2 // Shift 1
	case ch <= '/':
		return append(buf, 1, int(ch)-33), 2 // Shift 2
	case ch <= '@':
		return append(buf, 1, int(ch)-58+15), 2
	case ch <= '_':
		return append(buf, 1, int(ch)-91+22), 2
	case ch <= 127:
		return append(buf, 2, int(ch)-96), 2 // Shift 3
	}
	buf = append(buf, 1, 30) // Shift 2, Upper Shift
	buf, n := c40Values(ch-128, buf)
	return buf, n + 2
}

func textValues(ch byte, buf []int) ([]int, int) {
	switch {
	case ch == ' ':
		return append(buf, 3), 1
	case isDigit(ch):
		return append(buf, int(ch-'0')+4), 1
	case ch >= 'a' && ch <= 'z':
		return append(buf, int(ch-'a')+14), 1
	case ch < ' ':
		return append(buf, 0, int(ch)), 2
	case ch <= '/':
		return append(buf, 1, int(ch)-33), 2
	case ch <= '@':
		return append(buf, 1, int(ch)-58+15), 2
	case ch >= '[' && ch <= '_':
		return append(buf, 1, int(ch)-91+22), 2
	case ch == '`':
		return append(buf, 2, 0), 2
	case ch <= 'Z':
		return append(buf, 2, int(ch)-64), 2
	case ch <= 127:
		return append(buf, 2, int(ch)-123+27), 2
	}
	buf = append(buf, 1, 30)
	buf, n := textValues(ch-128, buf)
	return buf, n + 2
}
