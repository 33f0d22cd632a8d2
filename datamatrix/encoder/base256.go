// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

import (
	"fmt"

	"github.com/ericlevine/barcodelogic"
)

func encodeBase256(c *encoderContext) error {
	buf := []int{0} // length field
	for c.hasMoreCharacters() {
		buf = append(buf, int(c.current()))
		c.pos++
		if lookAheadTest(c.msg, c.pos, ModeBase256) != ModeBase256 {
			c.signalEncoderChange(ModeASCII)
			break
		}
	}

	dataCount := len(buf) - 1
	current := len(c.codewords) + dataCount + 1
	if err := c.updateSymbolInfo(current); err != nil {
		return err
	}
	mustPad := c.symbol.DataCapacity-current > 0
	// A zero length field means the data runs to the end of the symbol.
	if c.hasMoreCharacters() || mustPad {
		switch {
		case dataCount <= 249:
			buf[0] = dataCount
		case dataCount <= 1555:
			buf[0] = dataCount/250 + 249
			buf = append(buf[:1], append([]int{dataCount % 250}, buf[1:]...)...)
		default:
			return fmt.Errorf("datamatrix: %d bytes in one Base256 segment: %w",
				dataCount, barcodelogic.ErrCapacityExceeded)
		}
	}
	for _, b := range buf {
		c.writeCodeword(randomize255State(b, len(c.codewords)+1))
	}
	return nil
}
