// Package checksum computes the check characters used by linear and postal
// symbologies and applies a ChecksumMode to fixed-length digit messages.
package checksum

import (
	"fmt"

	"github.com/ericlevine/barcodelogic"
)

// Mod10 returns the GS1 mod-10 check digit of digits. Positions are weighted
// 3 and 1 alternately, starting with 3 at the rightmost digit.
func Mod10(digits string) (int, error) {
	sum := 0
	weight := 3
	for i := len(digits) - 1; i >= 0; i-- {
		c := digits[i]
		if c < '0' || c > '9' {
			return 0, &barcodelogic.CharacterError{Char: rune(c), Pos: i}
		}
		sum += int(c-'0') * weight
		weight = 4 - weight
	}
	return (10 - sum%10) % 10, nil
}

// Mod10Rune returns the mod-10 check digit of digits as a character.
func Mod10Rune(digits string) (byte, error) {
	d, err := Mod10(digits)
	if err != nil {
		return 0, err
	}
	return byte('0' + d), nil
}

// Mod43 returns the Code 39 check value of the given character values.
func Mod43(values []int) int {
	sum := 0
	for _, v := range values {
		sum += v
	}
	return sum % 43
}

// USPS frame check sequence parameters.
const (
	uspsFCSGenerator = 0x0F35
	uspsFCSInit      = 0x07FF
)

// USPSFrameCheck returns the 11-bit frame check sequence of the USPS
// Intelligent Mail barcode over the 102-bit binary value in data, a 13-byte
// big-endian number whose two most significant bits are zero.
func USPSFrameCheck(data [13]byte) int {
	fcs := uspsFCSInit
	step := func(b int) {
		if (fcs^b)&0x400 != 0 {
			fcs = fcs<<1 ^ uspsFCSGenerator
		} else {
			fcs <<= 1
		}
		fcs &= 0x7FF
	}
	b := int(data[0]) << 5
	for bit := 2; bit < 8; bit++ {
		step(b)
		b <<= 1
	}
	for _, v := range data[1:] {
		b = int(v) << 3
		for bit := 0; bit < 8; bit++ {
			step(b)
			b <<= 1
		}
	}
	return fcs
}

// Mod103 returns the Code 128 check value of codewords, which start with the
// start character. The start character and the first data character both
// have weight 1.
func Mod103(codewords []int) int {
	if len(codewords) == 0 {
		return 0
	}
	sum := codewords[0]
	for i := 1; i < len(codewords); i++ {
		sum += codewords[i] * i
	}
	return sum % 103
}

// Policy describes the check digit of a fixed-length message.
type Policy struct {
	// Bare is the message length without the check digit.
	Bare int
	// Full is the message length including it.
	Full int
	// Compute returns the check digit of a bare message.
	Compute func(bare string) (byte, error)
}

// Apply applies mode to msg and returns the message including its check
// digit.
//
// ChecksumAuto adds the check digit to a bare message and verifies a full
// one. ChecksumAdd requires a bare message, ChecksumCheck and ChecksumIgnore
// a full one; only ChecksumCheck verifies it.
func Apply(msg string, mode barcodelogic.ChecksumMode, p Policy) (string, error) {
	compute := p.Compute
	if compute == nil {
		compute = Mod10Rune
	}
	if mode == barcodelogic.ChecksumAuto {
		switch len(msg) {
		case p.Bare:
			mode = barcodelogic.ChecksumAdd
		case p.Full:
			mode = barcodelogic.ChecksumCheck
		default:
			return "", lengthError(len(msg), p)
		}
	}

	switch mode {
	case barcodelogic.ChecksumAdd:
		if len(msg) != p.Bare {
			return "", fmt.Errorf("message length %d, want %d digits without check digit: %w",
				len(msg), p.Bare, barcodelogic.ErrInvalidLength)
		}
		c, err := compute(msg)
		if err != nil {
			return "", err
		}
		return msg + string(c), nil
	case barcodelogic.ChecksumCheck:
		if len(msg) != p.Full {
			return "", fmt.Errorf("message length %d, want %d digits with check digit: %w",
				len(msg), p.Full, barcodelogic.ErrInvalidLength)
		}
		c, err := compute(msg[:p.Bare])
		if err != nil {
			return "", err
		}
		if actual := msg[p.Bare]; actual != c {
			return "", &barcodelogic.ChecksumError{Expected: string(c), Actual: string(actual)}
		}
		return msg, nil
	case barcodelogic.ChecksumIgnore:
		if len(msg) != p.Full {
			return "", fmt.Errorf("message length %d, want %d digits: %w",
				len(msg), p.Full, barcodelogic.ErrInvalidLength)
		}
		return msg, nil
	default:
		return "", fmt.Errorf("checksum mode %s: %w", mode, barcodelogic.ErrInvalidOption)
	}
}

func lengthError(n int, p Policy) error {
	return fmt.Errorf("message length %d, want %d or %d digits: %w", n, p.Bare, p.Full, barcodelogic.ErrInvalidLength)
}

// Digits reports the first character of s that is not an ASCII digit.
func Digits(s string) error {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return &barcodelogic.CharacterError{Char: rune(s[i]), Pos: i}
		}
	}
	return nil
}
