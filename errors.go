package barcodelogic

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCharacter is returned when a message contains a character the
	// symbology cannot encode.
	ErrInvalidCharacter = errors.New("invalid character")

	// ErrInvalidLength is returned when a message has a length the symbology
	// does not accept.
	ErrInvalidLength = errors.New("invalid length")

	// ErrChecksumMismatch is returned when a message carries a check digit
	// that does not match the computed one.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrCapacityExceeded is returned when no symbol size can hold the message.
	ErrCapacityExceeded = errors.New("symbol capacity exceeded")

	// ErrUnsupported is returned when an operation or option is not available
	// for a symbology.
	ErrUnsupported = errors.New("unsupported operation")

	// ErrMissingResource is returned when an embedded table cannot be loaded.
	ErrMissingResource = errors.New("missing resource")

	// ErrInvalidMessage is returned when a message is structurally wrong even
	// though every character is encodable.
	ErrInvalidMessage = errors.New("invalid message")

	// ErrInvalidOption is returned for option values out of range.
	ErrInvalidOption = errors.New("invalid option")
)

// ChecksumError reports the check character a message should have carried.
type ChecksumError struct {
	Expected string
	Actual   string
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("checksum mismatch: expected %q, got %q", e.Expected, e.Actual)
}

// Unwrap returns ErrChecksumMismatch.
func (e *ChecksumError) Unwrap() error { return ErrChecksumMismatch }

// CharacterError reports the first character a symbology rejected.
type CharacterError struct {
	Char rune
	Pos  int
}

func (e *CharacterError) Error() string {
	return fmt.Sprintf("invalid character %q at position %d", e.Char, e.Pos)
}

// Unwrap returns ErrInvalidCharacter.
func (e *CharacterError) Unwrap() error { return ErrInvalidCharacter }
