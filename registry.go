package barcodelogic

import (
	"fmt"
	"sort"
)

// Symbology encodes messages for one barcode format. Implementations are
// stateless and safe for concurrent use.
type Symbology interface {
	// Format returns the format this symbology encodes.
	Format() Format

	// Validate reports whether msg can be encoded with opts.
	Validate(msg string, opts *Options) error

	// Encode encodes msg into its logical bar structure.
	Encode(msg string, opts *Options) (*EncodedMessage, error)

	// CalcDimensions returns the size of an encoded message in millimetres.
	CalcDimensions(enc *EncodedMessage, opts *Options) Dimension

	// BarWidth returns the width in millimetres of a bar or space reported
	// to a LogicHandler with the given arguments.
	BarWidth(black bool, width int, opts *Options) float64
}

var symbologies = map[Format]Symbology{}

// Register makes a symbology available to Lookup. It is meant to be called
// from package init functions and replaces any earlier registration.
func Register(s Symbology) {
	symbologies[s.Format()] = s
}

// Lookup returns the symbology registered for format.
func Lookup(format Format) (Symbology, error) {
	s, ok := symbologies[format]
	if !ok {
		return nil, fmt.Errorf("no symbology registered for format %s: %w", format, ErrUnsupported)
	}
	return s, nil
}

// Formats returns the registered formats in ascending order.
func Formats() []Format {
	formats := make([]Format, 0, len(symbologies))
	for f := range symbologies {
		formats = append(formats, f)
	}
	sort.Slice(formats, func(i, j int) bool { return formats[i] < formats[j] })
	return formats
}

// Encode encodes msg with the symbology registered for format.
func Encode(format Format, msg string, opts *Options) (*EncodedMessage, error) {
	s, err := Lookup(format)
	if err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return s.Encode(msg, opts)
}

// Generate encodes msg and sends the resulting events to h.
func Generate(format Format, msg string, opts *Options, h LogicHandler) error {
	enc, err := Encode(format, msg, opts)
	if err != nil {
		return err
	}
	enc.Replay(h)
	return nil
}

// CalcDimensions encodes msg and returns the size of the symbol.
func CalcDimensions(format Format, msg string, opts *Options) (Dimension, error) {
	s, err := Lookup(format)
	if err != nil {
		return Dimension{}, err
	}
	enc, err := Encode(format, msg, opts)
	if err != nil {
		return Dimension{}, err
	}
	return s.CalcDimensions(enc, opts), nil
}
