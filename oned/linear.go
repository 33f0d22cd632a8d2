// Package oned registers the linear symbologies: UPC-A, UPC-E, EAN-13,
// EAN-8, Code 128, EAN-128, Codabar, Code 39, Interleaved 2 of 5 and ITF-14.
//
// Bars and spaces are reported in modules. For the wide/narrow symbologies
// (Codabar, Code 39 and ITF) a width of 2 marks a wide element, whose size is
// ModuleWidth times WideFactor.
package oned

import (
	"github.com/ericlevine/barcodelogic"
)

const (
	// DefaultBarHeight is the default bar height in millimetres.
	DefaultBarHeight = 15.0
	// DefaultFontSize is 8pt in millimetres.
	DefaultFontSize = 8 * 25.4 / 72
	// DefaultQuietZoneModules is the default horizontal quiet zone, in modules.
	DefaultQuietZoneModules = 10
)

// layout holds the geometry defaults of a linear symbology.
type layout struct {
	moduleWidth float64
	// wideFactor is zero for symbologies without wide elements.
	wideFactor float64
}

var (
	upceanDefaults  = layout{moduleWidth: 0.33}
	code128Defaults = layout{moduleWidth: 0.21}
	codabarDefaults = layout{moduleWidth: 0.21, wideFactor: 3}
	code39Defaults  = layout{moduleWidth: 0.19, wideFactor: 2.5}
	itfDefaults     = layout{moduleWidth: 0.21, wideFactor: 3}
)

func (l layout) barWidth(width int, opts *barcodelogic.Options) float64 {
	module := opts.ModuleWidthOr(l.moduleWidth)
	if l.wideFactor > 0 && width == 2 {
		return module * opts.WideFactorOr(l.wideFactor)
	}
	return float64(width) * module
}

func (l layout) dimensions(enc *barcodelogic.EncodedMessage, opts *barcodelogic.Options) barcodelogic.Dimension {
	width := enc.Width(func(_ bool, w int) float64 { return l.barWidth(w, opts) })
	height := opts.BarHeightOr(DefaultBarHeight)
	placement := opts.HumanReadableOr(barcodelogic.HumanReadableBottom)
	font := 0.0
	if placement != barcodelogic.HumanReadableNone {
		font = opts.FontSizeOr(DefaultFontSize)
		height += font
	}
	module := opts.ModuleWidthOr(l.moduleWidth)
	d := barcodelogic.NewDimension(width, height,
		opts.QuietZoneOr(DefaultQuietZoneModules*module),
		opts.VerticalQuietZoneOr(0))
	if placement == barcodelogic.HumanReadableTop {
		d.YOffset += font
	}
	return d
}

// addPattern reports widths as alternating bars and spaces.
func addPattern(h barcodelogic.LogicHandler, pattern []int, black bool) {
	for _, w := range pattern {
		h.AddBar(black, w)
		black = !black
	}
}

func addGroup(h barcodelogic.LogicHandler, group barcodelogic.BarGroup, label string, pattern []int, black bool) {
	h.StartBarGroup(group, label)
	addPattern(h, pattern, black)
	h.EndBarGroup()
}

// digitValues returns the values of the ASCII digits in s.
func digitValues(s string) []int {
	values := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		values[i] = int(s[i] - '0')
	}
	return values
}

// digitsAt reports the first non-digit in s, positioned relative to the
// whole message.
func digitsAt(s string, offset int) error {
	for i, r := range s {
		if r < '0' || r > '9' {
			return &barcodelogic.CharacterError{Char: r, Pos: offset + i}
		}
	}
	return nil
}
