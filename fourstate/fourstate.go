// Package fourstate registers the four-state postal symbologies: Royal Mail
// Customer Barcode, Dutch KIX and the USPS Intelligent Mail barcode.
//
// Bars are reported with AddBar(true, state), where state is one of
// barcodelogic.FourStateFull, FourStateAscender, FourStateDescender and
// FourStateTracker. The spaces between bars are reported as AddBar(false, 1).
package fourstate

import (
	"github.com/ericlevine/barcodelogic"
)

// layout holds the geometry defaults of a four-state symbology, in
// millimetres.
type layout struct {
	moduleWidth       float64
	gapWidth          float64
	barHeight         float64
	trackHeight       float64
	ascenderHeight    float64
	quietZone         float64
	verticalQuietZone float64
}

var (
	royalMailDefaults = layout{
		moduleWidth:       0.5,
		gapWidth:          0.6,
		barHeight:         5.22,
		trackHeight:       1.25,
		ascenderHeight:    1.985,
		quietZone:         2,
		verticalQuietZone: 2,
	}
	uspsDefaults = layout{
		moduleWidth:       0.508,
		gapWidth:          0.6465,
		barHeight:         3.683,
		trackHeight:       1.27,
		ascenderHeight:    1.2065,
		quietZone:         3.175,
		verticalQuietZone: 0.711,
	}
)

// DefaultFontSize is 8pt in millimetres.
const DefaultFontSize = 8 * 25.4 / 72

func (l layout) barWidth(black bool, opts *barcodelogic.Options) float64 {
	if black {
		return opts.ModuleWidthOr(l.moduleWidth)
	}
	return opts.IntercharGapWidthOr(l.gapWidth)
}

func (l layout) dimensions(enc *barcodelogic.EncodedMessage, opts *barcodelogic.Options) barcodelogic.Dimension {
	width := enc.Width(func(black bool, _ int) float64 { return l.barWidth(black, opts) })
	height := opts.BarHeightOr(l.barHeight)
	placement := opts.HumanReadableOr(barcodelogic.HumanReadableNone)
	font := 0.0
	if placement != barcodelogic.HumanReadableNone {
		font = opts.FontSizeOr(DefaultFontSize)
		height += font
	}
	d := barcodelogic.NewDimension(width, height,
		opts.QuietZoneOr(l.quietZone),
		opts.VerticalQuietZoneOr(l.verticalQuietZone))
	if placement == barcodelogic.HumanReadableTop {
		d.YOffset += font
	}
	return d
}

// barSpan returns the vertical offset from the top of a full bar and the
// height of a bar in the given state.
func (l layout) barSpan(state int, opts *barcodelogic.Options) (offset, height float64) {
	full := opts.BarHeightOr(l.barHeight)
	track := l.trackHeight
	if opts != nil && opts.TrackHeight > 0 {
		track = opts.TrackHeight
	}
	asc := l.ascenderHeight
	if opts != nil && opts.AscenderHeight > 0 {
		asc = opts.AscenderHeight
	}
	switch state {
	case barcodelogic.FourStateFull:
		return 0, full
	case barcodelogic.FourStateAscender:
		return 0, asc + track
	case barcodelogic.FourStateDescender:
		return full - asc - track, asc + track
	default:
		return (full - track) / 2, track
	}
}

// barWriter emits groups of four-state bars with a gap before every bar but
// the first.
type barWriter struct {
	h       barcodelogic.LogicHandler
	started bool
}

func (w *barWriter) group(group barcodelogic.BarGroup, label string, states ...int) {
	if w.started {
		w.h.AddBar(false, 1)
	}
	w.h.StartBarGroup(group, label)
	for i, s := range states {
		if i > 0 {
			w.h.AddBar(false, 1)
		}
		w.h.AddBar(true, s)
	}
	w.h.EndBarGroup()
	w.started = true
}

// StateLetter returns the conventional letter of a bar state: F, A, D or T.
func StateLetter(state int) byte {
	return "FADT"[state&3]
}
