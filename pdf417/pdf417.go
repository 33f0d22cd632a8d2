// Package pdf417 registers the PDF417 symbology.
package pdf417

import (
	"strconv"

	"github.com/ericlevine/barcodelogic"
	"github.com/ericlevine/barcodelogic/pdf417/encoder"
)

// DefaultModuleWidth is one point (1/72 inch) in millimetres.
const DefaultModuleWidth = 25.4 / 72

// Symbology encodes PDF417 symbols. Every row is reported between StartRow
// and EndRow as a start character, the row indicators and data codewords as
// message characters labelled with their value, and a stop character.
type Symbology struct{}

// Format implements barcodelogic.Symbology.
func (Symbology) Format() barcodelogic.Format { return barcodelogic.FormatPDF417 }

// Validate implements barcodelogic.Symbology.
func (Symbology) Validate(msg string, opts *barcodelogic.Options) error {
	_, err := encoder.Encode(msg, encoderOptions(opts))
	return err
}

// Encode implements barcodelogic.Symbology.
func (Symbology) Encode(msg string, opts *barcodelogic.Options) (*barcodelogic.EncodedMessage, error) {
	sym, err := encoder.Encode(msg, encoderOptions(opts))
	if err != nil {
		return nil, err
	}
	emit := func(h barcodelogic.TwoDimLogicHandler) {
		h.StartBarcode(msg, msg)
		for y := 0; y < sym.Rows; y++ {
			row := sym.Row(y)
			h.StartRow()
			addGroup(h, barcodelogic.StartCharacter, "", encoder.Widths(encoder.StartPattern()))
			addCodeword(h, row.Cluster, row.LeftIndicator)
			for _, cw := range row.Codewords {
				addCodeword(h, row.Cluster, cw)
			}
			if !sym.Compact {
				addCodeword(h, row.Cluster, row.RightIndicator)
			}
			addGroup(h, barcodelogic.StopCharacter, "", encoder.Widths(encoder.StopPattern(sym.Compact)))
			h.EndRow()
		}
		h.EndBarcode()
	}
	return barcodelogic.NewEncodedMessage(barcodelogic.FormatPDF417, sym.Codewords, emit), nil
}

func addCodeword(h barcodelogic.LogicHandler, cluster, value int) {
	addGroup(h, barcodelogic.MessageCharacter, strconv.Itoa(value), encoder.Widths(encoder.Pattern(cluster, value), 17))
}

func addGroup(h barcodelogic.LogicHandler, group barcodelogic.BarGroup, label string, widths []int) {
	h.StartBarGroup(group, label)
	for i, w := range widths {
		h.AddBar(i%2 == 0, w)
	}
	h.EndBarGroup()
}

// BarWidth implements barcodelogic.Symbology.
func (Symbology) BarWidth(_ bool, width int, opts *barcodelogic.Options) float64 {
	return float64(width) * opts.ModuleWidthOr(DefaultModuleWidth)
}

// CalcDimensions implements barcodelogic.Symbology. The quiet zone defaults
// to two modules on every side.
func (Symbology) CalcDimensions(enc *barcodelogic.EncodedMessage, opts *barcodelogic.Options) barcodelogic.Dimension {
	module := opts.ModuleWidthOr(DefaultModuleWidth)
	rowHeight := module * rowHeightFactor(opts)
	qz := opts.QuietZoneOr(2 * module)
	return barcodelogic.NewDimension(
		float64(enc.Columns())*module,
		float64(enc.Rows())*rowHeight,
		qz,
		opts.VerticalQuietZoneOr(qz),
	)
}

func rowHeightFactor(opts *barcodelogic.Options) float64 {
	if opts == nil || opts.PDF417RowHeightFactor == 0 {
		return encoder.DefaultRowHeightFactor
	}
	return opts.PDF417RowHeightFactor
}

func encoderOptions(opts *barcodelogic.Options) encoder.Options {
	if opts == nil {
		return encoder.Options{}
	}
	eo := encoder.Options{
		Compaction:           opts.PDF417Compaction,
		ErrorCorrectionLevel: opts.PDF417ErrorCorrectionLevel,
		Dimensions: encoder.DimensionOptions{
			WidthToHeightRatio: opts.PDF417WidthToHeightRatio,
			RowHeightFactor:    opts.PDF417RowHeightFactor,
			Compact:            opts.PDF417Compact,
		},
	}
	if d := opts.PDF417Dimensions; d != nil {
		eo.Dimensions.MinRows, eo.Dimensions.MaxRows = d.MinRows, d.MaxRows
		eo.Dimensions.MinCols, eo.Dimensions.MaxCols = d.MinCols, d.MaxCols
	}
	return eo
}
