// Package datamatrix registers the Data Matrix ECC200 symbology.
package datamatrix

import (
	"github.com/ericlevine/barcodelogic"
	"github.com/ericlevine/barcodelogic/datamatrix/encoder"
)

// DefaultModuleWidth is one point (1/72 inch) in millimetres.
const DefaultModuleWidth = 25.4 / 72

// Symbology encodes Data Matrix symbols. Each row of the symbol is reported
// as alternating dark and light runs, starting with a dark one.
type Symbology struct{}

// Format implements barcodelogic.Symbology.
func (Symbology) Format() barcodelogic.Format { return barcodelogic.FormatDataMatrix }

// Validate implements barcodelogic.Symbology.
func (Symbology) Validate(msg string, opts *barcodelogic.Options) error {
	_, _, err := encoder.EncodeHighLevel(msg, encoderOptions(opts))
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
		for y := 0; y < sym.Matrix.Height(); y++ {
			h.StartRow()
			for i, w := range sym.Matrix.Runs(y) {
				if w > 0 {
					h.AddBar(i%2 == 0, w)
				}
			}
			h.EndRow()
		}
		h.EndBarcode()
	}
	return barcodelogic.NewEncodedMessage(barcodelogic.FormatDataMatrix, sym.Codewords, emit), nil
}

// BarWidth implements barcodelogic.Symbology.
func (Symbology) BarWidth(_ bool, width int, opts *barcodelogic.Options) float64 {
	return float64(width) * opts.ModuleWidthOr(DefaultModuleWidth)
}

// CalcDimensions implements barcodelogic.Symbology. The quiet zone defaults
// to one module on every side.
func (Symbology) CalcDimensions(enc *barcodelogic.EncodedMessage, opts *barcodelogic.Options) barcodelogic.Dimension {
	module := opts.ModuleWidthOr(DefaultModuleWidth)
	qz := opts.QuietZoneOr(module)
	return barcodelogic.NewDimension(
		float64(enc.Columns())*module,
		float64(enc.Rows())*module,
		qz,
		opts.VerticalQuietZoneOr(qz),
	)
}

func encoderOptions(opts *barcodelogic.Options) encoder.Options {
	if opts == nil {
		return encoder.Options{}
	}
	return encoder.Options{
		Shape:   opts.DataMatrixShape,
		MinSize: opts.DataMatrixMinSize,
		MaxSize: opts.DataMatrixMaxSize,
	}
}

// SymbolSize returns the size in modules of the symbol msg is encoded in.
func SymbolSize(msg string, opts *barcodelogic.Options) (barcodelogic.Size, error) {
	_, info, err := encoder.EncodeHighLevel(msg, encoderOptions(opts))
	if err != nil {
		return barcodelogic.Size{}, err
	}
	return barcodelogic.Size{Width: info.SymbolWidth(), Height: info.SymbolHeight()}, nil
}
