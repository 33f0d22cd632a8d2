package barcodelogic

// Dimension is the size of a symbol in millimetres.
type Dimension struct {
	// Width and Height cover the bars and the human-readable text.
	Width, Height float64

	// WidthPlusQuiet and HeightPlusQuiet add the quiet zones.
	WidthPlusQuiet, HeightPlusQuiet float64

	// XOffset and YOffset locate the first bar inside the quiet zone.
	XOffset, YOffset float64
}

// NewDimension builds a Dimension from the symbol size and the quiet zones on
// each side.
func NewDimension(width, height, quietZone, verticalQuietZone float64) Dimension {
	return Dimension{
		Width:           width,
		Height:          height,
		WidthPlusQuiet:  width + 2*quietZone,
		HeightPlusQuiet: height + 2*verticalQuietZone,
		XOffset:         quietZone,
		YOffset:         verticalQuietZone,
	}
}
