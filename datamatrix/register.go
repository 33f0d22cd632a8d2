package datamatrix

import "github.com/ericlevine/barcodelogic"

func init() {
	barcodelogic.Register(Symbology{})
}
