package pdf417

import "github.com/ericlevine/barcodelogic"

func init() {
	barcodelogic.Register(Symbology{})
}
