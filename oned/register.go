package oned

import "github.com/ericlevine/barcodelogic"

func init() {
	barcodelogic.Register(UPCA{})
	barcodelogic.Register(UPCE{})
	barcodelogic.Register(EAN13{})
	barcodelogic.Register(EAN8{})
	barcodelogic.Register(Code128{})
	barcodelogic.Register(EAN128{})
	barcodelogic.Register(Codabar{})
	barcodelogic.Register(Code39{})
	barcodelogic.Register(ITF{})
	barcodelogic.Register(ITF14{})
}
