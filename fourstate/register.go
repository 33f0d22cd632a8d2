package fourstate

import "github.com/ericlevine/barcodelogic"

func init() {
	barcodelogic.Register(RoyalMailCBC{})
	barcodelogic.Register(KIX{})
	barcodelogic.Register(USPSIntelligentMail{})
}
