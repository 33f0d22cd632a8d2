package barcodelogic

import (
	"fmt"
	"strings"
)

// BarGroup identifies the logical role of a run of bars.
type BarGroup int

const (
	StartCharacter BarGroup = iota
	StopCharacter
	MessageCharacter
	UPCEANGuard
	UPCEANLead
	UPCEANGroup
	UPCEANCheck
	UPCEANSupplemental
)

var barGroupNames = [...]string{
	StartCharacter:     "start-character",
	StopCharacter:      "stop-character",
	MessageCharacter:   "message-character",
	UPCEANGuard:        "upc-ean-guard",
	UPCEANLead:         "upc-ean-lead",
	UPCEANGroup:        "upc-ean-group",
	UPCEANCheck:        "upc-ean-check",
	UPCEANSupplemental: "upc-ean-supplemental",
}

// String returns the name of the bar group.
func (g BarGroup) String() string {
	if g < 0 || int(g) >= len(barGroupNames) {
		return "unknown"
	}
	return barGroupNames[g]
}

// ParseBarGroup returns the bar group with the given name.
func ParseBarGroup(s string) (BarGroup, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range barGroupNames {
		if name == s {
			return BarGroup(i), nil
		}
	}
	return 0, fmt.Errorf("bar group %q: %w", s, ErrInvalidOption)
}

// Bar types of four-state symbologies. They are passed as the width argument
// of LogicHandler.AddBar when black is true.
const (
	FourStateFull = iota
	FourStateAscender
	FourStateDescender
	FourStateTracker
)

// LogicHandler receives the logical structure of a barcode: groups of bars
// and spaces with their widths in modules (or, for four-state symbologies,
// their bar types).
type LogicHandler interface {
	StartBarcode(msg, formattedMsg string)
	StartBarGroup(group BarGroup, label string)
	AddBar(black bool, width int)
	EndBarGroup()
	EndBarcode()
}

// TwoDimLogicHandler additionally receives row boundaries of stacked and
// matrix symbologies.
type TwoDimLogicHandler interface {
	LogicHandler
	StartRow()
	EndRow()
}
