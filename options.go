package barcodelogic

import (
	"fmt"
	"strings"
)

// Options configures encoding and dimension calculation. The zero value of
// every field selects the symbology's default.
type Options struct {
	// ModuleWidth is the width of the narrowest bar, in millimetres.
	ModuleWidth float64

	// WideFactor is the ratio of wide to narrow bars for Codabar, Code 39
	// and Interleaved 2 of 5.
	WideFactor float64

	// BarHeight is the height of the bars, in millimetres. For four-state
	// symbologies it is the height of a full bar.
	BarHeight float64

	// QuietZone is the horizontal quiet zone on each side, in millimetres.
	QuietZone *float64

	// VerticalQuietZone is the quiet zone above and below the symbol.
	VerticalQuietZone *float64

	// Checksum selects how check characters are handled.
	Checksum ChecksumMode

	// HumanReadable places the human-readable message.
	HumanReadable HumanReadablePlacement

	// FontSize is the height reserved for the human-readable message.
	FontSize float64

	// IntercharGapWidth is the gap between four-state bars, in millimetres.
	IntercharGapWidth float64

	// Code128Codesets restricts the Code 128 codesets the encoder may use.
	Code128Codesets Codeset

	// EAN128Template lists the application identifiers a message must
	// follow, e.g. "(01)n13+cd(10)an1-20".
	EAN128Template string

	Code39Extended         bool
	Code39DisplayStartStop bool
	Code39DisplayChecksum  bool

	// PDF417ErrorCorrectionLevel forces an error correction level (0-8).
	PDF417ErrorCorrectionLevel *int

	// PDF417Dimensions bounds the number of rows and data columns.
	PDF417Dimensions *PDF417DimensionConfig

	// PDF417WidthToHeightRatio is the preferred aspect ratio of the symbol.
	PDF417WidthToHeightRatio float64

	// PDF417RowHeightFactor is the row height in multiples of ModuleWidth.
	PDF417RowHeightFactor float64

	// PDF417Compaction forces a compaction mode.
	PDF417Compaction PDF417Compaction

	// PDF417Compact selects compact (truncated) PDF417.
	PDF417Compact bool

	// DataMatrixShape restricts the Data Matrix symbol shape.
	DataMatrixShape SymbolShape

	// DataMatrixMinSize and DataMatrixMaxSize bound the symbol size in modules.
	DataMatrixMinSize *Size
	DataMatrixMaxSize *Size

	// AscenderHeight and TrackHeight size four-state bars, in millimetres.
	AscenderHeight float64
	TrackHeight    float64
}

// PDF417DimensionConfig specifies min/max rows/cols for PDF417.
type PDF417DimensionConfig struct {
	MinRows, MaxRows int
	MinCols, MaxCols int
}

// Size is a symbol size in modules.
type Size struct {
	Width, Height int
}

func (s Size) String() string { return fmt.Sprintf("%dx%d", s.Width, s.Height) }

// ParseSize parses a size written as "WxH".
func ParseSize(s string) (Size, error) {
	var sz Size
	if _, err := fmt.Sscanf(strings.ToLower(strings.TrimSpace(s)), "%dx%d", &sz.Width, &sz.Height); err != nil {
		return Size{}, fmt.Errorf("size %q: %w", s, ErrInvalidOption)
	}
	if sz.Width <= 0 || sz.Height <= 0 {
		return Size{}, fmt.Errorf("size %q: %w", s, ErrInvalidOption)
	}
	return sz, nil
}

// Validate reports option values that no symbology accepts.
func (o *Options) Validate() error {
	if o == nil {
		return nil
	}
	for name, v := range map[string]float64{
		"module width":        o.ModuleWidth,
		"wide factor":         o.WideFactor,
		"bar height":          o.BarHeight,
		"font size":           o.FontSize,
		"interchar gap width": o.IntercharGapWidth,
		"row height factor":   o.PDF417RowHeightFactor,
		"width/height ratio":  o.PDF417WidthToHeightRatio,
		"ascender height":     o.AscenderHeight,
		"track height":        o.TrackHeight,
	} {
		if v < 0 {
			return fmt.Errorf("%s %v: %w", name, v, ErrInvalidOption)
		}
	}
	if o.WideFactor != 0 && o.WideFactor < 2 {
		return fmt.Errorf("wide factor %v must be at least 2: %w", o.WideFactor, ErrInvalidOption)
	}
	if o.QuietZone != nil && *o.QuietZone < 0 {
		return fmt.Errorf("quiet zone %v: %w", *o.QuietZone, ErrInvalidOption)
	}
	if o.VerticalQuietZone != nil && *o.VerticalQuietZone < 0 {
		return fmt.Errorf("vertical quiet zone %v: %w", *o.VerticalQuietZone, ErrInvalidOption)
	}
	if l := o.PDF417ErrorCorrectionLevel; l != nil && (*l < 0 || *l > 8) {
		return fmt.Errorf("PDF417 error correction level %d: %w", *l, ErrInvalidOption)
	}
	if d := o.PDF417Dimensions; d != nil {
		if d.MinRows > d.MaxRows || d.MinCols > d.MaxCols || d.MinRows < 0 || d.MinCols < 0 {
			return fmt.Errorf("PDF417 dimensions %+v: %w", *d, ErrInvalidOption)
		}
	}
	if o.Code128Codesets&^CodesetAll != 0 {
		return fmt.Errorf("codesets %d: %w", o.Code128Codesets, ErrInvalidOption)
	}
	return nil
}

// ModuleWidthOr returns the configured module width or def.
func (o *Options) ModuleWidthOr(def float64) float64 {
	if o == nil || o.ModuleWidth == 0 {
		return def
	}
	return o.ModuleWidth
}

// WideFactorOr returns the configured wide factor or def.
func (o *Options) WideFactorOr(def float64) float64 {
	if o == nil || o.WideFactor == 0 {
		return def
	}
	return o.WideFactor
}

// BarHeightOr returns the configured bar height or def.
func (o *Options) BarHeightOr(def float64) float64 {
	if o == nil || o.BarHeight == 0 {
		return def
	}
	return o.BarHeight
}

// QuietZoneOr returns the configured horizontal quiet zone or def.
func (o *Options) QuietZoneOr(def float64) float64 {
	if o == nil || o.QuietZone == nil {
		return def
	}
	return *o.QuietZone
}

// VerticalQuietZoneOr returns the configured vertical quiet zone or def.
func (o *Options) VerticalQuietZoneOr(def float64) float64 {
	if o == nil || o.VerticalQuietZone == nil {
		return def
	}
	return *o.VerticalQuietZone
}

// FontSizeOr returns the configured font size or def.
func (o *Options) FontSizeOr(def float64) float64 {
	if o == nil || o.FontSize == 0 {
		return def
	}
	return o.FontSize
}

// IntercharGapWidthOr returns the configured gap width or def.
func (o *Options) IntercharGapWidthOr(def float64) float64 {
	if o == nil || o.IntercharGapWidth == 0 {
		return def
	}
	return o.IntercharGapWidth
}

// HumanReadableOr resolves HumanReadableDefault to def.
func (o *Options) HumanReadableOr(def HumanReadablePlacement) HumanReadablePlacement {
	if o == nil || o.HumanReadable == HumanReadableDefault {
		return def
	}
	return o.HumanReadable
}

// ChecksumMode returns the configured checksum mode, ChecksumAuto for nil.
func (o *Options) ChecksumMode() ChecksumMode {
	if o == nil {
		return ChecksumAuto
	}
	return o.Checksum
}

// ChecksumMode selects how check characters are handled.
type ChecksumMode int

const (
	// ChecksumAuto adds or checks depending on the message length, or follows
	// the symbology's default.
	ChecksumAuto ChecksumMode = iota
	// ChecksumIgnore encodes the message as given.
	ChecksumIgnore
	// ChecksumAdd computes the check character and appends it.
	ChecksumAdd
	// ChecksumCheck verifies the check character carried by the message.
	ChecksumCheck
)

var checksumModeNames = [...]string{"auto", "ignore", "add", "check"}

func (m ChecksumMode) String() string {
	if m < 0 || int(m) >= len(checksumModeNames) {
		return "unknown"
	}
	return checksumModeNames[m]
}

// ParseChecksumMode parses "auto", "ignore", "add" or "check".
func ParseChecksumMode(s string) (ChecksumMode, error) {
	i, err := parseName(s, checksumModeNames[:])
	if err != nil {
		return 0, fmt.Errorf("checksum mode: %w", err)
	}
	return ChecksumMode(i), nil
}

// HumanReadablePlacement places the human-readable message.
type HumanReadablePlacement int

const (
	HumanReadableDefault HumanReadablePlacement = iota
	HumanReadableNone
	HumanReadableTop
	HumanReadableBottom
)

var placementNames = [...]string{"default", "none", "top", "bottom"}

func (p HumanReadablePlacement) String() string {
	if p < 0 || int(p) >= len(placementNames) {
		return "unknown"
	}
	return placementNames[p]
}

// ParseHumanReadablePlacement parses "default", "none", "top" or "bottom".
func ParseHumanReadablePlacement(s string) (HumanReadablePlacement, error) {
	i, err := parseName(s, placementNames[:])
	if err != nil {
		return 0, fmt.Errorf("human-readable placement: %w", err)
	}
	return HumanReadablePlacement(i), nil
}

// SymbolShape restricts the shape of Data Matrix symbols.
type SymbolShape int

const (
	ShapeAuto SymbolShape = iota
	ShapeSquare
	ShapeRectangle
)

var shapeNames = [...]string{"auto", "square", "rectangle"}

func (s SymbolShape) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return "unknown"
	}
	return shapeNames[s]
}

// ParseSymbolShape parses "auto", "square" or "rectangle".
func ParseSymbolShape(s string) (SymbolShape, error) {
	i, err := parseName(s, shapeNames[:])
	if err != nil {
		return 0, fmt.Errorf("symbol shape: %w", err)
	}
	return SymbolShape(i), nil
}

// PDF417Compaction forces a PDF417 compaction mode.
type PDF417Compaction int

const (
	CompactionAuto PDF417Compaction = iota
	CompactionText
	CompactionByte
	CompactionNumeric
)

var compactionNames = [...]string{"auto", "text", "byte", "numeric"}

func (c PDF417Compaction) String() string {
	if c < 0 || int(c) >= len(compactionNames) {
		return "unknown"
	}
	return compactionNames[c]
}

// ParsePDF417Compaction parses "auto", "text", "byte" or "numeric".
func ParsePDF417Compaction(s string) (PDF417Compaction, error) {
	i, err := parseName(s, compactionNames[:])
	if err != nil {
		return 0, fmt.Errorf("compaction: %w", err)
	}
	return PDF417Compaction(i), nil
}

// Codeset is a set of Code 128 codesets.
type Codeset int

const (
	CodesetA Codeset = 1 << iota
	CodesetB
	CodesetC

	CodesetAll = CodesetA | CodesetB | CodesetC
)

// Has reports whether every codeset in c2 is in c. The empty set means all.
func (c Codeset) Has(c2 Codeset) bool {
	if c == 0 {
		c = CodesetAll
	}
	return c&c2 == c2
}

func (c Codeset) String() string {
	if c == 0 {
		c = CodesetAll
	}
	var sb strings.Builder
	for i, name := range "ABC" {
		if c&(1<<i) != 0 {
			sb.WriteRune(name)
		}
	}
	return sb.String()
}

// ParseCodeset parses a combination of the letters A, B and C, or "all".
func ParseCodeset(s string) (Codeset, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "ALL" || s == "" {
		return CodesetAll, nil
	}
	var c Codeset
	for _, r := range s {
		switch r {
		case 'A':
			c |= CodesetA
		case 'B':
			c |= CodesetB
		case 'C':
			c |= CodesetC
		default:
			return 0, fmt.Errorf("codeset %q: %w", s, ErrInvalidOption)
		}
	}
	return c, nil
}

func parseName(s string, names []string) (int, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, name := range names {
		if name == key {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrInvalidOption)
}
