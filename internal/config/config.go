// Package config loads barcodegen settings from configuration files,
// environment variables and command-line flags, and turns them into
// barcodelogic.Options.
package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ericlevine/barcodelogic"
)

// Config represents the complete barcodegen configuration.
type Config struct {
	LogLevel  string `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
	LogFormat string `mapstructure:"log_format" yaml:"log_format" json:"log_format"`

	// Output selects how encoded messages are printed: text, json or preview.
	Output string `mapstructure:"output" yaml:"output" json:"output"`

	// Defaults apply to every symbology before its own section.
	Defaults SymbologyConfig `mapstructure:"defaults" yaml:"defaults" json:"defaults"`

	// Symbologies holds per-format settings keyed by format name, e.g.
	// "ean-13" or "royal_mail_cbc".
	Symbologies map[string]SymbologyConfig `mapstructure:"symbologies" yaml:"symbologies" json:"symbologies"`
}

// SymbologyConfig mirrors barcodelogic.Options with plain values. Zero
// values leave the corresponding option unset.
type SymbologyConfig struct {
	ModuleWidth       float64  `mapstructure:"module_width" yaml:"module_width" json:"module_width"`
	WideFactor        float64  `mapstructure:"wide_factor" yaml:"wide_factor" json:"wide_factor"`
	BarHeight         float64  `mapstructure:"bar_height" yaml:"bar_height" json:"bar_height"`
	QuietZone         *float64 `mapstructure:"quiet_zone" yaml:"quiet_zone" json:"quiet_zone"`
	VerticalQuietZone *float64 `mapstructure:"vertical_quiet_zone" yaml:"vertical_quiet_zone" json:"vertical_quiet_zone"`
	Checksum          string   `mapstructure:"checksum" yaml:"checksum" json:"checksum"`
	HumanReadable     string   `mapstructure:"human_readable" yaml:"human_readable" json:"human_readable"`
	FontSize          float64  `mapstructure:"font_size" yaml:"font_size" json:"font_size"`
	IntercharGapWidth float64  `mapstructure:"interchar_gap_width" yaml:"interchar_gap_width" json:"interchar_gap_width"`
	AscenderHeight    float64  `mapstructure:"ascender_height" yaml:"ascender_height" json:"ascender_height"`
	TrackHeight       float64  `mapstructure:"track_height" yaml:"track_height" json:"track_height"`

	Codesets         string `mapstructure:"codesets" yaml:"codesets" json:"codesets"`
	Template         string `mapstructure:"template" yaml:"template" json:"template"`
	Extended         bool   `mapstructure:"extended" yaml:"extended" json:"extended"`
	DisplayStartStop bool   `mapstructure:"display_start_stop" yaml:"display_start_stop" json:"display_start_stop"`
	DisplayChecksum  bool   `mapstructure:"display_checksum" yaml:"display_checksum" json:"display_checksum"`

	ErrorCorrectionLevel *int    `mapstructure:"error_correction_level" yaml:"error_correction_level" json:"error_correction_level"`
	MinRows              int     `mapstructure:"min_rows" yaml:"min_rows" json:"min_rows"`
	MaxRows              int     `mapstructure:"max_rows" yaml:"max_rows" json:"max_rows"`
	MinCols              int     `mapstructure:"min_cols" yaml:"min_cols" json:"min_cols"`
	MaxCols              int     `mapstructure:"max_cols" yaml:"max_cols" json:"max_cols"`
	WidthToHeightRatio   float64 `mapstructure:"width_to_height_ratio" yaml:"width_to_height_ratio" json:"width_to_height_ratio"`
	RowHeightFactor      float64 `mapstructure:"row_height_factor" yaml:"row_height_factor" json:"row_height_factor"`
	Compaction           string  `mapstructure:"compaction" yaml:"compaction" json:"compaction"`
	Compact              bool    `mapstructure:"compact" yaml:"compact" json:"compact"`

	Shape   string `mapstructure:"shape" yaml:"shape" json:"shape"`
	MinSize string `mapstructure:"min_size" yaml:"min_size" json:"min_size"`
	MaxSize string `mapstructure:"max_size" yaml:"max_size" json:"max_size"`
}

var (
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"text", "json"}
	validOutputs    = []string{"text", "json", "preview"}
)

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "text",
		Output:    "text",
	}
}

// Validate checks the global settings and every symbology section.
func (c *Config) Validate() error {
	if !slices.Contains(validLogLevels, c.LogLevel) {
		return fmt.Errorf("invalid log level %q (must be one of: %s): %w",
			c.LogLevel, strings.Join(validLogLevels, ", "), barcodelogic.ErrInvalidOption)
	}
	if !slices.Contains(validLogFormats, c.LogFormat) {
		return fmt.Errorf("invalid log format %q (must be one of: %s): %w",
			c.LogFormat, strings.Join(validLogFormats, ", "), barcodelogic.ErrInvalidOption)
	}
	if !slices.Contains(validOutputs, c.Output) {
		return fmt.Errorf("invalid output %q (must be one of: %s): %w",
			c.Output, strings.Join(validOutputs, ", "), barcodelogic.ErrInvalidOption)
	}
	var defaults barcodelogic.Options
	if err := c.Defaults.apply(&defaults); err != nil {
		return fmt.Errorf("defaults: %w", err)
	}
	for name := range c.Symbologies {
		f, err := barcodelogic.ParseFormat(name)
		if err != nil {
			return fmt.Errorf("symbologies: %w", err)
		}
		opts, err := c.Options(f)
		if err != nil {
			return err
		}
		if err := opts.Validate(); err != nil {
			return fmt.Errorf("symbologies.%s: %w", name, err)
		}
	}
	return nil
}

// Options returns the encoding options for format: the defaults section
// overlaid with the section of format, if any.
func (c *Config) Options(format barcodelogic.Format) (barcodelogic.Options, error) {
	var opts barcodelogic.Options
	if err := c.Defaults.apply(&opts); err != nil {
		return barcodelogic.Options{}, fmt.Errorf("defaults: %w", err)
	}
	for name, sc := range c.Symbologies {
		f, err := barcodelogic.ParseFormat(name)
		if err != nil || f != format {
			continue
		}
		if err := sc.apply(&opts); err != nil {
			return barcodelogic.Options{}, fmt.Errorf("symbologies.%s: %w", name, err)
		}
	}
	return opts, nil
}

// apply copies the non-zero settings of s into o.
func (s SymbologyConfig) apply(o *barcodelogic.Options) error {
	setFloat(&o.ModuleWidth, s.ModuleWidth)
	setFloat(&o.WideFactor, s.WideFactor)
	setFloat(&o.BarHeight, s.BarHeight)
	setFloat(&o.FontSize, s.FontSize)
	setFloat(&o.IntercharGapWidth, s.IntercharGapWidth)
	setFloat(&o.AscenderHeight, s.AscenderHeight)
	setFloat(&o.TrackHeight, s.TrackHeight)
	setFloat(&o.PDF417WidthToHeightRatio, s.WidthToHeightRatio)
	setFloat(&o.PDF417RowHeightFactor, s.RowHeightFactor)
	if s.QuietZone != nil {
		o.QuietZone = s.QuietZone
	}
	if s.VerticalQuietZone != nil {
		o.VerticalQuietZone = s.VerticalQuietZone
	}
	if s.ErrorCorrectionLevel != nil {
		o.PDF417ErrorCorrectionLevel = s.ErrorCorrectionLevel
	}
	if s.Template != "" {
		o.EAN128Template = s.Template
	}
	o.Code39Extended = o.Code39Extended || s.Extended
	o.Code39DisplayStartStop = o.Code39DisplayStartStop || s.DisplayStartStop
	o.Code39DisplayChecksum = o.Code39DisplayChecksum || s.DisplayChecksum
	o.PDF417Compact = o.PDF417Compact || s.Compact

	var err error
	if s.Checksum != "" {
		if o.Checksum, err = barcodelogic.ParseChecksumMode(s.Checksum); err != nil {
			return err
		}
	}
	if s.HumanReadable != "" {
		if o.HumanReadable, err = barcodelogic.ParseHumanReadablePlacement(s.HumanReadable); err != nil {
			return err
		}
	}
	if s.Codesets != "" {
		if o.Code128Codesets, err = barcodelogic.ParseCodeset(s.Codesets); err != nil {
			return err
		}
	}
	if s.Compaction != "" {
		if o.PDF417Compaction, err = barcodelogic.ParsePDF417Compaction(s.Compaction); err != nil {
			return err
		}
	}
	if s.Shape != "" {
		if o.DataMatrixShape, err = barcodelogic.ParseSymbolShape(s.Shape); err != nil {
			return err
		}
	}
	if s.MinSize != "" {
		sz, err := barcodelogic.ParseSize(s.MinSize)
		if err != nil {
			return err
		}
		o.DataMatrixMinSize = &sz
	}
	if s.MaxSize != "" {
		sz, err := barcodelogic.ParseSize(s.MaxSize)
		if err != nil {
			return err
		}
		o.DataMatrixMaxSize = &sz
	}
	if s.MinRows != 0 || s.MaxRows != 0 || s.MinCols != 0 || s.MaxCols != 0 {
		o.PDF417Dimensions = &barcodelogic.PDF417DimensionConfig{
			MinRows: s.MinRows, MaxRows: s.MaxRows,
			MinCols: s.MinCols, MaxCols: s.MaxCols,
		}
	}
	return nil
}

func setFloat(dst *float64, v float64) {
	if v != 0 {
		*dst = v
	}
}
