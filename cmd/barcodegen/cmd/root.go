// Package cmd implements the barcodegen command line.
package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ericlevine/barcodelogic"
	"github.com/ericlevine/barcodelogic/internal/config"

	// Register every symbology.
	_ "github.com/ericlevine/barcodelogic/datamatrix"
	_ "github.com/ericlevine/barcodelogic/fourstate"
	_ "github.com/ericlevine/barcodelogic/oned"
	_ "github.com/ericlevine/barcodelogic/pdf417"
)

// app holds the state shared by the subcommands of one invocation.
type app struct {
	loader  *config.Loader
	cfg     *config.Config
	cfgFile string
	logger  *slog.Logger
}

// NewRootCommand builds the barcodegen command tree.
func NewRootCommand() *cobra.Command {
	a := &app{loader: config.NewLoader()}

	root := &cobra.Command{
		Use:   "barcodegen",
		Short: "Encode messages into the logical structure of barcodes",
		Long: `barcodegen encodes messages with linear, four-state and 2D barcode
symbologies and prints the resulting bars, rows and groups.

Examples:
  barcodegen formats
  barcodegen encode ean-13 400638133393
  barcodegen encode data-matrix "Hello" --output preview
  barcodegen dimensions royal-mail-cbc SN34RD1A --json`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is barcodegen.yaml in ., $HOME/.config/barcodegen, /etc/barcodegen)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "text", "log format (text, json)")
	flags.StringP("output", "o", "text", "output (text, json, preview)")

	v := a.loader.Viper()
	for key, name := range map[string]string{
		"log_level":  "log-level",
		"log_format": "log-format",
		"output":     "output",
	} {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}

	root.AddCommand(newEncodeCommand(a), newDimensionsCommand(a), newFormatsCommand(a))
	return root
}

// setup loads the configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := a.loader.LoadWithFile(a.cfgFile)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	a.cfg = cfg

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return fmt.Errorf("log level %q: %w", cfg.LogLevel, barcodelogic.ErrInvalidOption)
	}
	hopts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(cmd.ErrOrStderr(), hopts)
	} else {
		h = slog.NewTextHandler(cmd.ErrOrStderr(), hopts)
	}
	a.logger = slog.New(h)
	a.logger.Debug("configuration loaded", "file", a.loader.Viper().ConfigFileUsed(), "output", cfg.Output)
	return nil
}

// optionFlags are the encoding options that can be given on the command
// line. They override the configuration file.
type optionFlags struct {
	checksum      string
	humanReadable string
	moduleWidth   float64
	barHeight     float64
	quietZone     float64
}

func (f *optionFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.checksum, "checksum", "", "checksum mode (auto, ignore, add, check)")
	fs.StringVar(&f.humanReadable, "human-readable", "", "human-readable placement (default, none, top, bottom)")
	fs.Float64Var(&f.moduleWidth, "module-width", 0, "module width in millimetres")
	fs.Float64Var(&f.barHeight, "bar-height", 0, "bar height in millimetres")
	fs.Float64Var(&f.quietZone, "quiet-zone", 0, "horizontal quiet zone in millimetres")
}

// options resolves the format name and merges the configured options for it
// with the flags set on cmd.
func (a *app) options(cmd *cobra.Command, name string, f *optionFlags) (barcodelogic.Format, barcodelogic.Options, error) {
	format, err := barcodelogic.ParseFormat(name)
	if err != nil {
		return 0, barcodelogic.Options{}, err
	}
	opts, err := a.cfg.Options(format)
	if err != nil {
		return 0, barcodelogic.Options{}, err
	}
	fs := cmd.Flags()
	if fs.Changed("checksum") {
		if opts.Checksum, err = barcodelogic.ParseChecksumMode(f.checksum); err != nil {
			return 0, barcodelogic.Options{}, err
		}
	}
	if fs.Changed("human-readable") {
		if opts.HumanReadable, err = barcodelogic.ParseHumanReadablePlacement(f.humanReadable); err != nil {
			return 0, barcodelogic.Options{}, err
		}
	}
	if fs.Changed("module-width") {
		opts.ModuleWidth = f.moduleWidth
	}
	if fs.Changed("bar-height") {
		opts.BarHeight = f.barHeight
	}
	if fs.Changed("quiet-zone") {
		qz := f.quietZone
		opts.QuietZone = &qz
	}
	return format, opts, opts.Validate()
}

// output returns the configured output, or json when asJSON is set.
func (a *app) output(asJSON bool) string {
	if asJSON {
		return "json"
	}
	return a.cfg.Output
}
