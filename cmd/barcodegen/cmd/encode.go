package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ericlevine/barcodelogic"
)

func newEncodeCommand(a *app) *cobra.Command {
	var (
		flags  optionFlags
		asJSON bool
	)
	c := &cobra.Command{
		Use:   "encode <format> <message>",
		Short: "Encode a message and print its bars",
		Long: `Encode a message and print the bar groups, bars and rows the symbology
produces. 2D symbols are drawn as a preview when stdout is a terminal.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, opts, err := a.options(cmd, args[0], &flags)
			if err != nil {
				return err
			}
			msg := args[1]
			enc, err := barcodelogic.Encode(format, msg, &opts)
			if err != nil {
				return err
			}
			sym, err := barcodelogic.Lookup(format)
			if err != nil {
				return err
			}
			dim := sym.CalcDimensions(enc, &opts)
			a.logger.Debug("encoded message",
				"symbology", format.String(),
				"length", len(msg),
				"codewords", len(enc.Codewords()),
				"width", dim.Width,
				"height", dim.Height)

			out := cmd.OutOrStdout()
			switch output := a.output(asJSON); {
			case output == "json":
				return writeJSON(out, newEncodedJSON(enc))
			case output == "preview", enc.Rows() > 0 && isTerminal(out):
				return writePreview(out, enc)
			default:
				return writeEvents(out, enc)
			}
		},
	}
	flags.register(c.Flags())
	c.Flags().BoolVar(&asJSON, "json", false, "print the encoded message as JSON")
	return c
}
