package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ericlevine/barcodelogic"
)

type dimensionJSON struct {
	Format          string  `json:"format"`
	Width           float64 `json:"width"`
	Height          float64 `json:"height"`
	WidthPlusQuiet  float64 `json:"width_plus_quiet"`
	HeightPlusQuiet float64 `json:"height_plus_quiet"`
	XOffset         float64 `json:"x_offset"`
	YOffset         float64 `json:"y_offset"`
}

func newDimensionsCommand(a *app) *cobra.Command {
	var (
		flags  optionFlags
		asJSON bool
	)
	c := &cobra.Command{
		Use:   "dimensions <format> <message>",
		Short: "Print the size of an encoded message in millimetres",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, opts, err := a.options(cmd, args[0], &flags)
			if err != nil {
				return err
			}
			dim, err := barcodelogic.CalcDimensions(format, args[1], &opts)
			if err != nil {
				return err
			}
			a.logger.Debug("calculated dimensions",
				"symbology", format.String(),
				"length", len(args[1]),
				"width", dim.Width,
				"height", dim.Height)

			out := cmd.OutOrStdout()
			if a.output(asJSON) == "json" {
				return writeJSON(out, dimensionJSON{
					Format:          format.String(),
					Width:           dim.Width,
					Height:          dim.Height,
					WidthPlusQuiet:  dim.WidthPlusQuiet,
					HeightPlusQuiet: dim.HeightPlusQuiet,
					XOffset:         dim.XOffset,
					YOffset:         dim.YOffset,
				})
			}
			_, err = fmt.Fprintf(out, "width: %.3f\nheight: %.3f\nwidth_plus_quiet: %.3f\nheight_plus_quiet: %.3f\nx_offset: %.3f\ny_offset: %.3f\n",
				dim.Width, dim.Height, dim.WidthPlusQuiet, dim.HeightPlusQuiet, dim.XOffset, dim.YOffset)
			return err
		},
	}
	flags.register(c.Flags())
	c.Flags().BoolVar(&asJSON, "json", false, "print the dimensions as JSON")
	return c
}
