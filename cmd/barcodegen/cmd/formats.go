package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ericlevine/barcodelogic"
)

func newFormatsCommand(a *app) *cobra.Command {
	var asJSON bool
	c := &cobra.Command{
		Use:   "formats",
		Short: "List the supported symbologies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			formats := barcodelogic.Formats()
			names := make([]string, len(formats))
			for i, f := range formats {
				names[i] = f.String()
			}
			out := cmd.OutOrStdout()
			if a.output(asJSON) == "json" {
				return writeJSON(out, names)
			}
			for _, name := range names {
				if _, err := fmt.Fprintln(out, name); err != nil {
					return err
				}
			}
			return nil
		},
	}
	c.Flags().BoolVar(&asJSON, "json", false, "print the formats as a JSON array")
	return c
}
