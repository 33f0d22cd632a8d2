package main

import (
	"fmt"
	"os"

	"github.com/ericlevine/barcodelogic/cmd/barcodegen/cmd"
)

func main() {
	if err := cmd.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
