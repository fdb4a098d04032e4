package cmd

import (
	"errors"

	"github.com/achilleasa/scenedesc/scene/reader"
	"github.com/achilleasa/scenedesc/scene/writer"
	"github.com/urfave/cli"
)

// Convert a scene to the format implied by the output file extension.
func ConvertScene(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	if ctx.NArg() != 2 {
		return errors.New("expected a scene file and an output file argument")
	}

	// Fail early before parsing the input
	outFile := ctx.Args().Get(1)
	if _, err := reader.FormatFromPath(outFile); err != nil {
		return err
	}

	sc, err := reader.ReadScene(ctx.Args().First(), reader.Options{})
	if err != nil {
		return err
	}

	return writer.WriteScene(sc, outFile)
}
