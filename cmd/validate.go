package cmd

import (
	"errors"
	"fmt"

	"github.com/achilleasa/scenedesc/scene/reader"
	"github.com/urfave/cli"
)

// Validate the scene files passed as arguments.
func ValidateScenes(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	if ctx.NArg() == 0 {
		return errors.New("missing scene file argument")
	}

	opts := reader.Options{
		CheckTextures: ctx.Bool("check-textures"),
	}

	var failed int
	for _, sceneFile := range ctx.Args() {
		if _, err := reader.ReadScene(sceneFile, opts); err != nil {
			logger.Errorf("%s: %s", sceneFile, err.Error())
			failed++
			continue
		}
		fmt.Fprintf(ctx.App.Writer, "%s: ok\n", sceneFile)
	}

	if failed != 0 {
		return fmt.Errorf("%d of %d scene file(s) failed validation", failed, ctx.NArg())
	}
	return nil
}
