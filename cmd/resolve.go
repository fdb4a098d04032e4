package cmd

import (
	"errors"
	"fmt"

	"github.com/achilleasa/scenedesc/scene"
	"github.com/achilleasa/scenedesc/scene/reader"
	"github.com/achilleasa/scenedesc/scene/writer"
	"github.com/urfave/cli"
)

// Print a single entity from a scene.
func ResolveEntity(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	if ctx.NArg() != 2 {
		return errors.New("expected a scene file and an entity name argument")
	}

	var format reader.Format
	switch ctx.String("format") {
	case "json":
		format = reader.JSON
	case "yaml":
		format = reader.YAML
	default:
		return fmt.Errorf("unsupported output format %q", ctx.String("format"))
	}

	sc, err := reader.ReadScene(ctx.Args().First(), reader.Options{})
	if err != nil {
		return err
	}

	entity, err := sc.Resolve(ctx.Args().Get(1), scene.Collection(ctx.String("collection")))
	if err != nil {
		return err
	}

	data, err := writer.EncodeEntity(entity, format)
	if err != nil {
		return err
	}

	_, err = ctx.App.Writer.Write(data)
	return err
}
