package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/achilleasa/scenedesc/scene"
	"github.com/achilleasa/scenedesc/scene/reader"
	"github.com/achilleasa/scenedesc/types"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Display a summary table of the entities in a scene.
func SceneInfo(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	if ctx.NArg() != 1 {
		return errors.New("missing scene file argument")
	}

	sc, err := reader.ReadScene(ctx.Args().First(), reader.Options{})
	if err != nil {
		return err
	}

	fmt.Fprint(ctx.App.Writer, sceneTable(sc))
	return nil
}

func sceneTable(sc *scene.Scene) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Collection", "Name", "Type", "Details"})

	var total int
	for _, c := range scene.AllCollections {
		for _, name := range sc.Names(c) {
			entity, _ := sc.Resolve(name, c)
			typ, details := describe(entity)
			table.Append([]string{string(c), name, typ, details})
			total++
		}
	}
	table.SetFooter([]string{"", "", "TOTAL", fmt.Sprintf("%d", total)})

	table.Render()
	return buf.String()
}

func fmtVec(v types.Vec3) string {
	return fmt.Sprintf("(%g, %g, %g)", v[0], v[1], v[2])
}

func describe(entity scene.Entity) (string, string) {
	switch e := entity.(type) {
	case scene.Camera:
		return e.Type.String(), fmt.Sprintf("%dx%d fov %g at %s", e.Width, e.Height, e.FOV, fmtVec(e.Transform.Position))
	case scene.View:
		return e.Integrator.String(), fmt.Sprintf("camera %s, %d spp, depth %d, %s renderer", e.Camera, e.Samples, e.Depth, e.Renderer)
	case scene.Object:
		var shape string
		switch s := e.Shape.(type) {
		case scene.Ball:
			shape = fmt.Sprintf("radius %g", s.Radius)
		case scene.Cuboid:
			shape = "extents " + fmtVec(s.Extents)
		}
		return e.Shape.Kind().String(), fmt.Sprintf("%s at %s, material %s", shape, fmtVec(e.Transform.Position), e.Material)
	case scene.Material:
		switch tex := e.Texture.(type) {
		case scene.Constant:
			return e.Type.String(), "colour " + fmtVec(tex.Colour)
		case scene.Image:
			return e.Type.String(), "image " + tex.Filename
		}
		return e.Type.String(), ""
	case scene.Light:
		details := []string{"colour " + fmtVec(e.Colour)}
		if e.Type == scene.PointLight {
			details = append(details, fmt.Sprintf("radius %g at %s", e.Radius, fmtVec(e.Position)))
		} else {
			details = append(details, "direction "+fmtVec(e.Direction))
		}
		return e.Type.String(), strings.Join(details, ", ")
	}
	return "", ""
}
