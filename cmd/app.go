package cmd

import (
	"github.com/urfave/cli"
)

// Build the scenedesc command-line application.
func NewApp() *cli.App {
	// The default "version, v" flag clashes with the global -v flag
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "scenedesc"
	app.Usage = "load, validate and convert path tracer scene descriptions"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:  "log-level",
			Usage: "set the log level explicitly (debug, info, notice, warning or error)",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "validate",
			Usage: "validate one or more scene descriptions",
			Description: `
Load each scene file and report the first error encountered. Scene files may be
local paths or http(s) URLs; the format is selected by the file extension
(.json, .yaml or .yml).`,
			ArgsUsage: "scene_file1.json scene_file2.yaml ...",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "check-textures",
					Usage: "verify that image texture files exist relative to the scene file",
				},
			},
			Action: ValidateScenes,
		},
		{
			Name:      "info",
			Usage:     "print a summary of the entities defined by a scene",
			ArgsUsage: "scene_file",
			Action:    SceneInfo,
		},
		{
			Name:      "resolve",
			Usage:     "print a single named entity",
			ArgsUsage: "scene_file name",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "collection, c",
					Value: "objects",
					Usage: "the collection to search (cameras, views, objects, materials or lights)",
				},
				cli.StringFlag{
					Name:  "format, f",
					Value: "yaml",
					Usage: "output format (json or yaml)",
				},
			},
			Action: ResolveEntity,
		},
		{
			Name:  "convert",
			Usage: "convert a scene description to another format",
			Description: `
Load a scene and write it back using the format implied by the output file
extension. Entities are written in name order.`,
			ArgsUsage: "scene_file out_file",
			Action:    ConvertScene,
		},
	}

	return app
}
