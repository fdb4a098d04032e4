package reader

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/achilleasa/scenedesc/asset"
	"github.com/achilleasa/scenedesc/scene"
)

// The document formats understood by the scene readers.
type Format uint8

const (
	JSON Format = iota
	YAML
)

func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	default:
		return "json"
	}
}

// Detect the document format from a file extension.
func FormatFromPath(path string) (Format, error) {
	return formatFromExt(strings.ToLower(filepath.Ext(path)))
}

// Detect the document format of a resource. Query strings and fragments of
// remote resources are ignored.
func FormatFromResource(res *asset.Resource) (Format, error) {
	return formatFromExt(res.Ext())
}

func formatFromExt(ext string) (Format, error) {
	switch ext {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return JSON, fmt.Errorf("readScene: unsupported file format %q", ext)
}

// Options controls optional checks performed while loading a scene.
type Options struct {
	// Verify that the files referenced by image textures exist. Paths are
	// resolved relative to the scene resource. Images are never read.
	CheckTextures bool
}

// The Reader interface is implemented by all scene readers.
type Reader interface {
	// Read scene definition from a resource.
	Read(*asset.Resource) (*scene.Scene, error)
}

// Create a reader for the given document format.
func NewReader(format Format, opts Options) Reader {
	parse := parseJSON
	if format == YAML {
		parse = parseYAML
	}
	return newSceneReader(parse, opts)
}

// Load a scene from an in-memory document. Relative texture paths are
// resolved against the working directory when texture checks are enabled.
func Load(data []byte, format Format, opts Options) (*scene.Scene, error) {
	return NewReader(format, opts).Read(asset.NewResourceFromStream("embedded", bytes.NewReader(data)))
}

// Read scene from a local file or http/https URL. The format is selected
// based on the file extension.
func ReadScene(path string, opts Options) (*scene.Scene, error) {
	res, err := asset.NewResource(path, nil)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	format, err := FormatFromResource(res)
	if err != nil {
		return nil, err
	}

	return NewReader(format, opts).Read(res)
}

// Read the full contents of a resource.
func readAll(res *asset.Resource) ([]byte, error) {
	data, err := io.ReadAll(res)
	if err != nil {
		return nil, fmt.Errorf("readScene: could not read %s: %w", res.Path(), err)
	}
	return data, nil
}
