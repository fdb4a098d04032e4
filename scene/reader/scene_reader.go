package reader

import (
	"fmt"
	"time"

	"github.com/achilleasa/scenedesc/asset"
	"github.com/achilleasa/scenedesc/log"
	"github.com/achilleasa/scenedesc/scene"
)

// A named entity node in document order.
type entry struct {
	name string
	n    *node
}

type sceneReader struct {
	logger log.Logger
	parse  frontend
	opts   Options

	cameras   map[string]scene.Camera
	views     map[string]scene.View
	objects   map[string]scene.Object
	materials map[string]scene.Material
	lights    map[string]scene.Light

	// Entity names per collection in document order.
	order map[scene.Collection][]string

	// Entity nodes, used for locating reference fields in link errors.
	nodes map[scene.Collection]map[string]*node
}

func newSceneReader(parse frontend, opts Options) *sceneReader {
	return &sceneReader{
		logger: log.New("scene reader"),
		parse:  parse,
		opts:   opts,
	}
}

// Discard any state left over from a previous Read.
func (r *sceneReader) reset() {
	r.cameras = make(map[string]scene.Camera)
	r.views = make(map[string]scene.View)
	r.objects = make(map[string]scene.Object)
	r.materials = make(map[string]scene.Material)
	r.lights = make(map[string]scene.Light)
	r.order = make(map[scene.Collection][]string)
	r.nodes = make(map[scene.Collection]map[string]*node)
}

// Read scene definition.
func (r *sceneReader) Read(res *asset.Resource) (*scene.Scene, error) {
	r.logger.Noticef(`parsing scene from "%s"`, res.Path())
	start := time.Now()
	r.reset()

	data, err := readAll(res)
	if err != nil {
		return nil, err
	}

	root, err := r.parse(data)
	if err != nil {
		return nil, err
	}

	sections, err := splitSections(root)
	if err != nil {
		return nil, err
	}

	for _, c := range scene.AllCollections {
		if err = r.decodeSection(c, sections[c]); err != nil {
			return nil, err
		}
		r.logger.Debugf("decoded %d %s", len(r.order[c]), c)
	}

	if err = r.link(); err != nil {
		return nil, err
	}

	if r.opts.CheckTextures {
		if err = r.checkTextures(res); err != nil {
			return nil, err
		}
	}

	r.logger.Noticef("parsed scene in %d ms", time.Since(start).Nanoseconds()/1e6)

	return scene.New(r.cameras, r.views, r.objects, r.materials, r.lights), nil
}

// Split the document root into its five sections, rejecting unknown or
// duplicate sections and reporting the first missing one.
func splitSections(root *node) (map[scene.Collection][]entry, error) {
	if root.kind != objectNode {
		return nil, &scene.ParseError{Line: root.line, Reason: "expected the document root to be an object; got " + root.describe()}
	}

	sectionNodes := make(map[scene.Collection]*node)
	for idx, key := range root.keys {
		c := scene.Collection(key)
		value := root.values[idx]
		if !c.Valid() {
			return nil, &scene.ParseError{Field: key, Line: value.line, Reason: "unknown section"}
		}
		if prev, exists := sectionNodes[c]; exists {
			return nil, &scene.ParseError{Collection: c, Line: value.line, Reason: fmt.Sprintf("duplicate section; first defined at line %d", prev.line)}
		}
		sectionNodes[c] = value
	}

	sections := make(map[scene.Collection][]entry, len(scene.AllCollections))
	for _, c := range scene.AllCollections {
		n, exists := sectionNodes[c]
		if !exists {
			return nil, &scene.ParseError{Collection: c, Reason: "missing required section"}
		}
		if n.kind != objectNode {
			return nil, &scene.ParseError{Collection: c, Line: n.line, Reason: "expected an object; got " + n.describe()}
		}

		seen := make(map[string]*node, len(n.keys))
		for idx, name := range n.keys {
			value := n.values[idx]
			if name == "" {
				return nil, &scene.ParseError{Collection: c, Line: value.line, Reason: "entity names must not be empty"}
			}
			if prev, exists := seen[name]; exists {
				return nil, &scene.ParseError{Collection: c, Entity: name, Line: value.line, Reason: fmt.Sprintf("duplicate name; first defined at line %d", prev.line)}
			}
			seen[name] = value
			sections[c] = append(sections[c], entry{name: name, n: value})
		}
	}

	return sections, nil
}

func (r *sceneReader) decodeSection(c scene.Collection, entries []entry) error {
	for _, e := range entries {
		var err error
		switch c {
		case scene.Cameras:
			r.cameras[e.name], err = decodeCamera(e.name, e.n)
		case scene.Views:
			r.views[e.name], err = decodeView(e.name, e.n)
		case scene.Objects:
			r.objects[e.name], err = decodeObject(e.name, e.n)
		case scene.Materials:
			r.materials[e.name], err = decodeMaterial(e.name, e.n)
		case scene.Lights:
			r.lights[e.name], err = decodeLight(e.name, e.n)
		}
		if err != nil {
			return err
		}

		r.order[c] = append(r.order[c], e.name)
		if r.nodes[c] == nil {
			r.nodes[c] = make(map[string]*node)
		}
		r.nodes[c][e.name] = e.n
	}
	return nil
}
