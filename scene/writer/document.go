package writer

import (
	"github.com/achilleasa/scenedesc/scene"
	"github.com/achilleasa/scenedesc/types"
)

// Serialised entity records. Field order matches the order in which fields
// are emitted.

type transformDoc struct {
	Position []float64 `json:"position" yaml:"position,flow"`
	Rotation []float64 `json:"rotation,omitempty" yaml:"rotation,flow,omitempty"`
	Scale    *float64  `json:"scale,omitempty" yaml:"scale,omitempty"`
}

type cameraDoc struct {
	Type      string       `json:"type" yaml:"type"`
	Transform transformDoc `json:"transform" yaml:"transform"`
	Width     uint32       `json:"width" yaml:"width"`
	Height    uint32       `json:"height" yaml:"height"`
	FOV       float64      `json:"fov" yaml:"fov"`
	Near      float64      `json:"near" yaml:"near"`
	Far       float64      `json:"far" yaml:"far"`
}

type viewDoc struct {
	Camera     string `json:"camera" yaml:"camera"`
	Samples    uint32 `json:"samples" yaml:"samples"`
	Depth      uint32 `json:"depth" yaml:"depth"`
	Integrator string `json:"integrator" yaml:"integrator"`
	Renderer   string `json:"renderer" yaml:"renderer"`
}

type objectDoc struct {
	Shape     string       `json:"shape" yaml:"shape"`
	Radius    *float64     `json:"radius,omitempty" yaml:"radius,omitempty"`
	Extents   []float64    `json:"extents,omitempty" yaml:"extents,flow,omitempty"`
	Transform transformDoc `json:"transform" yaml:"transform"`
	Material  string       `json:"material" yaml:"material"`
}

type textureDoc struct {
	Type     string    `json:"type" yaml:"type"`
	Colour   []float64 `json:"colour,omitempty" yaml:"colour,flow,omitempty"`
	Filename string    `json:"filename,omitempty" yaml:"filename,omitempty"`
}

type materialDoc struct {
	Type    string      `json:"type" yaml:"type"`
	Texture *textureDoc `json:"texture,omitempty" yaml:"texture,omitempty"`
}

type lightDoc struct {
	Type      string    `json:"type" yaml:"type"`
	Position  []float64 `json:"position,omitempty" yaml:"position,flow,omitempty"`
	Direction []float64 `json:"direction,omitempty" yaml:"direction,flow,omitempty"`
	Colour    []float64 `json:"colour" yaml:"colour,flow"`
	Radius    *float64  `json:"radius,omitempty" yaml:"radius,omitempty"`
}

func vec(v types.Vec3) []float64 {
	return []float64{v[0], v[1], v[2]}
}

func transformToDoc(tr scene.Transform) transformDoc {
	doc := transformDoc{Position: vec(tr.Position)}
	if tr.Rotation != (types.Vec3{}) {
		doc.Rotation = vec(tr.Rotation)
	}
	if tr.Scale != 1 {
		scale := tr.Scale
		doc.Scale = &scale
	}
	return doc
}

// Convert an entity into its serialised record.
func entityToDoc(entity scene.Entity) interface{} {
	switch e := entity.(type) {
	case scene.Camera:
		return cameraDoc{
			Type:      e.Type.String(),
			Transform: transformToDoc(e.Transform),
			Width:     e.Width,
			Height:    e.Height,
			FOV:       e.FOV,
			Near:      e.Near,
			Far:       e.Far,
		}
	case scene.View:
		return viewDoc{
			Camera:     e.Camera,
			Samples:    e.Samples,
			Depth:      e.Depth,
			Integrator: e.Integrator.String(),
			Renderer:   e.Renderer.String(),
		}
	case scene.Object:
		doc := objectDoc{
			Shape:     e.Shape.Kind().String(),
			Transform: transformToDoc(e.Transform),
			Material:  e.Material,
		}
		switch shape := e.Shape.(type) {
		case scene.Ball:
			radius := shape.Radius
			doc.Radius = &radius
		case scene.Cuboid:
			doc.Extents = vec(shape.Extents)
		}
		return doc
	case scene.Material:
		doc := materialDoc{Type: e.Type.String()}
		switch tex := e.Texture.(type) {
		case scene.Constant:
			doc.Texture = &textureDoc{Type: tex.Type().String(), Colour: vec(tex.Colour)}
		case scene.Image:
			doc.Texture = &textureDoc{Type: tex.Type().String(), Filename: tex.Filename}
		}
		return doc
	case scene.Light:
		doc := lightDoc{Type: e.Type.String(), Colour: vec(e.Colour)}
		switch e.Type {
		case scene.PointLight:
			radius := e.Radius
			doc.Position = vec(e.Position)
			doc.Radius = &radius
		case scene.DirectionalLight:
			doc.Direction = vec(e.Direction)
		}
		return doc
	}
	return nil
}
