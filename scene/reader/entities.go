package reader

import (
	"github.com/achilleasa/scenedesc/scene"
	"github.com/achilleasa/scenedesc/types"
)

func decodeTransform(parent *record) (scene.Transform, error) {
	var tr scene.Transform

	r, err := parent.nested("transform")
	if err != nil {
		return tr, err
	}

	if tr.Position, err = r.vec3("position"); err != nil {
		return tr, err
	}
	if tr.Rotation, err = r.optVec3("rotation", types.Vec3{}); err != nil {
		return tr, err
	}

	tr.Scale = 1
	if n, exists := r.get("scale"); exists {
		if tr.Scale, err = r.toNum("scale", n); err != nil {
			return tr, err
		}
		if tr.Scale <= 0 {
			return tr, r.rangeErr("scale", "must be positive; got %v", tr.Scale)
		}
	}

	return tr, r.done()
}

func decodeCamera(name string, n *node) (scene.Camera, error) {
	cam := scene.Camera{Name: name}

	r, err := newRecord(scene.Cameras, name, "", n)
	if err != nil {
		return cam, err
	}

	typeName, err := r.str("type")
	if err != nil {
		return cam, err
	}
	var ok bool
	if cam.Type, ok = scene.ParseCameraType(typeName); !ok {
		return cam, r.unsupportedErr("type", typeName, scene.CameraTypeNames())
	}

	if cam.Transform, err = decodeTransform(r); err != nil {
		return cam, err
	}

	width, err := r.integer("width")
	if err != nil {
		return cam, err
	}
	if width <= 0 {
		return cam, r.rangeErr("width", "must be a positive integer; got %d", width)
	}
	height, err := r.integer("height")
	if err != nil {
		return cam, err
	}
	if height <= 0 {
		return cam, r.rangeErr("height", "must be a positive integer; got %d", height)
	}
	cam.Width, cam.Height = uint32(width), uint32(height)

	if cam.FOV, err = r.num("fov"); err != nil {
		return cam, err
	}
	if cam.FOV <= 0 || cam.FOV >= 180 {
		return cam, r.rangeErr("fov", "must be in the range (0, 180) degrees; got %v", cam.FOV)
	}

	if cam.Near, err = r.num("near"); err != nil {
		return cam, err
	}
	if cam.Far, err = r.num("far"); err != nil {
		return cam, err
	}
	switch {
	case cam.Near <= 0:
		return cam, r.rangeErr("near", "must be positive; got %v", cam.Near)
	case cam.Far <= 0:
		return cam, r.rangeErr("far", "must be positive; got %v", cam.Far)
	case cam.Near >= cam.Far:
		return cam, r.rangeErr("near", "near (%v) must be less than far (%v)", cam.Near, cam.Far)
	}

	return cam, r.done()
}

func decodeView(name string, n *node) (scene.View, error) {
	view := scene.View{Name: name}

	r, err := newRecord(scene.Views, name, "", n)
	if err != nil {
		return view, err
	}

	if view.Camera, err = r.name("camera"); err != nil {
		return view, err
	}

	samples, err := r.integer("samples")
	if err != nil {
		return view, err
	}
	if samples <= 0 {
		return view, r.rangeErr("samples", "must be a positive integer; got %d", samples)
	}
	view.Samples = uint32(samples)

	depth, err := r.integer("depth")
	if err != nil {
		return view, err
	}
	if depth < 0 {
		return view, r.rangeErr("depth", "must be a non-negative integer; got %d", depth)
	}
	view.Depth = uint32(depth)

	integrator, err := r.str("integrator")
	if err != nil {
		return view, err
	}
	var ok bool
	if view.Integrator, ok = scene.ParseIntegratorType(integrator); !ok {
		return view, r.unsupportedErr("integrator", integrator, scene.IntegratorTypeNames())
	}

	renderer, err := r.str("renderer")
	if err != nil {
		return view, err
	}
	if view.Renderer, ok = scene.ParseRendererType(renderer); !ok {
		return view, r.unsupportedErr("renderer", renderer, scene.RendererTypeNames())
	}

	return view, r.done()
}

func decodeObject(name string, n *node) (scene.Object, error) {
	obj := scene.Object{Name: name}

	r, err := newRecord(scene.Objects, name, "", n)
	if err != nil {
		return obj, err
	}

	shapeName, err := r.str("shape")
	if err != nil {
		return obj, err
	}
	kind, ok := scene.ParseShapeKind(shapeName)
	if !ok {
		return obj, r.unsupportedErr("shape", shapeName, scene.ShapeKindNames())
	}

	switch kind {
	case scene.BallShape:
		radius, err := r.num("radius")
		if err != nil {
			return obj, err
		}
		if radius <= 0 {
			return obj, r.rangeErr("radius", "must be positive; got %v", radius)
		}
		obj.Shape = scene.Ball{Radius: radius}
	case scene.CuboidShape:
		extents, err := r.vec3("extents")
		if err != nil {
			return obj, err
		}
		if extents.MinComponent() <= 0 {
			return obj, r.rangeErr("extents", "components must be positive; got %v", extents)
		}
		obj.Shape = scene.Cuboid{Extents: extents}
	}

	if obj.Transform, err = decodeTransform(r); err != nil {
		return obj, err
	}
	if obj.Material, err = r.name("material"); err != nil {
		return obj, err
	}

	return obj, r.done()
}

func decodeMaterial(name string, n *node) (scene.Material, error) {
	mat := scene.Material{Name: name}

	r, err := newRecord(scene.Materials, name, "", n)
	if err != nil {
		return mat, err
	}

	typeName, err := r.str("type")
	if err != nil {
		return mat, err
	}
	var ok bool
	if mat.Type, ok = scene.ParseMaterialType(typeName); !ok {
		return mat, r.unsupportedErr("type", typeName, scene.MaterialTypeNames())
	}

	if mat.Type == scene.DiffuseMaterial {
		texRec, err := r.nested("texture")
		if err != nil {
			return mat, err
		}
		if mat.Texture, err = decodeTexture(texRec); err != nil {
			return mat, err
		}
	}

	return mat, r.done()
}

func decodeTexture(r *record) (scene.Texture, error) {
	typeName, err := r.str("type")
	if err != nil {
		return nil, err
	}
	texType, ok := scene.ParseTextureType(typeName)
	if !ok {
		return nil, r.unsupportedErr("type", typeName, scene.TextureTypeNames())
	}

	var tex scene.Texture
	switch texType {
	case scene.ConstantTexture:
		colour, err := decodeColour(r)
		if err != nil {
			return nil, err
		}
		tex = scene.Constant{Colour: colour}
	case scene.ImageTexture:
		filename, err := r.str("filename")
		if err != nil {
			return nil, err
		}
		if filename == "" {
			return nil, r.parseErr("filename", r.fields["filename"], "expected a non-empty filename")
		}
		tex = scene.Image{Filename: filename}
	}

	return tex, r.done()
}

// Colours are unbounded above but may not be negative.
func decodeColour(r *record) (types.Vec3, error) {
	colour, err := r.vec3("colour")
	if err != nil {
		return colour, err
	}
	if colour.MinComponent() < 0 {
		return colour, r.rangeErr("colour", "components must be non-negative; got %v", colour)
	}
	return colour, nil
}

func decodeLight(name string, n *node) (scene.Light, error) {
	light := scene.Light{Name: name}

	r, err := newRecord(scene.Lights, name, "", n)
	if err != nil {
		return light, err
	}

	typeName, err := r.str("type")
	if err != nil {
		return light, err
	}
	var ok bool
	if light.Type, ok = scene.ParseLightType(typeName); !ok {
		return light, r.unsupportedErr("type", typeName, scene.LightTypeNames())
	}

	if light.Colour, err = decodeColour(r); err != nil {
		return light, err
	}

	switch light.Type {
	case scene.PointLight:
		if light.Position, err = r.vec3("position"); err != nil {
			return light, err
		}
		if light.Radius, err = r.num("radius"); err != nil {
			return light, err
		}
		if light.Radius <= 0 {
			return light, r.rangeErr("radius", "must be positive; got %v", light.Radius)
		}
	case scene.DirectionalLight:
		if light.Direction, err = r.vec3("direction"); err != nil {
			return light, err
		}
		if light.Direction.Len() == 0 {
			return light, r.rangeErr("direction", "must be a non-zero vector")
		}
	}

	return light, r.done()
}
