package reader

import (
	"github.com/achilleasa/scenedesc/asset"
	"github.com/achilleasa/scenedesc/scene"
)

// Get the source line of a field within an entity node.
func (r *sceneReader) fieldLine(c scene.Collection, entity, field string) int {
	n := r.nodes[c][entity]
	if n == nil {
		return 0
	}
	for idx, key := range n.keys {
		if key == field {
			return n.values[idx].line
		}
	}
	return n.line
}

// Resolve cross references between collections: views to cameras, then
// objects to materials, each in document order.
func (r *sceneReader) link() error {
	for _, name := range r.order[scene.Views] {
		view := r.views[name]
		if _, exists := r.cameras[view.Camera]; !exists {
			return &scene.ReferenceError{
				Collection: scene.Views, Entity: name, Field: "camera",
				Line:   r.fieldLine(scene.Views, name, "camera"),
				Target: scene.Cameras, Name: view.Camera,
			}
		}
	}

	for _, name := range r.order[scene.Objects] {
		obj := r.objects[name]
		if _, exists := r.materials[obj.Material]; !exists {
			return &scene.ReferenceError{
				Collection: scene.Objects, Entity: name, Field: "material",
				Line:   r.fieldLine(scene.Objects, name, "material"),
				Target: scene.Materials, Name: obj.Material,
			}
		}
	}

	unused := 0
	for _, name := range r.order[scene.Materials] {
		if !r.materialInUse(name) {
			r.logger.Infof("material %q is not referenced by any object", name)
			unused++
		}
	}
	if unused > 0 {
		r.logger.Noticef("found %d unused materials", unused)
	}

	return nil
}

func (r *sceneReader) materialInUse(name string) bool {
	for _, obj := range r.objects {
		if obj.Material == name {
			return true
		}
	}
	return false
}

// Verify that image texture files exist relative to the scene resource.
func (r *sceneReader) checkTextures(sceneRes *asset.Resource) error {
	for _, name := range r.order[scene.Materials] {
		img, isImage := r.materials[name].Texture.(scene.Image)
		if !isImage {
			continue
		}

		if err := asset.Exists(img.Filename, sceneRes); err != nil {
			return &scene.ReferenceError{
				Collection: scene.Materials, Entity: name, Field: "texture.filename",
				Line: r.fieldLine(scene.Materials, name, "texture"),
				Name: img.Filename, Err: err,
			}
		}
		r.logger.Debugf("found texture %q for material %q", img.Filename, name)
	}
	return nil
}
