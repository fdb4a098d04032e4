package scene

import "sort"

// Entity is implemented by every record stored in a Scene.
type Entity interface {
	EntityName() string
	Collection() Collection
}

// A Scene is the validated result of loading a scene description. It has no
// mutators and all accessors return copies, so a Scene may be shared between
// goroutines without locking.
type Scene struct {
	cameras   map[string]Camera
	views     map[string]View
	objects   map[string]Object
	materials map[string]Material
	lights    map[string]Light
}

// Create a scene from already validated entities. Entity names are taken from
// the map keys.
func New(cameras map[string]Camera, views map[string]View, objects map[string]Object, materials map[string]Material, lights map[string]Light) *Scene {
	sc := &Scene{
		cameras:   make(map[string]Camera, len(cameras)),
		views:     make(map[string]View, len(views)),
		objects:   make(map[string]Object, len(objects)),
		materials: make(map[string]Material, len(materials)),
		lights:    make(map[string]Light, len(lights)),
	}
	for name, c := range cameras {
		c.Name = name
		sc.cameras[name] = c
	}
	for name, v := range views {
		v.Name = name
		sc.views[name] = v
	}
	for name, o := range objects {
		o.Name = name
		sc.objects[name] = o
	}
	for name, m := range materials {
		m.Name = name
		sc.materials[name] = m
	}
	for name, l := range lights {
		l.Name = name
		sc.lights[name] = l
	}
	return sc
}

// Lookup an entity by name within a collection.
func (sc *Scene) Resolve(name string, c Collection) (Entity, error) {
	var (
		entity Entity
		exists bool
	)

	switch c {
	case Cameras:
		entity, exists = sc.cameras[name]
	case Views:
		entity, exists = sc.views[name]
	case Objects:
		entity, exists = sc.objects[name]
	case Materials:
		entity, exists = sc.materials[name]
	case Lights:
		entity, exists = sc.lights[name]
	}

	if !exists {
		return nil, &NotFoundError{Collection: c, Name: name}
	}
	return entity, nil
}

// Lookup a camera by name.
func (sc *Scene) Camera(name string) (Camera, error) {
	c, exists := sc.cameras[name]
	if !exists {
		return Camera{}, &NotFoundError{Collection: Cameras, Name: name}
	}
	return c, nil
}

// Lookup a view by name.
func (sc *Scene) View(name string) (View, error) {
	v, exists := sc.views[name]
	if !exists {
		return View{}, &NotFoundError{Collection: Views, Name: name}
	}
	return v, nil
}

// Lookup an object by name.
func (sc *Scene) Object(name string) (Object, error) {
	o, exists := sc.objects[name]
	if !exists {
		return Object{}, &NotFoundError{Collection: Objects, Name: name}
	}
	return o, nil
}

// Lookup a material by name.
func (sc *Scene) Material(name string) (Material, error) {
	m, exists := sc.materials[name]
	if !exists {
		return Material{}, &NotFoundError{Collection: Materials, Name: name}
	}
	return m, nil
}

// Lookup a light by name.
func (sc *Scene) Light(name string) (Light, error) {
	l, exists := sc.lights[name]
	if !exists {
		return Light{}, &NotFoundError{Collection: Lights, Name: name}
	}
	return l, nil
}

// Get the sorted entity names of a collection.
func (sc *Scene) Names(c Collection) []string {
	var names []string
	switch c {
	case Cameras:
		names = keys(sc.cameras)
	case Views:
		names = keys(sc.views)
	case Objects:
		names = keys(sc.objects)
	case Materials:
		names = keys(sc.materials)
	case Lights:
		names = keys(sc.lights)
	}
	return names
}

// Get the number of entities in a collection.
func (sc *Scene) Len(c Collection) int {
	return len(sc.Names(c))
}

// Get the objects that use a material, sorted by name.
func (sc *Scene) ObjectsWithMaterial(material string) []Object {
	out := make([]Object, 0)
	for _, name := range keys(sc.objects) {
		if obj := sc.objects[name]; obj.Material == material {
			out = append(out, obj)
		}
	}
	return out
}

func keys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
