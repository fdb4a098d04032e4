package scene

import "github.com/achilleasa/scenedesc/types"

// A Light emits Colour into the scene. Point lights use Position and Radius;
// directional lights use Direction.
type Light struct {
	Name   string
	Type   LightType
	Colour types.Vec3

	Position types.Vec3
	Radius   float64

	Direction types.Vec3
}

func (l Light) EntityName() string     { return l.Name }
func (l Light) Collection() Collection { return Lights }
